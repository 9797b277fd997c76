// Package router assembles the HTTP routes for the API server.
package router

import (
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "interview_backend/internal/feature/auth/transport/handler"
	interviewhandler "interview_backend/internal/feature/interview/transport/handler"
	recommendationhandler "interview_backend/internal/feature/recommendation/transport/handler"
	platformhandler "interview_backend/internal/platform/http/handler"
	jwtmw "interview_backend/internal/platform/jwt"
)

// defaultAllowedOrigin is the local dev address of the SPA client.
const defaultAllowedOrigin = "http://localhost:5173"

// NewRouter wires all handlers into a Gin engine.
// Routes under the auth group require a verified bearer token.
func NewRouter(
	auth *authhandler.AuthHandler,
	interview *interviewhandler.InterviewHandler,
	recommendation *recommendationhandler.RecommendationHandler,
	verifier jwtmw.TokenVerifier,
) *gin.Engine {
	r := gin.Default()

	// CORS for the browser client
	r.Use(cors.New(corsConfig()))

	// Liveness probe
	r.GET("/healthz", platformhandler.Health)

	api := r.Group("/api")

	// No authentication required
	api.POST("/auth/register", auth.Register)
	api.POST("/auth/login", auth.Login)
	api.POST("/interview/generate-questions", interview.GenerateQuestions)
	api.POST("/interview/generate-response", interview.GenerateResponse)
	api.POST("/recommendations/generate-recommendations", recommendation.GenerateRecommendations)

	// Bearer token required
	protected := api.Group("/")
	protected.Use(jwtmw.AuthRequired(verifier))
	{
		protected.GET("/auth/dashboard", auth.Dashboard)
		protected.PUT("/user/update", auth.UpdateProfile)
	}

	return r
}

// corsConfig builds the CORS policy from CORS_ALLOWED_ORIGINS
// (comma-separated), defaulting to the local SPA origin.
func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowCredentials = true
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")

	origins := os.Getenv("CORS_ALLOWED_ORIGINS")
	if origins == "" {
		cfg.AllowOrigins = []string{defaultAllowedOrigin}
		return cfg
	}
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowOrigins = append(cfg.AllowOrigins, o)
		}
	}
	return cfg
}
