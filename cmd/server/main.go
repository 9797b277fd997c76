package main

import (
	"context"
	"log"
	"os"

	redisv9 "github.com/redis/go-redis/v9"

	"interview_backend/internal/app/di"
	"interview_backend/internal/app/router"
	authadapters "interview_backend/internal/feature/auth/adapters"
	authhandler "interview_backend/internal/feature/auth/transport/handler"
	authusecase "interview_backend/internal/feature/auth/usecase"
	interviewhandler "interview_backend/internal/feature/interview/transport/handler"
	interviewusecase "interview_backend/internal/feature/interview/usecase"
	recommendationhandler "interview_backend/internal/feature/recommendation/transport/handler"
	recommendationusecase "interview_backend/internal/feature/recommendation/usecase"
	infradb "interview_backend/internal/platform/db"
	infraredis "interview_backend/internal/platform/redis"
	jwtmw "interview_backend/internal/platform/jwt"
)

func main() {
	ctx := context.Background()

	// db
	conn := infradb.OpenDB()

	// Redis (optional: the completion cache degrades to pass-through without it)
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without completion cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Signing secret is read once here and injected everywhere it is needed.
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}
	generator := jwtmw.NewGenerator(secret, jwtmw.DefaultExpiration)
	verifier := jwtmw.NewVerifier(secret)

	// Completion client for the AI proxy endpoints
	completer, err := di.NewCompleter(ctx, rdb)
	if err != nil {
		log.Fatalf("failed to create completion client: %v", err)
	}

	// Repository
	userRepo := authadapters.NewUserPostgres(conn)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, generator)
	interviewUC := interviewusecase.NewInterviewUsecase(completer)
	recommendationUC := recommendationusecase.NewRecommendationUsecase(completer)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	interviewH := interviewhandler.NewInterviewHandler(interviewUC)
	recommendationH := recommendationhandler.NewRecommendationHandler(recommendationUC)

	r := router.NewRouter(authH, interviewH, recommendationH, verifier)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
