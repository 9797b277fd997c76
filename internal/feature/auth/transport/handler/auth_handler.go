// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"interview_backend/internal/api"
	"interview_backend/internal/feature/auth/domain/entity"
	"interview_backend/internal/feature/auth/transport/http/dto"
	"interview_backend/internal/feature/auth/usecase"
	jwtmw "interview_backend/internal/platform/jwt"
)

// AuthUsecase defines the usecase contract for authentication operations.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type AuthUsecase interface {
	// Register creates a new user and returns it with a session token.
	Register(ctx context.Context, in usecase.RegisterInput) (*entity.User, string, error)
	// Login authenticates a user and returns it with a session token.
	Login(ctx context.Context, email, password string) (*entity.User, string, error)
	// UpdateProfile applies a partial update to the user's record.
	UpdateProfile(ctx context.Context, userID uint, upd usecase.ProfileUpdate) (*entity.User, error)
}

// AuthHandler handles HTTP requests for authentication operations.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// toUserResponse builds the public projection of a user.
// Password hashes never appear in any response.
func toUserResponse(u *entity.User) api.UserResponse {
	resp := api.UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
	if u.ProfilePic != "" {
		pic := u.ProfilePic
		resp.ProfilePic = &pic
	}
	return resp
}

// validationResponse converts a binding error into a field-level error body.
func validationResponse(err error) api.ValidationErrorResponse {
	resp := api.ValidationErrorResponse{Message: "Validation failed"}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			resp.Errors = append(resp.Errors, api.FieldError{
				Field:   strings.ToLower(fe.Field()[:1]) + fe.Field()[1:],
				Message: fieldMessage(fe),
			})
		}
		return resp
	}
	resp.Errors = append(resp.Errors, api.FieldError{Field: "body", Message: err.Error()})
	return resp
}

// fieldMessage renders a human-readable message for a single validation failure.
func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email"
	case "min":
		return "Must be at least " + fe.Param() + " characters"
	default:
		return "Invalid value"
	}
}

// Register handles the user registration endpoint.
//
// Endpoint: POST /api/auth/register
// Returns 201 with a token and the public user projection on success,
// 400 on validation failure or duplicate email.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, validationResponse(err))
		return
	}

	user, token, err := h.auth.Register(c.Request.Context(), usecase.RegisterInput{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		CnfPassword: req.CnfPassword,
		ProfilePic:  req.ProfilePic,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrEmailAlreadyExists) {
			slog.Warn("register rejected: duplicate email", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, api.MessageResponse{Message: "User already exists"})
			return
		}
		slog.Error("register failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.MessageResponse{Message: "Internal Server Error"})
		return
	}

	slog.Info("user registered", "user_id", user.ID, "email", user.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, api.AuthResponse{
		Message: "User registered successfully!",
		Token:   token,
		User:    toUserResponse(user),
	})
}

// Login handles the user login endpoint.
//
// Endpoint: POST /api/auth/login
// Every authentication failure maps to the same 400 response so the caller
// cannot tell an unknown email from a wrong password.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, validationResponse(err))
		return
	}

	user, token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		slog.Warn("login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.MessageResponse{Message: "Invalid credentials"})
		return
	}

	slog.Info("user login successful", "user_id", user.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.AuthResponse{
		Message: "Login successful!",
		Token:   token,
		User:    toUserResponse(user),
	})
}

// Dashboard handles the protected dashboard smoke route.
//
// Endpoint: GET /api/auth/dashboard
func (h *AuthHandler) Dashboard(c *gin.Context) {
	c.JSON(http.StatusOK, api.DashboardResponse{
		Message: "Protected route accessed",
		UserID:  c.GetUint(jwtmw.ContextUserID),
	})
}

// UpdateProfile handles the authenticated profile update endpoint.
//
// Endpoint: PUT /api/user/update
// The target user ID always comes from the verified token claims, never from
// the request body, so a caller cannot update another user's record.
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("update validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, validationResponse(err))
		return
	}

	userID := c.GetUint(jwtmw.ContextUserID)
	user, err := h.auth.UpdateProfile(c.Request.Context(), userID, usecase.ProfileUpdate{
		Name:       req.Name,
		Email:      req.Email,
		ProfilePic: req.ProfilePic,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, api.MessageResponse{Message: "User not found"})
		case errors.Is(err, usecase.ErrEmailAlreadyExists):
			c.JSON(http.StatusBadRequest, api.MessageResponse{Message: "User already exists"})
		default:
			slog.Error("profile update failed", "error", err, "user_id", userID)
			c.JSON(http.StatusInternalServerError, api.MessageResponse{Message: "Internal Server Error"})
		}
		return
	}

	slog.Info("profile updated", "user_id", userID)
	c.JSON(http.StatusOK, toUserResponse(user))
}
