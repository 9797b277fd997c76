// Package api defines the request and response types shared by the HTTP transport layer.
package api

// ErrorResponse is the generic error body used by the AI proxy endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the generic message body used by the auth endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

// FieldError describes a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrorResponse is returned when request binding fails.
type ValidationErrorResponse struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors"`
}

// UserResponse is the public projection of a user record.
// It never carries password fields. ProfilePic serializes as null when unset.
type UserResponse struct {
	ID         uint    `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	ProfilePic *string `json:"profilePic"`
}

// AuthResponse is returned by the register and login endpoints.
type AuthResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

// DashboardResponse is returned by the protected dashboard route.
type DashboardResponse struct {
	Message string `json:"message"`
	UserID  uint   `json:"userId"`
}

// QuestionResponse is a single generated interview question.
type QuestionResponse struct {
	Category string `json:"category"`
	Question string `json:"question"`
}

// FeedbackResponse carries AI feedback on an interview answer.
type FeedbackResponse struct {
	Feedback string `json:"feedback"`
}

// RecommendationsResponse carries AI-generated study recommendations.
type RecommendationsResponse struct {
	Recommendations string `json:"recommendations"`
}
