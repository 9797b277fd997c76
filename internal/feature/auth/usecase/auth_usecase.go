package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"interview_backend/internal/feature/auth/domain/entity"
)

// hashCost is the bcrypt cost factor used for all stored password hashes.
const hashCost = bcrypt.DefaultCost

// dummyHash is a valid bcrypt hash compared against when the email is unknown,
// so that login takes the same time whether or not the user exists.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user to the storage.
	// It returns ErrEmailAlreadyExists if a user with the same email exists.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user matching the specified email address.
	// It returns ErrUserNotFound if the user does not exist.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a user matching the specified ID.
	// It returns ErrUserNotFound if the user does not exist.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// Update applies a partial update to the user with the given ID and
	// returns the updated record. Fields left nil are not touched.
	Update(ctx context.Context, id uint, upd ProfileUpdate) (*entity.User, error)
}

// TokenGenerator defines the interface for signed session token generation.
type TokenGenerator interface {
	// GenerateToken creates a signed token for the given user.
	GenerateToken(userID uint, email string) (string, error)
}

// RegisterInput carries the validated registration fields.
type RegisterInput struct {
	Name        string
	Email       string
	Password    string
	CnfPassword string
	ProfilePic  string
}

// ProfileUpdate carries the optional profile fields for a partial update.
// A nil field means "leave unchanged".
type ProfileUpdate struct {
	Name       *string
	Email      *string
	ProfilePic *string
}

// authUsecase implements the authentication business logic.
type authUsecase struct {
	users  UserRepository
	tokens TokenGenerator
}

// NewAuthUsecase creates a new authUsecase instance.
func NewAuthUsecase(users UserRepository, tokens TokenGenerator) *authUsecase {
	return &authUsecase{
		users:  users,
		tokens: tokens,
	}
}

// Register creates a new user with hashed credentials and issues a session token.
// The password and the confirmation password are hashed independently; they are
// deliberately not compared to each other, matching the contract of the public API.
func (u *authUsecase) Register(ctx context.Context, in RegisterInput) (*entity.User, string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), hashCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}
	hashedCnf, err := bcrypt.GenerateFromPassword([]byte(in.CnfPassword), hashCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash confirmation password: %w", err)
	}

	user := &entity.User{
		Name:        in.Name,
		Email:       in.Email,
		Password:    string(hashed),
		CnfPassword: string(hashedCnf),
		ProfilePic:  in.ProfilePic,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := u.tokens.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}
	return user, token, nil
}

// Login authenticates a user and returns a fresh session token on success.
// The bcrypt comparison always runs, even for unknown emails, to mitigate
// timing attacks, and every failure maps to ErrInvalidCredentials.
func (u *authUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	user, err := u.users.FindByEmail(ctx, email)

	passwordHash := dummyHash
	if err == nil {
		passwordHash = user.Password
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if err != nil || compareErr != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, tokenErr := u.tokens.GenerateToken(user.ID, user.Email)
	if tokenErr != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", tokenErr)
	}
	return user, token, nil
}

// UpdateProfile applies a partial update to the authenticated user's record.
// The target ID must come from verified session claims, never from client input.
func (u *authUsecase) UpdateProfile(ctx context.Context, userID uint, upd ProfileUpdate) (*entity.User, error) {
	user, err := u.users.Update(ctx, userID, upd)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) || errors.Is(err, ErrEmailAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update user %d: %w", userID, err)
	}
	return user, nil
}
