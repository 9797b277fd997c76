package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"interview_backend/internal/feature/auth/domain/entity"
	"interview_backend/internal/feature/auth/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
// TranslateError is enabled so unique violations surface as gorm.ErrDuplicatedKey,
// matching the production PostgreSQL configuration.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.User{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func seedUser(t *testing.T, repo *userPostgres, email string) *entity.User {
	t.Helper()

	u := &entity.User{
		Name:        "Ann",
		Email:       email,
		Password:    "hashed_password",
		CnfPassword: "hashed_cnf_password",
		ProfilePic:  "https://example.com/ann.png",
	}
	require.NoError(t, repo.Create(context.Background(), u), "failed to seed user")
	return u
}

func TestUserPostgres_Create(t *testing.T) {
	t.Run("successful user creation", func(t *testing.T) {
		repo := NewUserPostgres(setupTestDB(t))

		user := &entity.User{
			Name:        "Ann",
			Email:       "a@x.com",
			Password:    "hashed_password",
			CnfPassword: "hashed_cnf_password",
		}

		err := repo.Create(context.Background(), user)

		assert.NoError(t, err, "failed to create user")
		assert.NotZero(t, user.ID, "ID is not set")
		assert.False(t, user.CreatedAt.IsZero(), "CreatedAt is not set")
	})

	t.Run("duplicate email returns ErrEmailAlreadyExists and keeps one record", func(t *testing.T) {
		repo := NewUserPostgres(setupTestDB(t))
		seedUser(t, repo, "duplicate@x.com")

		err := repo.Create(context.Background(), &entity.User{
			Name:        "Other",
			Email:       "duplicate@x.com",
			Password:    "p2",
			CnfPassword: "c2",
		})

		assert.ErrorIs(t, err, usecase.ErrEmailAlreadyExists)

		var count int64
		repo.db.Model(&entity.User{}).Where("email = ?", "duplicate@x.com").Count(&count)
		assert.Equal(t, int64(1), count, "store must contain exactly one record for the email")
	})
}

func TestUserPostgres_FindByEmail(t *testing.T) {
	t.Run("find user by email successfully", func(t *testing.T) {
		repo := NewUserPostgres(setupTestDB(t))
		expected := seedUser(t, repo, "find@x.com")

		found, err := repo.FindByEmail(context.Background(), "find@x.com")

		assert.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, expected.ID, found.ID)
		assert.Equal(t, expected.Email, found.Email)
	})

	t.Run("email not found error", func(t *testing.T) {
		repo := NewUserPostgres(setupTestDB(t))

		found, err := repo.FindByEmail(context.Background(), "notfound@x.com")

		assert.Nil(t, found)
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}

func TestUserPostgres_FindByID(t *testing.T) {
	t.Run("find user by id successfully", func(t *testing.T) {
		repo := NewUserPostgres(setupTestDB(t))
		expected := seedUser(t, repo, "byid@x.com")

		found, err := repo.FindByID(context.Background(), expected.ID)

		assert.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, expected.Email, found.Email)
	})

	t.Run("id not found error", func(t *testing.T) {
		repo := NewUserPostgres(setupTestDB(t))

		found, err := repo.FindByID(context.Background(), 9999)

		assert.Nil(t, found)
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}

func TestUserPostgres_Update(t *testing.T) {
	t.Run("partial update changes only supplied fields", func(t *testing.T) {
		repo := NewUserPostgres(setupTestDB(t))
		seeded := seedUser(t, repo, "partial@x.com")

		name := "Annie"
		updated, err := repo.Update(context.Background(), seeded.ID, usecase.ProfileUpdate{Name: &name})

		require.NoError(t, err)
		assert.Equal(t, "Annie", updated.Name)
		assert.Equal(t, "partial@x.com", updated.Email, "email must be unchanged")
		assert.Equal(t, seeded.ProfilePic, updated.ProfilePic, "profile pic must be unchanged")

		// Re-read to confirm the persisted state
		stored, err := repo.FindByID(context.Background(), seeded.ID)
		require.NoError(t, err)
		assert.Equal(t, "Annie", stored.Name)
		assert.Equal(t, "partial@x.com", stored.Email)
	})

	t.Run("empty update leaves the record untouched", func(t *testing.T) {
		repo := NewUserPostgres(setupTestDB(t))
		seeded := seedUser(t, repo, "noop@x.com")

		updated, err := repo.Update(context.Background(), seeded.ID, usecase.ProfileUpdate{})

		require.NoError(t, err)
		assert.Equal(t, seeded.Name, updated.Name)
		assert.Equal(t, seeded.Email, updated.Email)
	})

	t.Run("missing user returns ErrUserNotFound", func(t *testing.T) {
		repo := NewUserPostgres(setupTestDB(t))

		name := "Ghost"
		_, err := repo.Update(context.Background(), 9999, usecase.ProfileUpdate{Name: &name})

		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})

	t.Run("email collision returns ErrEmailAlreadyExists", func(t *testing.T) {
		repo := NewUserPostgres(setupTestDB(t))
		seedUser(t, repo, "taken@x.com")
		victim := seedUser(t, repo, "victim@x.com")

		email := "taken@x.com"
		_, err := repo.Update(context.Background(), victim.ID, usecase.ProfileUpdate{Email: &email})

		assert.ErrorIs(t, err, usecase.ErrEmailAlreadyExists)

		stored, ferr := repo.FindByID(context.Background(), victim.ID)
		require.NoError(t, ferr)
		assert.Equal(t, "victim@x.com", stored.Email, "failed update must not change the record")
	})
}
