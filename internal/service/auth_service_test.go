package service

import (
	"context"
	"testing"
	"time"

	"github.com/N0Nameez/carcatalog/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// --- Mock UserRepository ---

type mockUserRepo struct {
	createFn        func(ctx context.Context, user *models.User) error
	findByIDFn      func(ctx context.Context, id uint) (*models.User, error)
	findByEmailFn   func(ctx context.Context, email string) (*models.User, error)
	emailTakenFn    func(ctx context.Context, email string, excludeID uint) (bool, error)
	usernameTakenFn func(ctx context.Context, username string, excludeID uint) (bool, error)
	updateFn        func(ctx context.Context, user *models.User) error
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	return m.createFn(ctx, user)
}
func (m *mockUserRepo) FindByID(ctx context.Context, id uint) (*models.User, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return m.findByEmailFn(ctx, email)
}
func (m *mockUserRepo) EmailTaken(ctx context.Context, email string, excludeID uint) (bool, error) {
	return m.emailTakenFn(ctx, email, excludeID)
}
func (m *mockUserRepo) UsernameTaken(ctx context.Context, username string, excludeID uint) (bool, error) {
	return m.usernameTakenFn(ctx, username, excludeID)
}
func (m *mockUserRepo) Update(ctx context.Context, user *models.User) error {
	return m.updateFn(ctx, user)
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

// --- Tests ---

func TestRegister_Success(t *testing.T) {
	repo := &mockUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			return nil, gorm.ErrRecordNotFound
		},
		createFn: func(ctx context.Context, user *models.User) error {
			user.ID = 1
			return nil
		},
	}

	svc := NewAuthService(repo, "test-secret", time.Hour)
	user, token, err := svc.Register(context.Background(), RegisterInput{
		Email:           "new@example.com",
		Password:        "hunter22",
		ConfirmPassword: "hunter22",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.NotEqual(t, "hunter22", user.PasswordHash)

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, float64(1), claims["userId"])
	assert.Equal(t, "new@example.com", claims["email"])
	assert.Equal(t, models.RoleUser, claims["role"])
}

func TestRegister_PasswordMismatch(t *testing.T) {
	svc := NewAuthService(&mockUserRepo{}, "test-secret", time.Hour)

	_, _, err := svc.Register(context.Background(), RegisterInput{
		Email:           "new@example.com",
		Password:        "one",
		ConfirmPassword: "two",
	})

	assert.ErrorIs(t, err, ErrPasswordMismatch)
}

func TestRegister_EmailTaken(t *testing.T) {
	repo := &mockUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{ID: 1, Email: email}, nil
		},
	}

	svc := NewAuthService(repo, "test-secret", time.Hour)
	_, _, err := svc.Register(context.Background(), RegisterInput{
		Email:           "taken@example.com",
		Password:        "hunter22",
		ConfirmPassword: "hunter22",
	})

	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin_Success(t *testing.T) {
	hash := hashOf(t, "hunter22")
	repo := &mockUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{ID: 3, Email: email, PasswordHash: hash, Role: models.RoleAdmin}, nil
		},
	}

	svc := NewAuthService(repo, "test-secret", time.Hour)
	user, token, err := svc.Login(context.Background(), "admin@example.com", "hunter22")

	require.NoError(t, err)
	assert.Equal(t, uint(3), user.ID)
	assert.NotEmpty(t, token)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash := hashOf(t, "hunter22")
	repo := &mockUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{ID: 3, Email: email, PasswordHash: hash}, nil
		},
	}

	svc := NewAuthService(repo, "test-secret", time.Hour)
	_, _, err := svc.Login(context.Background(), "user@example.com", "wrong")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	repo := &mockUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := NewAuthService(repo, "test-secret", time.Hour)
	_, _, err := svc.Login(context.Background(), "nobody@example.com", "hunter22")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpdateProfile_WrongCurrentPassword(t *testing.T) {
	hash := hashOf(t, "hunter22")
	repo := &mockUserRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Email: "user@example.com", PasswordHash: hash}, nil
		},
	}

	svc := NewAuthService(repo, "test-secret", time.Hour)
	_, err := svc.UpdateProfile(context.Background(), 1, ProfileUpdateInput{
		Email:           "user@example.com",
		CurrentPassword: "wrong",
	})

	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestUpdateProfile_EmailTaken(t *testing.T) {
	hash := hashOf(t, "hunter22")
	repo := &mockUserRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Email: "old@example.com", PasswordHash: hash}, nil
		},
		emailTakenFn: func(ctx context.Context, email string, excludeID uint) (bool, error) {
			return true, nil
		},
	}

	svc := NewAuthService(repo, "test-secret", time.Hour)
	_, err := svc.UpdateProfile(context.Background(), 1, ProfileUpdateInput{
		Email:           "taken@example.com",
		CurrentPassword: "hunter22",
	})

	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestUpdateProfile_ChangesFieldsAndPassword(t *testing.T) {
	hash := hashOf(t, "hunter22")
	var saved *models.User
	repo := &mockUserRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Email: "user@example.com", PasswordHash: hash}, nil
		},
		updateFn: func(ctx context.Context, user *models.User) error {
			saved = user
			return nil
		},
	}

	first := "Jamie"
	svc := NewAuthService(repo, "test-secret", time.Hour)
	user, err := svc.UpdateProfile(context.Background(), 1, ProfileUpdateInput{
		Email:           "user@example.com",
		FirstName:       &first,
		CurrentPassword: "hunter22",
		NewPassword:     "correct-horse",
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, &first, user.FirstName)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("correct-horse")))
}
