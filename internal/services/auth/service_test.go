package auth

import (
	"testing"

	"tixara/internal/models"
	"tixara/internal/repositories"
	"tixara/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(user *models.User) error { return m.Called(user).Error(0) }

func (m *MockUserRepo) GetByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepo) Update(user *models.User) error { return m.Called(user).Error(0) }
func (m *MockUserRepo) Delete(id uint) error           { return m.Called(id).Error(0) }

func (m *MockUserRepo) List(filter string, offset, limit int) ([]*models.User, int64, error) {
	args := m.Called(filter, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*models.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepo) ListAdmins() ([]*models.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *MockUserRepo) SetAdmin(userID uint, isAdmin bool) error {
	return m.Called(userID, isAdmin).Error(0)
}

func (m *MockUserRepo) IncrementTokenVersion(userID uint) error {
	return m.Called(userID).Error(0)
}

func (m *MockUserRepo) Recent(limit int) ([]*models.User, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

func validRegisterInput() RegisterInput {
	return RegisterInput{
		FirstName:   "Ada",
		LastName:    "Obi",
		Email:       "ada@example.com",
		Password:    "correct-horse-9!",
		AccountType: models.AccountTypeAttendee,
	}
}

func TestRegister(t *testing.T) {
	t.Run("creates user with hashed password", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("Create", mock.Anything).Return(nil)

		s := NewService(repo)
		user, err := s.Register(validRegisterInput())

		assert.NoError(t, err)
		assert.NotEqual(t, "correct-horse-9!", user.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("correct-horse-9!")))
		assert.Equal(t, models.KycStatusNotSubmitted, user.KycStatus)
	})

	t.Run("duplicate email surfaces", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("Create", mock.Anything).Return(repositories.ErrEmailTaken)

		s := NewService(repo)
		_, err := s.Register(validRegisterInput())

		assert.ErrorIs(t, err, repositories.ErrEmailTaken)
	})

	t.Run("short password rejected before any repo call", func(t *testing.T) {
		repo := new(MockUserRepo)
		input := validRegisterInput()
		input.Password = "short"

		s := NewService(repo)
		_, err := s.Register(input)

		assert.Error(t, err)
		repo.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("unknown account type rejected", func(t *testing.T) {
		input := validRegisterInput()
		input.AccountType = "superuser"

		s := NewService(new(MockUserRepo))
		_, err := s.Register(input)

		assert.Error(t, err)
	})
}

func TestLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	hashed, _ := bcrypt.GenerateFromPassword([]byte("correct-horse-9!"), bcrypt.DefaultCost)
	stored := &models.User{
		Email:        "ada@example.com",
		Password:     string(hashed),
		AccountType:  models.AccountTypeAttendee,
		TokenVersion: 1,
	}
	stored.ID = 1

	t.Run("issues tokens carrying the role claims", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("GetByEmail", "ada@example.com").Return(stored, nil)

		s := NewService(repo)
		user, accessToken, refreshToken, err := s.Login("ada@example.com", "correct-horse-9!")

		assert.NoError(t, err)
		assert.Equal(t, uint(1), user.ID)
		assert.NotEmpty(t, refreshToken)

		_, claims, err := utils.ParseToken(accessToken)
		assert.NoError(t, err)
		assert.Equal(t, uint(1), claims.UserID)
		assert.Equal(t, models.AccountTypeAttendee, claims.AccountType)
		assert.False(t, claims.IsAdmin)
		assert.Equal(t, 1, claims.TokenVersion)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("GetByEmail", "ada@example.com").Return(stored, nil)

		s := NewService(repo)
		_, _, _, err := s.Login("ada@example.com", "nope")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("GetByEmail", "ghost@example.com").Return(nil, repositories.ErrUserNotFound)

		s := NewService(repo)
		_, _, _, err := s.Login("ghost@example.com", "whatever")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestRefreshTokens(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	stored := &models.User{Email: "ada@example.com", TokenVersion: 2}
	stored.ID = 1

	issue := func(tokenVersion int) string {
		_, refreshToken, err := utils.GenerateTokens(&models.UserClaims{
			UserID:       1,
			Email:        "ada@example.com",
			TokenVersion: tokenVersion,
		})
		assert.NoError(t, err)
		return refreshToken
	}

	t.Run("valid refresh token rotates the pair", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("GetByID", uint(1)).Return(stored, nil)

		s := NewService(repo)
		accessToken, _, err := s.RefreshTokens(issue(2))

		assert.NoError(t, err)
		assert.NotEmpty(t, accessToken)
	})

	t.Run("stale token version is rejected", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("GetByID", uint(1)).Return(stored, nil)

		s := NewService(repo)
		_, _, err := s.RefreshTokens(issue(1))

		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		s := NewService(new(MockUserRepo))
		_, _, err := s.RefreshTokens("not.a.jwt")

		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
