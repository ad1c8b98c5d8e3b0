package kyc

import (
	"context"
	"testing"

	"tixara/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockKycRepo struct {
	mock.Mock
}

func (m *MockKycRepo) Upsert(request *models.KycRequest) (*models.KycRequest, error) {
	args := m.Called(request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.KycRequest), args.Error(1)
}

func (m *MockKycRepo) GetByUserID(userID uint) (*models.KycRequest, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.KycRequest), args.Error(1)
}

func (m *MockKycRepo) List() ([]*models.KycRequest, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.KycRequest), args.Error(1)
}

func (m *MockKycRepo) Recent(limit int) ([]*models.KycRequest, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.KycRequest), args.Error(1)
}

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

func organizerWithStatus(status string) *models.User {
	user := &models.User{
		FirstName:   "Bisi",
		LastName:    "Ade",
		Email:       "bisi@example.com",
		AccountType: models.AccountTypeOrganizer,
		KycStatus:   status,
	}
	user.ID = 3
	return user
}

func TestSubmit(t *testing.T) {
	input := SubmitInput{
		KycType:     models.KycTypePersonal,
		FullName:    "Bisi Ade",
		PhoneNumber: "+2348000000000",
		IDType:      "nin",
		IDNumber:    "12345678901",
	}

	t.Run("rejects unknown kyc type", func(t *testing.T) {
		s := NewService(new(MockKycRepo), new(MockUserRepo))
		_, _, err := s.Submit(context.Background(), 3, SubmitInput{KycType: "corporate"})
		assert.ErrorIs(t, err, ErrKycTypeRequired)
	})

	t.Run("first submission moves user to pending", func(t *testing.T) {
		kycRepo := new(MockKycRepo)
		userRepo := new(MockUserRepo)
		user := organizerWithStatus(models.KycStatusNotSubmitted)

		userRepo.On("GetByID", uint(3)).Return(user, nil)
		kycRepo.On("Upsert", mock.Anything).Return(&models.KycRequest{UserID: 3}, nil)
		userRepo.On("Update", mock.Anything).Return(nil)

		s := NewService(kycRepo, userRepo)
		_, resubmitted, err := s.Submit(context.Background(), 3, input)

		assert.NoError(t, err)
		assert.False(t, resubmitted)
		assert.Equal(t, models.KycStatusPending, user.KycStatus)
		assert.NotNil(t, user.KycSubmittedAt)
	})

	t.Run("submission after rejection is a resubmission", func(t *testing.T) {
		kycRepo := new(MockKycRepo)
		userRepo := new(MockUserRepo)
		user := organizerWithStatus(models.KycStatusRejected)

		userRepo.On("GetByID", uint(3)).Return(user, nil)
		kycRepo.On("Upsert", mock.Anything).Return(&models.KycRequest{UserID: 3}, nil)
		userRepo.On("Update", mock.Anything).Return(nil)

		s := NewService(kycRepo, userRepo)
		_, resubmitted, err := s.Submit(context.Background(), 3, input)

		assert.NoError(t, err)
		assert.True(t, resubmitted)
		assert.Equal(t, models.KycStatusPending, user.KycStatus)
	})
}

func TestApprove(t *testing.T) {
	t.Run("requires a split code", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		s := NewService(new(MockKycRepo), userRepo)

		err := s.Approve(context.Background(), 3, "")

		assert.ErrorIs(t, err, ErrSplitCodeRequired)
		userRepo.AssertNotCalled(t, "Update", mock.Anything)
	})

	t.Run("assigns split code and timestamps approval", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		user := organizerWithStatus(models.KycStatusPending)
		userRepo.On("GetByID", uint(3)).Return(user, nil)
		userRepo.On("Update", mock.Anything).Return(nil)

		s := NewService(new(MockKycRepo), userRepo)
		err := s.Approve(context.Background(), 3, "SPL_x7k2m")

		assert.NoError(t, err)
		assert.Equal(t, models.KycStatusApproved, user.KycStatus)
		assert.NotNil(t, user.PaystackSplitCode)
		assert.Equal(t, "SPL_x7k2m", *user.PaystackSplitCode)
		assert.NotNil(t, user.KycApprovedAt)
	})
}

func TestReject(t *testing.T) {
	t.Run("falls back to default reason", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		user := organizerWithStatus(models.KycStatusPending)
		userRepo.On("GetByID", uint(3)).Return(user, nil)
		userRepo.On("Update", mock.Anything).Return(nil)

		s := NewService(new(MockKycRepo), userRepo)
		err := s.Reject(context.Background(), 3, "")

		assert.NoError(t, err)
		assert.Equal(t, models.KycStatusRejected, user.KycStatus)
		assert.Equal(t, "KYC verification failed", user.KycRejectionReason)
		assert.NotNil(t, user.KycRejectedAt)
	})

	t.Run("keeps the reviewer's reason", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		user := organizerWithStatus(models.KycStatusPending)
		userRepo.On("GetByID", uint(3)).Return(user, nil)
		userRepo.On("Update", mock.Anything).Return(nil)

		s := NewService(new(MockKycRepo), userRepo)
		err := s.Reject(context.Background(), 3, "ID document is illegible")

		assert.NoError(t, err)
		assert.Equal(t, "ID document is illegible", user.KycRejectionReason)
	})
}
