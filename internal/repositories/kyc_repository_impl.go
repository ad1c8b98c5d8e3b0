package repositories

import (
	"errors"

	"tixara/internal/models"

	"gorm.io/gorm"
)

type kycRepository struct {
	db *gorm.DB
}

// NewKycRepository creates a new instance of KycRepository.
func NewKycRepository(db *gorm.DB) KycRepository {
	return &kycRepository{db: db}
}

func (r *kycRepository) Upsert(request *models.KycRequest) (*models.KycRequest, error) {
	var existing models.KycRequest
	err := r.db.Where("user_id = ?", request.UserID).First(&existing).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDatabaseOperation
		}
		if err := r.db.Create(request).Error; err != nil {
			return nil, ErrDatabaseOperation
		}
		return request, nil
	}

	request.ID = existing.ID
	request.CreatedAt = existing.CreatedAt
	if err := r.db.Save(request).Error; err != nil {
		return nil, ErrDatabaseOperation
	}
	return request, nil
}

func (r *kycRepository) GetByUserID(userID uint) (*models.KycRequest, error) {
	var request models.KycRequest
	if err := r.db.Where("user_id = ?", userID).First(&request).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrKycNotFound
		}
		return nil, ErrDatabaseOperation
	}
	return &request, nil
}

func (r *kycRepository) List() ([]*models.KycRequest, error) {
	var requests []*models.KycRequest
	err := r.db.Preload("User").Order("created_at DESC").Find(&requests).Error
	if err != nil {
		return nil, ErrDatabaseOperation
	}
	return requests, nil
}

func (r *kycRepository) Recent(limit int) ([]*models.KycRequest, error) {
	var requests []*models.KycRequest
	err := r.db.Preload("User").Order("created_at DESC").Limit(limit).Find(&requests).Error
	if err != nil {
		return nil, ErrDatabaseOperation
	}
	return requests, nil
}
