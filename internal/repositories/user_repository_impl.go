package repositories

import (
	"context"
	"errors"
	"log"

	"tixara/internal/models"
	"tixara/internal/repositories/cache"

	"gorm.io/gorm"
)

type userRepository struct {
	db    *gorm.DB
	cache *cache.CacheService
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(db *gorm.DB, cache *cache.CacheService) UserRepository {
	return &userRepository{db: db, cache: cache}
}

func (r *userRepository) Create(user *models.User) error {
	var count int64
	if err := r.db.Model(&models.User{}).Where("email = ?", user.Email).Count(&count).Error; err != nil {
		return ErrDatabaseOperation
	}
	if count > 0 {
		return ErrEmailTaken
	}
	if err := r.db.Create(user).Error; err != nil {
		return ErrDatabaseOperation
	}
	return nil
}

func (r *userRepository) GetByID(id uint) (*models.User, error) {
	key := r.cache.GenerateKey("user", "id", id)
	if user, err := r.cache.GetUser(context.Background(), key); err == nil {
		return user, nil
	}

	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, ErrDatabaseOperation
	}

	if err := r.cache.CacheUser(context.Background(), &user); err != nil {
		log.Printf("failed to cache user %d: %v", user.ID, err)
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, ErrDatabaseOperation
	}
	return &user, nil
}

func (r *userRepository) Update(user *models.User) error {
	if err := r.db.Save(user).Error; err != nil {
		return ErrDatabaseOperation
	}
	r.invalidate(user)
	return nil
}

func (r *userRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var eventCount int64
		if err := tx.Model(&models.Event{}).Where("organizer_id = ?", id).Count(&eventCount).Error; err != nil {
			return ErrDatabaseOperation
		}
		if eventCount > 0 {
			return ErrUserHasEvents
		}

		if err := tx.Where("user_id = ?", id).Delete(&models.KycRequest{}).Error; err != nil {
			return ErrDatabaseOperation
		}

		result := tx.Delete(&models.User{}, id)
		if result.Error != nil {
			return ErrDatabaseOperation
		}
		if result.RowsAffected == 0 {
			return ErrUserNotFound
		}

		if err := r.cache.InvalidateUser(context.Background(), id); err != nil {
			log.Printf("failed to invalidate user cache %d: %v", id, err)
		}
		return nil
	})
}

func (r *userRepository) List(filter string, offset, limit int) ([]*models.User, int64, error) {
	query := r.db.Model(&models.User{})
	switch filter {
	case models.AccountTypeOrganizer, models.AccountTypeAttendee:
		query = query.Where("account_type = ?", filter)
	case "admin":
		query = query.Where("is_admin = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, ErrDatabaseOperation
	}

	var users []*models.User
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		return nil, 0, ErrDatabaseOperation
	}
	return users, total, nil
}

func (r *userRepository) ListAdmins() ([]*models.User, error) {
	var admins []*models.User
	if err := r.db.Where("is_admin = ?", true).Order("created_at DESC").Find(&admins).Error; err != nil {
		return nil, ErrDatabaseOperation
	}
	return admins, nil
}

// SetAdmin keeps the count check and the update inside one transaction so two
// concurrent revocations cannot both observe an admin count of two.
func (r *userRepository) SetAdmin(userID uint, isAdmin bool) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if !isAdmin {
			var adminCount int64
			if err := tx.Model(&models.User{}).Where("is_admin = ?", true).Count(&adminCount).Error; err != nil {
				return ErrDatabaseOperation
			}
			if adminCount <= 1 {
				return ErrLastAdmin
			}
		}

		result := tx.Model(&models.User{}).Where("id = ?", userID).Update("is_admin", isAdmin)
		if result.Error != nil {
			return ErrDatabaseOperation
		}
		if result.RowsAffected == 0 {
			return ErrUserNotFound
		}

		if err := r.cache.InvalidateUser(context.Background(), userID); err != nil {
			log.Printf("failed to invalidate user cache %d: %v", userID, err)
		}
		return nil
	})
}

func (r *userRepository) IncrementTokenVersion(userID uint) error {
	if err := r.db.Model(&models.User{}).Where("id = ?", userID).
		UpdateColumn("token_version", gorm.Expr("token_version + 1")).Error; err != nil {
		return ErrDatabaseOperation
	}
	if err := r.cache.InvalidateUser(context.Background(), userID); err != nil {
		log.Printf("failed to invalidate user cache %d: %v", userID, err)
	}
	return nil
}

func (r *userRepository) Recent(limit int) ([]*models.User, error) {
	var users []*models.User
	if err := r.db.Order("created_at DESC").Limit(limit).Find(&users).Error; err != nil {
		return nil, ErrDatabaseOperation
	}
	return users, nil
}

func (r *userRepository) invalidate(user *models.User) {
	if err := r.cache.InvalidateUser(context.Background(), user.ID); err != nil {
		log.Printf("failed to invalidate user cache %d: %v", user.ID, err)
	}
}
