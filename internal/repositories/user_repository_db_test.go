package repositories

import (
	"sync"
	"testing"

	"tixara/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedUser(t *testing.T, db *gorm.DB, email string, isAdmin bool) *models.User {
	t.Helper()
	user := &models.User{
		FirstName:   "Test",
		LastName:    "User",
		Email:       email,
		Password:    "hash",
		AccountType: models.AccountTypeOrganizer,
		IsAdmin:     isAdmin,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestSetAdminRefusesRevokingSoleAdmin(t *testing.T) {
	db := openTestDB(t)
	admin := seedUser(t, db, "admin@example.com", true)
	seedUser(t, db, "regular@example.com", false)
	repo := NewUserRepository(db, unreachableCache())

	err := repo.SetAdmin(admin.ID, false)
	assert.ErrorIs(t, err, ErrLastAdmin)

	var stored models.User
	require.NoError(t, db.First(&stored, admin.ID).Error)
	assert.True(t, stored.IsAdmin)
}

func TestSetAdminRevokesWhenAnotherAdminRemains(t *testing.T) {
	db := openTestDB(t)
	first := seedUser(t, db, "first@example.com", true)
	seedUser(t, db, "second@example.com", true)
	repo := NewUserRepository(db, unreachableCache())

	assert.NoError(t, repo.SetAdmin(first.ID, false))

	var stored models.User
	require.NoError(t, db.First(&stored, first.ID).Error)
	assert.False(t, stored.IsAdmin)
}

func TestSetAdminConcurrentRevocationsKeepOneAdmin(t *testing.T) {
	db := openTestDB(t)
	first := seedUser(t, db, "first@example.com", true)
	second := seedUser(t, db, "second@example.com", true)
	repo := NewUserRepository(db, unreachableCache())

	results := make(chan error, 2)
	var wg sync.WaitGroup
	for _, id := range []uint{first.ID, second.ID} {
		wg.Add(1)
		go func(userID uint) {
			defer wg.Done()
			results <- repo.SetAdmin(userID, false)
		}(id)
	}
	wg.Wait()
	close(results)

	successes := 0
	for err := range results {
		if err == nil {
			successes++
		} else {
			assert.ErrorIs(t, err, ErrLastAdmin)
		}
	}
	assert.Equal(t, 1, successes)

	var adminCount int64
	require.NoError(t, db.Model(&models.User{}).Where("is_admin = ?", true).Count(&adminCount).Error)
	assert.Equal(t, int64(1), adminCount)
}

func TestCreateRejectsDuplicateEmail(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db, unreachableCache())
	seedUser(t, db, "taken@example.com", false)

	err := repo.Create(&models.User{
		FirstName:   "Second",
		LastName:    "User",
		Email:       "taken@example.com",
		Password:    "hash",
		AccountType: models.AccountTypeAttendee,
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestDeleteBlockedWhileUserHasEvents(t *testing.T) {
	db := openTestDB(t)
	organizer := seedUser(t, db, "organizer@example.com", false)
	seedEvent(t, db, organizer.ID, 10)
	repo := NewUserRepository(db, unreachableCache())

	err := repo.Delete(organizer.ID)
	assert.ErrorIs(t, err, ErrUserHasEvents)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", organizer.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestDeleteRemovesKycRequestWithUser(t *testing.T) {
	db := openTestDB(t)
	user := seedUser(t, db, "applicant@example.com", false)
	require.NoError(t, db.Create(&models.KycRequest{
		UserID:  user.ID,
		KycType: models.KycTypePersonal,
	}).Error)
	repo := NewUserRepository(db, unreachableCache())

	assert.NoError(t, repo.Delete(user.ID))

	var kycCount int64
	require.NoError(t, db.Model(&models.KycRequest{}).Where("user_id = ?", user.ID).Count(&kycCount).Error)
	assert.Equal(t, int64(0), kycCount)
}
