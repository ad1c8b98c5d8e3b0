package repositories

import (
	"path/filepath"
	"sync"
	"testing"
	"time"

	"tixara/internal/models"
	"tixara/internal/repositories/cache"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// openTestDB gives each test a fresh sqlite database with the full schema.
// A single connection keeps the file driver serialized.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Event{},
		&models.Ticket{},
		&models.KycRequest{},
	))
	return db
}

// unreachableCache points at a closed port. The repositories treat every
// cache failure as a miss and fall through to the database, so tests hit
// real rows.
func unreachableCache() *cache.CacheService {
	client := cache.NewRedisClient(&cache.RedisConfig{Host: "127.0.0.1", Port: "1"})
	return cache.NewCacheService(client, time.Minute)
}

func seedOrganizer(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	organizer := &models.User{
		FirstName:   "Bisi",
		LastName:    "Ade",
		Email:       "bisi@example.com",
		Password:    "hash",
		AccountType: models.AccountTypeOrganizer,
	}
	require.NoError(t, db.Create(organizer).Error)
	return organizer
}

func seedEvent(t *testing.T, db *gorm.DB, organizerID uint, capacity int) *models.Event {
	t.Helper()
	event := &models.Event{
		Slug:         "lagos-tech-meetup",
		OrganizerID:  organizerID,
		Title:        "Lagos Tech Meetup",
		Description:  "Monthly meetup",
		Category:     "tech",
		EventDate:    time.Now().Add(48 * time.Hour),
		EventType:    models.EventTypeVirtual,
		TicketType:   models.TicketTypeFree,
		TotalTickets: capacity,
	}
	require.NoError(t, db.Create(event).Error)
	return event
}

func TestReserveTicketStopsAtCapacity(t *testing.T) {
	db := openTestDB(t)
	organizer := seedOrganizer(t, db)
	event := seedEvent(t, db, organizer.ID, 2)
	repo := NewEventRepository(db, unreachableCache())

	assert.NoError(t, repo.ReserveTicket(event))
	assert.NoError(t, repo.ReserveTicket(event))
	assert.ErrorIs(t, repo.ReserveTicket(event), ErrSoldOut)

	var stored models.Event
	require.NoError(t, db.First(&stored, event.ID).Error)
	assert.Equal(t, 2, stored.TicketsSold)
}

func TestReserveTicketConcurrentBuyers(t *testing.T) {
	db := openTestDB(t)
	organizer := seedOrganizer(t, db)
	event := seedEvent(t, db, organizer.ID, 3)
	repo := NewEventRepository(db, unreachableCache())

	const buyers = 8
	results := make(chan error, buyers)
	var wg sync.WaitGroup
	for i := 0; i < buyers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- repo.ReserveTicket(event)
		}()
	}
	wg.Wait()
	close(results)

	successes, soldOut := 0, 0
	for err := range results {
		switch {
		case err == nil:
			successes++
		default:
			assert.ErrorIs(t, err, ErrSoldOut)
			soldOut++
		}
	}

	assert.Equal(t, 3, successes)
	assert.Equal(t, buyers-3, soldOut)

	var stored models.Event
	require.NoError(t, db.First(&stored, event.ID).Error)
	assert.Equal(t, 3, stored.TicketsSold)
}

func TestReleaseTicketReturnsCapacity(t *testing.T) {
	db := openTestDB(t)
	organizer := seedOrganizer(t, db)
	event := seedEvent(t, db, organizer.ID, 1)
	repo := NewEventRepository(db, unreachableCache())

	require.NoError(t, repo.ReserveTicket(event))
	assert.ErrorIs(t, repo.ReserveTicket(event), ErrSoldOut)

	require.NoError(t, repo.ReleaseTicket(event))
	assert.NoError(t, repo.ReserveTicket(event))

	// Releasing at zero must not go negative.
	require.NoError(t, repo.ReleaseTicket(event))
	require.NoError(t, repo.ReleaseTicket(event))
	var stored models.Event
	require.NoError(t, db.First(&stored, event.ID).Error)
	assert.Equal(t, 0, stored.TicketsSold)
}

func TestGetPendingByReferenceIsExact(t *testing.T) {
	db := openTestDB(t)
	organizer := seedOrganizer(t, db)
	event := seedEvent(t, db, organizer.ID, 10)
	repo := NewTicketRepository(db)

	pending := &models.Ticket{
		EventID:          event.ID,
		UserID:           organizer.ID,
		TicketCode:       "TKT-1-AAAA1111",
		PaymentReference: "TXN_100_abc1234",
		Status:           models.TicketStatusPending,
		PurchaseDate:     time.Now(),
	}
	confirmed := &models.Ticket{
		EventID:          event.ID,
		UserID:           organizer.ID,
		TicketCode:       "TKT-2-BBBB2222",
		PaymentReference: "TXN_200_def5678",
		Status:           models.TicketStatusConfirmed,
		PurchaseDate:     time.Now(),
	}
	require.NoError(t, db.Create(pending).Error)
	require.NoError(t, db.Create(confirmed).Error)

	found, err := repo.GetPendingByReference("TXN_100_abc1234")
	assert.NoError(t, err)
	assert.Equal(t, pending.ID, found.ID)

	// Prefixes and already-confirmed references must not match.
	_, err = repo.GetPendingByReference("TXN_100")
	assert.ErrorIs(t, err, ErrTicketNotFound)
	_, err = repo.GetPendingByReference("TXN_200_def5678")
	assert.ErrorIs(t, err, ErrTicketNotFound)
}
