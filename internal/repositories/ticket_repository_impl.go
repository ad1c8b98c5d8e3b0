package repositories

import (
	"errors"

	"tixara/internal/models"

	"gorm.io/gorm"
)

type ticketRepository struct {
	db *gorm.DB
}

// NewTicketRepository creates a new instance of TicketRepository.
func NewTicketRepository(db *gorm.DB) TicketRepository {
	return &ticketRepository{db: db}
}

func (r *ticketRepository) Create(ticket *models.Ticket) error {
	if err := r.db.Create(ticket).Error; err != nil {
		return ErrDatabaseOperation
	}
	return nil
}

func (r *ticketRepository) GetByCode(code string) (*models.Ticket, error) {
	var ticket models.Ticket
	err := r.db.Preload("Event").Where("ticket_code = ?", code).First(&ticket).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, ErrDatabaseOperation
	}
	return &ticket, nil
}

func (r *ticketRepository) GetPendingByReference(reference string) (*models.Ticket, error) {
	var ticket models.Ticket
	err := r.db.Where("payment_reference = ? AND status = ?", reference, models.TicketStatusPending).
		First(&ticket).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, ErrDatabaseOperation
	}
	return &ticket, nil
}

func (r *ticketRepository) UpdateStatus(ticketID uint, status string) error {
	result := r.db.Model(&models.Ticket{}).Where("id = ?", ticketID).Update("status", status)
	if result.Error != nil {
		return ErrDatabaseOperation
	}
	if result.RowsAffected == 0 {
		return ErrTicketNotFound
	}
	return nil
}

func (r *ticketRepository) ListByUser(userID uint) ([]*models.Ticket, error) {
	var tickets []*models.Ticket
	err := r.db.Preload("Event").Where("user_id = ?", userID).
		Order("purchase_date DESC").Find(&tickets).Error
	if err != nil {
		return nil, ErrDatabaseOperation
	}
	return tickets, nil
}
