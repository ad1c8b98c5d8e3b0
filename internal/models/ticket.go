package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	TicketStatusPending   = "pending"
	TicketStatusConfirmed = "confirmed"
)

type Ticket struct {
	gorm.Model
	EventID          uint      `gorm:"not null;index" json:"eventId"`
	Event            *Event    `gorm:"foreignKey:EventID" json:"-"`
	UserID           uint      `gorm:"not null;index" json:"userId"`
	User             *User     `gorm:"foreignKey:UserID" json:"-"`
	TicketCode       string    `gorm:"uniqueIndex;not null" json:"ticketCode"`
	PaymentReference string    `gorm:"uniqueIndex;not null" json:"paymentReference"`
	AmountPaid       float64   `gorm:"default:0" json:"amountPaid"`
	Status           string    `gorm:"default:'pending'" json:"status"`
	PurchaseDate     time.Time `json:"purchaseDate"`
}

// TicketEventSummary is the event projection embedded in purchase responses.
type TicketEventSummary struct {
	Title     string    `json:"title"`
	EventDate time.Time `json:"eventDate"`
	StartTime time.Time `json:"startTime"`
	Venue     *string   `json:"venue,omitempty"`
	Location  *string   `json:"location,omitempty"`
}

// TicketUserSummary is the buyer projection embedded in purchase responses.
type TicketUserSummary struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// PurchasedTicket is returned from the purchase endpoint with enough embedded
// context to render a confirmation without further lookups.
type PurchasedTicket struct {
	ID         uint                `json:"id"`
	TicketCode string              `json:"ticketCode"`
	Status     string              `json:"status"`
	AmountPaid float64             `json:"amountPaid"`
	Event      *TicketEventSummary `json:"event,omitempty"`
	User       *TicketUserSummary  `json:"user,omitempty"`
}
