package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	EventTypePhysical = "physical"
	EventTypeVirtual  = "virtual"

	TicketTypeFree = "free"
	TicketTypePaid = "paid"

	FeeBearerOrganizer = "organizer"
	FeeBearerBuyer     = "buyer"
)

// DefaultPlatformFeePercent is the platform cut applied to paid events.
const DefaultPlatformFeePercent = 8.0

type Event struct {
	gorm.Model
	Slug               string    `gorm:"uniqueIndex;not null" json:"slug"`
	OrganizerID        uint      `gorm:"not null;index" json:"organizerId"`
	Organizer          *User     `gorm:"foreignKey:OrganizerID" json:"-"`
	Title              string    `gorm:"not null" json:"title"`
	Description        string    `gorm:"not null" json:"description"`
	Category           string    `gorm:"not null" json:"category"`
	EventDate          time.Time `gorm:"not null;index" json:"eventDate"`
	StartTime          time.Time `json:"startTime"`
	EndTime            time.Time `json:"endTime"`
	EventType          string    `gorm:"not null" json:"eventType"`
	Venue              *string   `json:"venue,omitempty"`
	Location           *string   `json:"location,omitempty"`
	TicketType         string    `gorm:"default:'free'" json:"ticketType"`
	TicketPrice        *float64  `json:"ticketPrice,omitempty"`
	TotalTickets       int       `gorm:"not null" json:"totalTickets"`
	TicketsSold        int       `gorm:"default:0" json:"ticketsSold"`
	PlatformFeePercent float64   `gorm:"default:8" json:"platformFeePercent"`
	FeeBearer          string    `gorm:"default:'organizer'" json:"feeBearer"`
	ImageURL           string    `json:"imageUrl,omitempty"`
	BannerURL          string    `json:"bannerUrl,omitempty"`
	Tickets            []Ticket  `gorm:"foreignKey:EventID" json:"-"`
}

// OrganizerSummary is the organizer projection embedded in event detail
// responses. The split code is included so paid checkouts can route revenue.
type OrganizerSummary struct {
	ID                uint    `json:"id"`
	Name              string  `json:"name"`
	Email             string  `json:"email"`
	PaystackSplitCode *string `json:"paystackSplitCode,omitempty"`
}

// EventDetail is an Event enriched with availability derived from its
// confirmed tickets.
type EventDetail struct {
	Event
	TicketsSold      int               `json:"ticketsSold"`
	TicketsAvailable int               `json:"ticketsAvailable"`
	OrganizerInfo    *OrganizerSummary `json:"organizer,omitempty"`
	Pricing          *PriceBreakdown   `json:"pricing,omitempty"`
}
