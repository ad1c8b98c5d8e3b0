package models

// PriceBreakdown shows how the platform fee lands on a paid ticket. When the
// organizer bears the fee the buyer pays face value; when the buyer bears it
// the fee is added on top at checkout.
type PriceBreakdown struct {
	TicketPrice       float64 `json:"ticketPrice"`
	PlatformFee       float64 `json:"platformFee"`
	BuyerPays         float64 `json:"buyerPays"`
	OrganizerReceives float64 `json:"organizerReceives"`
	FeeBearer         string  `json:"feeBearer"`
}
