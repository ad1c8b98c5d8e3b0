package validation

const (
	// Password requirements
	MinPasswordLength = 8
	MaxPasswordLength = 72

	// String lengths
	MaxTitleLength       = 150
	MaxDescriptionLength = 5000
	MaxCategoryLength    = 50

	// Ticketing limits
	MinTotalTickets = 1
	MaxTotalTickets = 1000000
)
