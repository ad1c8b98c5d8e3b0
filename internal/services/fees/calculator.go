// Package fees computes the platform's cut on paid tickets.
package fees

import (
	"math"

	"tixara/internal/models"
)

// Calculate returns the fee breakdown for one ticket of the given event.
// Free events have a zero breakdown.
func Calculate(event *models.Event) models.PriceBreakdown {
	breakdown := models.PriceBreakdown{FeeBearer: event.FeeBearer}
	if event.TicketType != models.TicketTypePaid || event.TicketPrice == nil {
		return breakdown
	}

	price := *event.TicketPrice
	fee := round2(price * event.PlatformFeePercent / 100)

	breakdown.TicketPrice = price
	breakdown.PlatformFee = fee
	if event.FeeBearer == models.FeeBearerBuyer {
		breakdown.BuyerPays = round2(price + fee)
		breakdown.OrganizerReceives = price
	} else {
		breakdown.BuyerPays = price
		breakdown.OrganizerReceives = round2(price - fee)
	}
	return breakdown
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
