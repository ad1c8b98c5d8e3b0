package fees

import (
	"testing"

	"tixara/internal/models"

	"github.com/stretchr/testify/assert"
)

func paidEvent(price float64, bearer string) *models.Event {
	return &models.Event{
		TicketType:         models.TicketTypePaid,
		TicketPrice:        &price,
		PlatformFeePercent: models.DefaultPlatformFeePercent,
		FeeBearer:          bearer,
	}
}

func TestCalculate(t *testing.T) {
	t.Run("organizer absorbs the fee", func(t *testing.T) {
		b := Calculate(paidEvent(5000, models.FeeBearerOrganizer))

		assert.Equal(t, 400.0, b.PlatformFee)
		assert.Equal(t, 5000.0, b.BuyerPays)
		assert.Equal(t, 4600.0, b.OrganizerReceives)
	})

	t.Run("buyer pays the fee on top", func(t *testing.T) {
		b := Calculate(paidEvent(5000, models.FeeBearerBuyer))

		assert.Equal(t, 400.0, b.PlatformFee)
		assert.Equal(t, 5400.0, b.BuyerPays)
		assert.Equal(t, 5000.0, b.OrganizerReceives)
	})

	t.Run("fee rounds to two decimals", func(t *testing.T) {
		b := Calculate(paidEvent(1234.56, models.FeeBearerOrganizer))

		assert.Equal(t, 98.76, b.PlatformFee)
		assert.Equal(t, 1135.8, b.OrganizerReceives)
	})

	t.Run("free event has a zero breakdown", func(t *testing.T) {
		b := Calculate(&models.Event{TicketType: models.TicketTypeFree})

		assert.Equal(t, 0.0, b.PlatformFee)
		assert.Equal(t, 0.0, b.BuyerPays)
	})
}
