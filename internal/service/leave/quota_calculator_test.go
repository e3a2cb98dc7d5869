package leave

import (
	"testing"
	"time"

	"github.com/hrapp/hr-backend-go/internal/domain/application"
	"github.com/stretchr/testify/assert"
)

func approved(typ string, days int) application.Application {
	start := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	return application.Application{
		Type:      typ,
		StartDate: start,
		EndDate:   start.AddDate(0, 0, days-1).Add(9 * time.Hour),
		Status:    application.StatusApproved,
	}
}

func TestQuotaCalculator_CalculateUsage(t *testing.T) {
	c := NewQuotaCalculator(time.UTC)

	pending := approved(application.TypeAnnualLeave, 5)
	pending.Status = application.StatusPending

	usage := c.CalculateUsage([]application.Application{
		approved(application.TypeAnnualLeave, 3),
		approved(application.TypeMorningHalf, 1),
		approved(application.TypeAfternoonHalf, 1),
		approved(application.TypeSickLeave, 2),
		approved(application.TypeFamilyEvent, 1),
		approved(application.TypePublicLeave, 1),
		approved(application.TypeOuting, 1),
		pending,
	})

	assert.Equal(t, Usage{Annual: 4, FamilyEvent: 1, Sick: 2, Public: 1}, usage)
	assert.Equal(t, 11.0, c.RemainingAnnual(15, usage))
}

func TestQuotaCalculator_RemainingCanGoNegative(t *testing.T) {
	c := NewQuotaCalculator(time.UTC)
	usage := c.CalculateUsage([]application.Application{approved(application.TypeAnnualLeave, 3)})

	assert.Equal(t, -1.0, c.RemainingAnnual(2, usage))
}

func TestQuotaCalculator_CountsDaysInBusinessZone(t *testing.T) {
	kst := time.FixedZone("KST", 9*3600)
	start := time.Date(2024, 3, 4, 0, 0, 0, 0, kst)
	app := application.Application{
		Type:      application.TypeAnnualLeave,
		StartDate: start.UTC(),
		EndDate:   start.Add(18 * time.Hour).UTC(),
		Status:    application.StatusApproved,
	}

	usage := NewQuotaCalculator(kst).CalculateUsage([]application.Application{app})
	assert.Equal(t, 1.0, usage.Annual)
}
