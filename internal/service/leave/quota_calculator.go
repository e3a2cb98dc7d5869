package leave

import (
	"time"

	"github.com/hrapp/hr-backend-go/internal/domain/application"
)

// Usage is the number of leave days consumed per leave kind.
type Usage struct {
	Annual      float64
	FamilyEvent float64
	Sick        float64
	Public      float64
}

// QuotaCalculator counts leave days on the calendar of loc.
type QuotaCalculator struct {
	loc *time.Location
}

func NewQuotaCalculator(loc *time.Location) *QuotaCalculator {
	if loc == nil {
		loc = time.Local
	}
	return &QuotaCalculator{loc: loc}
}

// CalculateUsage sums approved applications by kind. Half-day leave
// consumes half an annual day; every other kind counts calendar days.
func (c *QuotaCalculator) CalculateUsage(approved []application.Application) Usage {
	var usage Usage
	for _, app := range approved {
		if app.Status != application.StatusApproved {
			continue
		}
		days := float64(app.Days(c.loc))
		switch app.Type {
		case application.TypeAnnualLeave:
			usage.Annual += days
		case application.TypeMorningHalf, application.TypeAfternoonHalf:
			usage.Annual += 0.5
		case application.TypeSickLeave:
			usage.Sick += days
		case application.TypeFamilyEvent:
			usage.FamilyEvent += days
		case application.TypePublicLeave:
			usage.Public += days
		}
	}
	return usage
}

// RemainingAnnual is the annual allowance left. It goes negative when
// approvals exceed the allowance.
func (c *QuotaCalculator) RemainingAnnual(total float64, usage Usage) float64 {
	return total - usage.Annual
}
