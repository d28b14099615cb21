package engine

import (
	"time"

	"github.com/flowcast-dev/flowcast/internal/calendar"
	"github.com/flowcast-dev/flowcast/internal/model"
	"github.com/flowcast-dev/flowcast/internal/policy"
)

// childcareCategories maps each paid tier to its ledger category.
var childcareCategories = map[policy.ChildcareTier]model.Category{
	policy.TierDaycare:      "DAYCARE",
	policy.TierKindergarten: "KINDERGARTEN",
	policy.TierSchoolAge:    "SCHOOL_AGE",
}

// childcareTier classifies the school year starting at schoolYearStart by the
// child's age at the end of that calendar year. The age-at-year-end rule
// means a child turning 3 in December already counts as kindergarten age for
// the September that precedes the birthday.
func childcareTier(child model.Person, schoolYearStart time.Time) policy.ChildcareTier {
	endOfYear := calendar.Date(schoolYearStart.Year(), time.December, 31)
	age := calendar.YearsBetween(child.BirthdayActual, endOfYear)

	switch {
	case age >= 9:
		return policy.TierNone
	case age >= 6:
		return policy.TierSchoolAge
	case age >= 3:
		return policy.TierKindergarten
	default:
		return policy.TierDaycare
	}
}

// ApplyChildcare emits one recurring monthly tuition expense per contiguous
// childcare-tier span for each child. Tuition starts with the month the
// maternity leave ends in and follows school years (September starts) until
// the child ages out of paid care.
func (e *Engine) ApplyChildcare() error {
	for _, child := range e.children() {
		leaveEnd := leaveEndDate(child.BirthdayActual)

		schoolYear := calendar.NextSchoolYearStart(leaveEnd)
		tier := childcareTier(child, schoolYear)
		spanStart := calendar.Date(leaveEnd.Year(), leaveEnd.Month(), 1)

		for _, want := range []policy.ChildcareTier{policy.TierDaycare, policy.TierKindergarten, policy.TierSchoolAge} {
			span := calendar.Period{Start: spanStart}
			for tier == want {
				// Span runs through the August that closes the school year.
				span.End = calendar.AddMonths(calendar.AddYears(schoolYear, 1), -1)
				schoolYear = calendar.AddYears(schoolYear, 1)
				tier = childcareTier(child, schoolYear)
			}
			spanStart = schoolYear

			if span.End.IsZero() {
				// The child skipped this tier entirely; the degenerate span
				// is a sentinel, not a zero-length interval.
				continue
			}

			ev := model.DateEvent{
				Type:             model.EventExpense,
				Category:         childcareCategories[want],
				Name:             "childcare " + child.Name,
				Amount:           e.policies.ChildcareCost(want),
				Start:            span.Start,
				End:              span.End,
				RecurrenceMonths: 1,
				PersonType:       child.Type,
			}
			if err := e.book.Expand(ev); err != nil {
				return err
			}
		}
	}
	return nil
}
