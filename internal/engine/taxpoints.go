package engine

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/flowcast-dev/flowcast/internal/calendar"
	"github.com/flowcast-dev/flowcast/internal/model"
)

// CategoryTaxPoints tags the child tax-credit income series.
const CategoryTaxPoints model.Category = "TAX_POINTS"

// ApplyTaxPoints posts the statutory child tax-credit series for each child:
// a pro-rated one-shot for the birth month (credits accrue from January), a
// flat rate through the rest of the birth year, higher multipliers for ages
// 1-5, a reduced rate for ages 6-17, and a half-point terminal year.
func (e *Engine) ApplyTaxPoints() error {
	half := decimal.NewFromFloat(0.5)

	for _, child := range e.children() {
		birthYear := child.BirthdayActual.Year()
		birthMonth := child.BirthdayActual.Month()

		segments := []struct {
			points decimal.Decimal
			start  time.Time
			end    time.Time
		}{
			// Credits for the months since January land as one payment in
			// the birth month.
			{
				points: decimal.NewFromInt(int64(birthMonth)),
				start:  calendar.Date(birthYear, birthMonth, 1),
				end:    calendar.Date(birthYear, birthMonth, 1),
			},
			{
				points: decimal.NewFromInt(5),
				start:  calendar.Date(birthYear+1, time.January, 1),
				end:    calendar.Date(birthYear+5, time.December, 1),
			},
			{
				points: decimal.NewFromInt(1),
				start:  calendar.Date(birthYear+6, time.January, 1),
				end:    calendar.Date(birthYear+17, time.December, 1),
			},
			{
				points: half,
				start:  calendar.Date(birthYear+18, time.January, 1),
				end:    calendar.Date(birthYear+18, time.December, 1),
			},
		}

		if birthMonth <= time.November {
			segments = append(segments, struct {
				points decimal.Decimal
				start  time.Time
				end    time.Time
			}{
				points: decimal.NewFromInt(3),
				start:  calendar.Date(birthYear, birthMonth+1, 1),
				end:    calendar.Date(birthYear, time.December, 1),
			})
		}

		for _, seg := range segments {
			ev := model.DateEvent{
				Type:             model.EventIncome,
				Category:         CategoryTaxPoints,
				Name:             "tax point " + child.Name,
				Amount:           seg.points.Mul(e.policies.TaxPointValue),
				Start:            seg.start,
				End:              seg.end,
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
