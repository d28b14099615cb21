// Package ledger holds the monthly aggregation buckets a projection run
// posts into, and the expansion algorithm that turns declarative events into
// per-month postings.
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/flowcast-dev/flowcast/internal/model"
)

// Month is one aggregation bucket. Events keeps posting order; the two sum
// maps are maintained in lockstep with it: every mutation path updates the
// event list and both maps together, so they never observably disagree.
type Month struct {
	Events        []model.MonthEvent
	SumByType     map[model.EventType]decimal.Decimal
	SumByCategory map[model.Category]decimal.Decimal
}

// NewMonth returns an empty bucket with both event-type sums at zero.
func NewMonth() *Month {
	sums := make(map[model.EventType]decimal.Decimal)
	for _, t := range model.EventTypes() {
		sums[t] = decimal.Zero
	}
	return &Month{
		SumByType:     sums,
		SumByCategory: make(map[model.Category]decimal.Decimal),
	}
}

// Post appends an event to the bucket and updates both aggregate maps.
func (m *Month) Post(ev model.MonthEvent) {
	m.Events = append(m.Events, ev)
	m.SumByType[ev.Type] = m.SumByType[ev.Type].Add(ev.Amount)
	m.SumByCategory[ev.Category] = m.SumByCategory[ev.Category].Add(ev.Amount)
}

// salaryIndex returns the index of the first salary event for the person
// type, or -1. When a bucket holds several salary events for the same person
// type only the first is ever found; a known limitation inherited from the
// correction-pass design.
func (m *Month) salaryIndex(pt model.PersonType) int {
	for i, ev := range m.Events {
		if ev.Category == model.CategorySalary && ev.PersonType == pt {
			return i
		}
	}
	return -1
}

// SalaryFor returns the amount of the first salary event posted for the
// person type, or zero when the bucket has none.
func (m *Month) SalaryFor(pt model.PersonType) decimal.Decimal {
	i := m.salaryIndex(pt)
	if i < 0 {
		return decimal.Zero
	}
	return m.Events[i].Amount
}

// AdjustSalary rewrites the first salary event for the person type to
// multiplier times its current amount, rounded down to the nearest multiple
// of roundFactor, and moves the income and salary-category aggregates by the
// delta. A bucket without a matching salary event is left untouched.
func (m *Month) AdjustSalary(pt model.PersonType, multiplier decimal.Decimal, roundFactor int64) {
	i := m.salaryIndex(pt)
	if i < 0 {
		return
	}

	old := m.Events[i].Amount
	adjusted := RoundDownToMultiple(multiplier.Mul(old), roundFactor)
	delta := adjusted.Sub(old)

	m.Events[i].Amount = adjusted
	m.SumByType[model.EventIncome] = m.SumByType[model.EventIncome].Add(delta)
	m.SumByCategory[model.CategorySalary] = m.SumByCategory[model.CategorySalary].Add(delta)
}

// RoundDownToMultiple floors d to the nearest multiple of factor.
func RoundDownToMultiple(d decimal.Decimal, factor int64) decimal.Decimal {
	f := decimal.NewFromInt(factor)
	return d.Div(f).Floor().Mul(f)
}
