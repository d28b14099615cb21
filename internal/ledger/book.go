package ledger

import (
	"fmt"
	"sort"
	"time"

	"github.com/flowcast-dev/flowcast/internal/calendar"
	"github.com/flowcast-dev/flowcast/internal/model"
)

// Book is the full set of monthly buckets for one run, bounded by the project
// horizon. It has a single writer (the orchestrator); buckets grow during
// expansion and are later mutated in place by correction passes, never
// removed.
type Book struct {
	months     map[time.Time]*Month
	categories *model.CategorySet
	horizon    calendar.Period
}

// NewBook returns an empty book over the given project horizon.
func NewBook(horizon calendar.Period) *Book {
	return &Book{
		months:     make(map[time.Time]*Month),
		categories: model.NewCategorySet(),
		horizon:    horizon,
	}
}

// Horizon returns the project period the book is bounded by.
func (b *Book) Horizon() calendar.Period {
	return b.horizon
}

// Categories returns the registry of categories seen during expansion.
func (b *Book) Categories() *model.CategorySet {
	return b.categories
}

// Expand posts one MonthEvent snapshot into every bucket the event's
// recurrence touches inside the horizon, creating buckets as needed. The
// cursor is used as the bucket key without re-alignment; callers pass
// month-start-aligned dates for genuinely monthly recurrence.
//
// Expanding the same event twice double-posts. The orchestrator calls Expand
// exactly once per definition.
func (b *Book) Expand(ev model.DateEvent) error {
	if ev.RecurrenceMonths < 1 {
		// Validated at load time; re-checked here so a bad caller fails
		// instead of looping forever.
		return fmt.Errorf("event %q: recurrence must be at least 1 month, got %d", ev.Name, ev.RecurrenceMonths)
	}

	if ev.End.Before(b.horizon.Start) || ev.Start.After(b.horizon.End) {
		return nil
	}

	b.categories.Add(ev.Type, ev.Category)

	for cursor := ev.Start; !cursor.After(ev.End); cursor = calendar.AddMonths(cursor, ev.RecurrenceMonths) {
		if !b.horizon.Inside(cursor) {
			continue
		}
		m := b.months[cursor]
		if m == nil {
			m = NewMonth()
			b.months[cursor] = m
		}
		m.Post(ev.Snapshot())
	}
	return nil
}

// Month returns the bucket at the given key, or nil when no event ever
// posted there.
func (b *Book) Month(key time.Time) *Month {
	return b.months[key]
}

// SortedKeys returns all bucket keys in chronological order.
func (b *Book) SortedKeys() []time.Time {
	keys := make([]time.Time, 0, len(b.months))
	for k := range b.months {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Before(keys[j]) })
	return keys
}

// Len returns the number of populated buckets.
func (b *Book) Len() int {
	return len(b.months)
}
