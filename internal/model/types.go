package model

// EventType classifies a financial event as money in or money out.
type EventType string

const (
	EventIncome  EventType = "income"
	EventExpense EventType = "expense"
)

// EventTypes returns all event types in report order (incomes first).
func EventTypes() []EventType {
	return []EventType{EventIncome, EventExpense}
}

// Valid reports whether t is a known event type.
func (t EventType) Valid() bool {
	return t == EventIncome || t == EventExpense
}

// PersonType discriminates household members. A Person is a flat record
// regardless of type; the type only selects which age-event table applies and
// which salary events the maternity pass touches.
type PersonType string

const (
	PersonDad   PersonType = "dad"
	PersonMom   PersonType = "mom"
	PersonChild PersonType = "child"
)

// Valid reports whether t is a known person type.
func (t PersonType) Valid() bool {
	return t == PersonDad || t == PersonMom || t == PersonChild
}

// Category is an open tag scoped per EventType, e.g. "salary" or "housing".
type Category string

// CategorySalary is the category the maternity correction pass rewrites.
const CategorySalary Category = "salary"

// CategorySet records every category seen during expansion, preserving
// first-seen order per event type. The report builds its columns from it.
type CategorySet struct {
	order map[EventType][]Category
	seen  map[EventType]map[Category]bool
}

// NewCategorySet returns an empty registry.
func NewCategorySet() *CategorySet {
	return &CategorySet{
		order: make(map[EventType][]Category),
		seen:  make(map[EventType]map[Category]bool),
	}
}

// Add registers a category under an event type. Duplicates keep their
// original position.
func (s *CategorySet) Add(t EventType, c Category) {
	if s.seen[t] == nil {
		s.seen[t] = make(map[Category]bool)
	}
	if s.seen[t][c] {
		return
	}
	s.seen[t][c] = true
	s.order[t] = append(s.order[t], c)
}

// ForType returns the categories seen for an event type, in first-seen order.
func (s *CategorySet) ForType(t EventType) []Category {
	return s.order[t]
}
