package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/flowcast-dev/flowcast/internal/calendar"
)

// ValidationError describes a malformed or semantically invalid record. It is
// fatal: the run aborts rather than producing a partial ledger.
type ValidationError struct {
	Record string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid record %q: %s", e.Record, e.Reason)
}

// DateEvent is a declarative posting rule: a recurring or one-shot financial
// event anchored to absolute dates. It is consumed exactly once by ledger
// expansion; after that only the MonthEvent snapshots it produced survive.
type DateEvent struct {
	Type             EventType
	Category         Category
	Name             string
	Amount           decimal.Decimal
	Start            time.Time
	End              time.Time
	RecurrenceMonths int
	PersonType       PersonType // empty for household-level events
}

// Validate checks the event for load-boundary errors, including the
// zero-recurrence case that would otherwise hang expansion.
func (e DateEvent) Validate() error {
	if !e.Type.Valid() {
		return ValidationError{Record: e.Name, Reason: "unknown event type " + string(e.Type)}
	}
	if e.Name == "" {
		return ValidationError{Record: "(event)", Reason: "name is empty"}
	}
	if e.Amount.IsNegative() {
		return ValidationError{Record: e.Name, Reason: "amount is negative"}
	}
	if e.RecurrenceMonths < 1 {
		return ValidationError{Record: e.Name, Reason: fmt.Sprintf("recurrence must be at least 1 month, got %d", e.RecurrenceMonths)}
	}
	return nil
}

// Snapshot copies the posting-relevant fields into an immutable MonthEvent.
func (e DateEvent) Snapshot() MonthEvent {
	return MonthEvent{
		Type:       e.Type,
		Category:   e.Category,
		Name:       e.Name,
		Amount:     e.Amount,
		PersonType: e.PersonType,
	}
}

// AgeEvent is a posting template relative to a person's age, e.g. "monthly
// from age 0 until age 18". MonthStart 0 means "start in the person's billing
// month". It is never posted directly; DateEventFromAge resolves it first.
type AgeEvent struct {
	Type             EventType
	Category         Category
	Name             string
	Amount           decimal.Decimal
	FromAge          int
	UntilAge         int
	RecurrenceMonths int
	MonthStart       time.Month // 0 = use the person's billing month
}

// Validate checks the template for load-boundary errors.
func (e AgeEvent) Validate() error {
	if !e.Type.Valid() {
		return ValidationError{Record: e.Name, Reason: "unknown event type " + string(e.Type)}
	}
	if e.Name == "" {
		return ValidationError{Record: "(age event)", Reason: "name is empty"}
	}
	if e.Amount.IsNegative() {
		return ValidationError{Record: e.Name, Reason: "amount is negative"}
	}
	if e.RecurrenceMonths < 1 {
		return ValidationError{Record: e.Name, Reason: fmt.Sprintf("recurrence must be at least 1 month, got %d", e.RecurrenceMonths)}
	}
	if e.MonthStart < 0 || e.MonthStart > 12 {
		return ValidationError{Record: e.Name, Reason: fmt.Sprintf("month start %d out of range", e.MonthStart)}
	}
	if e.UntilAge < e.FromAge {
		return ValidationError{Record: e.Name, Reason: "until-age precedes from-age"}
	}
	return nil
}

// DateEventFromAge anchors an age-relative template to a person's billing
// birthday, producing an absolute-dated event ready for expansion.
func DateEventFromAge(ae AgeEvent, p Person) DateEvent {
	monthStart := ae.MonthStart
	if monthStart == 0 {
		monthStart = p.BirthdayBilling.Month()
	}

	start := p.BirthdayBilling
	for start.Month() != monthStart {
		start = calendar.AddMonths(start, 1)
	}
	start = calendar.AddYears(start, ae.FromAge)

	end := calendar.AddMonths(calendar.AddYears(p.BirthdayBilling, ae.UntilAge), -1)

	return DateEvent{
		Type:             ae.Type,
		Category:         ae.Category,
		Name:             p.Name + ": " + ae.Name,
		Amount:           ae.Amount,
		Start:            start,
		End:              end,
		RecurrenceMonths: ae.RecurrenceMonths,
		PersonType:       p.Type,
	}
}

// MonthEvent is one concrete posting materialized into a specific month. It
// is a snapshot decoupled from the originating DateEvent so that later
// aggregate corrections only need the copy inside the bucket.
type MonthEvent struct {
	Type       EventType
	Category   Category
	Name       string
	Amount     decimal.Decimal
	PersonType PersonType
}
