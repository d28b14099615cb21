package model

import (
	"time"

	"github.com/flowcast-dev/flowcast/internal/calendar"
)

// Person is a household member. BirthdayBilling is the first-of-month date on
// or after the actual birthday; age-relative events align to it so that
// postings land on monthly bucket keys.
type Person struct {
	Name            string
	Type            PersonType
	BirthdayActual  time.Time
	BirthdayBilling time.Time
}

// NewPerson builds a Person, deriving the billing anchor from the actual
// birthday.
func NewPerson(name string, t PersonType, birthday time.Time) Person {
	return Person{
		Name:            name,
		Type:            t,
		BirthdayActual:  birthday,
		BirthdayBilling: calendar.NextFirstOfMonth(birthday),
	}
}

// Validate checks the person record for load-boundary errors.
func (p Person) Validate() error {
	if !p.Type.Valid() {
		return ValidationError{Record: p.Name, Reason: "unknown person type " + string(p.Type)}
	}
	if p.Name == "" {
		return ValidationError{Record: "(person)", Reason: "name is empty"}
	}
	if p.BirthdayActual.IsZero() {
		return ValidationError{Record: p.Name, Reason: "birthday is missing"}
	}
	return nil
}
