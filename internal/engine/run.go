package engine

import "github.com/flowcast-dev/flowcast/internal/model"

// Inputs is everything a projection run consumes, already loaded and
// validated by the loader boundary.
type Inputs struct {
	DateEvents    []model.DateEvent
	FixedPayments []model.DateEvent
	Persons       []model.Person
	// AgeEvents holds the age-relative templates per person type; every
	// person expands the table matching their type.
	AgeEvents map[model.PersonType][]model.AgeEvent
}

// Run executes one full projection: absolute events, fixed payments, then
// per-person age events, and finally the birth correction passes. The
// maternity pass has to run after every salary event is posted and before
// anything reads salary history, which is why the order is fixed here.
func (e *Engine) Run(in Inputs) error {
	for _, ev := range in.DateEvents {
		if err := e.Expand(ev); err != nil {
			return err
		}
	}
	for _, ev := range in.FixedPayments {
		if err := e.Expand(ev); err != nil {
			return err
		}
	}

	for _, p := range in.Persons {
		e.AddPerson(p)
		for _, ae := range in.AgeEvents[p.Type] {
			if err := e.ExpandAge(ae, p); err != nil {
				return err
			}
		}
	}

	return e.ApplyBirthCorrections()
}
