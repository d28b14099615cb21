// Package engine orchestrates a projection run: it expands declarative
// events into the ledger, derives per-person events from age templates, and
// applies the birth-related correction passes and generators in their
// required order.
package engine

import (
	"sort"

	"github.com/flowcast-dev/flowcast/internal/calendar"
	"github.com/flowcast-dev/flowcast/internal/ledger"
	"github.com/flowcast-dev/flowcast/internal/model"
	"github.com/flowcast-dev/flowcast/internal/policy"
)

// Engine owns the run-scoped state: the ledger book, the person registry, and
// the policy table. All of it is explicit fields; nothing is package-global.
type Engine struct {
	book     *ledger.Book
	persons  []model.Person
	policies policy.Table
}

// New returns an engine over an empty book bounded by the project horizon.
func New(horizon calendar.Period, policies policy.Table) *Engine {
	return &Engine{
		book:     ledger.NewBook(horizon),
		policies: policies,
	}
}

// Book exposes the ledger for report generation.
func (e *Engine) Book() *ledger.Book {
	return e.book
}

// AddPerson registers a household member.
func (e *Engine) AddPerson(p model.Person) {
	e.persons = append(e.persons, p)
}

// Persons returns the registered household members.
func (e *Engine) Persons() []model.Person {
	return e.persons
}

// Expand posts an event definition into the book.
func (e *Engine) Expand(ev model.DateEvent) error {
	return e.book.Expand(ev)
}

// ExpandAge anchors an age-relative template to a person and expands it.
func (e *Engine) ExpandAge(ae model.AgeEvent, p model.Person) error {
	return e.book.Expand(model.DateEventFromAge(ae, p))
}

// ApplyBirthCorrections runs the per-child passes in their required order:
// maternity-leave salary reduction (which must see all salary postings and
// must precede the maternity-pay average), then the childcare tuition and
// tax-point generators.
func (e *Engine) ApplyBirthCorrections() error {
	if err := e.ApplyMaternity(); err != nil {
		return err
	}
	if err := e.ApplyChildcare(); err != nil {
		return err
	}
	return e.ApplyTaxPoints()
}

// children returns the registered children ordered by actual birthday,
// oldest first. Birth order over this slice is 1-based and spans all
// children of the run.
func (e *Engine) children() []model.Person {
	var kids []model.Person
	for _, p := range e.persons {
		if p.Type == model.PersonChild {
			kids = append(kids, p)
		}
	}
	sort.SliceStable(kids, func(i, j int) bool {
		return kids[i].BirthdayActual.Before(kids[j].BirthdayActual)
	})
	return kids
}
