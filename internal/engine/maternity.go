package engine

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/flowcast-dev/flowcast/internal/calendar"
	"github.com/flowcast-dev/flowcast/internal/ledger"
	"github.com/flowcast-dev/flowcast/internal/model"
)

const (
	// leaveWeeks is the statutory maternity-leave length from the birth date.
	leaveWeeks = 26
	// paidWeeks is the portion of the leave covered by maternity pay.
	paidWeeks = 15
	// salaryRoundFactor rounds every adjusted or computed salary amount down
	// to a clean figure.
	salaryRoundFactor = 500
)

// grossFactor approximates the gross salary from the posted net amount.
var grossFactor = decimal.NewFromFloat(1.2)

// CategoryMaternity tags maternity pay, the birth grant, and the child
// allowance in the ledger.
const CategoryMaternity model.Category = "MATERNITY_PAYS"

// ApplyMaternity runs the retroactive maternity pass for each child in birth
// order. Per child it first reduces the mom's already-posted salary across
// the leave window, then computes maternity pay from the reduced salary
// history, then posts the birth grant and the recurring child allowance.
// The reduction must complete before the pay computation reads the trailing
// averages; the two steps are not commutative.
func (e *Engine) ApplyMaternity() error {
	for order, child := range e.children() {
		birthOrder := order + 1

		e.reduceLeaveSalary(child)

		pay := e.maternityPay(child)
		payEvent := model.DateEvent{
			Type:             model.EventIncome,
			Category:         CategoryMaternity,
			Name:             "maternity pay " + child.Name,
			Amount:           pay,
			Start:            child.BirthdayBilling,
			End:              child.BirthdayBilling,
			RecurrenceMonths: 1,
			PersonType:       child.Type,
		}
		if err := e.book.Expand(payEvent); err != nil {
			return err
		}

		grantEvent := model.DateEvent{
			Type:             model.EventIncome,
			Category:         CategoryMaternity,
			Name:             "maternity grant " + child.Name,
			Amount:           e.policies.MaternityGrant(birthOrder),
			Start:            child.BirthdayBilling,
			End:              child.BirthdayBilling,
			RecurrenceMonths: 1,
			PersonType:       child.Type,
		}
		if err := e.book.Expand(grantEvent); err != nil {
			return err
		}

		allowanceEvent := model.DateEvent{
			Type:             model.EventIncome,
			Category:         CategoryMaternity,
			Name:             "child allowance " + child.Name,
			Amount:           e.policies.ChildAllowance(birthOrder),
			Start:            child.BirthdayBilling,
			End:              calendar.AddYears(child.BirthdayBilling, 18),
			RecurrenceMonths: 1,
			PersonType:       child.Type,
		}
		if err := e.book.Expand(allowanceEvent); err != nil {
			return err
		}
	}
	return nil
}

// reduceLeaveSalary rewrites the mom's posted salary across the leave window:
// a day-fraction of the birth month, zero for every full month in between,
// and a day-fraction of the month the leave ends in. Buckets that were never
// posted to are skipped.
func (e *Engine) reduceLeaveSalary(child model.Person) {
	birth := child.BirthdayActual
	firstPayDate := child.BirthdayBilling

	if m := e.book.Month(firstPayDate); m != nil {
		fraction := dayFraction(birth.Day(), calendar.DaysInMonth(birth))
		m.AdjustSalary(model.PersonMom, fraction, salaryRoundFactor)
	}

	leaveEnd := leaveEndDate(birth)
	lastPayDate := calendar.NextFirstOfMonth(leaveEnd)
	if m := e.book.Month(lastPayDate); m != nil {
		days := calendar.DaysInMonth(leaveEnd)
		fraction := dayFraction(days-leaveEnd.Day(), days)
		m.AdjustSalary(model.PersonMom, fraction, salaryRoundFactor)
	}

	for cur := calendar.AddMonths(firstPayDate, 1); cur.Before(lastPayDate); cur = calendar.AddMonths(cur, 1) {
		if m := e.book.Month(cur); m != nil {
			m.AdjustSalary(model.PersonMom, decimal.Zero, salaryRoundFactor)
		}
	}
}

// maternityPay computes the statutory pay from the higher of the trailing
// 3-month and 6-month average gross daily salary over the months preceding
// the billing birthday. It reads the post-reduction salary values; months
// without a posted salary contribute zero pay but still count their days.
func (e *Engine) maternityPay(child model.Person) decimal.Decimal {
	var (
		sumSalary = decimal.Zero
		sumDays   int64
		avg3      = decimal.Zero
		avg6      = decimal.Zero
	)

	cur := calendar.AddMonths(child.BirthdayBilling, -1)
	for i := 0; i < 6; i++ {
		if m := e.book.Month(cur); m != nil {
			gross := grossFactor.Mul(m.SalaryFor(model.PersonMom))
			sumSalary = sumSalary.Add(gross)
		}
		sumDays += int64(calendar.DaysInMonth(cur))

		switch i {
		case 2:
			avg3 = sumSalary.Div(decimal.NewFromInt(sumDays))
		case 5:
			avg6 = sumSalary.Div(decimal.NewFromInt(sumDays))
		}

		cur = calendar.AddMonths(cur, -1)
	}

	avgDay := avg3
	if avg6.GreaterThan(avgDay) {
		avgDay = avg6
	}

	pay := avgDay.Mul(decimal.NewFromInt(paidWeeks * 7))
	return ledger.RoundDownToMultiple(pay, salaryRoundFactor)
}

func dayFraction(num, den int) decimal.Decimal {
	return decimal.NewFromInt(int64(num)).Div(decimal.NewFromInt(int64(den)))
}

// leaveEndDate is the last day of the statutory leave for a birth date.
func leaveEndDate(birth time.Time) time.Time {
	return calendar.AddWeeks(birth, leaveWeeks)
}
