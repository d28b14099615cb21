// Package policy holds the statutory lookup tables the engine consults:
// child allowance, birth grant, childcare tuition tiers, and the tax-point
// value. They are plain data and pure functions of simple inputs, kept apart
// from the engine so tests and future rate changes can swap them wholesale.
package policy

import "github.com/shopspring/decimal"

// ChildcareTier classifies a school year by the child's age at the end of
// that calendar year.
type ChildcareTier int

const (
	TierDaycare      ChildcareTier = iota // under 3
	TierKindergarten                      // 3-5
	TierSchoolAge                         // 6-8
	TierNone                              // 9 and up
)

// Table bundles the pluggable policy lookups. Swap individual funcs in tests
// to isolate the engine from the statutory constants.
type Table struct {
	// ChildAllowance returns the monthly allowance for a child by 1-based
	// birth order, net of the mandatory child-saving deduction.
	ChildAllowance func(birthOrder int) decimal.Decimal

	// MaternityGrant returns the one-time birth grant by 1-based birth order.
	MaternityGrant func(birthOrder int) decimal.Decimal

	// ChildcareCost returns the monthly tuition for a childcare tier.
	ChildcareCost func(tier ChildcareTier) decimal.Decimal

	// TaxPointValue is the monthly worth of a single tax point.
	TaxPointValue decimal.Decimal
}

// DefaultTable returns the statutory amounts.
func DefaultTable() Table {
	return Table{
		ChildAllowance: defaultChildAllowance,
		MaternityGrant: defaultMaternityGrant,
		ChildcareCost:  defaultChildcareCost,
		TaxPointValue:  decimal.NewFromInt(220),
	}
}

func defaultChildAllowance(birthOrder int) decimal.Decimal {
	const childSaving = 50

	allowance := int64(192)
	if birthOrder == 1 || birthOrder >= 5 {
		allowance = 152
	}
	return decimal.NewFromInt(allowance - childSaving)
}

func defaultMaternityGrant(birthOrder int) decimal.Decimal {
	switch birthOrder {
	case 1:
		return decimal.NewFromInt(1783)
	case 2:
		return decimal.NewFromInt(802)
	default:
		return decimal.NewFromInt(535)
	}
}

func defaultChildcareCost(tier ChildcareTier) decimal.Decimal {
	switch tier {
	case TierDaycare:
		return decimal.NewFromInt(3000)
	case TierKindergarten:
		return decimal.NewFromInt(1000)
	case TierSchoolAge:
		return decimal.NewFromInt(800)
	default:
		return decimal.Zero
	}
}
