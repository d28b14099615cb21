package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowcast-dev/flowcast/internal/calendar"
	"github.com/flowcast-dev/flowcast/internal/model"
	"github.com/flowcast-dev/flowcast/internal/policy"
)

func TestApplyTaxPoints_MidYearBirth(t *testing.T) {
	horizon := calendar.Period{Start: date(2022, 1, 1), End: date(2041, 12, 1)}
	e := New(horizon, policy.DefaultTable())
	e.AddPerson(model.NewPerson("Noa", model.PersonChild, date(2022, 3, 5)))

	require.NoError(t, e.ApplyTaxPoints())

	// Birth month: one pro-rated payment of 3 points (March) at 220 each.
	assert.True(t, dec("660").Equal(categorySum(e, date(2022, 3, 1), CategoryTaxPoints)))
	assert.True(t, categorySum(e, date(2022, 2, 1), CategoryTaxPoints).IsZero())

	// Rest of the birth year: 3 points monthly.
	assert.True(t, dec("660").Equal(categorySum(e, date(2022, 4, 1), CategoryTaxPoints)))
	assert.True(t, dec("660").Equal(categorySum(e, date(2022, 12, 1), CategoryTaxPoints)))

	// Years 1-5: 5 points monthly.
	assert.True(t, dec("1100").Equal(categorySum(e, date(2023, 1, 1), CategoryTaxPoints)))
	assert.True(t, dec("1100").Equal(categorySum(e, date(2027, 12, 1), CategoryTaxPoints)))

	// Years 6-17: 1 point monthly.
	assert.True(t, dec("220").Equal(categorySum(e, date(2028, 1, 1), CategoryTaxPoints)))
	assert.True(t, dec("220").Equal(categorySum(e, date(2039, 12, 1), CategoryTaxPoints)))

	// Terminal year: half a point.
	assert.True(t, dec("110").Equal(categorySum(e, date(2040, 6, 1), CategoryTaxPoints)))
	assert.True(t, categorySum(e, date(2041, 1, 1), CategoryTaxPoints).IsZero())
}

func TestApplyTaxPoints_DecemberBirth(t *testing.T) {
	// A December birth collapses the birth-year series into the one-shot:
	// there are no remaining months for the flat segment.
	horizon := calendar.Period{Start: date(2022, 1, 1), End: date(2041, 12, 1)}
	e := New(horizon, policy.DefaultTable())
	e.AddPerson(model.NewPerson("Tal", model.PersonChild, date(2022, 12, 15)))

	require.NoError(t, e.ApplyTaxPoints())

	dec22 := e.Book().Month(date(2022, 12, 1))
	require.NotNil(t, dec22)
	require.Len(t, dec22.Events, 1, "only the pro-rated one-shot posts in the birth year")
	assert.True(t, dec("2640").Equal(dec22.Events[0].Amount), "12 months of credit in one payment")

	assert.True(t, dec("1100").Equal(categorySum(e, date(2023, 1, 1), CategoryTaxPoints)))
}
