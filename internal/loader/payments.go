package loader

import (
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/flowcast-dev/flowcast/internal/model"
)

// LoadFixedPayments reads a flat payment schedule (e.g. a mortgage
// amortization table) with one SUM row per calendar month, starting at
// start. Each row becomes a one-shot expense event under the given category
// and name.
func LoadFixedPayments(r io.Reader, start time.Time, category model.Category, name string) ([]model.DateEvent, error) {
	rows, err := readRows(r)
	if err != nil {
		return nil, fmt.Errorf("fixed payments: %w", err)
	}

	var events []model.DateEvent
	cursor := start
	for i, row := range rows {
		amount, err := decimal.NewFromString(row["SUM"])
		if err != nil {
			return nil, fmt.Errorf("fixed payments row %d: parsing sum %q: %w", i+2, row["SUM"], err)
		}

		events = append(events, model.DateEvent{
			Type:             model.EventExpense,
			Category:         category,
			Name:             name,
			Amount:           amount,
			Start:            cursor,
			End:              cursor,
			RecurrenceMonths: 1,
		})
		cursor = cursor.AddDate(0, 1, 0)
	}
	return events, nil
}
