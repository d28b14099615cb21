// Package report renders a populated ledger into the cash-flow CSV table and
// the optional single-month detail table.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/flowcast-dev/flowcast/internal/ledger"
	"github.com/flowcast-dev/flowcast/internal/model"
)

const dateFormat = "2006-01-02"

// fixedHeader is the leading columns of the cash-flow table; one column per
// seen category follows, incomes' categories before expenses'.
var fixedHeader = []string{"DATE", "INCOMES", "EXPENSES", "BALANCE", "BANK"}

// WriteCashFlow writes one row per populated month in chronological order,
// carrying a running bank balance seeded with initialBalance.
func WriteCashFlow(w io.Writer, book *ledger.Book, initialBalance decimal.Decimal) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := append([]string{}, fixedHeader...)
	for _, t := range model.EventTypes() {
		for _, c := range book.Categories().ForType(t) {
			header = append(header, string(c))
		}
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	bank := initialBalance
	for _, key := range book.SortedKeys() {
		month := book.Month(key)

		incomes := month.SumByType[model.EventIncome]
		expenses := month.SumByType[model.EventExpense]
		net := incomes.Sub(expenses)
		bank = bank.Add(net)

		row := []string{
			key.Format(dateFormat),
			incomes.String(),
			expenses.String(),
			net.String(),
			bank.String(),
		}
		for _, t := range model.EventTypes() {
			for _, c := range book.Categories().ForType(t) {
				sum, ok := month.SumByCategory[c]
				if !ok {
					sum = decimal.Zero
				}
				row = append(row, sum.String())
			}
		}

		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row for %s: %w", key.Format(dateFormat), err)
		}
	}
	return cw.Error()
}

// detailHeader is the header of the single-month detail table.
var detailHeader = []string{"TYPE", "CATEGORY", "NAME", "SUM"}

// WriteMonthDetail lists every event posted into one month, in posting
// order. A month the ledger never posted to yields just the header.
func WriteMonthDetail(w io.Writer, book *ledger.Book, key time.Time) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(detailHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	month := book.Month(key)
	if month == nil {
		return cw.Error()
	}

	for _, ev := range month.Events {
		row := []string{string(ev.Type), string(ev.Category), ev.Name, ev.Amount.String()}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row for %q: %w", ev.Name, err)
		}
	}
	return cw.Error()
}
