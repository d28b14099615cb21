package loader

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/flowcast-dev/flowcast/internal/model"
)

// LoadAgeEvents reads one per-person-type age-event table (dad.csv, mom.csv
// or child.csv). Forward-fill matches the event table; MONTH_START defaults
// to 0, meaning "the person's billing month".
func LoadAgeEvents(r io.Reader) ([]model.AgeEvent, error) {
	rows, err := readRows(r)
	if err != nil {
		return nil, fmt.Errorf("age events: %w", err)
	}

	filler := NewRowFiller("TYPE", "CATEGORY", "NAME", "PERIOD")
	filler.SetDefault("PERIOD", "1m")
	filler.SetDefault("MONTH_START", "0")
	filler.SetDefault("IGNORE", "no")

	var events []model.AgeEvent
	for i, row := range rows {
		if row["IGNORE"] == ignoreYes {
			continue
		}
		filler.Fill(row)

		ev, err := ageEventFromRow(row)
		if err != nil {
			return nil, fmt.Errorf("age events row %d: %w", i+2, err)
		}
		if err := ev.Validate(); err != nil {
			return nil, fmt.Errorf("age events row %d: %w", i+2, err)
		}
		events = append(events, ev)
	}
	return events, nil
}

func ageEventFromRow(row map[string]string) (model.AgeEvent, error) {
	amount, err := decimal.NewFromString(row["SUM"])
	if err != nil {
		return model.AgeEvent{}, fmt.Errorf("parsing sum %q: %w", row["SUM"], err)
	}

	fromAge, err := strconv.Atoi(row["FROM"])
	if err != nil {
		return model.AgeEvent{}, fmt.Errorf("parsing from-age %q: %w", row["FROM"], err)
	}
	untilAge, err := strconv.Atoi(row["UNTIL"])
	if err != nil {
		return model.AgeEvent{}, fmt.Errorf("parsing until-age %q: %w", row["UNTIL"], err)
	}

	months, err := ParsePeriodSpec(row["PERIOD"])
	if err != nil {
		return model.AgeEvent{}, err
	}

	monthStart, err := strconv.Atoi(row["MONTH_START"])
	if err != nil {
		return model.AgeEvent{}, fmt.Errorf("parsing month-start %q: %w", row["MONTH_START"], err)
	}

	return model.AgeEvent{
		Type:             model.EventType(row["TYPE"]),
		Category:         model.Category(row["CATEGORY"]),
		Name:             row["NAME"],
		Amount:           amount,
		FromAge:          fromAge,
		UntilAge:         untilAge,
		RecurrenceMonths: months,
		MonthStart:       time.Month(monthStart),
	}, nil
}
