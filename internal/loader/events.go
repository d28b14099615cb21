package loader

import (
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/flowcast-dev/flowcast/internal/calendar"
	"github.com/flowcast-dev/flowcast/internal/model"
)

// DateFormat is the date layout of all input tables and the config file.
const DateFormat = "02/01/2006"

// Sentinel cell values in the event table.
const (
	startToday = "today" // start at the project start
	endNever   = "never" // run through the project end
	ignoreYes  = "yes"
)

// LoadDateEvents reads the event-definition table. Blank TYPE, CATEGORY,
// NAME and PERIOD cells inherit the previous row, with PERIOD falling back
// to one month; a blank cell in any other column is an error. START
// "today" resolves to the project start, END "never" to the project end, and
// explicit ends clamp to the project end.
func LoadDateEvents(r io.Reader, project calendar.Period) ([]model.DateEvent, error) {
	rows, err := readRows(r)
	if err != nil {
		return nil, fmt.Errorf("event definitions: %w", err)
	}

	filler := NewRowFiller("TYPE", "CATEGORY", "NAME", "PERIOD")
	filler.SetDefault("PERIOD", "1m")
	filler.SetDefault("IGNORE", "no")

	var events []model.DateEvent
	for i, row := range rows {
		if row["IGNORE"] == ignoreYes {
			continue
		}
		filler.Fill(row)

		ev, err := dateEventFromRow(row, project)
		if err != nil {
			return nil, fmt.Errorf("event definitions row %d: %w", i+2, err)
		}
		if err := ev.Validate(); err != nil {
			return nil, fmt.Errorf("event definitions row %d: %w", i+2, err)
		}
		events = append(events, ev)
	}
	return events, nil
}

func dateEventFromRow(row map[string]string, project calendar.Period) (model.DateEvent, error) {
	amount, err := decimal.NewFromString(row["SUM"])
	if err != nil {
		return model.DateEvent{}, fmt.Errorf("parsing sum %q: %w", row["SUM"], err)
	}

	var start time.Time
	if row["START"] == startToday {
		start = project.Start
	} else {
		start, err = time.Parse(DateFormat, row["START"])
		if err != nil {
			return model.DateEvent{}, fmt.Errorf("parsing start %q: %w", row["START"], err)
		}
	}

	var end time.Time
	if row["END"] == endNever {
		end = project.End
	} else {
		end, err = time.Parse(DateFormat, row["END"])
		if err != nil {
			return model.DateEvent{}, fmt.Errorf("parsing end %q: %w", row["END"], err)
		}
		if end.After(project.End) {
			end = project.End
		}
	}

	months, err := ParsePeriodSpec(row["PERIOD"])
	if err != nil {
		return model.DateEvent{}, err
	}

	return model.DateEvent{
		Type:             model.EventType(row["TYPE"]),
		Category:         model.Category(row["CATEGORY"]),
		Name:             row["NAME"],
		Amount:           amount,
		Start:            start,
		End:              end,
		RecurrenceMonths: months,
	}, nil
}
