package loader

import (
	"fmt"
	"io"
	"time"

	"github.com/flowcast-dev/flowcast/internal/model"
)

// LoadPersons reads the household-member table.
func LoadPersons(r io.Reader) ([]model.Person, error) {
	rows, err := readRows(r)
	if err != nil {
		return nil, fmt.Errorf("persons: %w", err)
	}

	var persons []model.Person
	for i, row := range rows {
		if row["IGNORE"] == ignoreYes {
			continue
		}

		birthday, err := time.Parse(DateFormat, row["BIRTHDAY"])
		if err != nil {
			return nil, fmt.Errorf("persons row %d: parsing birthday %q: %w", i+2, row["BIRTHDAY"], err)
		}

		p := model.NewPerson(row["NAME"], model.PersonType(row["TYPE"]), birthday)
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("persons row %d: %w", i+2, err)
		}
		persons = append(persons, p)
	}
	return persons, nil
}
