package loader

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePeriodSpec converts a recurrence spec like "1m", "1y" or "1y 6m" into
// a number of months.
func ParsePeriodSpec(s string) (int, error) {
	var years, months int

	var num strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			num.WriteRune(r)
		case r == 'y' || r == 'm':
			if num.Len() == 0 {
				return 0, fmt.Errorf("period spec %q: %q without a number", s, r)
			}
			n, err := strconv.Atoi(num.String())
			if err != nil {
				return 0, fmt.Errorf("period spec %q: %w", s, err)
			}
			if r == 'y' {
				years = n
			} else {
				months = n
			}
			num.Reset()
		case r == ' ':
			if num.Len() != 0 {
				return 0, fmt.Errorf("period spec %q: number without unit", s)
			}
		default:
			return 0, fmt.Errorf("period spec %q: unexpected character %q", s, r)
		}
	}
	if num.Len() != 0 {
		return 0, fmt.Errorf("period spec %q: trailing number without unit", s)
	}

	return years*12 + months, nil
}
