package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePeriodSpec(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"1m", 1},
		{"6m", 6},
		{"1y", 12},
		{"1y 6m", 18},
		{"2y", 24},
		{"18m", 18},
		{"0m", 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePeriodSpec(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePeriodSpec_Invalid(t *testing.T) {
	for _, in := range []string{"m", "y", "1x", "one month", "1", "1y 6"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParsePeriodSpec(in)
			assert.Error(t, err)
		})
	}
}
