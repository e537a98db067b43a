package money

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDollars(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int64
		wantErr  bool
	}{
		{"whole dollars", "25", 2500, false},
		{"two decimals", "25.00", 2500, false},
		{"one decimal", "25.5", 2550, false},
		{"formatted", "$1,250.00", 125000, false},
		{"sub-cent rounds half up", "0.005", 1, false},
		{"sub-cent rounds down", "0.004", 0, false},
		{"negative", "-3.00", 0, true},
		{"garbage", "ten", 0, true},
		{"empty", "", 0, true},
		{"largest representable", "92233720368547758.07", math.MaxInt64, false},
		{"overflows int64 cents", "99999999999999999999", 0, true},
		{"one cent past the limit", "92233720368547758.08", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDollars(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "$150.00", FormatCents(15000))
	assert.Equal(t, "$108.00", FormatCents(10800))
	assert.Equal(t, "$0.05", FormatCents(5))
	assert.Equal(t, "$0.00", FormatCents(0))
}
