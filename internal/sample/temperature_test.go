package sample

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTemperature(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   float64
		wantOK bool
	}{
		{"vcgencmd", "temp=48.3'C\n", 48.3, true},
		{"integer", "temp=50'C", 50, true},
		{"negative", "temp=-4.5'C", -4.5, true},
		{"trailing junk inside", "temp=61.2C'C", 61.2, true},
		{"first equals wins", "temp=42.0'C extra=1'", 42.0, true},
		{"no equals", "48.3'C", 0, false},
		{"no quote", "temp=48.3C", 0, false},
		{"not a number", "temp=hot'C", 0, false},
		{"empty reading", "temp='C", 0, false},
		{"empty", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseTemperature(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}
