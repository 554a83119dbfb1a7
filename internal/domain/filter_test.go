package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsComfortable(t *testing.T) {
	tests := []struct {
		name     string
		temp     float64
		humidity float64
		expected bool
	}{
		{"warm and dry", 75, 0, true},
		{"cold but humid enough", 50, 50, true},
		{"cold and dry", 50, 20, false},
		{"lower temp bound is exclusive", 68, 0, false},
		{"upper temp bound is exclusive", 85, 0, false},
		{"just inside temp range", 69, 0, true},
		{"lower humidity bound is exclusive", 0, 30, false},
		{"upper humidity bound is exclusive", 0, 70, false},
		{"just inside humidity range", 0, 69, true},
		{"hot and muggy", 95, 90, false},
		{"zero values", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsComfortable(City{Temp: tt.temp, Humidity: tt.humidity}))
		})
	}
}

func TestFilterComfortable(t *testing.T) {
	cities := []City{
		{Name: "A", Temp: 75},
		{Name: "B", Temp: 50, Humidity: 20},
		{Name: "C", Temp: 50, Humidity: 50},
	}

	out := FilterComfortable(cities)

	assert.Equal(t, []string{"A", "C"}, names(out))
	assert.Len(t, cities, 3)
}

func names(cities []City) []string {
	out := make([]string, len(cities))
	for i, c := range cities {
		out[i] = c.Name
	}
	return out
}
