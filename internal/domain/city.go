package domain

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrEmptyDistribution is returned when a percentile is requested against a
	// distribution with no entries. The rank would be a division by zero.
	ErrEmptyDistribution = errors.New("empty reference distribution")

	// ErrInvalidInput marks a malformed city record.
	ErrInvalidInput = errors.New("invalid city record")
)

// RawCity is the dataset representation of a city. Numeric fields are pointers
// so absent values can be told apart from explicit zeros.
type RawCity struct {
	Name          string   `json:"name" yaml:"name"`
	Temp          *float64 `json:"temp" yaml:"temp"`
	Cost          *float64 `json:"cost,omitempty" yaml:"cost"`
	InternetSpeed *float64 `json:"internetSpeed,omitempty" yaml:"internetSpeed"`
	Humidity      *float64 `json:"humidity,omitempty" yaml:"humidity"`
}

// City is a city record as it moves through the ranking stages. Temp holds
// Kelvin until ConvertAll replaces it with a rounded value in the target unit.
type City struct {
	Name          string  `json:"name"`
	Temp          float64 `json:"temp"`
	Cost          float64 `json:"cost"`
	InternetSpeed float64 `json:"internetSpeed"`
	Humidity      float64 `json:"humidity"`
	Score         *int    `json:"score,omitempty"`
}

// ToCity applies the zero defaults for absent fields and rejects values that
// are not finite numbers.
func (r RawCity) ToCity() (City, error) {
	c := City{
		Name:          r.Name,
		Temp:          valueOrZero(r.Temp),
		Cost:          valueOrZero(r.Cost),
		InternetSpeed: valueOrZero(r.InternetSpeed),
		Humidity:      valueOrZero(r.Humidity),
	}
	if err := c.Validate(); err != nil {
		return City{}, err
	}
	return c, nil
}

// Validate reports ErrInvalidInput if any numeric field is NaN or infinite.
func (c City) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"temp", c.Temp},
		{"cost", c.Cost},
		{"internetSpeed", c.InternetSpeed},
		{"humidity", c.Humidity},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %q has non-finite %s", ErrInvalidInput, c.Name, f.name)
		}
	}
	return nil
}

// ScoreOrZero returns the livability score, or 0 for a city that has not been
// scored yet.
func (c City) ScoreOrZero() int {
	if c.Score == nil {
		return 0
	}
	return *c.Score
}

// CitiesFromRaw converts dataset records in order. The first invalid record
// fails the whole batch.
func CitiesFromRaw(raws []RawCity) ([]City, error) {
	cities := make([]City, 0, len(raws))
	for i, r := range raws {
		c, err := r.ToCity()
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		cities = append(cities, c)
	}
	return cities, nil
}

func valueOrZero(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
