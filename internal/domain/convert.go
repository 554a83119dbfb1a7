package domain

import (
	"fmt"
	"math"
	"strings"
)

// Unit is a target temperature scale for Kelvin conversion.
type Unit int

const (
	Fahrenheit Unit = iota
	Celsius
)

func (u Unit) String() string {
	switch u {
	case Fahrenheit:
		return "fahrenheit"
	case Celsius:
		return "celsius"
	default:
		return fmt.Sprintf("unit(%d)", int(u))
	}
}

// MarshalText encodes the unit by name so rankings serialize readably.
func (u Unit) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText accepts any name ParseUnit does.
func (u *Unit) UnmarshalText(text []byte) error {
	parsed, err := ParseUnit(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// ParseUnit accepts "fahrenheit"/"f" and "celsius"/"c", case-insensitively.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fahrenheit", "f":
		return Fahrenheit, nil
	case "celsius", "c":
		return Celsius, nil
	default:
		return 0, fmt.Errorf("unknown temperature unit %q", s)
	}
}

// ConvertTemperature converts Kelvin to the given unit and rounds to the
// nearest integer, halves away from zero.
func ConvertTemperature(kelvin float64, unit Unit) float64 {
	var v float64
	switch unit {
	case Celsius:
		v = kelvin - 273.15
	default:
		v = kelvin*9/5 - 459.67
	}
	r := math.Round(v)
	if r == 0 {
		// Rounding small negatives yields -0, which JSON prints as "-0".
		return 0
	}
	return r
}

// ConvertAll returns a new slice with every city's Temp converted from Kelvin.
func ConvertAll(cities []City, unit Unit) []City {
	out := make([]City, len(cities))
	for i, c := range cities {
		c.Temp = ConvertTemperature(c.Temp, unit)
		out[i] = c
	}
	return out
}
