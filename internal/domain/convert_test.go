package domain

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertTemperature(t *testing.T) {
	tests := []struct {
		name     string
		kelvin   float64
		unit     Unit
		expected float64
	}{
		{"warm fahrenheit", 300, Fahrenheit, 80},
		{"cool fahrenheit", 290, Fahrenheit, 62},
		{"warm celsius", 300, Celsius, 27},
		{"freezing celsius", 273.15, Celsius, 0},
		{"absolute zero fahrenheit", 0, Fahrenheit, -460},
		{"absolute zero celsius", 0, Celsius, -273},
		{"negative kelvin", -10, Celsius, -283},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ConvertTemperature(tt.kelvin, tt.unit))
		})
	}
}

func TestConvertTemperature_MatchesFormula(t *testing.T) {
	for k := -50.0; k <= 400; k += 0.37 {
		assert.Equal(t, math.Round(k*9/5-459.67), ConvertTemperature(k, Fahrenheit), "fahrenheit K=%v", k)
		assert.Equal(t, math.Round(k-273.15), ConvertTemperature(k, Celsius), "celsius K=%v", k)
	}
}

func TestConvertTemperature_ResultIsWhole(t *testing.T) {
	for _, k := range []float64{250.5, 288.71, 301.99, 310} {
		f := ConvertTemperature(k, Fahrenheit)
		assert.Equal(t, math.Trunc(f), f)
	}
}

func TestConvertTemperature_NoNegativeZero(t *testing.T) {
	for _, tt := range []struct {
		kelvin float64
		unit   Unit
	}{
		{255.3, Fahrenheit},
		{273.0, Celsius},
	} {
		v := ConvertTemperature(tt.kelvin, tt.unit)
		assert.Zero(t, v)
		assert.False(t, math.Signbit(v), "K=%v %s", tt.kelvin, tt.unit)
	}

	out, err := json.Marshal(City{Name: "A", Temp: ConvertTemperature(255.3, Fahrenheit)})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"temp":0`)
}

func TestConvertAll(t *testing.T) {
	input := []City{
		{Name: "A", Temp: 300, Cost: 1000},
		{Name: "B", Temp: 290, Humidity: 20},
	}

	out := ConvertAll(input, Fahrenheit)

	require.Len(t, out, 2)
	assert.Equal(t, 80.0, out[0].Temp)
	assert.Equal(t, 62.0, out[1].Temp)
	assert.Equal(t, 1000.0, out[0].Cost)
	assert.Equal(t, 20.0, out[1].Humidity)

	// Input is left in Kelvin.
	assert.Equal(t, 300.0, input[0].Temp)
	assert.Equal(t, 290.0, input[1].Temp)
}

func TestConvertAll_Empty(t *testing.T) {
	assert.Empty(t, ConvertAll(nil, Celsius))
}

func TestParseUnit(t *testing.T) {
	tests := []struct {
		in      string
		want    Unit
		wantErr bool
	}{
		{"fahrenheit", Fahrenheit, false},
		{"F", Fahrenheit, false},
		{" Celsius ", Celsius, false},
		{"c", Celsius, false},
		{"kelvin", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseUnit(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUnit_String(t *testing.T) {
	assert.Equal(t, "fahrenheit", Fahrenheit.String())
	assert.Equal(t, "celsius", Celsius.String())
	assert.Equal(t, "unit(7)", Unit(7).String())

	text, err := Celsius.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, []byte("celsius"), text)

	var u Unit
	require.NoError(t, u.UnmarshalText([]byte("celsius")))
	assert.Equal(t, Celsius, u)
	require.Error(t, u.UnmarshalText([]byte("rankine")))
}
