package domain

// Comfort bounds, exclusive. Temperatures are Fahrenheit.
const (
	minComfortTemp     = 68
	maxComfortTemp     = 85
	minComfortHumidity = 30
	maxComfortHumidity = 70
)

// IsComfortable reports whether a city's converted temperature or its
// humidity falls inside the comfort range.
func IsComfortable(c City) bool {
	return (c.Temp > minComfortTemp && c.Temp < maxComfortTemp) ||
		(c.Humidity > minComfortHumidity && c.Humidity < maxComfortHumidity)
}

// FilterComfortable returns the comfortable cities in their original order.
func FilterComfortable(cities []City) []City {
	out := make([]City, 0, len(cities))
	for _, c := range cities {
		if IsComfortable(c) {
			out = append(out, c)
		}
	}
	return out
}
