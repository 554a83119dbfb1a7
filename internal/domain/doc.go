// Package domain ranks cities by livability.
//
// # Stages
//
// A ranking run is a fixed sequence of pure stages, each returning a new slice:
//
//	ConvertAll        Kelvin → whole-degree Fahrenheit (math.Round, halves away from zero)
//	Aggregate         cost and internet-speed distributions over every city
//	ScoreAll          percentile-based livability score per city
//	FilterComfortable keep cities with a comfortable temperature or humidity
//	RankAndTruncate   stable sort by score descending, keep the top n
//
// Distributions are built before filtering, so uncomfortable cities still shape
// everyone else's percentiles.
//
// # Scoring
//
// A percentile rank is the fraction of a distribution strictly below a value:
//
//	rank(D, v) = |{x ∈ D : x < v}| / |D|
//
// The livability score weighs cost against a city and internet speed for it:
//
//	score = round(100 × (1 − rank(cost)) + 20 × rank(internetSpeed))
//
// Cheapest-and-fastest scores 120 at most; the most expensive, slowest city in a
// population of distinct values scores just above 0.
//
// # Comfort
//
// A city is comfortable when 68 < temp < 85 (°F) or 30 < humidity < 70 (%).
//
// # Missing Values
//
// Absent numeric fields in the dataset default to 0. NaN and infinite values
// are rejected with [ErrInvalidInput]. An empty dataset fails scoring with
// [ErrEmptyDistribution].
package domain
