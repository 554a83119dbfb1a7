package domain

import (
	"cmp"
	"slices"
)

// RankAndTruncate sorts cities by score, highest first, and keeps the first n.
// Equal scores keep their input order. The input slice is not modified.
func RankAndTruncate(cities []City, n int) []City {
	if n <= 0 {
		return []City{}
	}
	sorted := make([]City, len(cities))
	copy(sorted, cities)
	slices.SortStableFunc(sorted, func(a, b City) int {
		return cmp.Compare(b.ScoreOrZero(), a.ScoreOrZero())
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
