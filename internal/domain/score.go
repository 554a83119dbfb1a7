package domain

import (
	"fmt"
	"math"
)

// Score weights. Cost dominates and counts against a city; internet speed is a
// minor bonus.
const (
	costWeight  = 100
	speedWeight = 20
)

// PercentileRank returns the fraction of entries in distribution strictly less
// than value. Ties do not count.
func PercentileRank(distribution []float64, value float64) (float64, error) {
	if len(distribution) == 0 {
		return 0, ErrEmptyDistribution
	}
	below := 0
	for _, x := range distribution {
		if x < value {
			below++
		}
	}
	return float64(below) / float64(len(distribution)), nil
}

// Score returns a copy of city with its livability score set:
//
//	round(100*(1 - costPercentile) + 20*speedPercentile)
func Score(city City, dist Distributions) (City, error) {
	costPct, err := PercentileRank(dist.Cost, city.Cost)
	if err != nil {
		return City{}, fmt.Errorf("cost percentile for %q: %w", city.Name, err)
	}
	speedPct, err := PercentileRank(dist.InternetSpeed, city.InternetSpeed)
	if err != nil {
		return City{}, fmt.Errorf("internet speed percentile for %q: %w", city.Name, err)
	}

	score := int(math.Round(costWeight*(1-costPct) + speedWeight*speedPct))
	city.Score = &score
	return city, nil
}

// ScoreAll scores every city against the same distributions.
func ScoreAll(cities []City, dist Distributions) ([]City, error) {
	out := make([]City, len(cities))
	for i, c := range cities {
		scored, err := Score(c, dist)
		if err != nil {
			return nil, err
		}
		out[i] = scored
	}
	return out, nil
}
