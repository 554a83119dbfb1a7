package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TopN is the number of cities kept in a ranking.
const TopN = 10

// Ranking is the result of one ranking run.
type Ranking struct {
	RunID       string    `json:"run_id"`
	GeneratedAt time.Time `json:"generated_at"`
	Unit        Unit      `json:"unit"`
	Total       int       `json:"total"`
	Comfortable int       `json:"comfortable"`
	Cities      []City    `json:"cities"`
}

// Rank runs the stages in order: Fahrenheit conversion, aggregation over the
// converted collection, scoring, the comfort filter, then ranking and
// truncation to n. It also returns how many cities passed the filter. An empty
// dataset has no reference distribution and fails with ErrEmptyDistribution.
func Rank(cities []City, n int) ([]City, int, error) {
	if len(cities) == 0 {
		return nil, 0, ErrEmptyDistribution
	}
	converted := ConvertAll(cities, Fahrenheit)
	dist := Aggregate(converted)

	scored, err := ScoreAll(converted, dist)
	if err != nil {
		return nil, 0, fmt.Errorf("score cities: %w", err)
	}

	comfortable := FilterComfortable(scored)
	return RankAndTruncate(comfortable, n), len(comfortable), nil
}

// NewRanking ranks cities and stamps the result with a run ID and the package
// clock's current time.
func NewRanking(cities []City, n int) (Ranking, error) {
	top, comfortable, err := Rank(cities, n)
	if err != nil {
		return Ranking{}, err
	}
	return Ranking{
		RunID:       uuid.NewString(),
		GeneratedAt: clock.Now().UTC(),
		Unit:        Fahrenheit,
		Total:       len(cities),
		Comfortable: comfortable,
		Cities:      top,
	}, nil
}
