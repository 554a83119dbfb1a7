package pipeline

import (
	"context"
	"log/slog"

	"github.com/couchcryptid/livable-cities/internal/domain"
)

// LivabilityRanker implements Ranker with the domain stages, logging the size
// of the collection after each one.
type LivabilityRanker struct {
	topN   int
	logger *slog.Logger
}

// NewRanker creates a LivabilityRanker that keeps the best topN cities.
func NewRanker(topN int, logger *slog.Logger) *LivabilityRanker {
	return &LivabilityRanker{topN: topN, logger: logger}
}

func (r *LivabilityRanker) Rank(_ context.Context, cities []domain.City) (domain.Ranking, error) {
	if avg, err := domain.AverageCost(cities); err == nil {
		r.logger.Debug("dataset summary", "cities", len(cities), "average_cost", avg)
	}

	ranking, err := domain.NewRanking(cities, r.topN)
	if err != nil {
		return domain.Ranking{}, err
	}

	r.logger.Debug("stages complete",
		"run_id", ranking.RunID,
		"scored", ranking.Total,
		"comfortable", ranking.Comfortable,
		"top", len(ranking.Cities),
	)
	return ranking, nil
}
