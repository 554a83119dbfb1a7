package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/livable-cities/internal/domain"
	"github.com/couchcryptid/livable-cities/internal/observability"
)

// Extractor reads the full city dataset.
type Extractor interface {
	Extract(ctx context.Context) ([]domain.City, error)
}

// Ranker turns the dataset into a ranking.
type Ranker interface {
	Rank(ctx context.Context, cities []domain.City) (domain.Ranking, error)
}

// Loader delivers a finished ranking to one destination.
type Loader interface {
	Name() string
	Load(ctx context.Context, ranking domain.Ranking) error
}

// Pipeline orchestrates one extract-rank-load run.
type Pipeline struct {
	extractor Extractor
	ranker    Ranker
	loaders   []Loader
	logger    *slog.Logger
	metrics   *observability.Metrics
}

// New creates a Pipeline with the given stages and observability. Loaders run
// in the order given.
func New(e Extractor, r Ranker, logger *slog.Logger, metrics *observability.Metrics, loaders ...Loader) *Pipeline {
	return &Pipeline{
		extractor: e,
		ranker:    r,
		loaders:   loaders,
		logger:    logger,
		metrics:   metrics,
	}
}

// Run executes the pipeline once. Any stage error aborts the run; there are no
// retries and no partial output past the failing stage.
func (p *Pipeline) Run(ctx context.Context) (domain.Ranking, error) {
	start := time.Now()

	cities, err := p.extractor.Extract(ctx)
	if err != nil {
		p.metrics.RunFailures.WithLabelValues("extract").Inc()
		return domain.Ranking{}, fmt.Errorf("extract: %w", err)
	}
	p.metrics.CitiesLoaded.Add(float64(len(cities)))

	ranking, err := p.ranker.Rank(ctx, cities)
	if err != nil {
		p.metrics.RunFailures.WithLabelValues("rank").Inc()
		return domain.Ranking{}, fmt.Errorf("rank: %w", err)
	}
	p.metrics.CitiesComfortable.Add(float64(ranking.Comfortable))
	p.metrics.CitiesRanked.Add(float64(len(ranking.Cities)))

	for _, l := range p.loaders {
		if err := l.Load(ctx, ranking); err != nil {
			p.metrics.RunFailures.WithLabelValues("load").Inc()
			return domain.Ranking{}, fmt.Errorf("load %s: %w", l.Name(), err)
		}
		p.metrics.RankingsPublished.WithLabelValues(l.Name()).Inc()
	}

	p.metrics.RunDuration.Observe(time.Since(start).Seconds())
	p.metrics.LastSuccess.SetToCurrentTime()
	p.logger.Info("ranking complete",
		"run_id", ranking.RunID,
		"loaded", ranking.Total,
		"comfortable", ranking.Comfortable,
		"ranked", len(ranking.Cities),
		"duration", time.Since(start),
	)
	return ranking, nil
}
