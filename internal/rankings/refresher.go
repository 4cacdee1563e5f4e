package rankings

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/ff-toolbox/internal/datasource"
	"github.com/yourusername/ff-toolbox/internal/metrics"
	"github.com/yourusername/ff-toolbox/internal/models"
	"github.com/yourusername/ff-toolbox/internal/repository"
)

// Refresher pulls fresh projections from every configured source and persists
// the resulting points tables.
type Refresher struct {
	sources   []datasource.RankingsSource
	repo      repository.RankingRepository
	season    int
	positions []models.Position
	logger    *logrus.Logger
}

// NewRefresher creates a refresher for the given sources and positions
func NewRefresher(sources []datasource.RankingsSource, repo repository.RankingRepository, season int, positions []models.Position, logger *logrus.Logger) *Refresher {
	if logger == nil {
		logger = logrus.New()
	}
	return &Refresher{
		sources:   sources,
		repo:      repo,
		season:    season,
		positions: positions,
		logger:    logger,
	}
}

// Refresh fetches and stores a points table per source and position. A
// failure for one source does not stop the others; the first error is
// returned after all sources have been attempted.
func (r *Refresher) Refresh(ctx context.Context) error {
	var firstErr error

	for _, source := range r.sources {
		for _, position := range r.positions {
			if err := r.refreshOne(ctx, source, position); err != nil {
				r.logger.WithError(err).WithFields(logrus.Fields{
					"source":   source.Name(),
					"position": position,
				}).Error("Failed to refresh projections")
				if firstErr == nil {
					firstErr = err
				}
			}
		}
	}

	if firstErr == nil {
		metrics.RankingsRefreshesTotal.Inc()
		metrics.LastRankingsRefresh.SetToCurrentTime()
	}

	return firstErr
}

func (r *Refresher) refreshOne(ctx context.Context, source datasource.RankingsSource, position models.Position) error {
	projections, err := source.FetchProjections(ctx, position, r.season)
	if err != nil {
		return fmt.Errorf("fetch %s %s: %w", source.Name(), position, err)
	}

	table := &repository.StoredPointsTable{
		Source:   source.Name(),
		Season:   r.season,
		Position: position,
		Points:   datasource.PointsTable(projections),
	}
	if err := r.repo.SavePointsTable(ctx, table); err != nil {
		return fmt.Errorf("store %s %s: %w", source.Name(), position, err)
	}

	r.logger.WithFields(logrus.Fields{
		"source":   source.Name(),
		"position": position,
		"players":  len(table.Points),
	}).Info("Refreshed projections")

	return nil
}
