package rankings

import (
	"context"
	"errors"
	"testing"

	"github.com/yourusername/ff-toolbox/internal/datasource"
	"github.com/yourusername/ff-toolbox/internal/models"
	"github.com/yourusername/ff-toolbox/internal/repository"
)

type memoryRankingRepo struct {
	tables map[string]*repository.StoredPointsTable
}

func newMemoryRankingRepo() *memoryRankingRepo {
	return &memoryRankingRepo{tables: make(map[string]*repository.StoredPointsTable)}
}

func (m *memoryRankingRepo) key(source string, season int, position models.Position) string {
	return source + "/" + string(position)
}

func (m *memoryRankingRepo) SavePointsTable(ctx context.Context, table *repository.StoredPointsTable) error {
	m.tables[m.key(table.Source, table.Season, table.Position)] = table
	return nil
}

func (m *memoryRankingRepo) GetPointsTable(ctx context.Context, source string, season int, position models.Position) (*repository.StoredPointsTable, error) {
	table, ok := m.tables[m.key(source, season, position)]
	if !ok {
		return nil, models.ErrNotFound
	}
	return table, nil
}

func (m *memoryRankingRepo) ListSources(ctx context.Context, season int) ([]string, error) {
	return nil, nil
}

type failingSource struct{}

func (failingSource) Name() string { return "failing" }

func (failingSource) FetchProjections(ctx context.Context, position models.Position, season int) ([]datasource.PlayerProjection, error) {
	return nil, errors.New("provider down")
}

func TestRefresherStoresTables(t *testing.T) {
	repo := newMemoryRankingRepo()
	refresher := NewRefresher(
		[]datasource.RankingsSource{datasource.NewStaticSource()},
		repo, 2025,
		[]models.Position{models.PositionRB, models.PositionWR},
		nil,
	)

	if err := refresher.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, pos := range []models.Position{models.PositionRB, models.PositionWR} {
		table, err := repo.GetPointsTable(context.Background(), datasource.StaticSourceName, 2025, pos)
		if err != nil {
			t.Fatalf("missing table for %s: %v", pos, err)
		}
		if len(table.Points) != 96 {
			t.Errorf("expected 96 points for %s, got %d", pos, len(table.Points))
		}
		for i := 1; i < len(table.Points); i++ {
			if table.Points[i] > table.Points[i-1] {
				t.Fatalf("stored table for %s not sorted descending", pos)
			}
		}
	}
}

func TestRefresherContinuesPastFailures(t *testing.T) {
	repo := newMemoryRankingRepo()
	refresher := NewRefresher(
		[]datasource.RankingsSource{failingSource{}, datasource.NewStaticSource()},
		repo, 2025,
		[]models.Position{models.PositionQB},
		nil,
	)

	err := refresher.Refresh(context.Background())
	if err == nil {
		t.Fatal("expected error from failing source")
	}

	// The healthy source still got refreshed
	if _, err := repo.GetPointsTable(context.Background(), datasource.StaticSourceName, 2025, models.PositionQB); err != nil {
		t.Errorf("expected static table despite failing source: %v", err)
	}
}
