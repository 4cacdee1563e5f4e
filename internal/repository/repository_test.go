package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/yourusername/ff-toolbox/internal/database"
	"github.com/yourusername/ff-toolbox/internal/models"
)

func TestNewRepositoriesRequiresDB(t *testing.T) {
	if _, err := NewRepositories(nil); err == nil {
		t.Fatal("expected error for nil database")
	}
}

func TestRankingRepositoryRoundTrip(t *testing.T) {
	db := database.SetupTestDB(t)
	defer database.TeardownTestDB(t, db)

	repos, err := NewRepositories(db)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx := context.Background()
	source := "test_" + uuid.NewString()[:8]
	table := &StoredPointsTable{
		Source:   source,
		Season:   2025,
		Position: models.PositionRB,
		Points:   []float64{310.5, 280.2, 255.0},
	}

	if err := repos.Rankings.SavePointsTable(ctx, table); err != nil {
		t.Fatalf("failed to save points table: %v", err)
	}

	got, err := repos.Rankings.GetPointsTable(ctx, source, 2025, models.PositionRB)
	if err != nil {
		t.Fatalf("failed to get points table: %v", err)
	}
	if len(got.Points) != 3 || got.Points[0] != 310.5 {
		t.Errorf("unexpected points: %v", got.Points)
	}

	// Upsert replaces the table for the same key
	table.Points = []float64{300, 250}
	if err := repos.Rankings.SavePointsTable(ctx, table); err != nil {
		t.Fatalf("failed to upsert points table: %v", err)
	}
	got, err = repos.Rankings.GetPointsTable(ctx, source, 2025, models.PositionRB)
	if err != nil {
		t.Fatalf("failed to re-get points table: %v", err)
	}
	if len(got.Points) != 2 {
		t.Errorf("expected upserted table with 2 points, got %v", got.Points)
	}

	_, err = repos.Rankings.GetPointsTable(ctx, source, 1999, models.PositionRB)
	if !errors.Is(err, models.ErrNotFound) {
		t.Errorf("expected ErrNotFound for missing season, got %v", err)
	}
}

func TestDraftRepositoryPickLifecycle(t *testing.T) {
	db := database.SetupTestDB(t)
	defer database.TeardownTestDB(t, db)

	repos, err := NewRepositories(db)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx := context.Background()
	draftID := uuid.New()

	for i, name := range []string{"First Player", "Second Player", "Third Player"} {
		pick := &StoredPick{
			DraftID:    draftID,
			PickNumber: i + 1,
			TeamName:   "Team Alpha",
			PlayerName: name,
			Position:   models.PositionWR,
		}
		if err := repos.Drafts.RecordPick(ctx, pick); err != nil {
			t.Fatalf("failed to record pick %d: %v", i+1, err)
		}
	}

	picks, err := repos.Drafts.GetPicks(ctx, draftID)
	if err != nil {
		t.Fatalf("failed to get picks: %v", err)
	}
	if len(picks) != 3 {
		t.Fatalf("expected 3 picks, got %d", len(picks))
	}
	if picks[1].PlayerName != "Second Player" {
		t.Errorf("picks out of order: %+v", picks)
	}

	if err := repos.Drafts.DeletePicksFrom(ctx, draftID, 2); err != nil {
		t.Fatalf("failed to delete picks: %v", err)
	}
	picks, err = repos.Drafts.GetPicks(ctx, draftID)
	if err != nil {
		t.Fatalf("failed to re-get picks: %v", err)
	}
	if len(picks) != 1 || picks[0].PickNumber != 1 {
		t.Errorf("expected only pick 1 to remain, got %+v", picks)
	}
}

func TestDraftRepositoryRecordPicksBatch(t *testing.T) {
	db := database.SetupTestDB(t)
	defer database.TeardownTestDB(t, db)

	repos, err := NewRepositories(db)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx := context.Background()
	draftID := uuid.New()

	batch := []*StoredPick{
		{DraftID: draftID, PickNumber: 1, TeamName: "Team Alpha", PlayerName: "First Player", Position: models.PositionRB},
		{DraftID: draftID, PickNumber: 2, TeamName: "Team Beta", PlayerName: "Second Player", Position: models.PositionWR},
	}
	if err := repos.Drafts.RecordPicks(ctx, batch); err != nil {
		t.Fatalf("failed to record batch: %v", err)
	}

	picks, err := repos.Drafts.GetPicks(ctx, draftID)
	if err != nil {
		t.Fatalf("failed to get picks: %v", err)
	}
	if len(picks) != 2 {
		t.Fatalf("expected 2 picks, got %d", len(picks))
	}

	// Re-recording the batch upserts rather than duplicating
	batch[1].PlayerName = "Replacement Player"
	if err := repos.Drafts.RecordPicks(ctx, batch); err != nil {
		t.Fatalf("failed to re-record batch: %v", err)
	}
	picks, err = repos.Drafts.GetPicks(ctx, draftID)
	if err != nil {
		t.Fatalf("failed to re-get picks: %v", err)
	}
	if len(picks) != 2 || picks[1].PlayerName != "Replacement Player" {
		t.Errorf("expected upserted batch, got %+v", picks)
	}
}
