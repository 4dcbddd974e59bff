package repository

import (
	"path/filepath"
	"testing"
	"time"
)

func newTestRepo(t *testing.T) *RunRepository {
	t.Helper()

	db, err := InitDB(filepath.Join(t.TempDir(), "reporter.db"))
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return NewRunRepository(db)
}

func TestSaveAssignsId(t *testing.T) {
	repo := newTestRepo(t)

	id, err := repo.Save(&ReportRun{
		StartedAt:  time.Now().UTC(),
		ReportText: "report",
	})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if id == "" {
		t.Error("expected a generated run id")
	}
}

func TestGetRecentRunsNewestFirst(t *testing.T) {
	repo := newTestRepo(t)

	older := &ReportRun{
		StartedAt:     time.Date(2026, time.August, 1, 8, 0, 0, 0, time.UTC),
		SectionErrors: 1,
		ReportText:    "older report",
	}
	newer := &ReportRun{
		StartedAt:    time.Date(2026, time.August, 2, 8, 0, 0, 0, time.UTC),
		Published:    true,
		PublishError: "",
		ReportText:   "newer report",
	}

	if _, err := repo.Save(older); err != nil {
		t.Fatalf("Save older: %v", err)
	}
	if _, err := repo.Save(newer); err != nil {
		t.Fatalf("Save newer: %v", err)
	}

	runs, err := repo.GetRecentRuns(10)
	if err != nil {
		t.Fatalf("GetRecentRuns: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}

	if runs[0].Id != newer.Id || runs[1].Id != older.Id {
		t.Errorf("expected newest first, got %v then %v", runs[0].Id, runs[1].Id)
	}
	if !runs[0].Published {
		t.Error("expected newest run to be published")
	}
	if runs[1].SectionErrors != 1 {
		t.Errorf("SectionErrors = %d, want 1", runs[1].SectionErrors)
	}
	if runs[1].ReportText != "older report" {
		t.Errorf("ReportText = %q", runs[1].ReportText)
	}
}

func TestGetRecentRunsLimit(t *testing.T) {
	repo := newTestRepo(t)

	for day := 1; day <= 3; day++ {
		run := &ReportRun{
			StartedAt:  time.Date(2026, time.August, day, 8, 0, 0, 0, time.UTC),
			ReportText: "report",
		}
		if _, err := repo.Save(run); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	runs, err := repo.GetRecentRuns(2)
	if err != nil {
		t.Fatalf("GetRecentRuns: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("expected limit of 2 runs, got %d", len(runs))
	}
}
