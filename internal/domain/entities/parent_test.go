package entities

import (
	"testing"
	"time"
)

func TestNextStageEntry(t *testing.T) {
	createdAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("first entry measures from creation", func(t *testing.T) {
		now := createdAt.Add(90 * time.Second)
		e := NextStageEntry(nil, createdAt, "draft", "sent", "u-1", now)
		if e.FromStatus != "draft" || e.ToStatus != "sent" || e.ChangedBy != "u-1" {
			t.Fatalf("unexpected entry: %+v", e)
		}
		if e.DurationInStage != 90 {
			t.Fatalf("expected 90s in stage, got %d", e.DurationInStage)
		}
		if !e.ChangedAt.Equal(now) {
			t.Fatalf("expected ChangedAt %v, got %v", now, e.ChangedAt)
		}
	})

	t.Run("later entries measure from previous entry", func(t *testing.T) {
		prev := StageEntry{FromStatus: "draft", ToStatus: "sent", ChangedAt: createdAt.Add(time.Hour)}
		now := prev.ChangedAt.Add(30 * time.Second)
		e := NextStageEntry([]StageEntry{prev}, createdAt, "sent", "approved", "u-1", now)
		if e.DurationInStage != 30 {
			t.Fatalf("expected 30s in stage, got %d", e.DurationInStage)
		}
	})

	t.Run("sub-second durations truncate to whole seconds", func(t *testing.T) {
		now := createdAt.Add(1500 * time.Millisecond)
		e := NextStageEntry(nil, createdAt, "draft", "sent", "", now)
		if e.DurationInStage != 1 {
			t.Fatalf("expected 1s, got %d", e.DurationInStage)
		}
	})

	t.Run("clock skew floors at zero", func(t *testing.T) {
		now := createdAt.Add(-time.Minute)
		e := NextStageEntry(nil, createdAt, "draft", "sent", "", now)
		if e.DurationInStage != 0 {
			t.Fatalf("expected 0s on negative duration, got %d", e.DurationInStage)
		}
	})
}

func TestLeadConvertible(t *testing.T) {
	cases := []struct {
		status LeadStatus
		want   bool
	}{
		{LeadStatusNew, true},
		{LeadStatusContacted, true},
		{LeadStatusQualified, true},
		{LeadStatusUnqualified, true},
		{LeadStatusConverted, false},
		{LeadStatusLost, false},
	}
	for _, tc := range cases {
		l := Lead{ID: "l-1", Status: tc.status}
		if got := l.Convertible(); got != tc.want {
			t.Fatalf("status %s: expected convertible=%v, got %v", tc.status, tc.want, got)
		}
	}
}
