package match

import (
	"testing"
	"time"
)

func TestNormalizeStatus(t *testing.T) {
	if got := NormalizeStatus(""); got != StatusPending {
		t.Fatalf("expected empty status to normalize to pending, got %q", got)
	}
	if got := NormalizeStatus(" Completed "); got != StatusCompleted {
		t.Fatalf("expected completed, got %q", got)
	}
}

func TestMatch_Involves(t *testing.T) {
	home, away := int64(1), int64(2)
	m := Match{Team1ID: &home, Team2ID: &away}

	if !m.Involves(1) || !m.Involves(2) {
		t.Fatalf("expected both seeded teams to be involved")
	}
	if m.Involves(3) {
		t.Fatalf("did not expect unseeded team to be involved")
	}
	if (Match{}).Involves(1) {
		t.Fatalf("did not expect an unseeded match to involve any team")
	}
}

func TestMatch_ScheduledAtString(t *testing.T) {
	if got := (Match{}).ScheduledAtString(); got != "" {
		t.Fatalf("expected empty string for unscheduled match, got %q", got)
	}

	at := time.Date(2024, 5, 1, 14, 30, 0, 0, time.UTC)
	if got := (Match{ScheduledAt: &at}).ScheduledAtString(); got != "2024-05-01 14:30:00" {
		t.Fatalf("unexpected scheduled_at: %q", got)
	}
}
