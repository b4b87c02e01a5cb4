package schedule

import "testing"

func TestParseSlot(t *testing.T) {
	t.Run("normalizes valid input", func(t *testing.T) {
		slot, err := ParseSlot(" 2024-05-01 ", "14:30")
		if err != nil {
			t.Fatalf("parse slot: %v", err)
		}
		if slot.Date != "2024-05-01" || slot.Time != "14:30" {
			t.Fatalf("unexpected slot: %+v", slot)
		}
		if got := slot.ScheduledAt(); got != "2024-05-01 14:30:00" {
			t.Fatalf("unexpected scheduled_at: %q", got)
		}
	})

	t.Run("forces seconds to zero", func(t *testing.T) {
		slot, err := ParseSlot("2024-05-01", "09:05:59")
		if err != nil {
			t.Fatalf("parse slot: %v", err)
		}
		if got := slot.ScheduledAt(); got != "2024-05-01 09:05:00" {
			t.Fatalf("unexpected scheduled_at: %q", got)
		}
	})

	t.Run("rejects malformed values", func(t *testing.T) {
		cases := [][2]string{
			{"01-05-2024", "14:30"},
			{"2024-02-30", "14:30"},
			{"2024-05-01", "2:30 PM"},
			{"2024-05-01", "24:00"},
			{"", ""},
		}
		for _, tc := range cases {
			if _, err := ParseSlot(tc[0], tc[1]); err == nil {
				t.Fatalf("expected error for date=%q time=%q", tc[0], tc[1])
			}
		}
	})
}
