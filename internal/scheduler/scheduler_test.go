package scheduler

import (
	"testing"

	"go.uber.org/zap"
)

func TestScheduleDaily_RegistersEntry(t *testing.T) {
	s := New(zap.NewNop())
	if err := s.ScheduleDaily(10, 0, func() {}); err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if got := len(s.cron.Entries()); got != 1 {
		t.Errorf("expected 1 cron entry, got %d", got)
	}
}

func TestScheduleDaily_RejectsOutOfRange(t *testing.T) {
	tests := []struct {
		name   string
		hour   int
		minute int
	}{
		{"hour too high", 24, 0},
		{"negative hour", -1, 0},
		{"minute too high", 10, 60},
		{"negative minute", 10, -5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := New(zap.NewNop())
			if err := s.ScheduleDaily(tc.hour, tc.minute, func() {}); err == nil {
				t.Errorf("expected an error for %d:%d", tc.hour, tc.minute)
			}
		})
	}
}
