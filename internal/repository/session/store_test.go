package session

import (
	"testing"

	"github.com/hetmobile/hetbot/internal/domain"
)

func TestGet_DefaultsToNone(t *testing.T) {
	s := New()
	if got := s.Get(42); got != domain.SessionNone {
		t.Errorf("expected SessionNone for an unknown user, got %q", got)
	}
}

func TestSetGetClear(t *testing.T) {
	s := New()
	s.Set(42, domain.SessionAwaitingAccount)

	if got := s.Get(42); got != domain.SessionAwaitingAccount {
		t.Errorf("expected awaiting_account_number, got %q", got)
	}
	if got := s.Get(7); got != domain.SessionNone {
		t.Errorf("state must be per user, got %q for another user", got)
	}

	s.Clear(42)
	if got := s.Get(42); got != domain.SessionNone {
		t.Errorf("expected SessionNone after clear, got %q", got)
	}
}
