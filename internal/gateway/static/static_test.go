package static

import (
	"context"
	"testing"
)

func TestGetConsumption_FixedReading(t *testing.T) {
	r, err := New().GetConsumption(context.Background(), "HET-001", "")
	if err != nil {
		t.Fatalf("static gateway must never fail: %v", err)
	}

	if r.AccountNumber != "HET-001" {
		t.Errorf("expected the queried account, got %q", r.AccountNumber)
	}
	if r.ConsumptionKWh != 12.4 {
		t.Errorf("expected 12.4 kWh, got %v", r.ConsumptionKWh)
	}
	if r.BalanceString() != "9542.42" {
		t.Errorf("expected balance 9542.42, got %s", r.BalanceString())
	}
	if !r.LowBalance {
		t.Error("the placeholder balance is below the threshold, expected a warning")
	}
}
