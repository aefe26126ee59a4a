package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestNewReading_LowBalanceAnnotation(t *testing.T) {
	r := NewReading("HET-001", 12.4, decimal.NewFromFloat(9542.42))
	if !r.LowBalance {
		t.Error("balance 9542.42 is below the threshold, expected low-balance flag")
	}

	r = NewReading("HET-001", 12.4, decimal.NewFromFloat(15000.00))
	if r.LowBalance {
		t.Error("balance 15000.00 is above the threshold, flag must not be set")
	}
}

func TestNewReading_ThresholdIsExclusive(t *testing.T) {
	r := NewReading("HET-001", 0, decimal.NewFromInt(10000))
	if r.LowBalance {
		t.Error("balance exactly at the threshold must not warn")
	}
}

func TestReading_BalanceString(t *testing.T) {
	r := NewReading("HET-001", 12.4, decimal.NewFromFloat(9542.4))
	if got := r.BalanceString(); got != "9542.40" {
		t.Errorf("expected %q, got %q", "9542.40", got)
	}
}

func TestNewUsageRecord(t *testing.T) {
	day := time.Date(2026, 3, 14, 18, 30, 0, 0, time.UTC)
	rec := NewUsageRecord(42, NewReading("HET-001", 12.4, decimal.NewFromFloat(9542.42)), day)

	if rec.Date != "2026-03-14" {
		t.Errorf("expected date 2026-03-14, got %s", rec.Date)
	}
	if rec.UserID != 42 || rec.AccountNumber != "HET-001" {
		t.Errorf("unexpected record identity: %+v", rec)
	}
	if rec.ConsumptionKWh != 12.4 || rec.Balance != 9542.42 {
		t.Errorf("unexpected record values: %+v", rec)
	}
}

func TestUsageRecord_SameDay(t *testing.T) {
	a := UsageRecord{UserID: 42, AccountNumber: "HET-001", Date: "2026-03-14"}
	b := UsageRecord{UserID: 42, AccountNumber: "HET-001", Date: "2026-03-14", ConsumptionKWh: 3}
	if !a.SameDay(b) {
		t.Error("records for the same account-day must match")
	}

	c := UsageRecord{UserID: 42, AccountNumber: "HET-001", Date: "2026-03-15"}
	if a.SameDay(c) {
		t.Error("records for different days must not match")
	}
}
