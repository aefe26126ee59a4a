package domain

import "time"

// DateLayout is the calendar-date format used in the usage log.
const DateLayout = "2006-01-02"

// UsageRecord is one day's consumption snapshot for an account.
// The JSON tags fix the on-disk schema of daily_usage.json.
type UsageRecord struct {
	UserID         int64   `json:"user_id"`
	AccountNumber  string  `json:"account"`
	Date           string  `json:"date"` // calendar date, DateLayout
	ConsumptionKWh float64 `json:"consumption"`
	Balance        float64 `json:"balance"`
}

// NewUsageRecord builds a usage record for the given day from a reading.
func NewUsageRecord(userID int64, r Reading, day time.Time) UsageRecord {
	bal, _ := r.Balance.Float64()
	return UsageRecord{
		UserID:         userID,
		AccountNumber:  r.AccountNumber,
		Date:           day.Format(DateLayout),
		ConsumptionKWh: r.ConsumptionKWh,
		Balance:        bal,
	}
}

// SameDay reports whether two records describe the same account-day.
func (u UsageRecord) SameDay(other UsageRecord) bool {
	return u.UserID == other.UserID &&
		u.AccountNumber == other.AccountNumber &&
		u.Date == other.Date
}
