package domain

import "github.com/shopspring/decimal"

// LowBalanceThreshold is the balance below which a reading carries a
// top-up warning, in local currency units.
var LowBalanceThreshold = decimal.NewFromInt(10000)

// Reading is a normalized consumption lookup result, regardless of whether
// it came from the placeholder gateway or the provider API.
type Reading struct {
	AccountNumber  string
	ConsumptionKWh float64
	Balance        decimal.Decimal
	LowBalance     bool
}

// NewReading builds a reading and annotates it with the low-balance flag.
func NewReading(account string, consumptionKWh float64, balance decimal.Decimal) Reading {
	return Reading{
		AccountNumber:  account,
		ConsumptionKWh: consumptionKWh,
		Balance:        balance,
		LowBalance:     balance.LessThan(LowBalanceThreshold),
	}
}

// BalanceString renders the balance with two decimal places.
func (r Reading) BalanceString() string {
	return r.Balance.StringFixed(2)
}
