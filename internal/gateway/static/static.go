// Package static is the placeholder consumption gateway used until a real
// provider integration is configured. It answers every lookup with a fixed
// reading and ignores credentials.
package static

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/hetmobile/hetbot/internal/domain"
)

// Placeholder values returned for every account.
var (
	consumptionKWh = 12.4
	balance        = decimal.NewFromFloat(9542.42)
)

// Gateway returns fixed consumption data.
type Gateway struct{}

// New creates the placeholder gateway.
func New() *Gateway {
	return &Gateway{}
}

// GetConsumption returns the fixed reading for any account.
func (g *Gateway) GetConsumption(_ context.Context, account, _ string) (domain.Reading, error) {
	return domain.NewReading(account, consumptionKWh, balance), nil
}
