// Package hetapi is the HTTP client for the utility provider's consumption
// API. Authentication is a per-user bearer key; every failure mode collapses
// into domain.ErrProviderUnavailable since users are shown a single generic
// "could not fetch data" message either way.
package hetapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/hetmobile/hetbot/internal/domain"
	"github.com/hetmobile/hetbot/internal/metrics"
)

const defaultTimeout = 10 * time.Second

// Client calls the provider API.
type Client struct {
	baseURL string
	hc      *http.Client
	logger  *zap.Logger
}

// Config holds the provider API settings.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Logger  *zap.Logger
}

// New creates a provider API client with a bounded request timeout.
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
		logger:  cfg.Logger,
	}
}

type consumptionResponse struct {
	ConsumptionKWh float64         `json:"consumption_kwh"`
	BalanceSum     decimal.Decimal `json:"balance_sum"`
}

type graphResponse struct {
	GraphURL string `json:"graph_url"`
}

// GetConsumption fetches today's reading for the account. Missing body
// fields default to zero, per the provider's sparse responses.
func (c *Client) GetConsumption(ctx context.Context, account, apiKey string) (domain.Reading, error) {
	body, err := c.get(ctx, "consumption", "/consumption/"+url.PathEscape(account)+"/today", apiKey)
	if err != nil {
		return domain.Reading{}, err
	}

	var resp consumptionResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return domain.Reading{}, fmt.Errorf("decode consumption response: %w", domain.ErrProviderUnavailable)
	}

	return domain.NewReading(account, resp.ConsumptionKWh, resp.BalanceSum), nil
}

// GraphURL fetches the pre-rendered graph location for the period.
func (c *Client) GraphURL(ctx context.Context, period domain.GraphPeriod, apiKey string) (string, error) {
	body, err := c.get(ctx, "graph_"+string(period), "/graphs/"+string(period), apiKey)
	if err != nil {
		return "", err
	}

	var resp graphResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("decode graph response: %w", domain.ErrProviderUnavailable)
	}
	if resp.GraphURL == "" {
		return "", domain.ErrGraphUnavailable
	}
	return resp.GraphURL, nil
}

// HealthCheck verifies the provider endpoint is reachable. Any HTTP status
// counts as reachable; only transport failures report an error.
func (c *Client) HealthCheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", http.NoBody)
	if err != nil {
		return fmt.Errorf("build health request: %w", err)
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("provider unreachable: %w", err)
	}
	resp.Body.Close()
	return nil
}

// get issues an authenticated GET with a single retry on transport failure
// or a 5xx response. 4xx responses are not retried.
func (c *Client) get(ctx context.Context, endpoint, path, apiKey string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		body, retryable, err := c.doOnce(ctx, endpoint, path, apiKey)
		if err == nil {
			return body, nil
		}
		lastErr = err
		if !retryable {
			break
		}
	}
	return nil, lastErr
}

func (c *Client) doOnce(ctx context.Context, endpoint, path, apiKey string) (body []byte, retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, http.NoBody)
	if err != nil {
		return nil, false, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)

	start := time.Now()
	resp, err := c.hc.Do(req)
	metrics.ProviderRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.ProviderRequestsTotal.WithLabelValues(endpoint, "transport_error").Inc()
		c.logger.Warn("provider request failed", zap.String("path", path), zap.Error(err))
		return nil, true, fmt.Errorf("provider request: %w", domain.ErrProviderUnavailable)
	}
	defer resp.Body.Close()

	metrics.ProviderRequestsTotal.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("provider returned non-200",
			zap.String("path", path), zap.Int("status", resp.StatusCode))
		return nil, resp.StatusCode >= 500,
			fmt.Errorf("provider status %d: %w", resp.StatusCode, domain.ErrProviderUnavailable)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, fmt.Errorf("read provider response: %w", domain.ErrProviderUnavailable)
	}
	return data, false, nil
}
