package feargreed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/NasaVasa/cryptobot/internal/domain"
	"go.uber.org/zap"
)

// Client reads the crypto fear and greed index from alternative.me.
type Client struct {
	baseURL string
	timeout time.Duration
	client  *http.Client
	logger  *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// FearGreed returns the latest index reading.
func (c *Client) FearGreed(ctx context.Context) (domain.FearGreed, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/fng/?limit=1", nil)
	if err != nil {
		return domain.FearGreed{}, fmt.Errorf("%w: build request: %v", domain.ErrUnavailable, err)
	}
	request.Header.Set("Accept", "application/json")

	response, err := c.client.Do(request)
	if err != nil {
		c.logger.Warn("fear and greed request failed", zap.Error(err))
		return domain.FearGreed{}, fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return domain.FearGreed{}, fmt.Errorf("%w: fear and greed status %d", domain.ErrUnavailable, response.StatusCode)
	}

	var payload indexResponse
	if err := json.NewDecoder(response.Body).Decode(&payload); err != nil {
		return domain.FearGreed{}, fmt.Errorf("%w: decode response: %v", domain.ErrUnavailable, err)
	}
	if len(payload.Data) == 0 {
		return domain.FearGreed{}, fmt.Errorf("%w: empty fear and greed response", domain.ErrUnavailable)
	}

	reading, err := payload.Data[0].toFearGreed()
	if err != nil {
		return domain.FearGreed{}, fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}
	c.logger.Debug("fear and greed index fetched", zap.Int("value", reading.Value))
	return reading, nil
}

// indexResponse is the /fng/ body. The API encodes every number as a string.
type indexResponse struct {
	Data []indexEntry `json:"data"`
}

type indexEntry struct {
	Value           string `json:"value"`
	Classification  string `json:"value_classification"`
	Timestamp       string `json:"timestamp"`
	TimeUntilUpdate string `json:"time_until_update"`
}

func (e indexEntry) toFearGreed() (domain.FearGreed, error) {
	value, err := strconv.Atoi(e.Value)
	if err != nil {
		return domain.FearGreed{}, fmt.Errorf("parse value %q: %w", e.Value, err)
	}
	reading := domain.FearGreed{Value: value, Classification: e.Classification}
	if seconds, err := strconv.ParseInt(e.Timestamp, 10, 64); err == nil {
		reading.Timestamp = time.Unix(seconds, 0).UTC()
	}
	if seconds, err := strconv.ParseInt(e.TimeUntilUpdate, 10, 64); err == nil {
		reading.NextUpdate = time.Duration(seconds) * time.Second
	}
	return reading, nil
}
