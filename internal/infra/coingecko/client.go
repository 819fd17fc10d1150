package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/NasaVasa/cryptobot/internal/domain"
	"go.uber.org/zap"
)

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

// FetchQuotes issues one /simple/price request for all assetIDs. Assets the API
// does not know are absent from the result.
func (c *Client) FetchQuotes(ctx context.Context, assetIDs []string) (map[string]domain.Quote, error) {
	ids := uniqueSorted(assetIDs)
	if len(ids) == 0 {
		return map[string]domain.Quote{}, nil
	}

	query := url.Values{}
	query.Set("ids", strings.Join(ids, ","))
	query.Set("vs_currencies", "usd,eur,rub")
	query.Set("include_24hr_change", "true")

	var payload simplePriceResponse
	if err := c.getJSON(ctx, "/simple/price", query, &payload); err != nil {
		return nil, err
	}

	quotes := make(map[string]domain.Quote, len(payload))
	for assetID, price := range payload {
		quote, ok := price.toQuote()
		if !ok {
			continue
		}
		quotes[assetID] = quote
	}
	return quotes, nil
}

// getJSON performs a GET against the API and decodes the body into out. A 404
// wraps ErrAssetNotFound, every other failure wraps ErrUnavailable.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: build request: %v", domain.ErrUnavailable, err)
	}
	request.Header.Set("Accept", "application/json")

	start := time.Now()
	response, err := c.client.Do(request)
	if err != nil {
		c.logger.Warn("coingecko request failed", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}
	defer response.Body.Close()

	c.logger.Debug(
		"coingecko request complete",
		zap.String("path", path),
		zap.Int("status", response.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	switch {
	case response.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: coingecko %s", domain.ErrAssetNotFound, path)
	case response.StatusCode < 200 || response.StatusCode >= 300:
		return fmt.Errorf("%w: coingecko status %d", domain.ErrUnavailable, response.StatusCode)
	}

	if err := json.NewDecoder(response.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", domain.ErrUnavailable, err)
	}
	return nil
}

func uniqueSorted(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, value := range values {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		result = append(result, value)
	}
	sort.Strings(result)
	return result
}
