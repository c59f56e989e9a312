package exchange

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ErrProviderUnavailable covers every way a rate lookup can fail: transport
// errors, non-200 responses and unparsable payloads. Callers only need to
// know the rate could not be obtained right now.
var ErrProviderUnavailable = errors.New("exchange rate provider unavailable")

const defaultTimeout = 10 * time.Second

// Client fetches daily mid-rates from the NBP table A endpoint.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type ratesResponse struct {
	Rates []struct {
		Mid float64 `json:"mid"`
	} `json:"rates"`
}

// Rate returns the mid-rate for the given currency on the given calendar
// date. The time of day is ignored.
func (c *Client) Rate(ctx context.Context, currency string, date time.Time) (float64, error) {
	day := date.Format("2006-01-02")
	url := fmt.Sprintf("%s/api/exchangerates/rates/a/%s/%s/%s?format=json",
		c.baseURL, strings.ToLower(currency), day, day)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: building request: %v", ErrProviderUnavailable, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("%w: unexpected status %d", ErrProviderUnavailable, resp.StatusCode)
	}

	var payload ratesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, fmt.Errorf("%w: decoding response: %v", ErrProviderUnavailable, err)
	}
	if len(payload.Rates) == 0 {
		return 0, fmt.Errorf("%w: empty rates list", ErrProviderUnavailable)
	}

	return payload.Rates[0].Mid, nil
}
