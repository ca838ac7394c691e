// Package oracle implements the Bell's USD-price lookup against a
// DefiLlama-style current-price endpoint. Oracle failures never block the
// raw-amount evaluation path; callers treat an error as "skip USD
// evaluation for this action".
package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/jito-foundation/bell/berr"
)

// DefaultBaseURL is the upstream DefiLlama-style current-price endpoint.
const DefaultBaseURL = "https://coins.llama.fi/prices/current"

// Client queries current USD prices by chain+address.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New builds a Client. The HTTP client uses the 30-second default timeout
// mandated for every external call this system makes.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type priceResponse struct {
	Coins map[string]struct {
		Price float64 `json:"price"`
	} `json:"coins"`
}

// Price fetches the current USD price for address on chain (e.g.
// "solana"). It returns a berr.Oracle error on any transport, status, or
// decode failure.
func (c *Client) Price(ctx context.Context, chain, address string) (float64, error) {
	key := fmt.Sprintf("%s:%s", chain, address)
	url := fmt.Sprintf("%s/%s", c.baseURL, key)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, berr.New(berr.Oracle, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, berr.New(berr.Oracle, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, berr.Newf(berr.Oracle, "oracle returned status %d for %s", resp.StatusCode, key)
	}

	var parsed priceResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return 0, berr.New(berr.Oracle, err)
	}

	entry, ok := parsed.Coins[key]
	if !ok {
		return 0, berr.Newf(berr.Oracle, "oracle response missing price for %s", key)
	}
	return entry.Price, nil
}
