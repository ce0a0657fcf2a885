package finnhub

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
)

// CompanyProfile is the slice of Finnhub's /stock/profile2 payload we use.
// Pointer fields keep "missing from the payload" distinguishable from zero;
// Finnhub answers unknown symbols with an empty object.
type CompanyProfile struct {
	MarketCapitalization *float64 `json:"marketCapitalization"`
	ShareOutstanding     *float64 `json:"shareOutstanding"`
}

// Client calls the Finnhub REST API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	client := retryablehttp.NewClient()
	client.Logger = nil

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: client.StandardClient(),
	}
}

// CompanyProfile fetches market statistics for a ticker symbol.
func (c *Client) CompanyProfile(symbol string) (*CompanyProfile, error) {
	query := url.Values{}
	query.Set("symbol", symbol)
	query.Set("token", c.apiKey)

	resp, err := c.httpClient.Get(c.baseURL + "/stock/profile2?" + query.Encode())
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("finnhub returned status %v: %v", resp.StatusCode, string(body))
	}

	var profile CompanyProfile
	if err := json.Unmarshal(body, &profile); err != nil {
		return nil, fmt.Errorf("%v: %w", string(body), err)
	}

	return &profile, nil
}
