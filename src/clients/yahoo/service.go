package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"backoffice/src/config"
	"backoffice/src/schemas"
	"backoffice/src/utils/requests"

	"github.com/shopspring/decimal"
)

type ServiceClientI interface {
	FetchAssetData(ctx context.Context, ticker string) (*schemas.QuoteResponse, error)
}

type ServiceClient struct {
	API     *requests.ExternalAPIService
	BaseURL string
}

// NewClient creates a new instance of the Yahoo Finance service client
func NewClient(cfg *config.Config) *ServiceClient {
	baseURL := cfg.ExternalClients.Yahoo.BaseURL
	if baseURL == "" {
		baseURL = "https://query1.finance.yahoo.com"
	}
	return &ServiceClient{
		API:     requests.NewExternalAPIService(),
		BaseURL: baseURL,
	}
}

// FetchAssetData fetches quote data for a single ticker. Any failure (network,
// unknown ticker, malformed payload) is returned as an error; callers treat it
// uniformly as "no data".
func (c *ServiceClient) FetchAssetData(ctx context.Context, ticker string) (*schemas.QuoteResponse, error) {
	endpoint := fmt.Sprintf("%s/v7/finance/quote", c.BaseURL)

	params := url.Values{}
	params.Add("symbols", ticker)

	resp, err := c.API.Get(ctx, endpoint, params)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("quote lookup for %s returned status %d", ticker, resp.StatusCode)
	}

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var quoteResponse QuoteResponse
	if err := json.Unmarshal(responseBody, &quoteResponse); err != nil {
		return nil, err
	}

	results := quoteResponse.QuoteResponse.Result
	if len(results) == 0 {
		return nil, fmt.Errorf("no quote data for ticker %s", ticker)
	}
	result := results[0]

	name := result.LongName
	if name == "" {
		name = result.ShortName
	}
	if name == "" {
		name = ticker
	}
	exchange := result.FullExchangeName
	if exchange == "" {
		exchange = result.Exchange
	}
	if exchange == "" {
		exchange = "Unknown"
	}
	currency := result.Currency
	if currency == "" {
		currency = "USD"
	}

	quote := &schemas.QuoteResponse{
		Ticker:   strings.ToUpper(ticker),
		Name:     name,
		Exchange: exchange,
		Currency: currency,
	}
	if result.RegularMarketPrice != nil {
		price := decimal.NewFromFloat(*result.RegularMarketPrice)
		quote.CurrentPrice = &price
	}
	return quote, nil
}
