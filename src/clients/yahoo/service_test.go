package yahoo_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"backoffice/src/clients/yahoo"
	"backoffice/src/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) *yahoo.ServiceClient {
	cfg := &config.Config{}
	cfg.ExternalClients.Yahoo.BaseURL = baseURL
	return yahoo.NewClient(cfg)
}

func TestFetchAssetData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v7/finance/quote", r.URL.Path)
		assert.Equal(t, "PETR4.SA", r.URL.Query().Get("symbols"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"quoteResponse":{"result":[{
			"symbol":"PETR4.SA",
			"longName":"Petroleo Brasileiro S.A. - Petrobras",
			"shortName":"PETROBRAS PN",
			"fullExchangeName":"Sao Paulo",
			"currency":"BRL",
			"regularMarketPrice":38.52
		}],"error":null}}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	quote, err := client.FetchAssetData(context.Background(), "PETR4.SA")
	require.NoError(t, err)

	assert.Equal(t, "PETR4.SA", quote.Ticker)
	assert.Equal(t, "Petroleo Brasileiro S.A. - Petrobras", quote.Name)
	assert.Equal(t, "Sao Paulo", quote.Exchange)
	assert.Equal(t, "BRL", quote.Currency)
	require.NotNil(t, quote.CurrentPrice)
	assert.Equal(t, "38.52", quote.CurrentPrice.StringFixed(2))
}

func TestFetchAssetDataFallbacks(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"quoteResponse":{"result":[{"symbol":"xyz"}],"error":null}}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	quote, err := client.FetchAssetData(context.Background(), "xyz")
	require.NoError(t, err)

	assert.Equal(t, "XYZ", quote.Ticker)
	assert.Equal(t, "xyz", quote.Name)
	assert.Equal(t, "Unknown", quote.Exchange)
	assert.Equal(t, "USD", quote.Currency)
	assert.Nil(t, quote.CurrentPrice)
}

func TestFetchAssetDataNoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"quoteResponse":{"result":[],"error":null}}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.FetchAssetData(context.Background(), "NOPE")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no quote data")
}

func TestFetchAssetDataHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.FetchAssetData(context.Background(), "AAPL")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
}
