package schemas

import "github.com/shopspring/decimal"

type AssetCreateRequest struct {
	Ticker   string `json:"ticker" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Exchange string `json:"exchange" validate:"required"`
	Currency string `json:"currency" validate:"required"`
}

type AssetUpdateRequest struct {
	Ticker   *string `json:"ticker"`
	Name     *string `json:"name"`
	Exchange *string `json:"exchange"`
	Currency *string `json:"currency"`
}

// QuoteResponse is the normalized market-data lookup result for a ticker.
type QuoteResponse struct {
	Ticker       string           `json:"ticker"`
	Name         string           `json:"name"`
	Exchange     string           `json:"exchange"`
	Currency     string           `json:"currency"`
	CurrentPrice *decimal.Decimal `json:"current_price,omitempty"`
}
