package schemas

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssetReference identifies the asset an allocation is created against:
// either an existing asset id or a ticker to resolve through the market-data
// lookup (creating the asset when needed).
type AssetReference struct {
	ID     *int
	Ticker string
}

type AllocationCreateRequest struct {
	ClientID int             `json:"client_id" validate:"required"`
	AssetID  string          `json:"asset_id" validate:"required"`
	Quantity decimal.Decimal `json:"quantity" validate:"required"`
	BuyPrice decimal.Decimal `json:"buy_price" validate:"required"`
	BuyDate  time.Time       `json:"buy_date" validate:"required"`
}

type AllocationUpdateRequest struct {
	Quantity *decimal.Decimal `json:"quantity"`
	BuyPrice *decimal.Decimal `json:"buy_price"`
	BuyDate  *time.Time       `json:"buy_date"`
}

// AllocationWithAsset joins an allocation with the identity of the asset it
// holds. CurrentValue is a placeholder filled by callers that price holdings.
type AllocationWithAsset struct {
	ID            int              `json:"id"`
	ClientID      int              `json:"client_id"`
	AssetID       int              `json:"asset_id"`
	Quantity      decimal.Decimal  `json:"quantity"`
	BuyPrice      decimal.Decimal  `json:"buy_price"`
	BuyDate       time.Time        `json:"buy_date"`
	AssetTicker   string           `json:"asset_ticker"`
	AssetName     string           `json:"asset_name"`
	AssetExchange string           `json:"asset_exchange"`
	AssetCurrency string           `json:"asset_currency"`
	CurrentValue  *decimal.Decimal `json:"current_value,omitempty"`
}
