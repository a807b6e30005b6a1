package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Allocation struct {
	ID       int             `db:"id" json:"id"`
	ClientID int             `db:"client_id" json:"client_id"`
	AssetID  int             `db:"asset_id" json:"asset_id"`
	Quantity decimal.Decimal `db:"quantity" json:"quantity"`
	BuyPrice decimal.Decimal `db:"buy_price" json:"buy_price"`
	BuyDate  time.Time       `db:"buy_date" json:"buy_date"`
}
