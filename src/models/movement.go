package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type MovementType string

const (
	MovementDeposit    MovementType = "deposit"
	MovementWithdrawal MovementType = "withdrawal"
)

type Movement struct {
	ID       int             `db:"id" json:"id"`
	ClientID int             `db:"client_id" json:"client_id"`
	Type     MovementType    `db:"type" json:"type"`
	Amount   decimal.Decimal `db:"amount" json:"amount"`
	Date     time.Time       `db:"date" json:"date"`
	Note     *string         `db:"note" json:"note,omitempty"`
}
