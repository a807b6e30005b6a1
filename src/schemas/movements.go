package schemas

import (
	"time"

	"github.com/shopspring/decimal"
)

type MovementCreateRequest struct {
	ClientID int             `json:"client_id" validate:"required"`
	Type     string          `json:"type" validate:"required,oneof=deposit withdrawal"`
	Amount   decimal.Decimal `json:"amount" validate:"required"`
	Date     time.Time       `json:"date" validate:"required"`
	Note     *string         `json:"note"`
}

type MovementUpdateRequest struct {
	Type   *string          `json:"type" validate:"omitempty,oneof=deposit withdrawal"`
	Amount *decimal.Decimal `json:"amount"`
	Date   *time.Time       `json:"date"`
	Note   *string          `json:"note"`
}

// PeriodFilter bounds a movement selection; every field is optional and every
// bound is inclusive.
type PeriodFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	ClientID  *int
}

type MovementWithClient struct {
	ID          int             `json:"id"`
	ClientID    int             `json:"client_id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Note        *string         `json:"note,omitempty"`
	ClientName  string          `json:"client_name"`
	ClientEmail string          `json:"client_email"`
}

type MovementSummary struct {
	TotalDeposits    decimal.Decimal `json:"total_deposits"`
	TotalWithdrawals decimal.Decimal `json:"total_withdrawals"`
	NetFlow          decimal.Decimal `json:"net_flow"`
	MovementCount    int             `json:"movement_count"`
}

// ClientSummary is one entry of the office-wide breakdown.
type ClientSummary struct {
	ClientID    int             `json:"client_id"`
	ClientName  string          `json:"client_name"`
	ClientEmail string          `json:"client_email"`
	Summary     MovementSummary `json:"summary"`
}

type OfficeSummary struct {
	TotalDeposits    decimal.Decimal `json:"total_deposits"`
	TotalWithdrawals decimal.Decimal `json:"total_withdrawals"`
	NetFlow          decimal.Decimal `json:"net_flow"`
	TotalMovements   int             `json:"total_movements"`
	ClientSummaries  []ClientSummary `json:"client_summaries"`
}

type BalanceResponse struct {
	ClientID int             `json:"client_id"`
	Balance  decimal.Decimal `json:"balance"`
	AsOfDate time.Time       `json:"as_of_date"`
}
