package models

type Asset struct {
	ID       int    `db:"id" json:"id"`
	Ticker   string `db:"ticker" json:"ticker"`
	Name     string `db:"name" json:"name"`
	Exchange string `db:"exchange" json:"exchange"`
	Currency string `db:"currency" json:"currency"`
}
