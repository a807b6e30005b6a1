package yahoo

// QuoteResponse mirrors the subset of the Yahoo Finance quote payload we read.
type QuoteResponse struct {
	QuoteResponse struct {
		Result []QuoteResult `json:"result"`
		Error  interface{}   `json:"error"`
	} `json:"quoteResponse"`
}

type QuoteResult struct {
	Symbol             string   `json:"symbol"`
	LongName           string   `json:"longName"`
	ShortName          string   `json:"shortName"`
	FullExchangeName   string   `json:"fullExchangeName"`
	Exchange           string   `json:"exchange"`
	Currency           string   `json:"currency"`
	RegularMarketPrice *float64 `json:"regularMarketPrice"`
}
