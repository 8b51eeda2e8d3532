package plaid

import "github.com/WanderingWalnut/HomeRun/internal/domain/progress"

// credentials is embedded into every request body per the Plaid wire
// protocol.
type credentials struct {
	ClientID string `json:"client_id"`
	Secret   string `json:"secret"`
}

// ExchangeResult is the outcome of a public-token exchange.
type ExchangeResult struct {
	AccessToken string `json:"access_token"`
	ItemID      string `json:"item_id"`
}

// AccountBalance is the balance view of one account.
type AccountBalance struct {
	AccountID string   `json:"account_id"`
	Name      string   `json:"name"`
	Subtype   string   `json:"subtype"`
	Current   float64  `json:"current"`
	Available *float64 `json:"available,omitempty"`
}

type itemPublicTokenExchangeRequest struct {
	credentials
	PublicToken string `json:"public_token"`
}

type itemPublicTokenExchangeResponse struct {
	AccessToken string `json:"access_token"`
	ItemID      string `json:"item_id"`
	RequestID   string `json:"request_id"`
}

type sandboxPublicTokenCreateRequest struct {
	credentials
	InstitutionID   string   `json:"institution_id"`
	InitialProducts []string `json:"initial_products"`
}

type sandboxPublicTokenCreateResponse struct {
	PublicToken string `json:"public_token"`
	RequestID   string `json:"request_id"`
}

type accountsGetRequest struct {
	credentials
	AccessToken string `json:"access_token"`
}

type accountsGetResponse struct {
	Accounts []struct {
		AccountID string `json:"account_id"`
		Name      string `json:"name"`
		Subtype   string `json:"subtype"`
		Balances  struct {
			Current   float64  `json:"current"`
			Available *float64 `json:"available"`
		} `json:"balances"`
	} `json:"accounts"`
	RequestID string `json:"request_id"`
}

type transactionsGetRequest struct {
	credentials
	AccessToken string `json:"access_token"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

type transactionsGetResponse struct {
	Transactions      []progress.Transaction `json:"transactions"`
	TotalTransactions int                    `json:"total_transactions"`
	RequestID         string                 `json:"request_id"`
}
