package contracts

import (
	"github.com/WanderingWalnut/HomeRun/internal/domain/progress"
	"github.com/WanderingWalnut/HomeRun/internal/plaid"
)

type ProgressResponse struct {
	Progress *progress.Report `json:"progress"`
}

type SnapshotResponse struct {
	Snapshot *progress.Snapshot `json:"snapshot"`
}

type BalancesResponse struct {
	Balances []plaid.AccountBalance `json:"balances"`
}

type TransactionsResponse struct {
	Transactions []progress.Transaction `json:"transactions"`
	Total        int                    `json:"total"`
}
