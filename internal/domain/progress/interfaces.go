package progress

import (
	"context"
	"time"
)

// BankClient is the slice of the banking-data provider the progress
// service needs. A failed fetch is always a non-nil error, never an empty
// list.
type BankClient interface {
	GetAccounts(ctx context.Context, accessToken string) ([]Account, error)
	GetTransactions(ctx context.Context, accessToken string, start, end Date) ([]Transaction, error)
}

// SnapshotRepository persists progress snapshots. Upsert has merge
// semantics keyed by user id.
type SnapshotRepository interface {
	Upsert(ctx context.Context, snapshot *Snapshot) error
	GetByUserID(ctx context.Context, userID string) (*Snapshot, error)
}

// Clock supplies the current time so the weekly window is testable.
type Clock func() time.Time
