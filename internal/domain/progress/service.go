package progress

import (
	"context"
	"time"

	appErrors "github.com/WanderingWalnut/HomeRun/internal/errors"
	"github.com/WanderingWalnut/HomeRun/internal/logger"
	"github.com/WanderingWalnut/HomeRun/internal/pkg"
)

// LookbackDays is how far back transactions are fetched from the
// provider. The weekly window is then cut out of that range locally.
const LookbackDays = 30

type Service struct {
	Bank       BankClient
	Repository SnapshotRepository
	Policy     Policy
	Now        Clock
}

func NewService(bank BankClient, repo SnapshotRepository, policy Policy) *Service {
	return &Service{
		Bank:       bank,
		Repository: repo,
		Policy:     policy,
		Now:        time.Now,
	}
}

// ComputeProgress runs the full pipeline for one user: fetch accounts,
// classify, fetch the 30-day transaction range, cut the weekly window,
// calculate, and persist the snapshot.
func (s *Service) ComputeProgress(ctx context.Context, userID, accessToken string) (*Report, error) {
	accounts, err := s.Bank.GetAccounts(ctx, accessToken)
	if err != nil {
		return nil, appErrors.NewProviderError(err)
	}

	roles := ClassifyAccounts(accounts)

	today := DateOf(s.Now())
	transactions, err := s.Bank.GetTransactions(ctx, accessToken, today.AddDays(-LookbackDays), today)
	if err != nil {
		return nil, appErrors.NewProviderError(err)
	}

	weekly := FilterWeek(transactions, roles, today)
	report := Calculate(weekly, roles, s.Policy)

	logger.Info().
		Str("user_id", userID).
		Int("accounts", len(accounts)).
		Int("classified", len(roles)).
		Int("weekly_transactions", len(weekly)).
		Float64("weekly_progress", report.WeeklyProgress).
		Msg("progress computed")

	snapshot := &Snapshot{
		Id:          pkg.GenerateULIDObject(),
		UserID:      userID,
		Report:      report,
		AccessToken: accessToken,
		CreatedAt:   s.Now(),
		UpdatedAt:   s.Now(),
	}
	if err := s.Repository.Upsert(ctx, snapshot); err != nil {
		logger.Warn().Err(err).Str("user_id", userID).Msg("snapshot persist failed")
		return nil, err
	}

	return &report, nil
}

// GetSnapshot returns the last stored snapshot for the user.
func (s *Service) GetSnapshot(ctx context.Context, userID string) (*Snapshot, error) {
	snapshot, err := s.Repository.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if snapshot == nil {
		return nil, appErrors.ErrSnapshotNotFound
	}
	return snapshot, nil
}
