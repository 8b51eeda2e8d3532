package progress_test

import (
	"testing"
	"time"

	"github.com/WanderingWalnut/HomeRun/internal/domain/progress"
)

func TestFilterWeekBoundariesInclusive(t *testing.T) {
	t.Parallel()

	today := progress.NewDate(2025, time.March, 15)
	roles := progress.RoleMap{"chk": progress.RoleChecking}

	txns := []progress.Transaction{
		{AccountID: "chk", Date: today.AddDays(-8), Amount: -1},  // too old
		{AccountID: "chk", Date: today.AddDays(-7), Amount: -2},  // lower bound, kept
		{AccountID: "chk", Date: today.AddDays(-3), Amount: -3},  // kept
		{AccountID: "chk", Date: today, Amount: -4},              // upper bound, kept
		{AccountID: "chk", Date: today.AddDays(1), Amount: -5},   // future
	}

	got := progress.FilterWeek(txns, roles, today)

	if len(got) != 3 {
		t.Fatalf("kept %d transactions, want 3: %v", len(got), got)
	}
	for _, txn := range got {
		if txn.Amount == -1 || txn.Amount == -5 {
			t.Errorf("kept out-of-window transaction %+v", txn)
		}
	}
}

func TestFilterWeekDropsUnclassifiedAccounts(t *testing.T) {
	t.Parallel()

	today := progress.NewDate(2025, time.March, 15)
	roles := progress.RoleMap{"sav": progress.RoleSavings}

	txns := []progress.Transaction{
		{AccountID: "sav", Date: today, Amount: 10},
		{AccountID: "credit", Date: today, Amount: 10},
	}

	got := progress.FilterWeek(txns, roles, today)

	if len(got) != 1 {
		t.Fatalf("kept %d transactions, want 1", len(got))
	}
	if got[0].AccountID != "sav" {
		t.Errorf("kept transaction for %s, want sav", got[0].AccountID)
	}
}

func TestFilterWeekEmptyInput(t *testing.T) {
	t.Parallel()

	today := progress.NewDate(2025, time.March, 15)

	got := progress.FilterWeek(nil, progress.RoleMap{}, today)

	if len(got) != 0 {
		t.Fatalf("kept %d transactions from empty input", len(got))
	}
}
