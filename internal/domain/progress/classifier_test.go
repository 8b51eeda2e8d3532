package progress_test

import (
	"testing"

	"github.com/WanderingWalnut/HomeRun/internal/domain/progress"
)

func TestClassifyAccounts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		accounts []progress.Account
		want     progress.RoleMap
	}{
		{
			name:     "empty input yields empty map",
			accounts: nil,
			want:     progress.RoleMap{},
		},
		{
			name: "checking and savings recognized",
			accounts: []progress.Account{
				{AccountID: "a1", Subtype: "checking"},
				{AccountID: "a2", Subtype: "savings"},
			},
			want: progress.RoleMap{
				"a1": progress.RoleChecking,
				"a2": progress.RoleSavings,
			},
		},
		{
			name: "other subtypes excluded",
			accounts: []progress.Account{
				{AccountID: "a1", Subtype: "credit card"},
				{AccountID: "a2", Subtype: "money market"},
				{AccountID: "a3", Subtype: "savings"},
			},
			want: progress.RoleMap{
				"a3": progress.RoleSavings,
			},
		},
		{
			name: "match is exact and case sensitive",
			accounts: []progress.Account{
				{AccountID: "a1", Subtype: "Checking"},
				{AccountID: "a2", Subtype: "SAVINGS"},
				{AccountID: "a3", Subtype: " checking"},
			},
			want: progress.RoleMap{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := progress.ClassifyAccounts(tt.accounts)

			if len(got) != len(tt.want) {
				t.Fatalf("got %d entries, want %d: %v", len(got), len(tt.want), got)
			}
			for id, role := range tt.want {
				if got[id] != role {
					t.Errorf("account %s: got role %q, want %q", id, got[id], role)
				}
			}
		})
	}
}

func TestClassifyAccountsOrderIndependent(t *testing.T) {
	t.Parallel()

	accounts := []progress.Account{
		{AccountID: "a1", Subtype: "checking"},
		{AccountID: "a2", Subtype: "savings"},
		{AccountID: "a3", Subtype: "credit"},
	}
	reversed := []progress.Account{accounts[2], accounts[1], accounts[0]}

	forward := progress.ClassifyAccounts(accounts)
	backward := progress.ClassifyAccounts(reversed)

	if len(forward) != len(backward) {
		t.Fatalf("ordering changed result size: %v vs %v", forward, backward)
	}
	for id, role := range forward {
		if backward[id] != role {
			t.Errorf("ordering changed role for %s: %q vs %q", id, role, backward[id])
		}
	}
}
