package progress

import "math"

// Calculate turns one week of classified transactions into a progress
// report.
//
// Savings accounts: every strictly positive amount counts as a transfer
// into savings. Sign is the only signal; the category labels are ignored,
// so a negative transaction tagged "Transfer" contributes nothing.
//
// Checking accounts: amounts accumulate into per-date totals. Each date
// whose absolute total stays under DailyLimit earns the difference as
// daily savings. A day spent exactly at the limit earns nothing, and days
// without checking activity never appear at all.
//
// The function is total: empty input produces a zero-progress report.
func Calculate(transactions []Transaction, roles RoleMap, policy Policy) Report {
	var savingsTransfers float64
	dailySpending := make(map[Date]float64)

	for _, txn := range transactions {
		switch roles[txn.AccountID] {
		case RoleSavings:
			if txn.Amount > 0 {
				savingsTransfers += txn.Amount
			}
		case RoleChecking:
			dailySpending[txn.Date] += txn.Amount
		}
	}

	var dailySavings float64
	for _, total := range dailySpending {
		spent := math.Abs(total)
		if spent < policy.DailyLimit {
			dailySavings += policy.DailyLimit - spent
		}
	}

	weeklyProgress := dailySavings + savingsTransfers
	weeklyHomeRuns := weeklyProgress / policy.WeeklyTarget

	return Report{
		WeeklyProgress:           weeklyProgress,
		DailySavings:             dailySavings,
		SavingsTransfers:         savingsTransfers,
		WeeklyHomeRuns:           weeklyHomeRuns,
		WeeklyProgressPercentage: weeklyHomeRuns * 100,
		WeeklyTarget:             policy.WeeklyTarget,
		DownPaymentTarget:        policy.DownPaymentTarget,
		HomeRunsNeeded:           policy.DownPaymentTarget / policy.WeeklyTarget,
	}
}
