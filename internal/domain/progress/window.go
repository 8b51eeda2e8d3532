package progress

// FilterWeek keeps the transactions that fall inside the trailing 7-day
// window ending today (inclusive on both ends) and belong to a classified
// account. The calculator relies on its input already being filtered this
// way and never re-checks dates or account membership itself.
func FilterWeek(transactions []Transaction, roles RoleMap, today Date) []Transaction {
	weekStart := today.AddDays(-7)

	filtered := make([]Transaction, 0, len(transactions))
	for _, txn := range transactions {
		if _, ok := roles[txn.AccountID]; !ok {
			continue
		}
		if !txn.Date.Between(weekStart, today) {
			continue
		}
		filtered = append(filtered, txn)
	}
	return filtered
}
