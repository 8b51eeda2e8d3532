package progress

// ClassifyAccounts builds the role map for a provider account list. The
// match on subtype is exact and case-sensitive; any other subtype (credit,
// money market, loan, ...) is left out entirely. An empty or
// all-unclassified input yields an empty map, which is a valid result.
func ClassifyAccounts(accounts []Account) RoleMap {
	roles := make(RoleMap, len(accounts))
	for _, account := range accounts {
		switch account.Subtype {
		case string(RoleChecking):
			roles[account.AccountID] = RoleChecking
		case string(RoleSavings):
			roles[account.AccountID] = RoleSavings
		}
	}
	return roles
}
