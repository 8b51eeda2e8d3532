package progress

// AccountRole is the recognized use of a bank account. Only checking and
// savings accounts participate in progress calculation.
type AccountRole string

const (
	RoleChecking AccountRole = "checking"
	RoleSavings  AccountRole = "savings"
)

// RoleMap maps account ids to their recognized role. Accounts absent from
// the map are excluded from all downstream processing.
type RoleMap map[string]AccountRole

// Account is a bank account record as returned by the data provider.
// Subtype is provider free text; only the exact values "checking" and
// "savings" mean anything here.
type Account struct {
	AccountID string `json:"account_id"`
	Name      string `json:"name"`
	Subtype   string `json:"subtype"`
}

// Transaction is a single dated, signed bank transaction. The sign
// convention is the provider's: on checking accounts positive means money
// leaving, on savings accounts positive means a deposit.
type Transaction struct {
	AccountID string   `json:"account_id"`
	Date      Date     `json:"date"`
	Amount    float64  `json:"amount"`
	Name      string   `json:"name"`
	Category  []string `json:"category"`
}

// Policy holds the three savings-progress constants. WeeklyTarget must be
// positive; config validation guarantees that before a Policy reaches the
// calculator.
type Policy struct {
	DailyLimit        float64
	WeeklyTarget      float64
	DownPaymentTarget float64
}

// Report is the weekly savings-progress result. All values carry full
// float precision; rounding is a presentation concern.
type Report struct {
	WeeklyProgress           float64 `json:"weekly_progress"`
	DailySavings             float64 `json:"daily_savings"`
	SavingsTransfers         float64 `json:"savings_transfers"`
	WeeklyHomeRuns           float64 `json:"weekly_home_runs"`
	WeeklyProgressPercentage float64 `json:"weekly_progress_percentage"`
	WeeklyTarget             float64 `json:"weekly_target"`
	DownPaymentTarget        float64 `json:"down_payment_target"`
	HomeRunsNeeded           float64 `json:"home_runs_needed"`
}
