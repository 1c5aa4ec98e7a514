package ledger

import "github.com/shopspring/decimal"

// Policy carries the injected business rules consumed by entry creation and
// the approval workflow. A zero threshold disables auto-approval.
type Policy struct {
	AutoApproveThreshold decimal.Decimal
	CurrencyPrecision    int32
}

// DefaultPolicy mirrors the production configuration defaults.
func DefaultPolicy() Policy {
	return Policy{
		AutoApproveThreshold: decimal.RequireFromString("500.00"),
		CurrencyPrecision:    2,
	}
}
