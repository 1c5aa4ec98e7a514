package account

// TemplateAccount is one (code, name, type) tuple of a chart template.
// The normal balance follows from the type.
type TemplateAccount struct {
	Code string
	Name string
	Type Type
}

// TemplateUSGAAPStartup is the built-in chart applied to new entities.
const TemplateUSGAAPStartup = "us-gaap-startup"

var templates = map[string][]TemplateAccount{
	TemplateUSGAAPStartup: {
		{Code: "11000", Name: "Cash and Cash Equivalents", Type: TypeAsset},
		{Code: "12000", Name: "Accounts Receivable", Type: TypeAsset},
		{Code: "13000", Name: "Prepaid Expenses", Type: TypeAsset},
		{Code: "15000", Name: "Property and Equipment", Type: TypeAsset},
		{Code: "21000", Name: "Accounts Payable", Type: TypeLiability},
		{Code: "22000", Name: "Accrued Liabilities", Type: TypeLiability},
		{Code: "23000", Name: "Deferred Revenue", Type: TypeLiability},
		{Code: "31000", Name: "Members' Capital", Type: TypeEquity},
		{Code: "32000", Name: "Retained Earnings", Type: TypeEquity},
		{Code: "41000", Name: "Service Revenue", Type: TypeRevenue},
		{Code: "42000", Name: "Product Revenue", Type: TypeRevenue},
		{Code: "51000", Name: "Payroll and Benefits", Type: TypeExpense},
		{Code: "52000", Name: "Rent and Facilities", Type: TypeExpense},
		{Code: "53000", Name: "Software and Subscriptions", Type: TypeExpense},
		{Code: "54000", Name: "Professional Services", Type: TypeExpense},
		{Code: "55000", Name: "Travel and Entertainment", Type: TypeExpense},
		{Code: "59000", Name: "Miscellaneous Expense", Type: TypeExpense},
	},
}

// Template returns the accounts of a named template.
func Template(id string) ([]TemplateAccount, bool) {
	t, ok := templates[id]
	return t, ok
}
