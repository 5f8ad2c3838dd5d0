package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// AccountTypes lists every account type in display order.
var AccountTypes = []AccountType{Asset, Liability, Equity, Revenue, Expense}

// IsValid reports whether t is a known account type.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity, Revenue, Expense:
		return true
	}
	return false
}

// AccountCategory refines an account type for budgeting and reporting.
type AccountCategory string

const (
	CategoryFixed    AccountCategory = "FIXED"
	CategoryVariable AccountCategory = "VARIABLE"
	CategorySaving   AccountCategory = "SAVING"
	CategoryGeneral  AccountCategory = "GENERAL"
)

// AccountRole tags an account with a special meaning for entry automation.
type AccountRole string

const (
	RoleNone      AccountRole = "NONE"
	RoleCash      AccountRole = "CASH"
	RoleCheckCard AccountRole = "CHECK_CARD"
)

// Account represents a ledger account owned by a single user.
type Account struct {
	AccountID   string          `json:"accountID"`
	UserID      string          `json:"userID"`
	Name        string          `json:"name"`
	AccountType AccountType     `json:"accountType"`
	Category    AccountCategory `json:"category"`
	Role        AccountRole     `json:"role"`
	AuditFields
}

// IsSaving reports whether the account is an asset held as savings.
func (a Account) IsSaving() bool {
	return a.AccountType == Asset && a.Category == CategorySaving
}

// AccountGroup is a set of accounts sharing one type.
type AccountGroup struct {
	AccountType AccountType `json:"accountType"`
	Accounts    []Account   `json:"accounts"`
}

// EntryOptions lists the accounts offered on each side of the entry form.
// Revenue accounts are never offered as debit and expense accounts never as credit.
type EntryOptions struct {
	Debit  []AccountGroup `json:"debit"`
	Credit []AccountGroup `json:"credit"`
}
