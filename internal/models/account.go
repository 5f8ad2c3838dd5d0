package models

// Account is the stored form of a ledger account.
type Account struct {
	AccountID   string `db:"account_id"`
	UserID      string `db:"user_id"`
	Name        string `db:"name"`
	AccountType string `db:"account_type"`
	Category    string `db:"category"`
	Role        string `db:"role"`
	AuditFields
}
