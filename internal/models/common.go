package models

import "time"

// AuditFields holds the creation and update timestamps stored on every row.
type AuditFields struct {
	CreatedAt     time.Time `db:"created_at"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
}
