package models

// Location represents a row in the locations table.
type Location struct {
	LocationID string `db:"location_id"`
	OperatorID string `db:"operator_id"`
	Name       string `db:"name"`
	City       string `db:"city"`
	Notes      string `db:"notes"`
	IsActive   bool   `db:"is_active"`
	AuditFields
}
