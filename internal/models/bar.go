package models

// Bar represents a row in the bars table.
type Bar struct {
	BarID      int64  `db:"bar_id"`
	OperatorID string `db:"operator_id"`
	LocationID string `db:"location_id"`
	Name       string `db:"name"`
	OwnerName  string `db:"owner_name"`
	Phone      string `db:"phone"`
	Address    string `db:"address"`
	IsActive   bool   `db:"is_active"`
	AuditFields
}
