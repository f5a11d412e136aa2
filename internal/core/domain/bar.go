package domain

// Bar is a venue hosting one or more dart machines.
type Bar struct {
	BarID      int64  `json:"barID"` // Primary Key (sequence)
	OperatorID string `json:"operatorID"`
	LocationID string `json:"locationID"`
	Name       string `json:"name"`
	OwnerName  string `json:"ownerName"` // Bar owner, receives the 40% share
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	IsActive   bool   `json:"isActive"`
	AuditFields
}
