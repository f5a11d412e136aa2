package domain

// Location groups bars geographically (a city, a route, a neighbourhood).
type Location struct {
	LocationID string `json:"locationID"` // Primary Key (UUID)
	OperatorID string `json:"operatorID"` // Owning operator
	Name       string `json:"name"`
	City       string `json:"city"`
	Notes      string `json:"notes"`
	IsActive   bool   `json:"isActive"`
	AuditFields
}
