package models

// Operator represents a row in the operators table.
type Operator struct {
	OperatorID     string `db:"operator_id"`
	Name           string `db:"name"`
	Username       string `db:"username"`
	Email          string `db:"email"`
	PasswordHash   string `db:"password_hash"` // Nullable for external providers
	AuthProvider   string `db:"auth_provider"`
	ProviderUserID string `db:"provider_user_id"` // Nullable
	IsActive       bool   `db:"is_active"`
	AuditFields
}
