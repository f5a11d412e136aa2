package domain

// AuthProvider identifies how an operator account authenticates.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "LOCAL"
	ProviderGoogle AuthProvider = "GOOGLE"
)

// Operator is a business owner/employee who runs the dart machine routes.
// All locations, bars, machines and collections are scoped to one operator.
type Operator struct {
	OperatorID     string       `json:"operatorID"` // Primary Key (UUID)
	Name           string       `json:"name"`
	Username       string       `json:"username"` // Unique login name
	Email          string       `json:"email"`
	PasswordHash   string       `json:"-"` // Empty for externally-authenticated operators
	AuthProvider   AuthProvider `json:"authProvider"`
	ProviderUserID string       `json:"-"` // Subject claim from the external provider, if any
	IsActive       bool         `json:"isActive"`
	AuditFields
}

// GoogleUserInfo holds the subset of the Google userinfo payload we care about.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}
