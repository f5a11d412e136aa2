package dto

import "time"

// LoginResponse is returned on a successful login (password or Google).
type LoginResponse struct {
	AccessToken string           `json:"accessToken"`
	ExpiresAt   time.Time        `json:"expiresAt"`
	Operator    OperatorResponse `json:"operator"`
}
