package dto

import (
	"time"

	"github.com/dartsops/darts_management_app/internal/core/domain"
)

// CreateBarRequest defines the data needed to register a new bar.
type CreateBarRequest struct {
	LocationID string `json:"locationID" binding:"required"`
	Name       string `json:"name" binding:"required"`
	OwnerName  string `json:"ownerName" binding:"required"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
}

// UpdateBarRequest defines the data allowed for updating a bar.
type UpdateBarRequest struct {
	LocationID *string `json:"locationID"`
	Name       *string `json:"name"`
	OwnerName  *string `json:"ownerName"`
	Phone      *string `json:"phone"`
	Address    *string `json:"address"`
	IsActive   *bool   `json:"isActive"`
}

// BarResponse defines the data returned for a bar.
type BarResponse struct {
	BarID         int64     `json:"barID"`
	LocationID    string    `json:"locationID"`
	Name          string    `json:"name"`
	OwnerName     string    `json:"ownerName"`
	Phone         string    `json:"phone"`
	Address       string    `json:"address"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ListBarsParams defines query parameters for listing bars.
type ListBarsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListBarsResponse wraps the list of bars.
type ListBarsResponse struct {
	Bars []BarResponse `json:"bars"`
}

// ToBarResponse converts a domain.Bar to BarResponse DTO
func ToBarResponse(b *domain.Bar) BarResponse {
	return BarResponse{
		BarID:         b.BarID,
		LocationID:    b.LocationID,
		Name:          b.Name,
		OwnerName:     b.OwnerName,
		Phone:         b.Phone,
		Address:       b.Address,
		IsActive:      b.IsActive,
		CreatedAt:     b.CreatedAt,
		LastUpdatedAt: b.LastUpdatedAt,
	}
}

// ToListBarsResponse converts a slice of domain.Bar to the list DTO
func ToListBarsResponse(bars []domain.Bar) ListBarsResponse {
	res := make([]BarResponse, len(bars))
	for i, b := range bars {
		res[i] = ToBarResponse(&b)
	}
	return ListBarsResponse{Bars: res}
}
