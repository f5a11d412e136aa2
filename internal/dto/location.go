package dto

import (
	"time"

	"github.com/dartsops/darts_management_app/internal/core/domain"
)

// CreateLocationRequest defines the data needed to register a new location.
type CreateLocationRequest struct {
	Name  string `json:"name" binding:"required"`
	City  string `json:"city" binding:"required"`
	Notes string `json:"notes"`
}

// UpdateLocationRequest defines the data allowed for updating a location.
type UpdateLocationRequest struct {
	Name     *string `json:"name"`
	City     *string `json:"city"`
	Notes    *string `json:"notes"`
	IsActive *bool   `json:"isActive"`
}

// LocationResponse defines the data returned for a location.
type LocationResponse struct {
	LocationID    string    `json:"locationID"`
	Name          string    `json:"name"`
	City          string    `json:"city"`
	Notes         string    `json:"notes"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ListLocationsParams defines query parameters for listing locations.
type ListLocationsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListLocationsResponse wraps the list of locations.
type ListLocationsResponse struct {
	Locations []LocationResponse `json:"locations"`
}

// ToLocationResponse converts a domain.Location to LocationResponse DTO
func ToLocationResponse(l *domain.Location) LocationResponse {
	return LocationResponse{
		LocationID:    l.LocationID,
		Name:          l.Name,
		City:          l.City,
		Notes:         l.Notes,
		IsActive:      l.IsActive,
		CreatedAt:     l.CreatedAt,
		LastUpdatedAt: l.LastUpdatedAt,
	}
}

// ToListLocationsResponse converts a slice of domain.Location to the list DTO
func ToListLocationsResponse(locations []domain.Location) ListLocationsResponse {
	res := make([]LocationResponse, len(locations))
	for i, l := range locations {
		res[i] = ToLocationResponse(&l)
	}
	return ListLocationsResponse{Locations: res}
}
