package dto

import (
	"time"

	"github.com/dartsops/darts_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCollectionRequest defines the data needed to record a cash collection.
// The split amounts are computed server-side; the client only supplies the
// counted total and any extra payment made to the bar.
type CreateCollectionRequest struct {
	MachineID       int64           `json:"machineID" binding:"required"`
	TotalCollection decimal.Decimal `json:"totalCollection" binding:"gte=0"`
	ExtraAmount     decimal.Decimal `json:"extraAmount" binding:"gte=0"`
	Comments        string          `json:"comments"`
}

// CollectionResponse defines the data returned for a collection record.
type CollectionResponse struct {
	CollectionID    string          `json:"collectionID"`
	MachineID       int64           `json:"machineID"`
	BarID           int64           `json:"barID"`
	BarName         string          `json:"barName"`
	TotalCollection decimal.Decimal `json:"totalCollection"`
	BarAmount       decimal.Decimal `json:"barAmount"`
	BusinessAmount  decimal.Decimal `json:"businessAmount"`
	ExtraAmount     decimal.Decimal `json:"extraAmount"`
	Comments        string          `json:"comments"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// CreateCollectionResponse is the CollectionResponse extended with the
// machine's odometer pair for display on the entry screen.
type CreateCollectionResponse struct {
	CollectionResponse
	OldCounter decimal.Decimal `json:"oldCounter"`
	NewCounter decimal.Decimal `json:"newCounter"`
}

// CollectionDraftResponse shows the split a draft would persist with, so the
// entry screen can display amounts as the operator types.
type CollectionDraftResponse struct {
	TotalCollection decimal.Decimal `json:"totalCollection"`
	BarAmount       decimal.Decimal `json:"barAmount"`
	BusinessAmount  decimal.Decimal `json:"businessAmount"`
	ExtraAmount     decimal.Decimal `json:"extraAmount"`
}

// ListCollectionsParams defines query parameters for listing collection history.
// A missing or zero limit falls back to the service's configured page size.
type ListCollectionsParams struct {
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// ListCollectionsResponse wraps one page of collection history.
// NextToken is nil when there are no further pages.
type ListCollectionsResponse struct {
	Collections []CollectionResponse `json:"collections"`
	NextToken   *string              `json:"nextToken,omitempty"`
}

// ToCollectionResponse converts a domain.CollectionRecord to CollectionResponse DTO
func ToCollectionResponse(r *domain.CollectionRecord) CollectionResponse {
	return CollectionResponse{
		CollectionID:    r.CollectionID,
		MachineID:       r.MachineID,
		BarID:           r.BarID,
		BarName:         r.BarName,
		TotalCollection: r.TotalCollection,
		BarAmount:       r.BarAmount,
		BusinessAmount:  r.BusinessAmount,
		ExtraAmount:     r.ExtraAmount,
		Comments:        r.Comments,
		Status:          string(r.Status),
		CreatedAt:       r.CreatedAt,
	}
}

// ToListCollectionsResponse converts one repository page to the list DTO
func ToListCollectionsResponse(records []domain.CollectionRecord, nextToken *string) ListCollectionsResponse {
	res := make([]CollectionResponse, len(records))
	for i, r := range records {
		res[i] = ToCollectionResponse(&r)
	}
	return ListCollectionsResponse{Collections: res, NextToken: nextToken}
}
