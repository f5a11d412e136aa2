package dto

// ExportParams defines query parameters for the date-range collection export.
// Dates are YYYY-MM-DD; toDate is exclusive and defaults to "now".
type ExportParams struct {
	FromDate string `form:"fromDate" binding:"required"`
	ToDate   string `form:"toDate"`
	Format   string `form:"format,default=csv" binding:"omitempty,oneof=csv xlsx"`
}
