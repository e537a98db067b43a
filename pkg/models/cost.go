package models

import "avrental/pkg/metadata"

// Cost is money spent with a vendor on a confirmed job. Projected is the
// estimate, Actual what was invoiced (zero until known).
type Cost struct {
	ID             int                     `json:"cost_id" db:"id"`
	QuoteID        int                     `json:"job_id" db:"quote_id"`
	VendorID       int                     `json:"vendor_id" db:"vendor_id"`
	VendorCategory metadata.VendorCategory `json:"vendor_category" db:"vendor_category"`
	ProjectedCents int64                   `json:"projected_cost_cents" db:"projected_cents"`
	ActualCents    int64                   `json:"actual_cost_cents" db:"actual_cents"`
	Notes          *string                 `json:"notes,omitempty" db:"notes"`
}

func (c *Cost) CreateLogView() AuditLog {
	return AuditLog{
		ResourceID:   c.ID,
		ResourceType: ResourceCost,
	}
}

// CostRequest takes amounts as cents or as dollar strings, like catalog prices.
type CostRequest struct {
	QuoteID        int     `json:"job_id" binding:"required"`
	VendorID       int     `json:"vendor_id" binding:"required"`
	VendorCategory string  `json:"vendor_category" binding:"required,vendor_category"`
	ProjectedCents *int64  `json:"projected_cost_cents" binding:"omitempty,gte=0"`
	Projected      *string `json:"projected_cost"`
	ActualCents    *int64  `json:"actual_cost_cents" binding:"omitempty,gte=0"`
	Actual         *string `json:"actual_cost"`
	Notes          *string `json:"notes"`
}
