package models

// Subrental books Quantity units of a catalog item from a vendor to cover a
// quote's shortage.
type Subrental struct {
	ID          int     `json:"id" db:"id"`
	QuoteID     int     `json:"quote_id" db:"quote_id"`
	EquipmentID int     `json:"equipment_id" db:"equipment_id"`
	VendorID    int     `json:"vendor_id" db:"vendor_id"`
	Quantity    int64   `json:"quantity" db:"quantity"`
	Notes       *string `json:"notes,omitempty" db:"notes"`
}

func (s *Subrental) CreateLogView() AuditLog {
	return AuditLog{
		ResourceID:   s.ID,
		ResourceType: ResourceSubrental,
	}
}

type SubrentalRequest struct {
	QuoteID     int     `json:"quote_id" binding:"required"`
	EquipmentID int     `json:"equipment_id" binding:"required"`
	VendorID    int     `json:"vendor_id" binding:"required"`
	Quantity    int64   `json:"quantity" binding:"required,gte=1"`
	Notes       *string `json:"notes"`
}
