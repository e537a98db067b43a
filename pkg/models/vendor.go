package models

import "avrental/pkg/metadata"

// Vendor is an outside company equipment is subrented from or job costs are paid to.
type Vendor struct {
	ID                 int                     `json:"id" db:"id"`
	Name               string                  `json:"name" db:"name"`
	PrimaryContactName string                  `json:"primary_contact_name" db:"primary_contact_name"`
	Email              string                  `json:"email" db:"email"`
	PhoneNumber        string                  `json:"phone_number" db:"phone_number"`
	Address            *string                 `json:"address,omitempty" db:"address"`
	Notes              *string                 `json:"notes,omitempty" db:"notes"`
	Category           metadata.VendorCategory `json:"vendor_category" db:"vendor_category"`
}

func (v *Vendor) CreateLogView() AuditLog {
	return AuditLog{
		ResourceID:   v.ID,
		ResourceType: ResourceVendor,
	}
}

type VendorRequest struct {
	Name               string  `json:"name" binding:"required"`
	PrimaryContactName string  `json:"primary_contact_name"`
	Email              string  `json:"email" binding:"omitempty,email"`
	PhoneNumber        string  `json:"phone_number"`
	Address            *string `json:"address"`
	Notes              *string `json:"notes"`
	Category           string  `json:"vendor_category" binding:"required,vendor_category"`
}
