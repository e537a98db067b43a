package models

type Venue struct {
	ID           int     `json:"venue_id" db:"id"`
	Name         string  `json:"venue_name" db:"venue_name"`
	AddressLine1 string  `json:"address_line_1" db:"address_line_1"`
	AddressLine2 string  `json:"address_line_2" db:"address_line_2"`
	City         string  `json:"city" db:"city"`
	State        string  `json:"state" db:"state"`
	PostalCode   string  `json:"postal_code" db:"postal_code"`
	Country      string  `json:"country" db:"country"`
	Phone        *string `json:"phone,omitempty" db:"phone"`
	Website      *string `json:"website,omitempty" db:"website"`
	Notes        *string `json:"notes,omitempty" db:"notes"`
}

func (v *Venue) CreateLogView() AuditLog {
	return AuditLog{
		ResourceID:   v.ID,
		ResourceType: ResourceVenue,
	}
}

type VenueRequest struct {
	Name         string  `json:"venue_name" binding:"required"`
	AddressLine1 string  `json:"address_line_1"`
	AddressLine2 string  `json:"address_line_2"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	PostalCode   string  `json:"postal_code"`
	Country      string  `json:"country"`
	Phone        *string `json:"phone"`
	Website      *string `json:"website" binding:"omitempty,url"`
	Notes        *string `json:"notes"`
}
