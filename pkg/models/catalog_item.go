package models

import "avrental/pkg/metadata"

// CatalogItem is a rentable equipment type. It owns zero or more AssetUnits.
type CatalogItem struct {
	ID               int               `json:"item_id" db:"id"`
	Name             string            `json:"name" db:"name"`
	Category         metadata.Category `json:"category" db:"category"`
	PricePerDayCents int64             `json:"price_per_day_cents" db:"price_per_day_cents"`
	PhotoURL         *string           `json:"photo_url,omitempty" db:"photo_url"`
}

func (c *CatalogItem) CreateLogView() AuditLog {
	return AuditLog{
		ResourceID:   c.ID,
		ResourceType: ResourceCatalogItem,
	}
}

type CatalogItemRequest struct {
	Name             string  `json:"name" binding:"required"`
	Category         string  `json:"category" binding:"required,category"`
	PricePerDayCents *int64  `json:"price_per_day_cents" binding:"omitempty,gte=0"`
	PricePerDay      *string `json:"price_per_day"`
	PhotoURL         *string `json:"photo_url" binding:"omitempty,url"`
}
