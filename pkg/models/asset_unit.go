package models

import "avrental/pkg/metadata"

// AssetUnit is one physical, individually tagged instance of a CatalogItem.
type AssetUnit struct {
	ID             int                  `json:"asset_unit_id" db:"id"`
	ItemID         int                  `json:"item_id" db:"item_id"`
	AssetTag       string               `json:"asset_tag" db:"asset_tag"`
	OfficeLocation metadata.Office      `json:"office_location" db:"office_location"`
	Status         metadata.AssetStatus `json:"status" db:"status"`
}

func (a *AssetUnit) CreateLogView() AuditLog {
	return AuditLog{
		ResourceID:   a.ID,
		ResourceType: ResourceAssetUnit,
	}
}

type AssetUnitRequest struct {
	ItemID         int    `json:"item_id" binding:"required"`
	AssetTag       string `json:"asset_tag"`
	OfficeLocation string `json:"office_location" binding:"required,office"`
	Status         string `json:"status" binding:"omitempty,asset_status"`
}

type AssetStatusRequest struct {
	Status string `json:"status" binding:"required,asset_status"`
}
