package models

import (
	"encoding/json"
	"time"
)

const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionStatus = "status"
)

const (
	ResourceCatalogItem = "catalog_item"
	ResourceAssetUnit   = "asset_unit"
	ResourceQuote       = "quote"
	ResourceClient      = "client"
	ResourceVenue       = "venue"
	ResourceVendor      = "vendor"
	ResourceSubrental   = "subrental"
	ResourceCost        = "cost"
)

// AuditLog is one recorded change. Data is the JSON payload stored with it.
type AuditLog struct {
	ID           int             `json:"id" db:"id"`
	ResourceID   int             `json:"resource_id" db:"resource_id"`
	ResourceType string          `json:"resource_type" db:"resource_type"`
	Action       string          `json:"action" db:"action"`
	Data         json.RawMessage `json:"data" db:"data"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`
}

func IsAuditedResource(resourceType string) bool {
	switch resourceType {
	case ResourceCatalogItem, ResourceAssetUnit, ResourceQuote,
		ResourceClient, ResourceVenue, ResourceVendor, ResourceSubrental, ResourceCost:
		return true
	default:
		return false
	}
}
