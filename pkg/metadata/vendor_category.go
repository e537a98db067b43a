package metadata

import (
	"fmt"
	"strings"
)

// VendorCategory classifies what a vendor supplies and what a job cost was spent on.
type VendorCategory string

const (
	VendorEquipment         VendorCategory = "equipment"
	VendorLabor             VendorCategory = "labor"
	VendorLaborAndEquipment VendorCategory = "laborAndEquipment"
	VendorTransportation    VendorCategory = "transportation"
	VendorMiscellaneous     VendorCategory = "miscellaneous"
)

var vendorCategoryLabels = map[VendorCategory]string{
	VendorEquipment:         "Equipment",
	VendorLabor:             "Labor",
	VendorLaborAndEquipment: "Labor & Equipment",
	VendorTransportation:    "Transportation",
	VendorMiscellaneous:     "Miscellaneous",
}

// NewVendorCategory matches case-insensitively, like NewCategory.
func NewVendorCategory(value string) (VendorCategory, error) {
	normalized := strings.TrimSpace(value)
	for category := range vendorCategoryLabels {
		if strings.EqualFold(string(category), normalized) {
			return category, nil
		}
	}
	return "", fmt.Errorf("invalid vendor category: %s", value)
}

func (c VendorCategory) IsValid() bool {
	_, ok := vendorCategoryLabels[c]
	return ok
}

func (c VendorCategory) Label() string {
	return vendorCategoryLabels[c]
}
