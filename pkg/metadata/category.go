package metadata

import (
	"fmt"
	"strings"
)

type Category string

const (
	CategoryAudio             Category = "audio"
	CategoryVideo             Category = "video"
	CategoryLighting          Category = "lighting"
	CategoryDrape             Category = "drape"
	CategoryCable             Category = "cable"
	CategoryEquipment         Category = "equipment"
	CategoryLabor             Category = "labor"
	CategoryLaborAndEquipment Category = "laborAndEquipment"
	CategoryTransportation    Category = "transportation"
	CategoryMiscellaneous     Category = "miscellaneous"
)

var categoryPrefixes = map[Category]string{
	CategoryAudio:             "AUD",
	CategoryVideo:             "VID",
	CategoryLighting:          "LGT",
	CategoryDrape:             "DRP",
	CategoryCable:             "CBL",
	CategoryEquipment:         "EQP",
	CategoryLabor:             "LAB",
	CategoryLaborAndEquipment: "LEQ",
	CategoryTransportation:    "TRN",
	CategoryMiscellaneous:     "MSC",
}

// NewCategory accepts the canonical value case-insensitively, so
// "LaborAndEquipment" and "laborandequipment" both resolve.
func NewCategory(value string) (Category, error) {
	normalized := strings.TrimSpace(value)
	for category := range categoryPrefixes {
		if strings.EqualFold(string(category), normalized) {
			return category, nil
		}
	}
	return "", fmt.Errorf("invalid category: %s", value)
}

func (c Category) IsValid() bool {
	_, ok := categoryPrefixes[c]
	return ok
}

// Prefix is the short code used when generating asset tags.
func (c Category) Prefix() string {
	if prefix, ok := categoryPrefixes[c]; ok {
		return prefix
	}
	return categoryPrefixes[CategoryMiscellaneous]
}

func (c Category) String() string {
	return string(c)
}
