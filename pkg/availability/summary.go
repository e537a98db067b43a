package availability

import (
	"avrental/pkg/metadata"
	"avrental/pkg/models"
)

type StatusCounts struct {
	Available   int `json:"available"`
	Rented      int `json:"rented"`
	Maintenance int `json:"maintenance"`
}

func (c StatusCounts) Total() int {
	return c.Available + c.Rented + c.Maintenance
}

// SummarizeOffices counts units per office and status. Every known office is
// present in the result even when it holds no units.
func SummarizeOffices(units []models.AssetUnit) map[metadata.Office]StatusCounts {
	summary := make(map[metadata.Office]StatusCounts, len(metadata.Offices))
	for _, office := range metadata.Offices {
		summary[office] = StatusCounts{}
	}

	for _, unit := range units {
		counts, ok := summary[unit.OfficeLocation]
		if !ok {
			continue
		}
		switch unit.Status {
		case metadata.AssetStatusAvailable:
			counts.Available++
		case metadata.AssetStatusRented:
			counts.Rented++
		case metadata.AssetStatusMaintenance:
			counts.Maintenance++
		}
		summary[unit.OfficeLocation] = counts
	}

	return summary
}
