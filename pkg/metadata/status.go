package metadata

import "fmt"

// AssetStatus is a manual flag on a physical unit. It is not date aware.
type AssetStatus string

const (
	AssetStatusAvailable   AssetStatus = "available"
	AssetStatusRented      AssetStatus = "rented"
	AssetStatusMaintenance AssetStatus = "maintenance"
)

func NewAssetStatus(value string) (AssetStatus, error) {
	status := AssetStatus(value)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid asset status: %s", value)
	}
	return status, nil
}

func (s AssetStatus) IsValid() bool {
	switch s {
	case AssetStatusAvailable, AssetStatusRented, AssetStatusMaintenance:
		return true
	default:
		return false
	}
}

type QuoteStatus string

const (
	QuoteStatusDraft    QuoteStatus = "draft"
	QuoteStatusSent     QuoteStatus = "sent"
	QuoteStatusApproved QuoteStatus = "approved"
	QuoteStatusRejected QuoteStatus = "rejected"
)

func NewQuoteStatus(value string) (QuoteStatus, error) {
	status := QuoteStatus(value)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid quote status: %s", value)
	}
	return status, nil
}

func (s QuoteStatus) IsValid() bool {
	switch s {
	case QuoteStatusDraft, QuoteStatusSent, QuoteStatusApproved, QuoteStatusRejected:
		return true
	default:
		return false
	}
}

// IsConfirmed reports whether the quote counts as a committed booking.
func (s QuoteStatus) IsConfirmed() bool {
	return s == QuoteStatusApproved
}
