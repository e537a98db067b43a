package metadata

import (
	"strconv"
	"strings"
)

// AssetTag is the label printed on a physical unit, e.g. "LGT-31".
type AssetTag string

// NewAssetTag derives the default tag for a unit that was created without one.
func NewAssetTag(category Category, unitID int) AssetTag {
	return AssetTag(category.Prefix() + "-" + strconv.Itoa(unitID))
}

// NormalizeAssetTag trims and upper-cases a user supplied tag.
func NormalizeAssetTag(value string) AssetTag {
	return AssetTag(strings.ToUpper(strings.TrimSpace(value)))
}

func (t AssetTag) String() string {
	return string(t)
}
