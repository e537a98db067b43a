package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCategory(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Category
		wantErr  bool
	}{
		{"audio", "audio", CategoryAudio, false},
		{"mixed case labor and equipment", "LaborAndEquipment", CategoryLaborAndEquipment, false},
		{"padded lighting", " lighting ", CategoryLighting, false},
		{"unknown", "furniture", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewCategory(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNewAssetTag(t *testing.T) {
	tests := []struct {
		name     string
		category Category
		unitID   int
		expected string
	}{
		{"lighting unit", CategoryLighting, 123, "LGT-123"},
		{"audio unit", CategoryAudio, 7, "AUD-7"},
		{"unknown category falls back", Category("bogus"), 9, "MSC-9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewAssetTag(tt.category, tt.unitID).String())
		})
	}
}

func TestNormalizeAssetTag(t *testing.T) {
	assert.Equal(t, AssetTag("MIC-007"), NormalizeAssetTag(" mic-007 "))
	assert.Equal(t, AssetTag(""), NormalizeAssetTag("   "))
}
