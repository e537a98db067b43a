package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAssetStatus(t *testing.T) {
	for _, value := range []string{"available", "rented", "maintenance"} {
		status, err := NewAssetStatus(value)
		assert.NoError(t, err)
		assert.Equal(t, AssetStatus(value), status)
	}

	_, err := NewAssetStatus("lost")
	assert.EqualError(t, err, "invalid asset status: lost")
}

func TestQuoteStatusIsConfirmed(t *testing.T) {
	tests := []struct {
		status   QuoteStatus
		expected bool
	}{
		{QuoteStatusDraft, false},
		{QuoteStatusSent, false},
		{QuoteStatusApproved, true},
		{QuoteStatusRejected, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.status.IsConfirmed())
		})
	}

	_, err := NewQuoteStatus("cancelled")
	assert.Error(t, err)
}
