package custom_error

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapDBError(t *testing.T) {
	unique := WrapDBError("duplicate asset tag", "23505")
	assert.True(t, IsUniqueViolation(unique))
	assert.Equal(t, "duplicate asset tag (code: 23505)", unique.Error())

	fk := WrapDBError("catalog item", "23503")
	assert.True(t, IsForeignKeyViolation(fk))
	assert.False(t, IsUniqueViolation(fk))

	other := WrapDBError("boom", "42P01")
	assert.False(t, IsUniqueViolation(other))
	assert.Contains(t, other.Error(), "42P01")
}

func TestWrappedErrorsAreDetected(t *testing.T) {
	notFound := fmt.Errorf("load quote: %w", NewNotFound("quote", 7))
	assert.True(t, IsNotFound(notFound))
	assert.EqualError(t, notFound, "load quote: quote with id 7 not found")

	invalid := fmt.Errorf("create quote: %w", NewValidation(errors.New("quantity must be at least 1")))
	assert.True(t, IsValidation(invalid))
	assert.False(t, IsNotFound(invalid))
}

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "not found", err: NewNotFound("quote", 1), want: http.StatusNotFound},
		{name: "validation", err: fmt.Errorf("wrap: %w", NewValidation(errors.New("bad"))), want: http.StatusBadRequest},
		{name: "unique", err: WrapDBError("dup", "23505"), want: http.StatusConflict},
		{name: "foreign key", err: WrapDBError("fk", "23503"), want: http.StatusConflict},
		{name: "other", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusCode(tt.err))
		})
	}
}
