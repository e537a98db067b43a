package repository

import (
	"database/sql"
	"errors"
	"fmt"

	custom_error "avrental/pkg/errors"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/lib/pq"
)

// Repository is the shared handle every feature repository builds queries on.
type Repository struct {
	DB   *sql.DB
	Goqu *goqu.Database
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		DB:   db,
		Goqu: goqu.New("postgres", db),
	}
}

// WithTransaction commits when fn returns nil and rolls back on an error or panic.
func WithTransaction(db *goqu.Database, fn func(tx *goqu.TxDatabase) error) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	return tx.Wrap(func() error {
		return fn(tx)
	})
}

// MapPQError turns unique and foreign key violations into the typed errors
// handlers map to 409. Anything else is wrapped as a failed query on resource.
func MapPQError(resource, message string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505", "23503":
			return custom_error.WrapDBError(message, string(pqErr.Code))
		}
	}
	return fmt.Errorf("%s query failed: %w", resource, err)
}

// CheckAffected reports a NotFoundError when a write touched no rows.
func CheckAffected(result sql.Result, resource string, id int) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return custom_error.NewNotFound(resource, id)
	}
	return nil
}
