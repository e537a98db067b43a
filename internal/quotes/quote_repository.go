package quotes

import (
	"errors"
	"fmt"

	"avrental/internal/repository"
	custom_error "avrental/pkg/errors"
	"avrental/pkg/metadata"
	"avrental/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/lib/pq"
)

type QuoteRepository struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) *QuoteRepository {
	return &QuoteRepository{repository: r}
}

func (r *QuoteRepository) getQuoteQuery() *goqu.SelectDataset {
	return r.repository.Goqu.
		From(goqu.T("quotes").As("q")).
		Select(
			goqu.I("q.id").As("id"),
			goqu.I("q.reference_number").As("reference_number"),
			goqu.I("q.client_id").As("client_id"),
			goqu.I("q.venue_id").As("venue_id"),
			goqu.I("q.event_start_date").As("event_start_date"),
			goqu.I("q.event_end_date").As("event_end_date"),
			goqu.I("q.office").As("office"),
			goqu.I("q.status").As("status"),
			goqu.I("q.sections").As("sections"),
			goqu.I("q.subtotal_cents").As("subtotal_cents"),
			goqu.I("q.tax_cents").As("tax_cents"),
			goqu.I("q.total_cents").As("total_cents"),
		)
}

func (r *QuoteRepository) GetQuotesBy(conditions repository.QueryBuilder) ([]models.Quote, error) {
	aliases := map[string]string{
		"status":    "q.status",
		"office":    "q.office",
		"client_id": "q.client_id",
	}

	query := r.getQuoteQuery().
		Where(conditions.BuildConditions(aliases)).
		Order(goqu.I("q.event_start_date").Asc(), goqu.I("q.id").Asc())

	var records []quoteRecord
	if err := query.Executor().ScanStructs(&records); err != nil {
		return nil, fmt.Errorf("unable to select quotes: %w", err)
	}

	quotes := make([]models.Quote, 0, len(records))
	for _, record := range records {
		quote, err := record.toQuote()
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, quote)
	}

	return quotes, nil
}

func (r *QuoteRepository) GetQuote(id int) (*models.Quote, error) {
	var record quoteRecord
	found, err := r.getQuoteQuery().
		Where(goqu.Ex{"q.id": id}).
		Executor().
		ScanStruct(&record)

	if err != nil {
		return nil, fmt.Errorf("unable to select quote %d: %w", id, err)
	}
	if !found {
		return nil, custom_error.NewNotFound("quote", id)
	}

	quote, err := record.toQuote()
	if err != nil {
		return nil, err
	}

	return &quote, nil
}

func (r *QuoteRepository) PersistQuote(quote models.Quote) (*models.Quote, error) {
	record, err := toRecord(quote)
	if err != nil {
		return nil, err
	}

	query := r.repository.Goqu.Insert("quotes").
		Rows(goqu.Record(record)).
		Returning("id")

	if _, err := query.Executor().ScanVal(&quote.ID); err != nil {
		return nil, wrapPQ("reference number already used", err)
	}

	return &quote, nil
}

// ReplaceQuote overwrites every column of an existing quote. Sections are
// replaced wholesale.
func (r *QuoteRepository) ReplaceQuote(quote models.Quote) (*models.Quote, error) {
	record, err := toRecord(quote)
	if err != nil {
		return nil, err
	}
	record["updated_at"] = goqu.L("NOW()")

	err = repository.WithTransaction(r.repository.Goqu, func(tx *goqu.TxDatabase) error {
		var id int
		found, err := tx.Select("id").
			From("quotes").
			Where(goqu.Ex{"id": quote.ID}).
			ForUpdate(goqu.Wait).
			Executor().
			ScanVal(&id)
		if err != nil {
			return fmt.Errorf("failed to lock quote: %w", err)
		}
		if !found {
			return custom_error.NewNotFound("quote", quote.ID)
		}

		if _, err := tx.Update("quotes").
			Set(goqu.Record(record)).
			Where(goqu.Ex{"id": quote.ID}).
			Executor().
			Exec(); err != nil {
			return wrapPQ("reference number already used", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return &quote, nil
}

func (r *QuoteRepository) UpdateQuoteStatus(id int, status metadata.QuoteStatus) error {
	result, err := r.repository.Goqu.Update("quotes").
		Set(goqu.Record{
			"status":     string(status),
			"updated_at": goqu.L("NOW()"),
		}).
		Where(goqu.Ex{"id": id}).
		Executor().
		Exec()

	if err != nil {
		return fmt.Errorf("failed to update quote status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return custom_error.NewNotFound("quote", id)
	}

	return nil
}

func (r *QuoteRepository) DeleteQuote(id int) error {
	result, err := r.repository.Goqu.Delete("quotes").
		Where(goqu.Ex{"id": id}).
		Executor().
		Exec()

	if err != nil {
		return fmt.Errorf("failed to delete quote: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return custom_error.NewNotFound("quote", id)
	}

	return nil
}

func wrapPQ(message string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505", "23503":
			return custom_error.WrapDBError(message, string(pqErr.Code))
		}
	}
	return fmt.Errorf("quote query failed: %w", err)
}
