package venues

import (
	"fmt"
	"strings"

	"avrental/internal/repository"
	custom_error "avrental/pkg/errors"
	"avrental/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
)

type VenueRepository struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) *VenueRepository {
	return &VenueRepository{repository: r}
}

func (r *VenueRepository) getVenueQuery() *goqu.SelectDataset {
	return r.repository.Goqu.
		From(goqu.T("venues").As("v")).
		Select(
			goqu.I("v.id").As("id"),
			goqu.I("v.venue_name").As("venue_name"),
			goqu.I("v.address_line_1").As("address_line_1"),
			goqu.I("v.address_line_2").As("address_line_2"),
			goqu.I("v.city").As("city"),
			goqu.I("v.state").As("state"),
			goqu.I("v.postal_code").As("postal_code"),
			goqu.I("v.country").As("country"),
			goqu.I("v.phone").As("phone"),
			goqu.I("v.website").As("website"),
			goqu.I("v.notes").As("notes"),
		)
}

// GetVenues lists venues ordered by name. A non-empty search matches the
// name or city case-insensitively.
func (r *VenueRepository) GetVenues(search string) ([]models.Venue, error) {
	query := r.getVenueQuery()
	if search != "" {
		query = query.Where(searchCondition(search))
	}

	venues := []models.Venue{}
	err := query.
		Order(goqu.I("v.venue_name").Asc(), goqu.I("v.id").Asc()).
		Executor().
		ScanStructs(&venues)
	if err != nil {
		return nil, fmt.Errorf("unable to select venues: %w", err)
	}

	return venues, nil
}

func (r *VenueRepository) GetVenue(id int) (*models.Venue, error) {
	var venue models.Venue
	found, err := r.getVenueQuery().
		Where(goqu.Ex{"v.id": id}).
		Executor().
		ScanStruct(&venue)
	if err != nil {
		return nil, fmt.Errorf("unable to select venue %d: %w", id, err)
	}
	if !found {
		return nil, custom_error.NewNotFound("venue", id)
	}

	return &venue, nil
}

func (r *VenueRepository) PersistVenue(venue models.Venue) (*models.Venue, error) {
	_, err := r.repository.Goqu.Insert("venues").
		Rows(record(venue)).
		Returning("id").
		Executor().
		ScanVal(&venue.ID)
	if err != nil {
		return nil, repository.MapPQError("venue", "venue insert rejected", err)
	}

	return &venue, nil
}

func (r *VenueRepository) UpdateVenue(venue models.Venue) (*models.Venue, error) {
	result, err := r.repository.Goqu.Update("venues").
		Set(record(venue)).
		Where(goqu.Ex{"id": venue.ID}).
		Executor().
		Exec()
	if err != nil {
		return nil, repository.MapPQError("venue", "venue update rejected", err)
	}
	if err := repository.CheckAffected(result, "venue", venue.ID); err != nil {
		return nil, err
	}

	return &venue, nil
}

// DeleteVenue fails with a foreign key violation while quotes still point at the venue.
func (r *VenueRepository) DeleteVenue(id int) error {
	result, err := r.repository.Goqu.Delete("venues").
		Where(goqu.Ex{"id": id}).
		Executor().
		Exec()
	if err != nil {
		return repository.MapPQError("venue", "venue still has quotes", err)
	}

	return repository.CheckAffected(result, "venue", id)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func searchCondition(search string) exp.Expression {
	pattern := "%" + likeEscaper.Replace(search) + "%"
	return goqu.Or(
		goqu.I("v.venue_name").ILike(pattern),
		goqu.I("v.city").ILike(pattern),
	)
}

func record(venue models.Venue) goqu.Record {
	return goqu.Record{
		"venue_name":     venue.Name,
		"address_line_1": venue.AddressLine1,
		"address_line_2": venue.AddressLine2,
		"city":           venue.City,
		"state":          venue.State,
		"postal_code":    venue.PostalCode,
		"country":        venue.Country,
		"phone":          venue.Phone,
		"website":        venue.Website,
		"notes":          venue.Notes,
	}
}
