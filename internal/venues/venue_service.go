package venues

import (
	"fmt"
	"strings"

	custom_error "avrental/pkg/errors"
	"avrental/pkg/models"
)

type Repository interface {
	GetVenues(search string) ([]models.Venue, error)
	GetVenue(id int) (*models.Venue, error)
	PersistVenue(venue models.Venue) (*models.Venue, error)
	UpdateVenue(venue models.Venue) (*models.Venue, error)
	DeleteVenue(id int) error
}

type VenueService struct {
	r Repository
}

func NewVenueService(r Repository) *VenueService {
	return &VenueService{r: r}
}

func (s *VenueService) List(search string) ([]models.Venue, error) {
	return s.r.GetVenues(strings.TrimSpace(search))
}

func (s *VenueService) Get(id int) (*models.Venue, error) {
	return s.r.GetVenue(id)
}

func (s *VenueService) Create(req models.VenueRequest) (*models.Venue, error) {
	venue, err := fromRequest(req)
	if err != nil {
		return nil, err
	}
	return s.r.PersistVenue(venue)
}

func (s *VenueService) Update(id int, req models.VenueRequest) (*models.Venue, error) {
	venue, err := fromRequest(req)
	if err != nil {
		return nil, err
	}
	venue.ID = id
	return s.r.UpdateVenue(venue)
}

func (s *VenueService) Delete(id int) error {
	return s.r.DeleteVenue(id)
}

func fromRequest(req models.VenueRequest) (models.Venue, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return models.Venue{}, custom_error.NewValidation(fmt.Errorf("venue_name is required"))
	}

	return models.Venue{
		Name:         name,
		AddressLine1: strings.TrimSpace(req.AddressLine1),
		AddressLine2: strings.TrimSpace(req.AddressLine2),
		City:         strings.TrimSpace(req.City),
		State:        strings.TrimSpace(req.State),
		PostalCode:   strings.TrimSpace(req.PostalCode),
		Country:      strings.TrimSpace(req.Country),
		Phone:        optional(req.Phone),
		Website:      optional(req.Website),
		Notes:        optional(req.Notes),
	}, nil
}

// optional stores blank strings as NULL.
func optional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
