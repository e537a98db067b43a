package venues

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"avrental/internal/validation"
	"avrental/pkg/auditlog"
	custom_error "avrental/pkg/errors"
	"avrental/pkg/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockVenueRepository struct {
	mock.Mock
}

func (m *MockVenueRepository) GetVenues(search string) ([]models.Venue, error) {
	args := m.Called(search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Venue), args.Error(1)
}

func (m *MockVenueRepository) GetVenue(id int) (*models.Venue, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Venue), args.Error(1)
}

func (m *MockVenueRepository) PersistVenue(venue models.Venue) (*models.Venue, error) {
	args := m.Called(venue)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Venue), args.Error(1)
}

func (m *MockVenueRepository) UpdateVenue(venue models.Venue) (*models.Venue, error) {
	args := m.Called(venue)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Venue), args.Error(1)
}

func (m *MockVenueRepository) DeleteVenue(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

type MockAuditLog struct {
	mock.Mock
}

func (m *MockAuditLog) Log(action string, data interface{}, item auditlog.Auditable) {
	m.Called(action, data, item)
}

func setupRouter(t *testing.T) (*gin.Engine, *MockVenueRepository, *MockAuditLog) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, validation.RegisterEnumValidators())

	repo := new(MockVenueRepository)
	audit := new(MockAuditLog)
	router := gin.New()
	NewVenueHandler(NewVenueService(repo), audit, zap.NewNop()).RegisterRoutes(router)

	return router, repo, audit
}

func TestCreateVenueStoresBlankOptionalsAsNull(t *testing.T) {
	router, repo, audit := setupRouter(t)

	notes := "Loading dock on 5th"
	repo.On("PersistVenue", models.Venue{
		Name:         "Fair Park",
		AddressLine1: "3809 Grand Ave",
		City:         "Dallas",
		State:        "TX",
		PostalCode:   "75210",
		Country:      "USA",
		Notes:        &notes,
	}).Return(&models.Venue{ID: 2, Name: "Fair Park"}, nil)
	audit.On("Log", "create", mock.Anything, mock.Anything).Return()

	body := `{
		"venue_name": "Fair Park",
		"address_line_1": "3809 Grand Ave",
		"city": "Dallas",
		"state": "TX",
		"postal_code": "75210",
		"country": "USA",
		"phone": "  ",
		"notes": " Loading dock on 5th "
	}`
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/venues", bytes.NewBufferString(body)))

	assert.Equal(t, http.StatusCreated, w.Code)
	repo.AssertExpectations(t)
	audit.AssertExpectations(t)
}

func TestCreateVenueValidation(t *testing.T) {
	router, _, _ := setupRouter(t)

	for _, body := range []string{
		`{"city": "Miami"}`,
		`{"venue_name": "Arena", "website": "not a url"}`,
	} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/venues", bytes.NewBufferString(body)))
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
}

func TestGetVenuesSearch(t *testing.T) {
	router, repo, _ := setupRouter(t)
	repo.On("GetVenues", "phoenix").Return([]models.Venue{{ID: 1, City: "Phoenix"}}, nil)
	repo.On("GetVenues", "").Return([]models.Venue{}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/venues?search=%20phoenix%20", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/venues", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	repo.AssertExpectations(t)
}

func TestRemoveVenue(t *testing.T) {
	router, repo, audit := setupRouter(t)
	repo.On("DeleteVenue", 7).Return(custom_error.NewNotFound("venue", 7))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/venues/7", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	repo.AssertExpectations(t)
	audit.AssertNotCalled(t, "Log", mock.Anything, mock.Anything, mock.Anything)
}
