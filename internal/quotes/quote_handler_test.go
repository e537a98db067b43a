package quotes

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"avrental/internal/metrics"
	"avrental/internal/repository"
	"avrental/internal/validation"
	"avrental/pkg/auditlog"
	custom_error "avrental/pkg/errors"
	"avrental/pkg/metadata"
	"avrental/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockQuoteRepository struct {
	mock.Mock
}

func (m *MockQuoteRepository) GetQuotesBy(conditions repository.QueryBuilder) ([]models.Quote, error) {
	args := m.Called(conditions)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Quote), args.Error(1)
}

func (m *MockQuoteRepository) GetQuote(id int) (*models.Quote, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Quote), args.Error(1)
}

func (m *MockQuoteRepository) PersistQuote(quote models.Quote) (*models.Quote, error) {
	args := m.Called(quote)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Quote), args.Error(1)
}

func (m *MockQuoteRepository) ReplaceQuote(quote models.Quote) (*models.Quote, error) {
	args := m.Called(quote)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Quote), args.Error(1)
}

func (m *MockQuoteRepository) UpdateQuoteStatus(id int, status metadata.QuoteStatus) error {
	args := m.Called(id, status)
	return args.Error(0)
}

func (m *MockQuoteRepository) DeleteQuote(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

type MockAuditLog struct {
	mock.Mock
}

func (m *MockAuditLog) Log(action string, data interface{}, item auditlog.Auditable) {
	m.Called(action, data, item)
}

type MockClientLookup struct {
	mock.Mock
}

func (m *MockClientLookup) Get(id int) (*models.Client, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Client), args.Error(1)
}

type MockVenueLookup struct {
	mock.Mock
}

func (m *MockVenueLookup) Get(id int) (*models.Venue, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Venue), args.Error(1)
}

// setupRouter resolves every client and venue id.
func setupRouter(t *testing.T) (*gin.Engine, *MockQuoteRepository, *MockAuditLog) {
	clients := new(MockClientLookup)
	clients.On("Get", mock.Anything).Return(&models.Client{}, nil).Maybe()
	venues := new(MockVenueLookup)
	venues.On("Get", mock.Anything).Return(&models.Venue{}, nil).Maybe()

	return newRouter(t, clients, venues, metrics.NewAvailabilityMetrics(prometheus.NewRegistry()))
}

func newRouter(t *testing.T, clients ClientLookup, venues VenueLookup, m *metrics.AvailabilityMetrics) (*gin.Engine, *MockQuoteRepository, *MockAuditLog) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, validation.RegisterEnumValidators())

	repo := new(MockQuoteRepository)
	audit := new(MockAuditLog)
	service := NewQuoteService(repo, clients, venues, m)
	router := gin.New()
	NewQuoteHandler(service, audit, zap.NewNop()).RegisterRoutes(router)

	return router, repo, audit
}

// Two sections: audio taxed at 8%, labor untaxed. Client-side totals are
// deliberately wrong and must be ignored.
const quotePayload = `{
	"reference_number": "Q-1001",
	"client_id": 3,
	"event_start_date": "2026-03-10",
	"event_end_date": "2026-03-12",
	"office": "Dallas",
	"sections": [
		{
			"name": "Audio",
			"tax_enabled": true,
			"tax_rate": 8,
			"subtotal_cents": 1,
			"tax_cents": 1,
			"total_cents": 1,
			"items": [
				{"equipment_id": 1, "quantity": 2, "price_per_day_cents": 2500, "number_of_days": 3},
				{"equipment_id": 2, "quantity": 1, "price_per_day_cents": 10000, "number_of_days": 1}
			]
		},
		{
			"name": "Labor",
			"tax_enabled": false,
			"tax_rate": 8,
			"items": [
				{"is_custom": true, "custom_name": "Stagehand", "quantity": 2, "price_per_day_cents": 30000, "number_of_days": 1}
			]
		}
	],
	"subtotal_cents": 999999,
	"total_cents": 999999
}`

func TestCreateQuoteRecomputesTotals(t *testing.T) {
	router, repo, audit := setupRouter(t)

	var persisted models.Quote
	repo.On("PersistQuote", mock.Anything).
		Run(func(args mock.Arguments) {
			persisted = args.Get(0).(models.Quote)
		}).
		Return(&models.Quote{ID: 41, TotalCents: 87000}, nil)
	audit.On("Log", "create", mock.Anything, mock.Anything).Return()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/quotes", bytes.NewBufferString(quotePayload)))

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, metadata.OfficeDallas, persisted.Office)
	assert.Equal(t, metadata.QuoteStatusDraft, persisted.Status)
	require.Len(t, persisted.Sections, 2)
	assert.Equal(t, int64(25000), persisted.Sections[0].SubtotalCents)
	assert.Equal(t, int64(2000), persisted.Sections[0].TaxCents)
	assert.Equal(t, int64(27000), persisted.Sections[0].TotalCents)
	assert.Equal(t, int64(60000), persisted.Sections[1].SubtotalCents)
	assert.Equal(t, int64(0), persisted.Sections[1].TaxCents)
	assert.Equal(t, int64(85000), persisted.SubtotalCents)
	assert.Equal(t, int64(2000), persisted.TaxCents)
	assert.Equal(t, int64(87000), persisted.TotalCents)

	var response models.Quote
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 41, response.ID)
	assert.Equal(t, int64(87000), response.TotalCents)

	repo.AssertExpectations(t)
	audit.AssertExpectations(t)
}

func TestCreateQuoteValidation(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{
			name:    "unknown office",
			payload: `{"reference_number": "Q-1", "client_id": 1, "event_start_date": "2026-01-01", "office": "houston"}`,
		},
		{
			name:    "missing start date",
			payload: `{"reference_number": "Q-1", "client_id": 1, "office": "miami"}`,
		},
		{
			name:    "end before start",
			payload: `{"reference_number": "Q-1", "client_id": 1, "event_start_date": "2026-01-05", "event_end_date": "2026-01-04", "office": "miami"}`,
		},
		{
			name: "zero quantity",
			payload: `{"reference_number": "Q-1", "client_id": 1, "event_start_date": "2026-01-05", "office": "miami",
				"sections": [{"name": "A", "items": [{"equipment_id": 1, "quantity": 0, "price_per_day_cents": 100, "number_of_days": 1}]}]}`,
		},
		{
			name: "catalog line without equipment",
			payload: `{"reference_number": "Q-1", "client_id": 1, "event_start_date": "2026-01-05", "office": "miami",
				"sections": [{"name": "A", "items": [{"quantity": 1, "price_per_day_cents": 100, "number_of_days": 1}]}]}`,
		},
		{
			name: "custom line without name",
			payload: `{"reference_number": "Q-1", "client_id": 1, "event_start_date": "2026-01-05", "office": "miami",
				"sections": [{"name": "A", "items": [{"is_custom": true, "quantity": 1, "price_per_day_cents": 100, "number_of_days": 1}]}]}`,
		},
		{
			name: "tax rate above 100",
			payload: `{"reference_number": "Q-1", "client_id": 1, "event_start_date": "2026-01-05", "office": "miami",
				"sections": [{"name": "A", "tax_enabled": true, "tax_rate": 101, "items": []}]}`,
		},
		{
			name:    "malformed date",
			payload: `{"reference_number": "Q-1", "client_id": 1, "event_start_date": "05/01/2026", "office": "miami"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, repo, audit := setupRouter(t)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/quotes", bytes.NewBufferString(tt.payload)))

			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
			repo.AssertNotCalled(t, "PersistQuote", mock.Anything)
			audit.AssertNotCalled(t, "Log", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestPreviewTotalsDoesNotPersist(t *testing.T) {
	router, repo, audit := setupRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/quotes/totals", bytes.NewBufferString(quotePayload)))

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var body struct {
		SubtotalCents int64  `json:"subtotal_cents"`
		TaxCents      int64  `json:"tax_cents"`
		TotalCents    int64  `json:"total_cents"`
		Total         string `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int64(85000), body.SubtotalCents)
	assert.Equal(t, int64(2000), body.TaxCents)
	assert.Equal(t, int64(87000), body.TotalCents)
	assert.Equal(t, "$870.00", body.Total)

	repo.AssertNotCalled(t, "PersistQuote", mock.Anything)
	audit.AssertNotCalled(t, "Log", mock.Anything, mock.Anything, mock.Anything)
}

func TestReplaceQuote(t *testing.T) {
	router, repo, audit := setupRouter(t)
	repo.On("ReplaceQuote", mock.MatchedBy(func(q models.Quote) bool {
		return q.ID == 7 && q.TotalCents == 87000
	})).Return(&models.Quote{ID: 7, TotalCents: 87000}, nil)
	repo.On("ReplaceQuote", mock.MatchedBy(func(q models.Quote) bool {
		return q.ID == 8
	})).Return(nil, custom_error.NewNotFound("quote", 8))
	audit.On("Log", "update", mock.Anything, mock.Anything).Return()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/quotes/7", bytes.NewBufferString(quotePayload)))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/quotes/8", bytes.NewBufferString(quotePayload)))
	assert.Equal(t, http.StatusNotFound, w.Code)

	repo.AssertExpectations(t)
	audit.AssertNumberOfCalls(t, "Log", 1)
}

func TestUpdateQuoteStatus(t *testing.T) {
	router, repo, audit := setupRouter(t)
	repo.On("UpdateQuoteStatus", 7, metadata.QuoteStatusApproved).Return(nil)
	audit.On("Log", "status", mock.Anything, &models.Quote{ID: 7}).Return()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/quotes/7/status", bytes.NewBufferString(`{"status": "approved"}`)))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/quotes/7/status", bytes.NewBufferString(`{"status": "confirmed"}`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	repo.AssertExpectations(t)
	audit.AssertExpectations(t)
}

func TestGetQuotesByStatus(t *testing.T) {
	router, repo, _ := setupRouter(t)
	repo.On("GetQuotesBy", mock.MatchedBy(func(qb repository.QueryBuilder) bool {
		return assert.ObjectsAreEqual(goqu.Ex{"status": "approved"}, qb.BuildConditions(nil))
	})).Return([]models.Quote{{ID: 1, Status: metadata.QuoteStatusApproved}}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/quotes?status=approved", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/quotes?status=confirmed", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	repo.AssertExpectations(t)
}

func TestGetQuotesBySeveralStatuses(t *testing.T) {
	router, repo, _ := setupRouter(t)
	repo.On("GetQuotesBy", mock.MatchedBy(func(qb repository.QueryBuilder) bool {
		return assert.ObjectsAreEqual(goqu.Ex{"status": []string{"sent", "approved"}}, qb.BuildConditions(nil))
	})).Return([]models.Quote{}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/quotes?status=sent,%20approved", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	repo.AssertExpectations(t)
}

func TestRemoveQuote(t *testing.T) {
	router, repo, audit := setupRouter(t)
	repo.On("DeleteQuote", 4).Return(nil)
	audit.On("Log", "delete", mock.Anything, &models.Quote{ID: 4}).Return()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/quotes/4", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	repo.AssertExpectations(t)
	audit.AssertExpectations(t)
}

func TestCreateQuoteChecksReferences(t *testing.T) {
	withVenue := strings.Replace(quotePayload, `"client_id": 3,`, `"client_id": 3, "venue_id": 6,`, 1)

	tests := []struct {
		name           string
		payload        string
		setupMock      func(clients *MockClientLookup, venues *MockVenueLookup)
		expectedStatus int
	}{
		{
			name:    "unknown client",
			payload: quotePayload,
			setupMock: func(clients *MockClientLookup, venues *MockVenueLookup) {
				clients.On("Get", 3).Return(nil, custom_error.NewNotFound("client", 3))
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:    "unknown venue",
			payload: withVenue,
			setupMock: func(clients *MockClientLookup, venues *MockVenueLookup) {
				clients.On("Get", 3).Return(&models.Client{ID: 3}, nil)
				venues.On("Get", 6).Return(nil, custom_error.NewNotFound("venue", 6))
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:    "lookup failure is not the caller's fault",
			payload: quotePayload,
			setupMock: func(clients *MockClientLookup, venues *MockVenueLookup) {
				clients.On("Get", 3).Return(nil, errors.New("connection reset"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clients := new(MockClientLookup)
			venues := new(MockVenueLookup)
			tt.setupMock(clients, venues)
			router, repo, audit := newRouter(t, clients, venues, metrics.NewAvailabilityMetrics(prometheus.NewRegistry()))

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/quotes", bytes.NewBufferString(tt.payload)))

			assert.Equal(t, tt.expectedStatus, w.Code)
			clients.AssertExpectations(t)
			venues.AssertExpectations(t)
			repo.AssertNotCalled(t, "PersistQuote", mock.Anything)
			audit.AssertNotCalled(t, "Log", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestCreateQuoteWithKnownVenue(t *testing.T) {
	clients := new(MockClientLookup)
	clients.On("Get", 3).Return(&models.Client{ID: 3}, nil)
	venues := new(MockVenueLookup)
	venues.On("Get", 6).Return(&models.Venue{ID: 6}, nil)
	router, repo, audit := newRouter(t, clients, venues, metrics.NewAvailabilityMetrics(prometheus.NewRegistry()))

	repo.On("PersistQuote", mock.MatchedBy(func(q models.Quote) bool {
		return q.VenueID != nil && *q.VenueID == 6
	})).Return(&models.Quote{ID: 1}, nil)
	audit.On("Log", "create", mock.Anything, mock.Anything).Return()

	payload := strings.Replace(quotePayload, `"client_id": 3,`, `"client_id": 3, "venue_id": 6,`, 1)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/quotes", bytes.NewBufferString(payload)))

	assert.Equal(t, http.StatusCreated, w.Code)
	clients.AssertExpectations(t)
	venues.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestRemoveQuoteDropsShortageGauge(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := metrics.NewAvailabilityMetrics(registry)
	m.SetQuoteShortage(4, "dallas", 3)
	m.SetQuoteShortage(5, "dallas", 1)

	router, repo, audit := newRouter(t, new(MockClientLookup), new(MockVenueLookup), m)
	repo.On("DeleteQuote", 4).Return(nil)
	audit.On("Log", "delete", mock.Anything, &models.Quote{ID: 4}).Return()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/quotes/4", nil))
	require.Equal(t, http.StatusOK, w.Code)

	families, err := registry.Gather()
	require.NoError(t, err)
	found := false
	for _, family := range families {
		if family.GetName() != "quote_subrental_needed_units" {
			continue
		}
		found = true
		require.Len(t, family.GetMetric(), 1)
		for _, label := range family.GetMetric()[0].GetLabel() {
			if label.GetName() == "quote_id" {
				assert.Equal(t, "5", label.GetValue())
			}
		}
	}
	assert.True(t, found)
}
