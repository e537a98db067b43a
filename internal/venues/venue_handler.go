package venues

import (
	"net/http"
	"strconv"

	"avrental/internal/validation"
	"avrental/pkg/auditlog"
	custom_error "avrental/pkg/errors"
	"avrental/pkg/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type VenueHandler struct {
	service  *VenueService
	AuditLog auditlog.Logger
	log      *zap.Logger
}

func NewVenueHandler(s *VenueService, a auditlog.Logger, log *zap.Logger) *VenueHandler {
	return &VenueHandler{
		service:  s,
		AuditLog: a,
		log:      log,
	}
}

func (h *VenueHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/venues", h.GetVenues)
	router.POST("/venues", h.CreateVenue)
	router.GET("/venues/:id", h.GetVenue)
	router.PUT("/venues/:id", h.UpdateVenue)
	router.DELETE("/venues/:id", h.RemoveVenue)
}

// GetVenues supports ?search= on venue name and city.
func (h *VenueHandler) GetVenues(c *gin.Context) {
	venues, err := h.service.List(c.Query("search"))
	if err != nil {
		h.abort(c, "Unable to list venues", err)
		return
	}

	c.JSON(http.StatusOK, venues)
}

func (h *VenueHandler) GetVenue(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	venue, err := h.service.Get(id)
	if err != nil {
		h.abort(c, "Unable to get venue", err)
		return
	}

	c.JSON(http.StatusOK, venue)
}

func (h *VenueHandler) CreateVenue(c *gin.Context) {
	var req models.VenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": validation.Describe(err)})
		return
	}

	venue, err := h.service.Create(req)
	if err != nil {
		h.abort(c, "Failed to create venue", err)
		return
	}

	h.AuditLog.Log(
		models.ActionCreate,
		map[string]interface{}{"venue_name": venue.Name, "city": venue.City, "msg": "Venue created"},
		venue,
	)

	c.JSON(http.StatusCreated, venue)
}

func (h *VenueHandler) UpdateVenue(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	var req models.VenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": validation.Describe(err)})
		return
	}

	venue, err := h.service.Update(id, req)
	if err != nil {
		h.abort(c, "Failed to update venue", err)
		return
	}

	h.AuditLog.Log(
		models.ActionUpdate,
		map[string]interface{}{"venue_name": venue.Name, "city": venue.City, "msg": "Venue updated"},
		venue,
	)

	c.JSON(http.StatusOK, venue)
}

func (h *VenueHandler) RemoveVenue(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(id); err != nil {
		h.abort(c, "Failed to delete venue", err)
		return
	}

	h.AuditLog.Log(models.ActionDelete, map[string]interface{}{"msg": "Venue removed"}, &models.Venue{ID: id})

	c.JSON(http.StatusOK, gin.H{"message": "Venue deleted successfully"})
}

func (h *VenueHandler) abort(c *gin.Context, message string, err error) {
	status := custom_error.StatusCode(err)
	if status == http.StatusInternalServerError {
		h.log.Error(message, zap.Error(err))
	}
	c.AbortWithStatusJSON(status, gin.H{"error": message, "details": err.Error()})
}

func bindID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid id parameter, must be a positive integer"})
		return 0, false
	}
	return id, true
}
