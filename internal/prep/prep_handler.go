package prep

import (
	"net/http"
	"strconv"

	"avrental/internal/validation"
	custom_error "avrental/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type availabilityQuery struct {
	ItemID         int    `form:"item_id" binding:"required,gt=0"`
	Office         string `form:"office" binding:"required,office"`
	Start          string `form:"start" binding:"required"`
	End            string `form:"end"`
	ExcludeQuoteID int    `form:"exclude_quote_id" binding:"gte=0"`
}

type PrepHandler struct {
	service *PrepService
	log     *zap.Logger
}

func NewPrepHandler(s *PrepService, log *zap.Logger) *PrepHandler {
	return &PrepHandler{service: s, log: log}
}

func (h *PrepHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/availability", h.GetAvailability)
	router.GET("/quotes/:id/pull-list", h.GetPullList)
	router.GET("/dashboard/offices", h.GetOfficeDashboard)
}

func (h *PrepHandler) GetAvailability(c *gin.Context) {
	var q availabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters", "details": validation.Describe(err)})
		return
	}

	available, err := h.service.Availability(AvailabilityRequest{
		ItemID:         q.ItemID,
		Office:         q.Office,
		Start:          q.Start,
		End:            q.End,
		ExcludeQuoteID: q.ExcludeQuoteID,
	})
	if err != nil {
		h.abort(c, "Unable to resolve availability", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"item_id":   q.ItemID,
		"office":    q.Office,
		"available": available,
	})
}

func (h *PrepHandler) GetPullList(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid id parameter, must be a positive integer"})
		return
	}

	list, err := h.service.PullList(id)
	if err != nil {
		h.abort(c, "Unable to build pull list", err)
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *PrepHandler) GetOfficeDashboard(c *gin.Context) {
	dashboard, err := h.service.OfficeDashboard()
	if err != nil {
		h.abort(c, "Unable to build office dashboard", err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

func (h *PrepHandler) abort(c *gin.Context, message string, err error) {
	status := custom_error.StatusCode(err)
	if status == http.StatusInternalServerError {
		h.log.Error(message, zap.Error(err))
	}
	c.AbortWithStatusJSON(status, gin.H{"error": message, "details": err.Error()})
}
