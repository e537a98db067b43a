package subrentals

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

type SubrentalHandler struct {
	service  *SubrentalService
	AuditLog auditlog.Logger
	log      *zap.Logger
}

func NewSubrentalHandler(s *SubrentalService, a auditlog.Logger, log *zap.Logger) *SubrentalHandler {
	return &SubrentalHandler{
		service:  s,
		AuditLog: a,
		log:      log,
	}
}

func (h *SubrentalHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/subrentals", h.GetSubrentals)
	router.POST("/subrentals", h.CreateSubrental)
	router.GET("/subrentals/:id", h.GetSubrental)
	router.PUT("/subrentals/:id", h.UpdateSubrental)
	router.DELETE("/subrentals/:id", h.RemoveSubrental)
	router.GET("/quotes/:id/subrentals", h.GetQuoteSubrentals)
}

func (h *SubrentalHandler) GetSubrentals(c *gin.Context) {
	var filter SubrentalFilter
	var ok bool
	if filter.QuoteID, ok = queryID(c, "quote_id"); !ok {
		return
	}
	if filter.VendorID, ok = queryID(c, "vendor_id"); !ok {
		return
	}

	subrentals, err := h.service.List(filter)
	if err != nil {
		h.abort(c, "Unable to list subrentals", err)
		return
	}

	c.JSON(http.StatusOK, subrentals)
}

func (h *SubrentalHandler) GetQuoteSubrentals(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	subrentals, err := h.service.ForQuote(id)
	if err != nil {
		h.abort(c, "Unable to list quote subrentals", err)
		return
	}

	c.JSON(http.StatusOK, subrentals)
}

func (h *SubrentalHandler) GetSubrental(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	subrental, err := h.service.Get(id)
	if err != nil {
		h.abort(c, "Unable to get subrental", err)
		return
	}

	c.JSON(http.StatusOK, subrental)
}

func (h *SubrentalHandler) CreateSubrental(c *gin.Context) {
	var req models.SubrentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": validation.Describe(err)})
		return
	}

	subrental, err := h.service.Create(req)
	if err != nil {
		h.abort(c, "Failed to create subrental", err)
		return
	}

	h.AuditLog.Log(
		models.ActionCreate,
		map[string]interface{}{
			"quote_id":     subrental.QuoteID,
			"equipment_id": subrental.EquipmentID,
			"vendor_id":    subrental.VendorID,
			"quantity":     subrental.Quantity,
			"msg":          "Subrental booked",
		},
		subrental,
	)

	c.JSON(http.StatusCreated, subrental)
}

func (h *SubrentalHandler) UpdateSubrental(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	var req models.SubrentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": validation.Describe(err)})
		return
	}

	subrental, err := h.service.Update(id, req)
	if err != nil {
		h.abort(c, "Failed to update subrental", err)
		return
	}

	h.AuditLog.Log(
		models.ActionUpdate,
		map[string]interface{}{"quantity": subrental.Quantity, "vendor_id": subrental.VendorID, "msg": "Subrental updated"},
		subrental,
	)

	c.JSON(http.StatusOK, subrental)
}

func (h *SubrentalHandler) RemoveSubrental(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(id); err != nil {
		h.abort(c, "Failed to delete subrental", err)
		return
	}

	h.AuditLog.Log(models.ActionDelete, map[string]interface{}{"msg": "Subrental removed"}, &models.Subrental{ID: id})

	c.JSON(http.StatusOK, gin.H{"message": "Subrental deleted successfully"})
}

func (h *SubrentalHandler) abort(c *gin.Context, message string, err error) {
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

// queryID reads an optional positive integer query parameter.
func queryID(c *gin.Context, key string) (*int, bool) {
	raw, present := c.GetQuery(key)
	if !present || raw == "" {
		return nil, true
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid " + key + " parameter, must be a positive integer"})
		return nil, false
	}
	return &id, true
}
