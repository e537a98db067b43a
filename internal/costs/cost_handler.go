package costs

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

type CostHandler struct {
	service  *CostService
	AuditLog auditlog.Logger
	log      *zap.Logger
}

func NewCostHandler(s *CostService, a auditlog.Logger, log *zap.Logger) *CostHandler {
	return &CostHandler{
		service:  s,
		AuditLog: a,
		log:      log,
	}
}

func (h *CostHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/quotes/:id/costs", h.GetJobReport)
	router.POST("/costs", h.CreateCost)
	router.GET("/costs/:id", h.GetCost)
	router.PUT("/costs/:id", h.UpdateCost)
	router.DELETE("/costs/:id", h.RemoveCost)
}

// GetJobReport lists a job's costs with projected and actual profit.
func (h *CostHandler) GetJobReport(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	report, err := h.service.Report(id)
	if err != nil {
		h.abort(c, "Unable to build cost report", err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *CostHandler) GetCost(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	cost, err := h.service.Get(id)
	if err != nil {
		h.abort(c, "Unable to get cost", err)
		return
	}

	c.JSON(http.StatusOK, cost)
}

func (h *CostHandler) CreateCost(c *gin.Context) {
	var req models.CostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": validation.Describe(err)})
		return
	}

	cost, err := h.service.Create(req)
	if err != nil {
		h.abort(c, "Failed to record cost", err)
		return
	}

	h.AuditLog.Log(
		models.ActionCreate,
		map[string]interface{}{
			"job_id":          cost.QuoteID,
			"vendor_id":       cost.VendorID,
			"projected_cents": cost.ProjectedCents,
			"actual_cents":    cost.ActualCents,
			"msg":             "Cost recorded",
		},
		cost,
	)

	c.JSON(http.StatusCreated, cost)
}

func (h *CostHandler) UpdateCost(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	var req models.CostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": validation.Describe(err)})
		return
	}

	cost, err := h.service.Update(id, req)
	if err != nil {
		h.abort(c, "Failed to update cost", err)
		return
	}

	h.AuditLog.Log(
		models.ActionUpdate,
		map[string]interface{}{"projected_cents": cost.ProjectedCents, "actual_cents": cost.ActualCents, "msg": "Cost updated"},
		cost,
	)

	c.JSON(http.StatusOK, cost)
}

func (h *CostHandler) RemoveCost(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(id); err != nil {
		h.abort(c, "Failed to delete cost", err)
		return
	}

	h.AuditLog.Log(models.ActionDelete, map[string]interface{}{"msg": "Cost removed"}, &models.Cost{ID: id})

	c.JSON(http.StatusOK, gin.H{"message": "Cost deleted successfully"})
}

func (h *CostHandler) abort(c *gin.Context, message string, err error) {
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
