package auditlog

import (
	"net/http"
	"strconv"

	"avrental/pkg/models"

	"github.com/gin-gonic/gin"
)

type LogReader interface {
	GetResourceLog(id int, resourceType string) ([]models.AuditLog, error)
}

type AuditLogHandler struct {
	r LogReader
}

func NewHandler(r LogReader) *AuditLogHandler {
	return &AuditLogHandler{r: r}
}

func (h *AuditLogHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/audit-logs/:resource_type/:id", h.GetResourceLog)
}

func (h *AuditLogHandler) GetResourceLog(c *gin.Context) {
	resourceType := c.Param("resource_type")
	if !models.IsAuditedResource(resourceType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown resource type", "details": resourceType})
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id parameter, must be a positive integer"})
		return
	}

	logs, err := h.r.GetResourceLog(id, resourceType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to fetch audit log", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, logs)
}
