package catalog

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

type CatalogHandler struct {
	service  *CatalogService
	AuditLog auditlog.Logger
	log      *zap.Logger
}

func NewCatalogHandler(s *CatalogService, a auditlog.Logger, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service:  s,
		AuditLog: a,
		log:      log,
	}
}

func (h *CatalogHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/catalog", h.GetItems)
	router.POST("/catalog", h.CreateItem)
	router.GET("/catalog/:id", h.GetItem)
	router.PUT("/catalog/:id", h.UpdateItem)
	router.DELETE("/catalog/:id", h.RemoveItem)
}

func (h *CatalogHandler) GetItems(c *gin.Context) {
	items, err := h.service.List(c.Query("category"))
	if err != nil {
		h.abort(c, "Unable to list catalog items", err)
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *CatalogHandler) GetItem(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	item, err := h.service.Get(id)
	if err != nil {
		h.abort(c, "Unable to get catalog item", err)
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *CatalogHandler) CreateItem(c *gin.Context) {
	var req models.CatalogItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": validation.Describe(err)})
		return
	}

	item, err := h.service.Create(req)
	if err != nil {
		h.abort(c, "Failed to create catalog item", err)
		return
	}

	h.AuditLog.Log(
		models.ActionCreate,
		map[string]interface{}{
			"name":                item.Name,
			"category":            item.Category,
			"price_per_day_cents": item.PricePerDayCents,
			"msg":                 "Catalog item created",
		},
		item,
	)

	c.JSON(http.StatusCreated, item)
}

func (h *CatalogHandler) UpdateItem(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	var req models.CatalogItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": validation.Describe(err)})
		return
	}

	item, err := h.service.Update(id, req)
	if err != nil {
		h.abort(c, "Failed to update catalog item", err)
		return
	}

	h.AuditLog.Log(
		models.ActionUpdate,
		map[string]interface{}{
			"name":                item.Name,
			"category":            item.Category,
			"price_per_day_cents": item.PricePerDayCents,
			"msg":                 "Catalog item updated",
		},
		item,
	)

	c.JSON(http.StatusOK, item)
}

func (h *CatalogHandler) RemoveItem(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(id); err != nil {
		h.abort(c, "Failed to delete catalog item", err)
		return
	}

	h.AuditLog.Log(
		models.ActionDelete,
		map[string]interface{}{"msg": "Catalog item and its asset units removed"},
		&models.CatalogItem{ID: id},
	)

	c.JSON(http.StatusOK, gin.H{"message": "Catalog item deleted successfully"})
}

func (h *CatalogHandler) abort(c *gin.Context, message string, err error) {
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
