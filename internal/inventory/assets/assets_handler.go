package assets

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

type AssetHandler struct {
	service  *AssetService
	AuditLog auditlog.Logger
	log      *zap.Logger
}

func NewAssetHandler(s *AssetService, a auditlog.Logger, log *zap.Logger) *AssetHandler {
	return &AssetHandler{
		service:  s,
		AuditLog: a,
		log:      log,
	}
}

func (h *AssetHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/assets", h.GetAssets)
	router.GET("/assets/:id", h.GetAsset)
	router.POST("/assets", h.CreateAsset)
	router.PUT("/assets/:id", h.UpdateAsset)
	router.PATCH("/assets/:id/status", h.UpdateAssetStatus)
	router.DELETE("/assets/:id", h.RemoveAsset)
	router.GET("/catalog/:id/assets", h.GetItemAssets)
}

func (h *AssetHandler) GetAssets(c *gin.Context) {
	units, err := h.service.List(AssetFilter{
		ItemID: c.Query("item_id"),
		Office: c.Query("office"),
		Status: c.Query("status"),
	})
	if err != nil {
		h.abort(c, "Unable to list asset units", err)
		return
	}

	c.JSON(http.StatusOK, units)
}

func (h *AssetHandler) GetItemAssets(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	units, err := h.service.List(AssetFilter{
		ItemID: strconv.Itoa(id),
		Office: c.Query("office"),
		Status: c.Query("status"),
	})
	if err != nil {
		h.abort(c, "Unable to list asset units", err)
		return
	}

	c.JSON(http.StatusOK, units)
}

func (h *AssetHandler) GetAsset(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	unit, err := h.service.Get(id)
	if err != nil {
		h.abort(c, "Unable to get asset unit", err)
		return
	}

	c.JSON(http.StatusOK, unit)
}

func (h *AssetHandler) CreateAsset(c *gin.Context) {
	var req models.AssetUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": validation.Describe(err)})
		return
	}

	unit, err := h.service.Create(req)
	if err != nil {
		if custom_error.IsUniqueViolation(err) {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "Asset tag already registered", "details": err.Error()})
			return
		}
		h.abort(c, "Failed to create asset unit", err)
		return
	}

	h.AuditLog.Log(
		models.ActionCreate,
		map[string]interface{}{
			"item_id":         unit.ItemID,
			"asset_tag":       unit.AssetTag,
			"office_location": unit.OfficeLocation,
			"status":          unit.Status,
			"msg":             "Asset unit created",
		},
		unit,
	)

	c.JSON(http.StatusCreated, unit)
}

func (h *AssetHandler) UpdateAsset(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	var req models.AssetUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": validation.Describe(err)})
		return
	}

	unit, err := h.service.Update(id, req)
	if err != nil {
		h.abort(c, "Failed to update asset unit", err)
		return
	}

	h.AuditLog.Log(
		models.ActionUpdate,
		map[string]interface{}{
			"item_id":         unit.ItemID,
			"asset_tag":       unit.AssetTag,
			"office_location": unit.OfficeLocation,
			"status":          unit.Status,
			"msg":             "Asset unit updated",
		},
		unit,
	)

	c.JSON(http.StatusOK, unit)
}

// UpdateAssetStatus is the only way a unit moves between available, rented
// and maintenance. Nothing changes the flag automatically.
func (h *AssetHandler) UpdateAssetStatus(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	var req models.AssetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": validation.Describe(err)})
		return
	}

	status, err := h.service.ChangeStatus(id, req.Status)
	if err != nil {
		h.abort(c, "Failed to change asset status", err)
		return
	}

	h.AuditLog.Log(
		models.ActionStatus,
		map[string]interface{}{
			"status": status,
			"msg":    "Asset status changed",
		},
		&models.AssetUnit{ID: id},
	)

	c.JSON(http.StatusOK, gin.H{"asset_unit_id": id, "status": status})
}

func (h *AssetHandler) RemoveAsset(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(id); err != nil {
		h.abort(c, "Failed to delete asset unit", err)
		return
	}

	h.AuditLog.Log(
		models.ActionDelete,
		map[string]interface{}{"msg": "Asset unit removed"},
		&models.AssetUnit{ID: id},
	)

	c.JSON(http.StatusOK, gin.H{"message": "Asset unit deleted successfully"})
}

func (h *AssetHandler) abort(c *gin.Context, message string, err error) {
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
