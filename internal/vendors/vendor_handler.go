package vendors

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

type VendorHandler struct {
	service  *VendorService
	AuditLog auditlog.Logger
	log      *zap.Logger
}

func NewVendorHandler(s *VendorService, a auditlog.Logger, log *zap.Logger) *VendorHandler {
	return &VendorHandler{
		service:  s,
		AuditLog: a,
		log:      log,
	}
}

func (h *VendorHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/vendors", h.GetVendors)
	router.POST("/vendors", h.CreateVendor)
	router.GET("/vendors/:id", h.GetVendor)
	router.PUT("/vendors/:id", h.UpdateVendor)
	router.DELETE("/vendors/:id", h.RemoveVendor)
}

// GetVendors supports ?category= with any vendor category.
func (h *VendorHandler) GetVendors(c *gin.Context) {
	vendors, err := h.service.List(c.Query("category"))
	if err != nil {
		h.abort(c, "Unable to list vendors", err)
		return
	}

	c.JSON(http.StatusOK, vendors)
}

func (h *VendorHandler) GetVendor(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	vendor, err := h.service.Get(id)
	if err != nil {
		h.abort(c, "Unable to get vendor", err)
		return
	}

	c.JSON(http.StatusOK, vendor)
}

func (h *VendorHandler) CreateVendor(c *gin.Context) {
	var req models.VendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": validation.Describe(err)})
		return
	}

	vendor, err := h.service.Create(req)
	if err != nil {
		h.abort(c, "Failed to create vendor", err)
		return
	}

	h.AuditLog.Log(
		models.ActionCreate,
		map[string]interface{}{"name": vendor.Name, "vendor_category": vendor.Category, "msg": "Vendor created"},
		vendor,
	)

	c.JSON(http.StatusCreated, vendor)
}

func (h *VendorHandler) UpdateVendor(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	var req models.VendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": validation.Describe(err)})
		return
	}

	vendor, err := h.service.Update(id, req)
	if err != nil {
		h.abort(c, "Failed to update vendor", err)
		return
	}

	h.AuditLog.Log(
		models.ActionUpdate,
		map[string]interface{}{"name": vendor.Name, "vendor_category": vendor.Category, "msg": "Vendor updated"},
		vendor,
	)

	c.JSON(http.StatusOK, vendor)
}

func (h *VendorHandler) RemoveVendor(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(id); err != nil {
		h.abort(c, "Failed to delete vendor", err)
		return
	}

	h.AuditLog.Log(models.ActionDelete, map[string]interface{}{"msg": "Vendor removed"}, &models.Vendor{ID: id})

	c.JSON(http.StatusOK, gin.H{"message": "Vendor deleted successfully"})
}

func (h *VendorHandler) abort(c *gin.Context, message string, err error) {
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
