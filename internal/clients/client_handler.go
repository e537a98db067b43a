package clients

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

type ClientHandler struct {
	service  *ClientService
	AuditLog auditlog.Logger
	log      *zap.Logger
}

func NewClientHandler(s *ClientService, a auditlog.Logger, log *zap.Logger) *ClientHandler {
	return &ClientHandler{
		service:  s,
		AuditLog: a,
		log:      log,
	}
}

func (h *ClientHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/clients", h.GetClients)
	router.POST("/clients", h.CreateClient)
	router.GET("/clients/:id", h.GetClient)
	router.PUT("/clients/:id", h.UpdateClient)
	router.DELETE("/clients/:id", h.RemoveClient)
}

func (h *ClientHandler) GetClients(c *gin.Context) {
	clients, err := h.service.List()
	if err != nil {
		h.abort(c, "Unable to list clients", err)
		return
	}

	c.JSON(http.StatusOK, clients)
}

func (h *ClientHandler) GetClient(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	client, err := h.service.Get(id)
	if err != nil {
		h.abort(c, "Unable to get client", err)
		return
	}

	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req models.ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": validation.Describe(err)})
		return
	}

	client, err := h.service.Create(req)
	if err != nil {
		h.abort(c, "Failed to create client", err)
		return
	}

	h.AuditLog.Log(
		models.ActionCreate,
		map[string]interface{}{"name": client.Name, "company": client.Company, "msg": "Client created"},
		client,
	)

	c.JSON(http.StatusCreated, client)
}

func (h *ClientHandler) UpdateClient(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	var req models.ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": validation.Describe(err)})
		return
	}

	client, err := h.service.Update(id, req)
	if err != nil {
		h.abort(c, "Failed to update client", err)
		return
	}

	h.AuditLog.Log(
		models.ActionUpdate,
		map[string]interface{}{"name": client.Name, "company": client.Company, "msg": "Client updated"},
		client,
	)

	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) RemoveClient(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(id); err != nil {
		h.abort(c, "Failed to delete client", err)
		return
	}

	h.AuditLog.Log(models.ActionDelete, map[string]interface{}{"msg": "Client removed"}, &models.Client{ID: id})

	c.JSON(http.StatusOK, gin.H{"message": "Client deleted successfully"})
}

func (h *ClientHandler) abort(c *gin.Context, message string, err error) {
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
