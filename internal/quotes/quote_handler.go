package quotes

import (
	"net/http"
	"strconv"

	"avrental/internal/validation"
	"avrental/pkg/auditlog"
	custom_error "avrental/pkg/errors"
	"avrental/pkg/models"
	"avrental/pkg/money"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type QuoteHandler struct {
	service  *QuoteService
	AuditLog auditlog.Logger
	log      *zap.Logger
}

func NewQuoteHandler(s *QuoteService, a auditlog.Logger, log *zap.Logger) *QuoteHandler {
	return &QuoteHandler{
		service:  s,
		AuditLog: a,
		log:      log,
	}
}

func (h *QuoteHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/quotes", h.GetQuotes)
	router.POST("/quotes", h.CreateQuote)
	router.POST("/quotes/totals", h.PreviewTotals)
	router.GET("/quotes/:id", h.GetQuote)
	router.PUT("/quotes/:id", h.ReplaceQuote)
	router.PATCH("/quotes/:id/status", h.UpdateQuoteStatus)
	router.DELETE("/quotes/:id", h.RemoveQuote)
}

func (h *QuoteHandler) GetQuotes(c *gin.Context) {
	quotes, err := h.service.List(QuoteFilter{
		Status: c.Query("status"),
		Office: c.Query("office"),
	})
	if err != nil {
		h.abort(c, "Unable to list quotes", err)
		return
	}

	c.JSON(http.StatusOK, quotes)
}

func (h *QuoteHandler) GetQuote(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	quote, err := h.service.Get(id)
	if err != nil {
		h.abort(c, "Unable to get quote", err)
		return
	}

	c.JSON(http.StatusOK, quote)
}

// PreviewTotals answers with the computed totals and the formatted grand
// total so the client never has to do the arithmetic itself.
func (h *QuoteHandler) PreviewTotals(c *gin.Context) {
	var req models.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": validation.Describe(err)})
		return
	}

	quote, err := h.service.Preview(req)
	if err != nil {
		h.abort(c, "Unable to compute totals", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sections":       quote.Sections,
		"subtotal_cents": quote.SubtotalCents,
		"tax_cents":      quote.TaxCents,
		"total_cents":    quote.TotalCents,
		"total":          money.FormatCents(quote.TotalCents),
	})
}

func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var req models.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": validation.Describe(err)})
		return
	}

	quote, err := h.service.Create(req)
	if err != nil {
		h.abort(c, "Failed to create quote", err)
		return
	}

	h.AuditLog.Log(
		models.ActionCreate,
		map[string]interface{}{
			"reference_number": quote.ReferenceNumber,
			"status":           quote.Status,
			"total_cents":      quote.TotalCents,
			"msg":              "Quote created",
		},
		quote,
	)

	c.JSON(http.StatusCreated, quote)
}

func (h *QuoteHandler) ReplaceQuote(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	var req models.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": validation.Describe(err)})
		return
	}

	quote, err := h.service.Replace(id, req)
	if err != nil {
		h.abort(c, "Failed to update quote", err)
		return
	}

	h.AuditLog.Log(
		models.ActionUpdate,
		map[string]interface{}{
			"reference_number": quote.ReferenceNumber,
			"status":           quote.Status,
			"total_cents":      quote.TotalCents,
			"msg":              "Quote replaced",
		},
		quote,
	)

	c.JSON(http.StatusOK, quote)
}

func (h *QuoteHandler) UpdateQuoteStatus(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	var req models.QuoteStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": validation.Describe(err)})
		return
	}

	status, err := h.service.ChangeStatus(id, req.Status)
	if err != nil {
		h.abort(c, "Failed to change quote status", err)
		return
	}

	h.AuditLog.Log(
		models.ActionStatus,
		map[string]interface{}{
			"status": status,
			"msg":    "Quote status changed",
		},
		&models.Quote{ID: id},
	)

	c.JSON(http.StatusOK, gin.H{"id": id, "status": status})
}

func (h *QuoteHandler) RemoveQuote(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(id); err != nil {
		h.abort(c, "Failed to delete quote", err)
		return
	}

	h.AuditLog.Log(
		models.ActionDelete,
		map[string]interface{}{"msg": "Quote removed"},
		&models.Quote{ID: id},
	)

	c.JSON(http.StatusOK, gin.H{"message": "Quote deleted successfully"})
}

func (h *QuoteHandler) abort(c *gin.Context, message string, err error) {
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
