package handler

import (
	"net/http"
	"strconv"

	"shift-roster/internal/logger"
	"shift-roster/internal/model"
	"shift-roster/internal/service"

	"github.com/gin-gonic/gin"
)

type QuotaHandler struct {
	svc *service.QuotaService
}

func NewQuotaHandler(svc *service.QuotaService) *QuotaHandler {
	return &QuotaHandler{svc: svc}
}

func yearParam(c *gin.Context) (int, bool) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
		return 0, false
	}
	return year, true
}

// GET /api/quotas/:year
func (h *QuotaHandler) List(c *gin.Context) {
	year, ok := yearParam(c)
	if !ok {
		return
	}
	quotas, err := h.svc.ForYear(c.Request.Context(), year)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if quotas == nil {
		quotas = []model.Quota{}
	}
	c.JSON(http.StatusOK, quotas)
}

// PUT /api/quotas/batch  body: {"quotas":[...]}
func (h *QuotaHandler) SaveBatch(c *gin.Context) {
	var req struct {
		Quotas []model.Quota `json:"quotas" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := h.svc.SaveBatch(c.Request.Context(), req.Quotas); err != nil {
		logger.Error("quotas.save_batch failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	logger.Info("quotas.save_batch", "rows", len(req.Quotas))
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// GET /api/quotas/:year/usage/:memberId
func (h *QuotaHandler) Usage(c *gin.Context) {
	year, ok := yearParam(c)
	if !ok {
		return
	}
	usage, err := h.svc.UsageFor(c.Request.Context(), year, c.Param("memberId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, usage)
}
