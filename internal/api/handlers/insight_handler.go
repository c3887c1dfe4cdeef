package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/retailpulse/inventory-insight/internal/domain"
	"github.com/retailpulse/inventory-insight/internal/repository"
	"github.com/retailpulse/inventory-insight/internal/service"
)

type InsightHandler struct {
	service *service.InsightService
}

func NewInsightHandler(service *service.InsightService) *InsightHandler {
	return &InsightHandler{service: service}
}

// Analyze runs the engine on a self-contained request body. Nothing is
// read from the database; the caller supplies forecast and parameters.
func (h *InsightHandler) Analyze(c *gin.Context) {
	var req domain.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	report, err := h.service.Analyze(req)
	if err != nil {
		respondAnalysisError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// AnalyzeItem analyzes one catalog item using its stored forecast.
func (h *InsightHandler) AnalyzeItem(c *gin.Context) {
	itemID := c.Param("item_id")
	horizon, _ := strconv.Atoi(c.DefaultQuery("horizon", "0"))

	report, err := h.service.AnalyzeItem(c.Request.Context(), itemID, horizon)
	if err != nil {
		respondAnalysisError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

type batchRequest struct {
	ItemIDs     []string `json:"item_ids"`
	HorizonDays int      `json:"horizon_days"`
}

// AnalyzeBatch fans the analysis out across several catalog items. An
// empty item_ids list analyzes the whole catalog.
func (h *InsightHandler) AnalyzeBatch(c *gin.Context) {
	var req batchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	results, err := h.service.AnalyzeBatch(c.Request.Context(), req.ItemIDs, req.HorizonDays)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "batch analysis failed", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"results": results,
		"total":   len(results),
	})
}

func respondAnalysisError(c *gin.Context, err error) {
	var forecastErr *domain.InvalidForecastError
	var inputErr *domain.InvalidInputError

	switch {
	case errors.As(err, &forecastErr), errors.As(err, &inputErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "analysis failed", "details": err.Error()})
	}
}
