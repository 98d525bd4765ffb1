package handler

import (
	"errors"
	"net/http"
	"strings"

	"corridor-app/internal/domain/model"
	"corridor-app/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CorridorHandler exposes corridor extraction over HTTP.
type CorridorHandler struct {
	extractionUseCase usecase.CorridorExtractionUseCase
}

// NewCorridorHandler creates the handler.
func NewCorridorHandler(extractionUseCase usecase.CorridorExtractionUseCase) *CorridorHandler {
	return &CorridorHandler{extractionUseCase: extractionUseCase}
}

// ExtractCorridors POST /api/corridors/extract - run an extraction with
// optional configuration overrides.
func (h *CorridorHandler) ExtractCorridors(c *gin.Context) {
	var req model.ExtractionRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}

	response, err := h.extractionUseCase.RunExtraction(c.Request.Context(), &req)
	if err != nil {
		var cfgErr *model.ConfigurationError
		if errors.As(err, &cfgErr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid_configuration",
				"message": cfgErr.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to extract corridors: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, response)
}

// GetRun GET /api/corridors/:run_id - fetch a persisted run.
func (h *CorridorHandler) GetRun(c *gin.Context) {
	runID := c.Param("run_id")
	if runID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "missing_parameter",
			"message": "run_id path parameter is required",
		})
		return
	}

	run, err := h.extractionUseCase.GetRun(c.Request.Context(), runID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "not_found",
				"message": err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to fetch run: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, run)
}

// Health GET /api/health - liveness probe.
func (h *CorridorHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "corridor-app"})
}
