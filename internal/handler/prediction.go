package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"risk-prediction-service/internal/dto"
)

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:       "healthy",
		Version:      Version,
		ModelsLoaded: h.catalogUC.ListAvailableModels(),
		LastUpdated:  time.Now().UTC(),
	})
}

func (h *Handler) Predict(c *gin.Context) {
	var req dto.PredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.ModelName == "" {
		req.ModelName = "default"
	}

	result, err := h.predictionUC.Predict(c.Request.Context(), req.StudentData, req.ModelName)
	if err != nil {
		log.WithError(err).WithField("model", req.ModelName).Error("prediction failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPredictionResponse(result))
}

func (h *Handler) Analytics(c *gin.Context) {
	timeRange := c.DefaultQuery("time_range", "30d")
	filters := c.DefaultQuery("filters", "{}")

	report, err := h.analyticsUC.Report(c.Request.Context(), timeRange, filters)
	if err != nil {
		log.WithError(err).Error("analytics failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *Handler) ListModels(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ModelsResponse{Models: h.catalogUC.ListModels()})
}
