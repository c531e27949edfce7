package handler

import (
	"github.com/gin-gonic/gin"

	"risk-prediction-service/internal/usecase"
)

// Version reported by /health.
const Version = "1.0.0"

type Handler struct {
	predictionUC *usecase.PredictionUseCase
	catalogUC    *usecase.CatalogUseCase
	analyticsUC  *usecase.AnalyticsUseCase
}

func New(predictionUC *usecase.PredictionUseCase, catalogUC *usecase.CatalogUseCase, analyticsUC *usecase.AnalyticsUseCase) *Handler {
	return &Handler{
		predictionUC: predictionUC,
		catalogUC:    catalogUC,
		analyticsUC:  analyticsUC,
	}
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.Health)
	r.POST("/predict", h.Predict)
	r.GET("/analytics", h.Analytics)
	r.GET("/models", h.ListModels)
}
