package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"risk-prediction-service/internal/domain"
)

// mapDomainError translates pipeline failures to HTTP status. Anything not
// recognized becomes a generic 500; internals never reach the client.
func mapDomainError(c *gin.Context, err error) {
	var validationErr *domain.ValidationError
	var schemaErr *domain.SchemaError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error(), "details": validationErr.Problems})

	case errors.As(err, &schemaErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": schemaErr.Error(), "details": schemaErr.Missing})

	case errors.Is(err, domain.ErrNoProductionModel),
		errors.Is(err, domain.ErrModelNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
