package handlers

import (
	"errors"
	"net/http"

	apperrors "garden-planner-backend/internal/errors"
	"garden-planner-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CorrelationIDHeader names the client-chosen id of an optimistic placement
const CorrelationIDHeader = "X-Correlation-ID"

// ValidationErrorResponse is returned for rejected input
type ValidationErrorResponse struct {
	Error   string   `json:"error" example:"Bed placement is outside garden bounds"`
	Details []string `json:"details" example:"x: Item extends beyond garden width"`
}

// respondError maps a service error onto an HTTP status
func respondError(c *gin.Context, err error) {
	if verrs, ok := apperrors.AsValidationErrors(err); ok {
		c.JSON(http.StatusUnprocessableEntity, ValidationErrorResponse{Error: verrs.Reason, Details: verrs.Messages()})
		return
	}

	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrEmptyUpdate), errors.Is(err, apperrors.ErrInvalidCorrelation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicateCorrelated):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.WithContext(c.Request.Context()).Errorf("request failed: %v", err)
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// parseID reads a UUID path parameter, answering 400 when it is malformed
func parseID(c *gin.Context, param, entity string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + entity + " ID"})
		return uuid.Nil, false
	}
	return id, true
}

// bindJSON decodes the request body, answering 400 when it is malformed
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return false
	}
	return true
}
