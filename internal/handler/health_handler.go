package handler

import (
	"net/http"

	"patient-management-service/internal/database"
	"patient-management-service/pkg/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthHandler struct {
	conns *database.Provider
}

func NewHealthHandler(conns *database.Provider) *HealthHandler {
	return &HealthHandler{conns: conns}
}

// Check acquires and releases one database session
// GET /health
func (h *HealthHandler) Check(c *gin.Context) {
	err := h.conns.WithConnection(c.Request.Context(), func(*gorm.DB) error { return nil })
	if err != nil {
		_ = c.Error(err)
		utils.ErrorResponse(c, http.StatusServiceUnavailable, "database unavailable")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"status":      "healthy",
		"service":     "patient-management-service",
		"connections": h.conns.Stats(),
	})
}
