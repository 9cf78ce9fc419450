package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sahyadri/portal/internal/app/models/dto"
)

// HealthController answers liveness probes
type HealthController struct{}

// NewHealthController creates a new HealthController
func NewHealthController() *HealthController {
	return &HealthController{}
}

// Health godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Router /health [get]
func (ctrl *HealthController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewMessageResponse("ok"))
}
