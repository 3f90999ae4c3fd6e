package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/franchise-api/backend/internal/model"
)

// Ping godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} model.StatusResponse
// @Router /healthz [get]
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, model.StatusResponse{Status: "ok"})
}

// Root reports that the API server is up.
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Franchise API server is running",
	})
}
