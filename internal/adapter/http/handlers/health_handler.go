package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const RequestIDKey = "request_id"

// Health godoc
// @Summary  Service health message
// @Tags     health
// @Produce  json
// @Success  200  {string}  string
// @Router   / [get]
func Health(message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, message)
	}
}

// Ping godoc
// @Summary  Liveness probe
// @Tags     health
// @Produce  json
// @Success  200  {object}  map[string]string
// @Router   /ping [get]
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

func requestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}
