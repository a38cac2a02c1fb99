package routes

import (
	"concert_tickets/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAPI     = "/api"
	PathOrders  = "/orders"
	PathCapture = "/:orderID/capture"
)

func addOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.POST(PathCapture, orderHandler.CaptureOrder)
	}
}

func addHealthRoutes(r *gin.Engine, message string) {
	r.GET("/", handlers.Health(message))
	r.GET("/ping", handlers.Ping)
}
