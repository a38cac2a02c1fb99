package main

import (
	_ "concert_tickets/docs"
	"concert_tickets/internal/adapter/http/routes"
	"concert_tickets/internal/infrastructure/config"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Concert Tickets API
// @version         1.0
// @description     Ticket checkout backed by PayPal Orders v2.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /

func main() {
	routes.Run(config.Load())
}
