package main

import (
	_ "my_trip/docs"
	"my_trip/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           My Trip API
// @version         1.0
// @description     Local order, favorites and checkout API of the My Trip booking app.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
