package routes

import (
	"context"
	"log"
	"strconv"

	_ "my_trip/docs"
	"my_trip/internal/adapter/http/handlers"
	"my_trip/internal/app"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const requestIDHeader = "X-Request-ID"

// Run will start the server
func Run() {
	ctx := context.Background()
	a, err := app.New(ctx, app.LoadConfig())
	if err != nil {
		log.Fatalf("Failed to wire the application: %v", err.Error())
	}
	defer a.Close()

	router := NewRouter(a)
	err = router.Run(":" + strconv.Itoa(a.Config.Port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// NewRouter builds the gin engine serving a.
func NewRouter(a *app.App) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	orderHandler := handlers.NewOrderHandler(a.Orders, a.Payments, a.Refresh, a.Home)
	favorHandler := handlers.NewFavorHandler(a.Favors)

	// Public routes
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addOrderRoutes(v1, orderHandler)
	addFavoriteRoutes(v1, favorHandler)
	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(requestID())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

// requestID propagates the caller's X-Request-ID or assigns a new one.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}
