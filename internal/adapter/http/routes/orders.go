package routes

import (
	"my_trip/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders    = "/order"
	PathFavorites = "/favorites"
)

func addOrderRoutes(rg *gin.RouterGroup, h *handlers.OrderHandler) {
	orders := rg.Group(PathOrders)
	{
		// Same paths as the remote order API.
		orders.GET("/list", h.ListOrders)
		orders.GET("/detail/:id", h.GetOrderDetail)
		orders.POST("/create", h.CreateOrder)
		orders.POST("/pay/:id", h.PayOrder)
		orders.POST("/cancel/:id", h.CancelOrder)
		orders.POST("/delete/:id", h.DeleteOrder)
		orders.POST("/complete/:id", h.CompleteOrder)
		orders.GET("/statistics", h.GetOrderStatistics)
		orders.GET("/search", h.SearchOrders)

		orders.POST("/seed", h.SeedOrders)
		orders.POST("/refresh", h.RefreshOrders)
	}
}

func addFavoriteRoutes(rg *gin.RouterGroup, h *handlers.FavorHandler) {
	favorites := rg.Group(PathFavorites)
	{
		favorites.GET("", h.ListFavorites)
		favorites.POST("", h.AddFavorite)
		favorites.POST("/toggle", h.ToggleFavorite)
		favorites.DELETE("/:houseId", h.RemoveFavorite)
		favorites.DELETE("", h.ClearFavorites)
	}
}
