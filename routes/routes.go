package routes

import (
	"food-marketplace-api/handlers"
	"food-marketplace-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	api := r.Group("/api")
	{
		// Auth — one register/login pair per principal kind
		api.POST("/auth/user/register", handlers.RegisterUser)
		api.POST("/auth/user/login", handlers.LoginUser)
		api.POST("/auth/restaurant/register", handlers.RegisterRestaurant)
		api.POST("/auth/restaurant/login", handlers.LoginRestaurant)

		// Restaurant directory
		api.GET("/restaurants", handlers.ListRestaurants)
		api.GET("/restaurants/search/:query", handlers.SearchRestaurants)
		api.GET("/restaurants/:id", handlers.GetRestaurant)
		api.PUT("/restaurants/:id", handlers.UpdateRestaurant)

		// Orders
		api.POST("/orders", handlers.CreateOrder)
		api.GET("/orders/user/:userId", handlers.OrdersByUser)
		api.GET("/orders/restaurant/:restaurantId", handlers.OrdersByRestaurant)
		api.PATCH("/orders/:id/status", handlers.UpdateOrderStatus)

		// Feedback
		api.POST("/feedback", handlers.CreateFeedback)
		api.GET("/feedback/order/:orderId", handlers.FeedbackByOrder)
		api.GET("/feedback/restaurant/:restaurantId", handlers.FeedbackByRestaurant)

		// Support — deliberately unauthenticated
		api.POST("/support", handlers.CreateSupportTicket)
		api.GET("/support", handlers.ListSupportTickets)
	}

	// ── User principal routes ──────────────────────────────────────
	user := r.Group("/api/users")
	user.Use(middleware.UserAuth())
	{
		user.GET("/me", handlers.GetProfile)
	}

	// ── Restaurant principal routes ────────────────────────────────
	restaurant := r.Group("/api/restaurant")
	restaurant.Use(middleware.RestaurantAuth())
	{
		restaurant.GET("/menu", handlers.GetOwnMenu)
		restaurant.POST("/menu", handlers.AddMenuItem)
		restaurant.PUT("/menu/:menuItemId", handlers.UpdateMenuItem)
		restaurant.DELETE("/menu/:menuItemId", handlers.DeleteMenuItem)
		restaurant.GET("/stats", handlers.RestaurantStats)
		restaurant.GET("/orders", handlers.OwnOrders)
		restaurant.PUT("/profile", handlers.UpdateOwnProfile)
	}
}
