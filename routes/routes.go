package routes

import (
	"github.com/MILANBHADARKA/TiffinCart-sub000/controllers"
	"github.com/MILANBHADARKA/TiffinCart-sub000/middlewares"
	"github.com/MILANBHADARKA/TiffinCart-sub000/models"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	// Public routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/logout", controllers.Logout)
	}
	r.GET("/kitchens", controllers.ListKitchens)
	r.GET("/kitchens/:id", controllers.GetKitchen)
	r.POST("/contact", controllers.SubmitContact)
	r.GET("/plans", controllers.ListPlans)

	// Any authenticated user
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
		user.PUT("/password", controllers.ChangePassword)
		user.POST("/devices", controllers.RegisterDevice)
		user.GET("/ws", controllers.OrderEventsWS)
	}

	// Customer routes
	customer := r.Group("/api")
	customer.Use(middlewares.AuthMiddleware(), middlewares.RequireRole(models.RoleCustomer))
	{
		customer.GET("/cart", controllers.GetCart)
		customer.POST("/cart/items", controllers.AddToCart)
		customer.PUT("/cart/items/:id", controllers.UpdateCartItem)
		customer.DELETE("/cart/items/:id", controllers.RemoveCartItem)
		customer.DELETE("/cart", controllers.ClearCart)

		customer.POST("/orders/checkout", controllers.Checkout)
		customer.GET("/orders", controllers.ListMyOrders)
	}

	// Seller routes
	seller := r.Group("/seller")
	seller.Use(middlewares.AuthMiddleware(), middlewares.RequireRole(models.RoleSeller))
	{
		seller.GET("/kitchens", controllers.ListMyKitchens)
		seller.POST("/kitchens", controllers.CreateKitchen)
		seller.PUT("/kitchens/:id", controllers.UpdateKitchen)
		seller.DELETE("/kitchens/:id", controllers.DeleteKitchen)
		seller.PUT("/kitchens/:id/open", controllers.ToggleKitchenOpen)

		seller.GET("/kitchens/:id/menu", controllers.ListMenuItems)
		seller.POST("/kitchens/:id/menu", controllers.AddMenuItem)
		seller.PUT("/menu/:itemId", controllers.UpdateMenuItem)
		seller.DELETE("/menu/:itemId", controllers.DeleteMenuItem)

		seller.GET("/orders", controllers.ListSellerOrders)

		seller.POST("/subscription", controllers.Subscribe)
		seller.GET("/subscription/usage", controllers.SubscriptionUsage)

		seller.POST("/uploads", controllers.UploadImage)
	}

	// Shared order routes (ownership checked in the handler)
	orders := r.Group("/orders")
	orders.Use(middlewares.AuthMiddleware())
	{
		orders.GET("/:id", controllers.GetOrder)
		orders.PUT("/:id/status", controllers.UpdateOrderStatus)
	}

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middlewares.AuthMiddleware(), middlewares.RequireRole(models.RoleAdmin))
	{
		admin.GET("/kitchens", controllers.AdminListKitchens)
		admin.PUT("/kitchens/:id/status", controllers.AdminModerateKitchen)
		admin.GET("/orders", controllers.AdminListOrders)
		admin.GET("/revenue", controllers.AdminRevenueSummary)
		admin.GET("/contacts", controllers.AdminListContacts)
		admin.PUT("/contacts/:id/resolve", controllers.AdminResolveContact)
		admin.GET("/users", controllers.AdminListUsers)
		admin.PUT("/users/:id/disable", controllers.AdminDisableUser)
	}

	return r
}
