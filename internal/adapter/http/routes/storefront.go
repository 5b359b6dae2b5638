package routes

import (
	"photostudio/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCart     = "/cart"
	PathOrders   = "/orders"
	PathAuth     = "/auth"
	PathCheckout = "/checkout"
	PathUploads  = "/uploads"
)

func addStorefrontRoutes(
	rg *gin.RouterGroup,
	cartHandler *handlers.CartHandler,
	orderHandler *handlers.OrderHandler,
	sessionHandler *handlers.SessionHandler,
	checkoutHandler *handlers.CheckoutHandler,
	uploadHandler *handlers.UploadHandler,
) {
	cart := rg.Group(PathCart)
	{
		cart.GET("", cartHandler.GetCart)
		cart.POST("/items", cartHandler.AddItem)
		cart.PATCH("/items/:variant_id", cartHandler.UpdateQuantity)
		cart.DELETE("/items/:variant_id", cartHandler.RemoveItem)
		cart.DELETE("", cartHandler.ClearCart)
	}

	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/stats", orderHandler.GetOrderStats)
		orders.GET("/:order_id", orderHandler.GetOrder)
		orders.PATCH("/:order_id/status", orderHandler.UpdateOrderStatus)
	}

	auth := rg.Group(PathAuth)
	{
		auth.GET("/session", sessionHandler.GetSession)
		auth.POST("/login", sessionHandler.Login)
		auth.POST("/register", sessionHandler.Register)
		auth.POST("/logout", sessionHandler.Logout)
		auth.PATCH("/profile", sessionHandler.UpdateProfile)
	}

	checkout := rg.Group(PathCheckout)
	{
		checkout.POST("", checkoutHandler.CreateCheckout)
		checkout.POST("/:checkout_id/items", checkoutHandler.AddItems)
	}

	uploads := rg.Group(PathUploads)
	{
		uploads.POST("", uploadHandler.UploadPhotos)
		uploads.POST("/custom-order", uploadHandler.UploadCustomOrderPhotos)
	}
}
