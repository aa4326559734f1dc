package http

import (
	"github.com/gin-gonic/gin"
	"github.com/mimimart/backend/internal/adapter/config"
	"github.com/mimimart/backend/internal/core/port"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Router struct {
	*gin.Engine
}

func NewRouter(
	conf *config.HTTP,
	tokenService port.TokenService,
	cartHandler *CartHandler,
	orderHandler *OrderHandler,
	paymentHandler *PaymentHandler,
	callbackHandler *CallbackHandler) (*Router, error) {

	router := gin.New()

	// Swagger
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		shop := api.Group("/shop")
		{
			// Unauthenticated: the gateway signs its notifications instead.
			shop.POST("/payments/ecpay/callback", callbackHandler.ECPayCallback)

			cart := shop.Group("/cart")
			{
				cart.Use(authCheck(tokenService))
				cart.GET("", cartHandler.GetCart)
				cart.DELETE("", cartHandler.ClearCart)
				cart.POST("/items", cartHandler.AddItem)
				cart.PUT("/items/:productID", cartHandler.UpdateItem)
				cart.DELETE("/items/:productID", cartHandler.RemoveItem)
				cart.POST("/merge", cartHandler.MergeGuestCart)
			}

			orders := shop.Group("/orders")
			{
				orders.Use(authCheck(tokenService))
				orders.POST("", orderHandler.Checkout)
				orders.GET("", orderHandler.ListOrders)
				orders.GET("/:number", orderHandler.GetOrder)
				orders.POST("/:number/cancel", orderHandler.CancelOrder)
			}

			payments := shop.Group("/payments")
			{
				payments.Use(authCheck(tokenService))
				payments.GET("/:number", paymentHandler.GetPayment)
				payments.GET("/:number/gateway-params", paymentHandler.GatewayParams)
			}
		}

		admin := api.Group("/admin")
		{
			admin.Use(authCheck(tokenService), adminCheck())
			admin.GET("/orders/:number", orderHandler.GetOrderAdmin)
			admin.POST("/orders/:number/ship", orderHandler.ShipOrder)
			admin.POST("/orders/:number/complete", orderHandler.CompleteOrder)
			admin.POST("/orders/:number/cancel", orderHandler.CancelOrderAdmin)
		}
	}

	return &Router{router}, nil
}

// Serve starts the HTTP server
func (r *Router) Serve(listenAddr string) error {
	return r.Run(listenAddr)
}
