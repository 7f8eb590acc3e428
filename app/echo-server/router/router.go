package router

import (
	"byteBrosStore/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupAuthRoutes(api *echo.Group, handler *rest.UserHandler) {
	auth := api.Group("/auth")
	auth.POST("/registrar", handler.Register)
	auth.POST("/login", handler.Login)
}

func SetupCatalogRoutes(api *echo.Group, products *rest.ProductHandler, news *rest.NewsHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	api.GET("/produtos", products.GetAllProducts)
	api.POST("/produtos", products.CreateProduct, authRequired, adminOnly)

	api.GET("/noticias", news.GetAllNews)
	api.POST("/noticias", news.CreateNews, authRequired, adminOnly)
}

func SetupSupportRoutes(api *echo.Group, handler *rest.SupportHandler) {
	api.POST("/suporte", handler.CreateInteraction)
}

func SetupOrdersRoutes(api *echo.Group, handler *rest.OrdersHandler, authRequired echo.MiddlewareFunc) {
	api.POST("/pedidos", handler.CreateOrder, authRequired)
	api.GET("/meus-pedidos", handler.ListMyOrders, authRequired)
}
