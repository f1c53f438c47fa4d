package router

import (
	"mobileHospital/internal/rest"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupAuthRoutes(api *echo.Group, handler *rest.AuthHandler) {
	auth := api.Group("/auth")

	auth.POST("/mode", handler.Mode)
	auth.POST("/signup", handler.Signup)
	auth.POST("/login", handler.Login)
	auth.POST("/admin-login", handler.AdminLogin)
	auth.POST("/logout", handler.Logout)
	auth.GET("/state", handler.State)
}

func SetupProductRoutes(api *echo.Group, handler *rest.ProductHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	api.GET("/catalog", handler.Catalog)
	api.GET("/catalog/tabs", handler.Tabs)

	products := api.Group("/products")

	products.GET("/:id", handler.GetProductByID)
	products.POST("", handler.CreateProduct, authRequired, adminOnly)
	products.POST("/description", handler.GenerateDescription, authRequired, adminOnly)
	products.PUT("/:id", handler.UpdateProduct, authRequired, adminOnly)
	products.DELETE("/:id", handler.DeleteProduct, authRequired, adminOnly)
}

func SetupBannerRoutes(api *echo.Group, handler *rest.BannerHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	banners := api.Group("/banners")

	banners.GET("", handler.GetAllBanners)
	banners.GET("/current", handler.CurrentBanner)
	banners.POST("", handler.CreateBanner, authRequired, adminOnly)
	banners.PUT("/:id", handler.UpdateBanner, authRequired, adminOnly)
	banners.DELETE("/:id", handler.DeleteBanner, authRequired, adminOnly)
}

func SetupShopRoutes(api *echo.Group, handler *rest.ShopHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	shop := api.Group("/shop")

	shop.GET("", handler.GetShopInfo)
	shop.GET("/contact", handler.Contact)
	shop.PUT("", handler.ReplaceShopInfo, authRequired, adminOnly)
	shop.PUT("/dealer", handler.UpdateDealerSettings, authRequired, adminOnly)
}

func SetupUserRoutes(api *echo.Group, handler *rest.UserHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	users := api.Group("/users", authRequired, adminOnly)

	users.GET("", handler.GetAllCustomers)
	users.DELETE("/:id", handler.DeleteUser)
}

func SetupOpsRoutes(e *echo.Echo, health *rest.HealthHandler) {
	e.GET("/healthz", health.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
