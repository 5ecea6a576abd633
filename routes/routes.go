package routes

import (
	"github.com/ArredondoGastelumJavier4-2/bakend-flutter/configs"
	"github.com/ArredondoGastelumJavier4-2/bakend-flutter/controllers"
	"github.com/ArredondoGastelumJavier4-2/bakend-flutter/entity"
	"github.com/ArredondoGastelumJavier4-2/bakend-flutter/middlewares"
	"github.com/ArredondoGastelumJavier4-2/bakend-flutter/repository"
	"github.com/ArredondoGastelumJavier4-2/bakend-flutter/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	tokenRepo := repository.NewTokenRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	tableRepo := repository.NewTableRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, tokenRepo, cartRepo)
	catalogSvc := services.NewCatalogService(catalogRepo)
	cartSvc := services.NewCartService(db, cartRepo, catalogRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, tableRepo)
	tableSvc := services.NewTableService(db, tableRepo)
	reportSvc := services.NewReportService(db, orderRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	catalogCtrl := controllers.NewCatalogController(catalogSvc, cfg.MediaBaseURL)
	cartCtrl := controllers.NewCartController(cartSvc, cfg.MediaBaseURL)
	orderCtrl := controllers.NewOrderController(orderSvc, cfg.MediaBaseURL)
	adminCtrl := controllers.NewAdminController(reportSvc, orderSvc, userRepo)
	adminCatalogCtrl := controllers.NewAdminCatalogController(catalogSvc, cfg.UploadDir)
	adminTableCtrl := controllers.NewAdminTableController(tableSvc)

	// Public
	api := r.Group("/api")
	{
		api.POST("/register", authCtrl.Register)
		api.POST("/login", authCtrl.Login)
	}

	// Customer (token required)
	auth := api.Group("", middlewares.TokenAuth(db))
	{
		auth.GET("/categories", catalogCtrl.Categories)
		auth.GET("/categories/:id", catalogCtrl.CategoryDetail)
		auth.GET("/products", catalogCtrl.Products)
		auth.GET("/products/:id", catalogCtrl.ProductDetail)

		auth.GET("/cart", cartCtrl.Get)
		auth.POST("/cart/items", cartCtrl.Add)
		auth.POST("/cart/items/:id", cartCtrl.Remove)
		auth.DELETE("/cart/items/:id", cartCtrl.Remove)

		auth.POST("/checkout", orderCtrl.Checkout)
		auth.GET("/orders", orderCtrl.List)
		auth.GET("/orders/:id", orderCtrl.Detail)
	}

	// Admin panel (token + admin role)
	admin := r.Group("/admin", middlewares.TokenAuth(db, entity.RoleAdmin))
	{
		admin.GET("/dashboard", adminCtrl.Dashboard)

		admin.GET("/categories", adminCatalogCtrl.Categories)
		admin.POST("/categories", adminCatalogCtrl.CreateCategory)
		admin.PATCH("/categories/:id", adminCatalogCtrl.UpdateCategory)
		admin.DELETE("/categories/:id", adminCatalogCtrl.DeleteCategory)

		admin.GET("/products", adminCatalogCtrl.Products)
		admin.POST("/products", adminCatalogCtrl.CreateProduct)
		admin.PATCH("/products/:id", adminCatalogCtrl.UpdateProduct)
		admin.DELETE("/products/:id", adminCatalogCtrl.DeleteProduct)
		admin.POST("/products/:id/image", adminCatalogCtrl.UploadProductImage)

		admin.GET("/tables", adminTableCtrl.List)
		admin.POST("/tables", adminTableCtrl.Create)
		admin.DELETE("/tables/:id", adminTableCtrl.Delete)
		admin.POST("/tables/:id/toggle", adminTableCtrl.Toggle)

		admin.GET("/customers", adminCtrl.Customers)
		admin.DELETE("/customers/:id", adminCtrl.DeleteCustomer)

		admin.GET("/orders", adminCtrl.Orders)
		admin.GET("/orders/:id", adminCtrl.OrderDetail)
		admin.PATCH("/orders/:id/status", adminCtrl.UpdateOrderStatus)

		admin.GET("/reports/sales", adminCtrl.SalesReport)
	}
}
