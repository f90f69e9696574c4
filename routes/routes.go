package routes

import (
	"github.com/ahmedxgouda/LittleLemon/configs"
	"github.com/ahmedxgouda/LittleLemon/controllers"
	"github.com/ahmedxgouda/LittleLemon/events"
	"github.com/ahmedxgouda/LittleLemon/middlewares"
	"github.com/ahmedxgouda/LittleLemon/repository"
	"github.com/ahmedxgouda/LittleLemon/services"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config, pub events.Publisher) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	db := configs.DB()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	roleSvc := services.NewRoleService(userRepo)
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	menuSvc := services.NewMenuService(menuRepo)
	cartSvc := services.NewCartService(db, cartRepo, menuRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, userRepo, pub)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	catCtrl := controllers.NewCategoryController(menuSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	groupCtrl := controllers.NewGroupController(roleSvc)

	// Auth (public)
	r.POST("/auth/login", authCtrl.Login)

	api := r.Group("/api", middlewares.AuthMiddleware(cfg.JWTSecret, roleSvc))

	// Menu & categories: read for everyone, writes manager-only
	api.GET("/categories", catCtrl.List)
	api.GET("/categories/:id", catCtrl.Detail)
	api.GET("/menu-items", menuCtrl.List)
	api.GET("/menu-items/:id", menuCtrl.Detail)

	managed := api.Group("", middlewares.RequireManager())
	{
		managed.POST("/categories", catCtrl.Create)
		managed.PUT("/categories/:id", catCtrl.Update)
		managed.DELETE("/categories/:id", catCtrl.Delete)
		managed.POST("/menu-items", menuCtrl.Create)
		managed.PUT("/menu-items/:id", menuCtrl.Update)
		managed.DELETE("/menu-items/:id", menuCtrl.Delete)
	}

	// Cart
	api.GET("/cart/menu-items", cartCtrl.List)
	api.POST("/cart/menu-items", cartCtrl.Add)
	api.DELETE("/cart/menu-items", cartCtrl.Clear)
	api.DELETE("/cart/menu-items/:id", cartCtrl.RemoveItem)

	// Orders: the access table inside the controller decides per order
	api.POST("/orders", orderCtrl.Create)
	api.GET("/orders", orderCtrl.List)
	api.GET("/orders/:id", orderCtrl.Detail)
	api.PUT("/orders/:id", orderCtrl.Replace)
	api.PATCH("/orders/:id", orderCtrl.Patch)
	api.DELETE("/orders/:id", orderCtrl.Delete)

	// Role assignment (manager-only)
	groups := api.Group("/groups", middlewares.RequireManager())
	{
		groups.GET("/manager/users", groupCtrl.ListManagers())
		groups.POST("/manager/users", groupCtrl.AddManager())
		groups.DELETE("/manager/users/:id", groupCtrl.RemoveManager())
		groups.GET("/delivery-crew/users", groupCtrl.ListDeliveryCrew())
		groups.POST("/delivery-crew/users", groupCtrl.AddDeliveryCrew())
		groups.DELETE("/delivery-crew/users/:id", groupCtrl.RemoveDeliveryCrew())
	}
}
