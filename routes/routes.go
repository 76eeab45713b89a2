package routes

import (
	"babylone/configs"
	"babylone/controllers"
	"babylone/entity"
	"babylone/middlewares"
	"babylone/repository"
	"babylone/services"
	"babylone/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, hub *ws.NotifyHub) {
	r.Use(middlewares.CORSMiddleware(cfg.AllowedOrigins))
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	var flow entity.StatusFlow // nil = any-to-any, the staff-override default
	if cfg.StrictFlow {
		flow = entity.LinearFlow()
	}

	// Repositories
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	menuSvc := services.NewMenuService(menuRepo)
	cartSvc := services.NewCartService(menuRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartSvc, flow, hub)

	// Controllers
	authCtrl := controllers.NewAuthController(db, cfg.JWTSecret, cfg.JWTTTL)
	menuCtrl := controllers.NewMenuController(menuSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/login", authCtrl.Login)
		a.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Me)
	}

	// Storefront (public)
	r.GET("/restaurant", restaurantInfo)
	r.GET("/menu", menuCtrl.Catalog)
	r.GET("/menu/items/:id", menuCtrl.Item)
	r.GET("/orders/:id", orderCtrl.Detail)

	// Cart + checkout (session-scoped)
	s := r.Group("/", middlewares.CartSession())
	{
		s.GET("/cart", cartCtrl.Get)
		s.POST("/cart/items", cartCtrl.Add)
		s.PATCH("/cart/items/:lineId", cartCtrl.UpdateQty)
		s.DELETE("/cart/items/:lineId", cartCtrl.Remove)
		s.DELETE("/cart", cartCtrl.Clear)
		s.POST("/orders", orderCtrl.Create)
	}

	// Live notifications
	r.GET("/ws/orders/:id", hub.HandleOrderSocket)
	r.GET("/ws/notifications", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"), hub.HandleFeedSocket)

	// Admin dashboard
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		admin.GET("/dashboard", orderCtrl.Dashboard)
		admin.GET("/orders", orderCtrl.List)
		admin.PATCH("/orders/:id/status", orderCtrl.SetStatus)
		admin.POST("/orders/:id/notify", orderCtrl.NotifyCustomer)
		admin.POST("/notifications", orderCtrl.Broadcast)

		admin.GET("/ingredients", menuCtrl.Ingredients)
		admin.GET("/addons", menuCtrl.Addons)
		admin.POST("/menu/items", menuCtrl.Create)
		admin.PATCH("/menu/items/:id", menuCtrl.Update)
		admin.DELETE("/menu/items/:id", menuCtrl.Delete)
	}
}

// restaurantInfo is the static storefront card: contact, hours, delivery terms.
func restaurantInfo(c *gin.Context) {
	c.JSON(200, gin.H{"ok": true, "data": gin.H{
		"name":    "Babylone Restaurant",
		"phone":   "09 83 900 322",
		"address": "2 Av. de Saint-Julien, 13012 Marseille",
		"hours":   "11h00 - 23h00",
		"delivery": gin.H{
			"minimumOrder": "20.00",
			"window":       "18h00 - 22h00",
			"zone":         "Marseille",
		},
	}})
}
