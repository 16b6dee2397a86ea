// Router setup layer: attaches middlewares and registers all endpoints.
package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MarKarl30/UTS-BackEnd-Prog/global"
	"github.com/MarKarl30/UTS-BackEnd-Prog/handlers"
	"github.com/MarKarl30/UTS-BackEnd-Prog/middlewares"
	"github.com/MarKarl30/UTS-BackEnd-Prog/services"
)

// Setup wires middlewares and all resource endpoints under /api/v1.
// Auth endpoints are public; everything else requires a bearer JWT.
func Setup(
	r *gin.Engine,
	users services.UserService,
	products services.ProductService,
	purchases services.PurchaseService,
	jwtSecret string,
	jwtExp time.Duration,
) {
	r.Use(middlewares.RequestLogger(), middlewares.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "version": global.AppVersion})
	})

	api := r.Group("/api/v1")

	uh := handlers.NewUserHandler(users, jwtSecret, jwtExp)
	ph := handlers.NewProductHandler(products)
	ch := handlers.NewPurchaseHandler(purchases)

	// Public auth endpoints.
	api.POST("/auth/register", uh.Register)
	api.POST("/auth/login", uh.Login)

	// Protected group (requires valid Authorization: Bearer <token>).
	protected := api.Group("/")
	protected.Use(middlewares.Auth(jwtSecret))

	protected.GET("/me", uh.Me)

	// Users CRUD + list query.
	protected.POST("/users", uh.CreateUser)
	protected.GET("/users", uh.ListUsers)
	protected.GET("/users/:id", uh.GetUser)
	protected.PUT("/users/:id", uh.UpdateUser)
	protected.PATCH("/users/:id/password", uh.ChangePassword)
	protected.DELETE("/users/:id", uh.DeleteUser)

	// Products CRUD + list query.
	protected.POST("/products", ph.CreateProduct)
	protected.GET("/products", ph.ListProducts)
	protected.GET("/products/:sku", ph.GetProduct)
	protected.PUT("/products/:sku", ph.UpdateProduct)
	protected.DELETE("/products/:sku", ph.DeleteProduct)

	// Purchases CRUD, list query and item membership.
	protected.POST("/purchases", ch.CreatePurchase)
	protected.GET("/purchases", ch.ListPurchases)
	protected.GET("/purchases/:id", ch.GetPurchase)
	protected.PUT("/purchases/:id/items", ch.AddProduct)
	protected.DELETE("/purchases/:id/items/:sku", ch.RemoveProduct)
	protected.DELETE("/purchases/:id", ch.DeletePurchase)
}
