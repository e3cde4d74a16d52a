package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/pedidos-api/internal/application/auth"
	"github.com/tu-usuario/pedidos-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	UserUC     *usecase.UserUseCase
	CustomerUC *usecase.CustomerUseCase
	CategoryUC *usecase.CategoryUseCase
	SupplierUC *usecase.SupplierUseCase
	ProductUC  *usecase.ProductUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	userAuth := api.Group("/user-auth")
	userAuth.Post("/login", authHandler.LoginUser)
	customerAuth := api.Group("/customer-auth")
	customerAuth.Post("/login", authHandler.LoginCustomer)
	customerAuth.Post("/register", authHandler.RegisterCustomer)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Las rutas literales (/all, /name/...) van antes de /:key para que el
	// parámetro no las capture.

	users := protected.Group("/user")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/all", userHandler.ListAll)
	users.Get("/identification/:identification", userHandler.GetByIdentification)
	users.Get("/email/:email", userHandler.GetByEmail)
	users.Get("/:key", userHandler.GetByKey)
	users.Post("/", userHandler.Create)
	users.Put("/:key", userHandler.Update)
	users.Delete("/:key", userHandler.Delete)

	customers := protected.Group("/customer")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/all", customerHandler.ListAll)
	customers.Get("/identification/:identification", customerHandler.GetByIdentification)
	customers.Get("/email/:email", customerHandler.GetByEmail)
	customers.Get("/:key", customerHandler.GetByKey)
	customers.Post("/", customerHandler.Create)
	customers.Put("/:key", customerHandler.Update)
	customers.Delete("/:key", customerHandler.Delete)

	categories := protected.Group("/category")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/all", categoryHandler.ListAll)
	categories.Get("/name/:name", categoryHandler.GetByName)
	categories.Get("/:key", categoryHandler.GetByKey)
	categories.Post("/", categoryHandler.Create)
	categories.Put("/:key", categoryHandler.Update)
	categories.Delete("/:key", categoryHandler.Delete)

	suppliers := protected.Group("/supplier")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/all", supplierHandler.ListAll)
	suppliers.Get("/name/:name", supplierHandler.GetByName)
	suppliers.Get("/:key", supplierHandler.GetByKey)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Put("/:key", supplierHandler.Update)
	suppliers.Delete("/:key", supplierHandler.Delete)

	products := protected.Group("/product")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/all", productHandler.ListAll)
	products.Get("/name/:name", productHandler.GetByName)
	products.Get("/:key", productHandler.GetByKey)
	products.Post("/", productHandler.Create)
	products.Put("/:key", productHandler.Update)
	products.Delete("/:key", productHandler.Delete)
}
