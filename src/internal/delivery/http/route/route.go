package route

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bcaffe88/cardapio-completo/src/internal/delivery/http"
	"github.com/bcaffe88/cardapio-completo/src/internal/delivery/http/middleware"
)

type RouteConfig struct {
	App                  *fiber.App
	WebhookController    *http.WebhookController
	OrderController      *http.OrderController
	CatalogController    *http.CatalogController
	RestaurantController *http.RestaurantController
	DriverController     *http.DriverController
	WSController         *http.WSController
	AuthMiddleware       fiber.Handler
}

func (c *RouteConfig) Setup() {
	c.App.Use(middleware.NewLogger())
	c.App.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.SendString("OK")
	})

	c.SetupPublicRoutes()
	c.SetupProtectedRoutes()
}

// SetupPublicRoutes wires everything the storefront and the delivery
// platforms hit without credentials.
func (c *RouteConfig) SetupPublicRoutes() {
	api := c.App.Group("/api/v1")

	api.Post("/webhooks/ifood", c.WebhookController.IfoodWebhook)
	api.Post("/webhooks/anotaai", c.WebhookController.AnotaAiWebhook)

	api.Post("/checkout", c.OrderController.Checkout)

	api.Get("/restaurant", c.RestaurantController.GetActive)
	api.Get("/categories", c.CatalogController.ListCategories)
	api.Get("/products", c.CatalogController.ListProducts)
	api.Get("/products/:id", c.CatalogController.GetProduct)

	api.Post("/drivers/register", c.DriverController.Register)

	c.App.Get("/ws/orders", c.WSController.Upgrade(), c.WSController.OrdersStream())
}

func (c *RouteConfig) SetupProtectedRoutes() {
	api := c.App.Group("/api/v1", c.AuthMiddleware)

	api.Get("/orders", c.OrderController.List)
	api.Get("/orders/:id", c.OrderController.Detail)
	api.Patch("/orders/:id/status", c.OrderController.UpdateStatus)

	api.Get("/settings/:restaurantId", c.RestaurantController.GetSettings)
	api.Put("/settings/:restaurantId", c.RestaurantController.UpdateSettings)

	api.Post("/products", c.CatalogController.CreateProduct)
	api.Put("/products/:id", c.CatalogController.UpdateProduct)
	api.Delete("/products/:id", c.CatalogController.DeleteProduct)

	api.Post("/drivers/location", c.DriverController.UpdateLocation)
	api.Get("/drivers/orders/available", c.DriverController.AvailableOrders)
	api.Post("/drivers/orders/accept", c.DriverController.AcceptOrder)
	api.Post("/drivers/deliveries/complete", c.DriverController.CompleteDelivery)

	admin := api.Group("/admin")
	admin.Post("/clients", c.RestaurantController.CreateClient)
	admin.Get("/clients", c.RestaurantController.ListClients)
	admin.Patch("/clients/:id/commission", c.RestaurantController.UpdateCommission)
	admin.Get("/commissions/stats", c.RestaurantController.CommissionStats)
}
