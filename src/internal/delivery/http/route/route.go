package route

import (
	"kitchen-service/src/internal/delivery/http"
	"kitchen-service/src/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v2"
)

type RouteConfig struct {
	App                *fiber.App
	OrderController    *http.OrderController
	CouponController   *http.CouponController
	PaymentController  *http.PaymentController
	SettingsController *http.SettingsController
	DispatchController *http.DispatchController
	AuthMiddleware     fiber.Handler
}

func (c *RouteConfig) Setup() {
	c.App.Use(middleware.NewLogger())
	c.App.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.SendString("OK")
	})
	c.SetupPublicRoute()
	c.SetupAuthRoute()
	c.SetupAdminRoute()
}

// SetupPublicRoute registers endpoints that need no bearer token. The
// gateway callback authenticates with its signature, not a user token.
func (c *RouteConfig) SetupPublicRoute() {
	c.App.Get("/public/v1/settings", c.SettingsController.GetSettings)
	c.App.Post("/payments/v1/verify", c.PaymentController.VerifyGatewayCallback)
}

func (c *RouteConfig) SetupAuthRoute() {
	c.App.Use(c.AuthMiddleware)

	c.App.Post("/orders/v1", c.OrderController.PlaceOrder)
	c.App.Get("/orders/v1/mine", c.OrderController.GetMyOrders)
	c.App.Get("/orders/v1/:id", c.OrderController.GetOrder)
	c.App.Post("/orders/v1/:id/cancel", c.OrderController.CancelOrder)

	c.App.Post("/coupons/v1/apply", c.CouponController.ApplyCoupon)
	c.App.Get("/coupons/v1/active", c.CouponController.GetActiveCoupons)

	c.App.Post("/payments/v1/manual", c.PaymentController.SubmitManualPayment)
	c.App.Post("/payments/v1/session", c.PaymentController.CreateGatewaySession)
}

func (c *RouteConfig) SetupAdminRoute() {
	admin := c.App.Group("/admin/v1", middleware.RequireAdmin())

	admin.Get("/orders", c.OrderController.ListOrders)
	admin.Patch("/orders/:id/status", c.OrderController.UpdateOrderStatus)

	admin.Get("/coupons", c.CouponController.ListCoupons)
	admin.Post("/coupons", c.CouponController.CreateCoupon)
	admin.Put("/coupons/:code", c.CouponController.UpdateCoupon)
	admin.Delete("/coupons/:code", c.CouponController.DeleteCoupon)

	admin.Put("/settings", c.SettingsController.UpdateSettings)

	admin.Post("/payments/manual/confirm", c.PaymentController.ConfirmManualPayment)

	admin.Get("/dispatches", c.DispatchController.ListDispatches)
	admin.Post("/dispatches", c.DispatchController.CreateDispatch)
	admin.Post("/dispatches/:id/complete", c.DispatchController.CompleteDispatch)
}
