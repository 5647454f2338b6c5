package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SiamIslamSagor/prime-property-plus-server/internal/auth"
	"github.com/SiamIslamSagor/prime-property-plus-server/internal/handlers"
	"github.com/SiamIslamSagor/prime-property-plus-server/internal/middleware"
	"github.com/SiamIslamSagor/prime-property-plus-server/internal/models"
	"github.com/SiamIslamSagor/prime-property-plus-server/internal/repository"
)

type Deps struct {
	Tokens   *auth.TokenManager
	Users    repository.UserRepository
	Auth     *handlers.AuthHandler
	User     *handlers.UserHandler
	Property *handlers.PropertyHandler
	Review   *handlers.ReviewHandler
	WishList *handlers.WishListHandler
	Purchase *handlers.PurchaseHandler
	Payment  *handlers.PaymentHandler
}

// Register wires every route with its middleware chain. Route shapes mirror
// the public API: token-gated routes run RequireAuth, role-gated routes add
// a per-request role lookup, self-scoped routes compare the :email parameter
// against the authenticated identity.
func Register(app *fiber.App, d Deps) {
	requireAuth := middleware.RequireAuth(d.Tokens)
	requireAdmin := middleware.RequireRole(d.Users, models.RoleAdmin)
	requireAgent := middleware.RequireRole(d.Users, models.RoleAgent)
	requireSelf := middleware.RequireSelf()

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Prime Property Pulse is Running")
	})
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })

	app.Post("/jwt", d.Auth.CreateToken)

	app.Post("/users", d.User.Create)
	app.Get("/users", requireAuth, requireAdmin, d.User.List)
	app.Patch("/users/role/:id", requireAuth, requireAdmin, d.User.SetRole)
	app.Get("/users/admin/:email", requireAuth, requireSelf, d.User.IsAdmin)
	app.Get("/users/agent/:email", requireAuth, requireSelf, d.User.IsAgent)

	app.Post("/properties", requireAuth, requireAgent, d.Property.Create)
	app.Get("/properties/verified", d.Property.ListVerified)
	app.Get("/properties/all", requireAuth, requireAdmin, d.Property.ListAll)
	app.Get("/properties/advertiseProperty", d.Property.ListAdvertised)
	app.Get("/property/details/:id", requireAuth, d.Property.Details)
	app.Patch("/properties/advertise/:id", requireAuth, requireAdmin, d.Property.SetAdvertised)
	app.Patch("/properties/:id", d.Property.SetStatus)
	app.Get("/properties/agent/:email", requireAuth, requireAgent, requireSelf, d.Property.ListByAgent)
	app.Delete("/properties/:id", requireAuth, requireAgent, d.Property.Delete)

	app.Post("/wish-list", requireAuth, d.WishList.Add)
	app.Get("/wish-list/:email", requireAuth, requireSelf, d.WishList.ListByRequester)
	app.Get("/wish-list-item/:id", requireAuth, d.WishList.GetItem)
	app.Delete("/wish-list-item/:id", requireAuth, d.WishList.DeleteItem)

	app.Post("/property-bought", requireAuth, d.Purchase.Create)
	app.Get("/property-bought/agent/:email", requireAuth, requireAgent, requireSelf, d.Purchase.ListByAgent)
	app.Get("/property-bought/:email", requireAuth, requireSelf, d.Purchase.ListByBuyer)
	app.Get("/bought-property/:id", requireAuth, d.Purchase.Get)
	app.Patch("/property/bought/:id", requireAuth, d.Purchase.SetPayment)

	app.Post("/create-payment-intent", requireAuth, d.Payment.CreateIntent)

	app.Post("/reviews/add", requireAuth, d.Review.Add)
	app.Get("/reviews", d.Review.ListAll)
	app.Get("/reviews/:email", requireAuth, requireSelf, d.Review.ListByReviewer)
	app.Delete("/reviews/delete/:id", requireAuth, d.Review.Delete)
	app.Get("/single-property-reviews/:id", d.Review.ListByProperty)
}
