package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/MDMahidul/bistro-boss-server/internal/gateway"
	"github.com/MDMahidul/bistro-boss-server/internal/middlewares"
	"github.com/MDMahidul/bistro-boss-server/internal/repository"
	"github.com/MDMahidul/bistro-boss-server/internal/service"
	"github.com/MDMahidul/bistro-boss-server/pkg/auth"
)

type Deps struct {
	Tokens   *auth.TokenService
	Dir      *service.Directory
	Menu     *repository.MenuRepo
	Carts    *repository.CartRepo
	Intents  gateway.ChargeIntenter
	Checkout *service.CheckoutService
	Stats    *service.StatsService
}

// Register mounts every route. RequireAdmin always sits behind RequireAuth;
// it trusts the attached identity.
func Register(r *gin.Engine, d Deps) {
	authed := middlewares.RequireAuth(d.Tokens)
	admin := middlewares.RequireAdmin(d.Dir.Role)

	r.GET("/", func(c *gin.Context) {
		c.String(200, "boss is on business")
	})

	th := NewTokenHandler(d.Tokens)
	r.POST("/jwt", th.Issue)

	uh := NewUserHandler(d.Dir)
	r.GET("/users", authed, admin, uh.List)
	r.POST("/users", uh.Register)
	r.DELETE("/users/:id", authed, admin, uh.Delete)
	r.GET("/users/admin/:email", authed, uh.CheckAdmin)
	r.PATCH("/users/admin/:id", authed, admin, uh.GrantAdmin)

	mh := NewMenuHandler(d.Menu)
	r.GET("/menu", mh.List)
	r.POST("/menu", authed, admin, mh.Create)
	r.DELETE("/menu/:id", authed, admin, mh.Delete)
	r.GET("/reviews", mh.ListReviews)
	r.POST("/reviews", mh.CreateReview)

	ch := NewCartHandler(d.Carts)
	r.GET("/carts", authed, ch.List)
	r.POST("/carts", authed, ch.Create)
	r.DELETE("/carts/:id", authed, ch.Delete)

	ph := NewPaymentHandler(d.Intents, d.Checkout)
	r.POST("/create-payment-intent", authed, ph.CreateIntent)
	r.POST("/payments", authed, ph.Submit)

	sh := NewStatsHandler(d.Stats)
	r.GET("/admin-stats", authed, admin, sh.Fleet)
	r.GET("/order-stats", sh.Categories)
}
