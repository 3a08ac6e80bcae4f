// Package app assembles the HTTP surface: middleware stack, routes, the
// auth gate and the metrics endpoint.
package app

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"CoffeeCloud/internal/auth"
	"CoffeeCloud/internal/catalog"
	"CoffeeCloud/internal/order"
	"CoffeeCloud/internal/user"
	"CoffeeCloud/pkg/kit"
)

type Deps struct {
	Log     *zap.Logger
	Service string

	Users   *user.Server
	Orders  *order.Server
	Catalog *catalog.Server
	JWT     *auth.TokenMaker

	Registry       *prometheus.Registry
	MetricsEnabled bool
	MetricsToken   string
}

const (
	loginLimitPerMin  = 5
	signupLimitPerMin = 3
	limitWindow       = 60 * time.Second
)

func NewHandler(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(kit.Recoverer)
	r.Use(kit.Logging(d.Log))

	// No middleware when metrics are off: nothing would ever scrape what
	// it records.
	metricsOn := d.MetricsEnabled && d.Registry != nil
	if metricsOn {
		metrics := kit.NewMetrics(d.Registry)
		r.Use(metrics.Middleware(d.Service, kit.ChiRoutePatternOrPath))
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	loginLimiter := kit.NewIPRateLimiter(loginLimitPerMin, limitWindow)
	signupLimiter := kit.NewIPRateLimiter(signupLimitPerMin, limitWindow)

	r.With(loginLimiter.Middleware).Post("/login", d.Users.Login)
	r.With(signupLimiter.Middleware).Post("/signup", d.Users.Signup)

	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSession(d.JWT))

		pr.Put("/password", d.Users.ChangePassword)
		pr.Get("/user", d.Users.GetProfile)
		pr.Put("/user", d.Users.UpdateProfile)
		pr.Delete("/user", d.Users.DeleteAccount)

		pr.Get("/tags", d.Catalog.Tags)
		pr.Get("/coffee", d.Catalog.List)
		pr.Get("/coffee/{id}", d.Catalog.Get)

		pr.Get("/order", d.Orders.List)
		pr.Post("/order", d.Orders.Create)
		pr.Get("/order/{id}", d.Orders.Get)
		pr.Put("/order/{id}", d.Orders.Put)
		pr.Delete("/order/{id}", d.Orders.Delete)
	})

	if metricsOn {
		r.With(kit.MetricsAuth(d.MetricsToken)).Handle(
			"/metrics",
			promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{}),
		)
	}

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		kit.WriteError(w, req, http.StatusNotFound, "Not found.")
	})

	return r
}
