package routes

import (
	"net/http"
	"time"

	"artfolio/artfolio/config"
	"artfolio/artfolio/controllers"
	"artfolio/artfolio/live"
	"artfolio/artfolio/middlewares"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Deps struct {
	Config     config.Config
	Auth       *controllers.AuthController
	Profiles   *controllers.ProfileController
	Portfolios *controllers.PortfolioController
	Uploads    *controllers.UploadController
	Events     *controllers.EventsController
	Social     *controllers.SocialController
	Health     *controllers.HealthController
	Hub        *live.Hub
	// Files serves locally hosted uploads under /files. Nil for MinIO.
	Files http.Handler
}

func New(d Deps) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewares.RequestLogger)
	r.Use(middlewares.Metrics)
	r.Use(middleware.Recoverer)

	// websocket connections outlive the request timeout
	r.Mount("/live", LiveRoutes(d.Hub, d.Config))

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))

		r.Mount("/health", HealthRoutes(d.Health))
		r.Handle("/metrics", promhttp.Handler())
		r.Mount("/auth", AuthRoutes(d.Auth))
		r.Mount("/users", UserRoutes(d.Profiles, d.Portfolios, d.Uploads, d.Config))
		r.Mount("/portfolios", PortfolioRoutes(d.Portfolios, d.Profiles, d.Config))
		r.Mount("/slugs", SlugRoutes(d.Portfolios, d.Config))
		r.Mount("/images", ImageRoutes(d.Portfolios, d.Uploads, d.Config))
		r.Mount("/events", EventRoutes(d.Events, d.Config))
		r.Mount("/social", SocialRoutes(d.Social, d.Config))
		if d.Files != nil {
			r.Handle("/files/*", http.StripPrefix("/files", d.Files))
		}
	})
	return r
}
