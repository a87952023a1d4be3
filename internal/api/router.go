package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/megareality/estate/internal/api/handlers"
	mw "github.com/megareality/estate/internal/api/middleware"
	"github.com/megareality/estate/internal/services"
)

type Dependencies struct {
	Services *services.Services
	// Ping backs /readyz.
	Ping func(ctx context.Context) error

	HMACSecret   []byte
	AuthRequired bool

	CORSAllowedOrigins []string
	RateLimitRPS       float64
	RateLimitBurst     int
}

func NewRouter(dep Dependencies) http.Handler {
	r := chi.NewRouter()

	// Built-in middleware
	r.Use(mw.RequestID)
	r.Use(mw.Recovery)
	r.Use(mw.Logging)
	r.Use(mw.Metrics)
	r.Use(mw.CORS(dep.CORSAllowedOrigins))
	r.Use(mw.RateLimit(dep.RateLimitRPS, dep.RateLimitBurst))
	r.Use(chimid.Compress(5))

	svc := dep.Services
	hh := handlers.NewHealthHandler(dep.Ping)
	admins := handlers.NewAdminsHandler(svc.Admins)
	properties := handlers.NewPropertiesHandler(svc.Properties)
	agents := handlers.NewAgentsHandler(svc.Agents)
	builders := handlers.NewBuildersHandler(svc.Builders)
	projects := handlers.NewProjectsHandler(svc.Projects)
	inquiries := handlers.NewInquiriesHandler(svc.Inquiries)
	notifications := handlers.NewNotificationsHandler(svc.Notifications)
	content := handlers.NewHomeContentHandler(svc.HomeContent)

	// Ops endpoints
	r.Get("/healthz", hh.Liveness)
	r.Get("/readyz", hh.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// Swagger documentation
	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
	))

	adminOnly := mw.Auth(dep.HMACSecret, dep.AuthRequired)
	adminRoutes := func(ar chi.Router) {
		ar.Post("/", admins.Register)
		ar.Get("/", admins.List)
		ar.Get("/{id}", admins.Get)
		ar.Put("/{id}", admins.Update)
		ar.Delete("/{id}", admins.Delete)
	}

	r.Route("/api", func(api chi.Router) {
		// Public site
		api.Get("/health", hh.Health)
		api.Get("/properties", properties.List)
		api.Get("/properties/{id}", properties.Get)
		api.Get("/agents", agents.List)
		api.Get("/agents/{id}", agents.Get)
		api.Get("/builders", builders.List)
		api.Get("/builders/{id}", builders.Get)
		api.Get("/projects", projects.List)
		api.Get("/projects/{id}", projects.Get)
		api.Post("/inquiries", inquiries.Create)
		api.Get("/home-content", content.Get)

		// Admin list at /api/admins kept for the dashboard's admin screen.
		api.With(adminOnly).Route("/admins", adminRoutes)

		api.Route("/admin", func(admin chi.Router) {
			admin.Post("/login", admins.Login)

			admin.Group(func(ad chi.Router) {
				ad.Use(adminOnly)

				ad.Post("/register", admins.Register)
				ad.Route("/admins", adminRoutes)

				ad.Route("/properties", func(pr chi.Router) {
					pr.Get("/", properties.List)
					pr.Post("/", properties.Create)
					pr.Get("/{id}", properties.Get)
					pr.Put("/{id}", properties.Update)
					pr.Delete("/{id}", properties.Delete)
					pr.Put("/{id}/favorite", properties.Favorite)
				})

				ad.Route("/agents", func(ag chi.Router) {
					ag.Get("/", agents.List)
					ag.Post("/", agents.Create)
					ag.Get("/{id}", agents.Get)
					ag.Put("/{id}", agents.Update)
					ag.Delete("/{id}", agents.Delete)
					ag.Put("/{id}/favorite", agents.Favorite)
				})

				ad.Route("/builders", func(br chi.Router) {
					br.Get("/", builders.List)
					br.Post("/", builders.Create)
					br.Get("/{id}", builders.Get)
					br.Put("/{id}", builders.Update)
					br.Delete("/{id}", builders.Delete)
				})

				ad.Route("/projects", func(pr chi.Router) {
					pr.Get("/", projects.List)
					pr.Post("/", projects.Create)
					pr.Get("/{id}", projects.Get)
					pr.Put("/{id}", projects.Update)
					pr.Delete("/{id}", projects.Delete)
					pr.Put("/{id}/favorite", projects.Favorite)
				})

				ad.Route("/inquiries", func(ir chi.Router) {
					ir.Get("/", inquiries.List)
					ir.Put("/{id}/status", inquiries.UpdateStatus)
					ir.Delete("/{id}", inquiries.Delete)
				})

				ad.Route("/notifications", func(nr chi.Router) {
					nr.Get("/", notifications.List)
					nr.Get("/unread-count", notifications.UnreadCount)
					nr.Put("/read-all", notifications.MarkAllRead)
					nr.Put("/{id}/read", notifications.MarkRead)
				})

				ad.Get("/home-content", content.Get)
				ad.Put("/home-content", content.Replace)
				ad.Put("/home-content/{section}", content.UpdateSection)
			})
		})
	})

	return r
}
