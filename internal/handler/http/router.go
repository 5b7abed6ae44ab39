package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ilkhanul13/portfolio101/internal/service"
	"github.com/ilkhanul13/portfolio101/pkg/health"
	"github.com/ilkhanul13/portfolio101/pkg/middleware"
)

// RouterDeps bundles everything the router mounts.
type RouterDeps struct {
	Testimonials *service.TestimonialService
	Stats        *service.StatsService
	Availability *service.AvailabilityService
	Moderation   *service.ModerationService
	Contact      *service.ContactService

	Health *health.Handler
	Logger *slog.Logger
	CORS   middleware.CORSConfig

	// AdminToken guards moderation routes. Empty means they are not mounted.
	AdminToken string

	// StoreConfigured controls whether testimonial routes exist at all. When
	// the store is absent the site still serves projects and contact, and the
	// availability endpoint keeps answering false.
	StoreConfigured bool
}

// NewRouter creates a chi router with all portfolio API routes registered.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.CORS(deps.CORS))
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.RequestLogging(deps.Logger))
	r.Use(middleware.PrometheusMetrics("portfolio"))

	// Health check endpoints
	r.Get("/health/live", deps.Health.LivenessHandler())
	r.Get("/health/ready", deps.Health.ReadinessHandler())
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	projectHandler := NewProjectHandler(deps.Logger)
	testimonialHandler := NewTestimonialHandler(deps.Testimonials, deps.Stats, deps.Availability, deps.Logger)
	contactHandler := NewContactHandler(deps.Contact, deps.Logger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		r.Get("/projects", projectHandler.List)
		r.Get("/projects/{id}", projectHandler.Get)

		r.Post("/contact", contactHandler.Send)

		// Always answered so the frontend can decide whether to render the
		// testimonial form.
		r.Get("/testimonials/availability", testimonialHandler.Availability)

		if deps.StoreConfigured {
			r.Get("/projects/{id}/testimonials", testimonialHandler.ListByProject)
			r.Get("/projects/{id}/testimonials/stats", testimonialHandler.GetStats)
			r.Post("/testimonials", testimonialHandler.Submit)

			if deps.AdminToken != "" {
				adminHandler := NewAdminHandler(deps.Moderation, deps.Logger)

				r.Route("/admin/testimonials", func(r chi.Router) {
					r.Use(AdminAuth(deps.AdminToken))

					r.Get("/", adminHandler.ListPending)
					r.Post("/{id}/approve", adminHandler.Approve)
					r.Post("/{id}/reject", adminHandler.Reject)
				})
			}
		}
	})

	return r
}
