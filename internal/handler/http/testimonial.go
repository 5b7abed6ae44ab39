package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ilkhanul13/portfolio101/internal/domain"
	"github.com/ilkhanul13/portfolio101/internal/service"
	"github.com/ilkhanul13/portfolio101/pkg/httputil"
)

// TestimonialHandler handles HTTP requests for public testimonial endpoints.
type TestimonialHandler struct {
	testimonials *service.TestimonialService
	stats        *service.StatsService
	availability *service.AvailabilityService
	logger       *slog.Logger
}

// NewTestimonialHandler creates a new testimonial HTTP handler.
func NewTestimonialHandler(
	testimonials *service.TestimonialService,
	stats *service.StatsService,
	availability *service.AvailabilityService,
	logger *slog.Logger,
) *TestimonialHandler {
	return &TestimonialHandler{
		testimonials: testimonials,
		stats:        stats,
		availability: availability,
		logger:       logger,
	}
}

// SubmitTestimonialRequest is the JSON request body for submitting a
// testimonial. Field checks live in the domain so all failures are reported
// together, not one at a time.
type SubmitTestimonialRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Company   string `json:"company"`
	Rating    int    `json:"rating"`
	Message   string `json:"message"`
	ProjectID string `json:"project_id"`
}

// SubmitTestimonialResponse is returned for an accepted submission. The
// wording makes clear nothing is published yet.
type SubmitTestimonialResponse struct {
	ID      string `json:"id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// AvailabilityResponse reports whether the testimonial feature is usable.
type AvailabilityResponse struct {
	Available bool `json:"available"`
}

// Submit handles POST /api/v1/testimonials
func (h *TestimonialHandler) Submit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1 MB limit
	var req SubmitTestimonialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "INVALID_INPUT", Message: "invalid request body: " + err.Error()},
		})
		return
	}

	testimonial, err := h.testimonials.Submit(r.Context(), domain.SubmissionInput{
		Name:      req.Name,
		Email:     req.Email,
		Role:      req.Role,
		Company:   req.Company,
		Rating:    req.Rating,
		Message:   req.Message,
		ProjectID: req.ProjectID,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusAccepted, httputil.Response{Data: SubmitTestimonialResponse{
		ID:      testimonial.ID,
		Status:  testimonial.Status,
		Message: "Thank you! Your testimonial has been submitted and is pending approval.",
	}})
}

// ListByProject handles GET /api/v1/projects/{id}/testimonials
func (h *TestimonialHandler) ListByProject(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "id")

	testimonials, err := h.testimonials.ListApproved(r.Context(), projectID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: testimonials})
}

// GetStats handles GET /api/v1/projects/{id}/testimonials/stats
func (h *TestimonialHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "id")

	stats, err := h.stats.GetStats(r.Context(), projectID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: stats})
}

// Availability handles GET /api/v1/testimonials/availability
func (h *TestimonialHandler) Availability(w http.ResponseWriter, r *http.Request) {
	available := h.availability.Check(r.Context())

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: AvailabilityResponse{
		Available: available,
	}})
}
