package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ilkhanul13/portfolio101/internal/domain"
	"github.com/ilkhanul13/portfolio101/internal/service"
	"github.com/ilkhanul13/portfolio101/pkg/httputil"
)

// AdminHandler handles HTTP requests for the moderation endpoints.
type AdminHandler struct {
	moderation *service.ModerationService
	logger     *slog.Logger
}

// NewAdminHandler creates a new admin HTTP handler.
func NewAdminHandler(moderation *service.ModerationService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		moderation: moderation,
		logger:     logger,
	}
}

type listResponse struct {
	Data       any `json:"data"`
	TotalCount int `json:"total_count"`
	Page       int `json:"page,omitempty"`
	PerPage    int `json:"per_page,omitempty"`
	TotalPages int `json:"total_pages,omitempty"`
}

// ListPending handles GET /api/v1/admin/testimonials
//
// Without query parameters the full pending queue is returned. Supplying
// page or per_page switches to paginated mode.
func (h *AdminHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page := 1
	perPage := 0

	if q.Get("page") != "" || q.Get("per_page") != "" {
		perPage = 20
		if p, err := strconv.Atoi(q.Get("page")); err == nil && p > 0 {
			page = p
		}
		if pp, err := strconv.Atoi(q.Get("per_page")); err == nil && pp > 0 && pp <= 100 {
			perPage = pp
		}
	}

	testimonials, total, err := h.moderation.ListPending(r.Context(), page, perPage)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	resp := listResponse{
		Data:       testimonials,
		TotalCount: total,
	}
	if perPage > 0 {
		resp.Page = page
		resp.PerPage = perPage
		resp.TotalPages = (total + perPage - 1) / perPage
	}

	httputil.WriteJSON(w, http.StatusOK, resp)
}

// Approve handles POST /api/v1/admin/testimonials/{id}/approve
func (h *AdminHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.moderate(w, r, domain.StatusApproved)
}

// Reject handles POST /api/v1/admin/testimonials/{id}/reject
func (h *AdminHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.moderate(w, r, domain.StatusRejected)
}

func (h *AdminHandler) moderate(w http.ResponseWriter, r *http.Request, status string) {
	id := chi.URLParam(r, "id")
	if id == "" {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "INVALID_INPUT", Message: "testimonial id is required"},
		})
		return
	}

	testimonial, err := h.moderation.Moderate(r.Context(), id, status)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: testimonial})
}
