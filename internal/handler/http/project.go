package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ilkhanul13/portfolio101/internal/domain"
	apperrors "github.com/ilkhanul13/portfolio101/pkg/errors"
	"github.com/ilkhanul13/portfolio101/pkg/httputil"
)

// ProjectHandler serves the compiled-in project catalog.
type ProjectHandler struct {
	logger *slog.Logger
}

// NewProjectHandler creates a new project HTTP handler.
func NewProjectHandler(logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{logger: logger}
}

// List handles GET /api/v1/projects
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: domain.Projects()})
}

// Get handles GET /api/v1/projects/{id}
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	project, ok := domain.ProjectByID(id)
	if !ok {
		httputil.WriteError(w, r, apperrors.NotFound("project", id), h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: project})
}
