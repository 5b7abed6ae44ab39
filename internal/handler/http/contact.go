package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/ilkhanul13/portfolio101/internal/domain"
	"github.com/ilkhanul13/portfolio101/internal/service"
	"github.com/ilkhanul13/portfolio101/pkg/httputil"
	"github.com/ilkhanul13/portfolio101/pkg/validator"
)

// ContactHandler handles HTTP requests for the contact form.
type ContactHandler struct {
	contact *service.ContactService
	logger  *slog.Logger
}

// NewContactHandler creates a new contact HTTP handler.
func NewContactHandler(contact *service.ContactService, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{
		contact: contact,
		logger:  logger,
	}
}

// Send handles POST /api/v1/contact
func (h *ContactHandler) Send(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1 MB limit
	var msg domain.ContactMessage
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "INVALID_INPUT", Message: "invalid request body: " + err.Error()},
		})
		return
	}

	if err := validator.Validate(msg); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	if err := h.contact.Send(r.Context(), &msg); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: map[string]string{
		"message": "Your message has been sent.",
	}})
}
