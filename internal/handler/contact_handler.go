package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/folio/backend/internal/logging"
	"github.com/folio/backend/internal/model"
	"github.com/folio/backend/internal/service"
	"github.com/folio/backend/internal/validation"
	"github.com/folio/backend/pkg/auth"
)

// maxBodyBytes caps the size of a contact submission body.
const maxBodyBytes = 64 << 10

// ContactHandler handles contact form submission and the admin listing.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

type submitResponse struct {
	Success bool                  `json:"success"`
	Message string                `json:"message"`
	Contact *model.ContactMessage `json:"contact,omitempty"`
	Errors  []validation.Issue    `json:"errors,omitempty"`
	Error   string                `json:"error,omitempty"`
}

// Submit handles POST /api/contact.
// The body is decoded as an untyped object and handed to the service, which
// validates it before anything is stored.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil || raw == nil {
		detail := "expected an object"
		if err != nil {
			detail = err.Error()
		}
		submissionsTotal.WithLabelValues(outcomeInvalid).Inc()
		writeJSON(w, http.StatusBadRequest, submitResponse{
			Message: "Invalid form data",
			Errors:  validation.InvalidJSON(detail).Issues,
		})
		return
	}

	msg, err := h.contactService.Submit(r.Context(), raw)
	if err != nil {
		var verr *validation.ValidationError
		if errors.As(err, &verr) {
			slog.InfoContext(r.Context(), "contact rejected", "fields", verr.Fields())
			submissionsTotal.WithLabelValues(outcomeInvalid).Inc()
			writeJSON(w, http.StatusBadRequest, submitResponse{
				Message: "Invalid form data",
				Errors:  verr.Issues,
			})
			return
		}

		reqID := requestIDFor(r)
		slog.ErrorContext(r.Context(), "contact submit failed", "error", err, "request_id", reqID)
		submissionsTotal.WithLabelValues(outcomeFailed).Inc()
		writeJSON(w, http.StatusInternalServerError, submitResponse{
			Message: "Internal server error",
			Error:   fmt.Sprintf("request %s failed", reqID),
		})
		return
	}

	slog.InfoContext(r.Context(), "contact created", "id", msg.ID)
	submissionsTotal.WithLabelValues(outcomeAccepted).Inc()
	writeJSON(w, http.StatusOK, submitResponse{
		Success: true,
		Message: "Message sent successfully!",
		Contact: msg,
	})
}

// List handles GET /api/contacts. The response is a bare JSON array,
// oldest message first.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	messages, err := h.contactService.List(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "contact list failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, submitResponse{
			Message: "Internal server error",
		})
		return
	}

	// Return [] not null for empty lists
	if messages == nil {
		messages = []*model.ContactMessage{}
	}
	slog.InfoContext(r.Context(), "contacts listed", "count", len(messages), "token_checked", auth.IsAdminFromContext(r.Context()))
	writeJSON(w, http.StatusOK, messages)
}

func requestIDFor(r *http.Request) string {
	if id := logging.RequestID(r.Context()); id != "" {
		return id
	}
	return uuid.NewString()
}
