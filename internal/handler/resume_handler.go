package handler

import (
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/folio/backend/internal/storage"
)

// ResumeConfig holds configuration for the ResumeHandler.
type ResumeConfig struct {
	// Key is the asset key of the resume inside the store.
	Key string
	// Filename is the download name offered to the browser.
	Filename string
}

// ResumeHandler handles GET /api/resume.
type ResumeHandler struct {
	store storage.AssetStore
	cfg   ResumeConfig
}

// NewResumeHandler creates a ResumeHandler reading from store.
func NewResumeHandler(store storage.AssetStore, cfg ResumeConfig) *ResumeHandler {
	if cfg.Key == "" {
		cfg.Key = "resume.pdf"
	}
	if cfg.Filename == "" {
		cfg.Filename = "resume.pdf"
	}
	return &ResumeHandler{store: store, cfg: cfg}
}

// Download streams the resume as an attachment.
// Responds 404 {"error":"Resume not found"} when the asset is missing.
func (h *ResumeHandler) Download(w http.ResponseWriter, r *http.Request) {
	asset, err := h.store.Open(r.Context(), h.cfg.Key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Resume not found"})
			return
		}
		slog.ErrorContext(r.Context(), "resume open failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}
	defer asset.Close()

	contentType := asset.ContentType
	if contentType == "" {
		contentType = "application/pdf"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", attachmentDisposition(h.cfg.Filename))
	if asset.Size >= 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(asset.Size, 10))
	}
	if !asset.ModTime.IsZero() {
		w.Header().Set("Last-Modified", asset.ModTime.UTC().Format(http.TimeFormat))
	}
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, asset); err != nil {
		slog.WarnContext(r.Context(), "resume copy interrupted", "error", err)
	}
}

var quoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// attachmentDisposition always quotes filename. Names outside printable ASCII
// fall back to the RFC 2231 form.
func attachmentDisposition(filename string) string {
	for _, r := range filename {
		if r < 0x20 || r > 0x7e {
			return mime.FormatMediaType("attachment", map[string]string{"filename": filename})
		}
	}
	return `attachment; filename="` + quoteEscaper.Replace(filename) + `"`
}
