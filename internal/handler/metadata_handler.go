package handler

import (
	"net/http"

	"tainan-restaurant/internal/model"

	"github.com/rs/zerolog"
)

// MetadataPublisher supplies the plugin manifest and OpenAPI documents.
type MetadataPublisher interface {
	Manifest() model.PluginManifest
	OpenAPIYAML() ([]byte, error)
	OpenAPIJSON() ([]byte, error)
}

// MetadataHandler serves the discovery documents.
type MetadataHandler struct {
	publisher MetadataPublisher
	logger    zerolog.Logger
}

// NewMetadataHandler creates a new metadata handler.
func NewMetadataHandler(publisher MetadataPublisher, logger zerolog.Logger) *MetadataHandler {
	return &MetadataHandler{
		publisher: publisher,
		logger:    logger.With().Str("handler", "metadata").Logger(),
	}
}

// PluginManifest handles GET /.well-known/ai-plugin.json requests.
func (h *MetadataHandler) PluginManifest(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.publisher.Manifest())
}

// OpenAPIYAML handles GET /.well-known/openapi.yaml requests.
func (h *MetadataHandler) OpenAPIYAML(w http.ResponseWriter, r *http.Request) {
	doc, err := h.publisher.OpenAPIYAML()
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, "failed to render OpenAPI document", h.logger)
		return
	}

	w.Header().Set("Content-Type", "text/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc)
}

// OpenAPIJSON handles GET /openapi.json requests.
func (h *MetadataHandler) OpenAPIJSON(w http.ResponseWriter, r *http.Request) {
	doc, err := h.publisher.OpenAPIJSON()
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, "failed to render OpenAPI document", h.logger)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc)
}
