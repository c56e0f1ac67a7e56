package handler

import (
	"encoding/base64"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"pdf-backend-bench/internal/domain"
)

// BackendHandler exposes the backend catalog over HTTP for the benchmark
// driver: descriptor enumeration, the three capability operations, and a
// multi-backend comparison run.
type BackendHandler struct {
	catalog      domain.Catalog
	benchService domain.BenchService
	maxFileSize  int64
	logger       domain.Logger
}

// NewBackendHandler creates a new backend handler instance
func NewBackendHandler(catalog domain.Catalog, benchService domain.BenchService, maxFileSize int64, logger domain.Logger) *BackendHandler {
	return &BackendHandler{
		catalog:      catalog,
		benchService: benchService,
		maxFileSize:  maxFileSize,
		logger:       logger,
	}
}

// ListBackends returns every registered backend descriptor
func (h *BackendHandler) ListBackends(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"backends": h.catalog.List(),
	})
}

// ExtractText runs extract_text on the named backend against the raw PDF
// request body
func (h *BackendHandler) ExtractText(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	payload, ok := h.readPayload(w, r)
	if !ok {
		return
	}

	text, err := h.catalog.ExtractText(r.Context(), name, payload)
	if err != nil {
		h.logger.Error("Text extraction failed", err, "backend", name)
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"backend": name,
		"text":    text,
	})
}

// ExtractImages runs extract_images on the named backend against the raw
// PDF request body
func (h *BackendHandler) ExtractImages(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	payload, ok := h.readPayload(w, r)
	if !ok {
		return
	}

	images, err := h.catalog.ExtractImages(r.Context(), name, payload)
	if err != nil {
		h.logger.Error("Image extraction failed", err, "backend", name)
		writeDomainError(w, err)
		return
	}

	type imageEntry struct {
		Name string `json:"name"`
		Size int    `json:"size"`
		Data string `json:"data"`
	}
	entries := make([]imageEntry, 0, len(images))
	for _, img := range images {
		entries = append(entries, imageEntry{
			Name: img.Name,
			Size: len(img.Data),
			Data: base64.StdEncoding.EncodeToString(img.Data),
		})
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"backend": name,
		"images":  entries,
	})
}

// ApplyWatermark merges the uploaded watermark onto every page of the
// uploaded document and streams back the new PDF
func (h *BackendHandler) ApplyWatermark(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize)
	if err := r.ParseMultipartForm(h.maxFileSize); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	watermark, ok := h.readFormFile(w, r, "watermark")
	if !ok {
		return
	}
	document, ok := h.readFormFile(w, r, "document")
	if !ok {
		return
	}

	out, err := h.catalog.ApplyWatermark(r.Context(), name, watermark, document)
	if err != nil {
		h.logger.Error("Watermarking failed", err, "backend", name)
		writeDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}

// CompareText fans the raw PDF request body out across every text-capable
// backend
func (h *BackendHandler) CompareText(w http.ResponseWriter, r *http.Request) {
	payload, ok := h.readPayload(w, r)
	if !ok {
		return
	}

	results := h.benchService.CompareText(r.Context(), payload)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"results": results,
	})
}

// readPayload reads the raw request body, bounded by the configured
// maximum upload size
func (h *BackendHandler) readPayload(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body := http.MaxBytesReader(w, r.Body, h.maxFileSize)
	payload, err := io.ReadAll(body)
	if err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
		return nil, false
	}
	if len(payload) == 0 {
		writeError(w, http.StatusBadRequest, "empty document payload")
		return nil, false
	}
	return payload, true
}

func (h *BackendHandler) readFormFile(w http.ResponseWriter, r *http.Request, field string) ([]byte, bool) {
	file, _, err := r.FormFile(field)
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing form file: "+field)
		return nil, false
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read form file: "+field)
		return nil, false
	}
	return data, true
}
