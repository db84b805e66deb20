package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/maksimkurb/ioc-diff/src/internal/addrspace"
	"github.com/maksimkurb/ioc-diff/src/internal/compare"
	"github.com/maksimkurb/ioc-diff/src/internal/config"
	apperrors "github.com/maksimkurb/ioc-diff/src/internal/errors"
	"github.com/maksimkurb/ioc-diff/src/internal/indicators"
	"github.com/maksimkurb/ioc-diff/src/internal/log"
)

// Handler serves the API endpoints using the settings of one configuration.
type Handler struct {
	cfg     *config.Config
	version VersionInfo
}

// NewHandler creates a new API handler. cfg must already be validated.
func NewHandler(cfg *config.Config, version VersionInfo) *Handler {
	return &Handler{
		cfg:     cfg,
		version: version,
	}
}

// Compare handles POST /api/v1/compare.
func (h *Handler) Compare(w http.ResponseWriter, r *http.Request) {
	var req CompareRequest
	if !h.decodeRequest(w, r, &req) {
		return
	}

	summary := h.cfg.General.Summary
	if req.Summary != nil {
		summary = *req.Summary
	}

	engine := compare.NewEngine(
		compare.WithRangeStyle(h.rangeStyle(req.RangeStyle)),
		compare.WithClassifier(h.classifier(req.LenientParsing)),
		compare.WithSummary(summary),
	)

	result, err := engine.Compare(req.List1, req.List2)
	if err != nil {
		writeCompareError(w, err)
		return
	}

	log.Debugf("Compared %d and %d indicators: %d and %d unique",
		len(req.List1), len(req.List2), len(result.UniqueIndicators1), len(result.UniqueIndicators2))

	writeJSONData(w, result)
}

// Classify handles POST /api/v1/classify.
func (h *Handler) Classify(w http.ResponseWriter, r *http.Request) {
	var req ClassifyRequest
	if !h.decodeRequest(w, r, &req) {
		return
	}

	classified, err := h.classifier(req.LenientParsing).Classify(req.Indicators)
	if err != nil {
		writeCompareError(w, err)
		return
	}

	resp := ClassifyResponse{
		Addresses:     classified.Addresses.Tokens(h.rangeStyle(req.RangeStyle)),
		AddressRanges: len(classified.Addresses.Ranges()),
		AddressCount:  classified.Addresses.Size(),
		Other:         make([]OtherIndicator, 0, classified.Opaque.Len()),
	}
	if resp.Addresses == nil {
		resp.Addresses = []string{}
	}
	for _, token := range classified.Opaque.Values() {
		resp.Other = append(resp.Other, OtherIndicator{Indicator: token, Kind: indicators.KindOf(token)})
	}

	writeJSONData(w, resp)
}

// Health handles GET /api/v1/health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSONData(w, HealthResponse{
		Status:  "ok",
		Version: h.version,
	})
}

func (h *Handler) rangeStyle(requested string) addrspace.RangeStyle {
	if requested != "" {
		if style, err := addrspace.ParseRangeStyle(requested); err == nil {
			return style
		}
	}
	return h.cfg.GetRangeStyle()
}

func (h *Handler) classifier(lenient *bool) *indicators.Classifier {
	enabled := h.cfg.General.LenientParsing
	if lenient != nil {
		enabled = *lenient
	}
	return indicators.NewClassifier(indicators.WithLenientParsing(enabled))
}

// decodeRequest reads and validates a JSON body. It writes the error response
// and returns false when the request cannot be used.
func (h *Handler) decodeRequest(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	limit := h.cfg.Server.MaxRequestBytes
	if limit > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, limit)
	}

	if err := decodeJSON(r, v); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			WriteRequestTooLarge(w, maxErr.Limit)
			return false
		}
		WriteInvalidRequest(w, fmt.Sprintf("Invalid JSON: %v", err))
		return false
	}

	if errs := config.ValidateStruct(v, "", ""); len(errs) > 0 {
		details := make(map[string]interface{}, len(errs))
		for _, e := range errs {
			details[e.FieldPath] = e.Message
		}
		WriteValidationError(w, "Request validation failed", details)
		return false
	}

	return true
}

func writeCompareError(w http.ResponseWriter, err error) {
	if apperrors.HasCode(err, apperrors.ErrCodeParse) {
		WriteParseError(w, err.Error())
		return
	}
	log.Errorf("Comparison failed: %v", err)
	WriteInternalError(w, "Comparison failed")
}

// writeJSON writes a JSON response with the given status code and data.
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(DataResponse{Data: data})
}

// writeJSONData writes a successful JSON response with data.
func writeJSONData(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, data)
}

// decodeJSON decodes JSON from the request body.
func decodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}
