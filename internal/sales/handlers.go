package sales

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	validator "github.com/go-playground/validator/v10"

	"github.com/noah-isme/sales-report/internal/common"
	"github.com/noah-isme/sales-report/internal/report"
	"github.com/noah-isme/sales-report/internal/security"
)

// Handler exposes the seller report endpoints.
type Handler struct {
	Svc      *Service
	Validate *validator.Validate
}

type computeRequest struct {
	Policy string          `json:"policy" validate:"omitempty,max=64"`
	Data   *report.Dataset `json:"data" validate:"required"`
}

// Compute runs the report for the posted dataset. The JSON decode is the
// strict typing boundary: payloads with mistyped fields never reach the
// engine.
func (h *Handler) Compute(w http.ResponseWriter, r *http.Request) {
	if h.Svc == nil {
		common.JSONError(w, http.StatusInternalServerError, "REPORTS_NOT_CONFIGURED", "report service not configured")
		return
	}
	var req computeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if security.IsBodyTooLarge(err) {
			common.JSONError(w, http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE", "request payload exceeds the size limit")
			return
		}
		common.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "malformed request payload")
		return
	}
	if err := h.validate(&req); err != nil {
		if req.Data == nil {
			common.JSONError(w, http.StatusBadRequest, "CONFIGURATION_ERROR", "data object is required")
			return
		}
		common.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "policy name must be at most 64 characters")
		return
	}

	topN := topParam(r)
	reports, err := h.Svc.Compute(r.Context(), req.Policy, topN, *req.Data)
	if err != nil {
		common.RenderError(w, httpError(err))
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": reports})
}

// Policies lists the registered strategy policies.
func (h *Handler) Policies(w http.ResponseWriter, _ *http.Request) {
	if h.Svc == nil {
		common.JSONError(w, http.StatusInternalServerError, "REPORTS_NOT_CONFIGURED", "report service not configured")
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": h.Svc.PolicyNames()})
}

// topParam reads the optional ?top= override. Zero means the configured
// default; junk and negatives are ignored rather than rejected.
func topParam(r *http.Request) int {
	raw := r.URL.Query().Get("top")
	if raw == "" {
		return 0
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed < 0 {
		return 0
	}
	return parsed
}

func (h *Handler) validate(req *computeRequest) error {
	if h.Validate != nil {
		return h.Validate.Struct(req)
	}
	if req.Data == nil {
		return errors.New("data object is required")
	}
	return nil
}

// httpError maps engine failures onto API error codes. Reference errors in
// the payload are the client's fault, hence 4xx; a strategy blowing up is
// ours.
func httpError(err error) error {
	var (
		cfg  *report.ConfigurationError
		val  *report.ValidationError
		nf   *report.NotFoundError
		comp *report.ComputationError
	)
	switch {
	case errors.Is(err, ErrUnknownPolicy):
		return common.NewAppError("UNKNOWN_POLICY", err.Error(), http.StatusBadRequest, err)
	case errors.As(err, &cfg):
		return common.NewAppError("CONFIGURATION_ERROR", cfg.Message, http.StatusBadRequest, err)
	case errors.As(err, &val):
		return common.NewAppError("VALIDATION_ERROR", val.Message, http.StatusUnprocessableEntity, err)
	case errors.As(err, &nf):
		return common.NewAppError("NOT_FOUND", nf.Error(), http.StatusUnprocessableEntity, err)
	case errors.As(err, &comp):
		return common.NewAppError("COMPUTATION_ERROR", comp.Error(), http.StatusInternalServerError, err)
	default:
		return common.NewAppError("INTERNAL", "internal error", http.StatusInternalServerError, err)
	}
}
