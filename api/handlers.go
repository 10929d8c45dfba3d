/*
handlers.go - HTTP API handlers for the award pay engine

PURPOSE:
  Exposes the pay calculation engine via REST API. Handles HTTP
  request/response, JSON serialization, and delegates to the engine.

ENDPOINTS:
  POST   /api/calculate         Run a pay calculation for one pay period
  GET    /api/award             Award metadata (code, name, version)
  GET    /api/classifications   Supported classification codes

ARCHITECTURE:
  Handler holds the loaded rule table. The table is immutable after
  startup, so handlers are safe for concurrent use without locking.

REQUEST FLOW:
  1. Decode JSON body
  2. Validate employee and shifts via domain Validate methods
  3. Call engine.Calculate
  4. Serialize result (or map the engine error to an APIError)

ERROR HANDLING:
  Engine errors map onto HTTP statuses via their typed error values:
  - 400: Malformed JSON, validation failures, unknown classification,
         no rate effective for the requested date
  - 500: Configuration errors, internal calculation failures

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
  - engine/errors.go: Typed error values mapped here
*/
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"

	"github.com/warp/award-engine/engine"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Table *engine.RuleTable
}

// NewHandler creates a new handler backed by the given rule table.
func NewHandler(table *engine.RuleTable) *Handler {
	return &Handler{Table: table}
}

// =============================================================================
// CALCULATION ENDPOINT
// =============================================================================

// Calculate runs a full pay calculation for one employee and pay period.
// POST /api/calculate
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req CalculationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, APIError{
			Code:    CodeMalformedJSON,
			Message: "Request body is not valid JSON",
			Details: err.Error(),
		})
		return
	}

	if err := req.Employee.Validate(); err != nil {
		writeEngineError(w, err)
		return
	}
	for _, shift := range req.Shifts {
		if err := shift.Validate(); err != nil {
			writeEngineError(w, err)
			return
		}
	}

	// Reject unknown classifications before calculating. An explicit rate
	// override skips the lookup entirely.
	if req.Employee.BaseHourlyRate == nil && !h.Table.HasClassification(req.Employee.ClassificationCode) {
		writeEngineError(w, &engine.ClassificationNotFoundError{Code: req.Employee.ClassificationCode})
		return
	}

	// Holidays without an explicit region default to the national set.
	for i := range req.PayPeriod.PublicHolidays {
		if req.PayPeriod.PublicHolidays[i].Region == "" {
			req.PayPeriod.PublicHolidays[i].Region = "national"
		}
	}

	result, err := engine.Calculate(req.Employee, req.PayPeriod, req.Shifts, h.Table)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// =============================================================================
// AWARD METADATA ENDPOINTS
// =============================================================================

// GetAward returns the metadata of the loaded award.
// GET /api/award
func (h *Handler) GetAward(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Table.Award())
}

// ListClassifications returns the supported classifications, sorted by code.
// GET /api/classifications
func (h *Handler) ListClassifications(w http.ResponseWriter, r *http.Request) {
	classifications := h.Table.Classifications()

	dtos := make([]ClassificationDTO, 0, len(classifications))
	for code, c := range classifications {
		dtos = append(dtos, ClassificationDTO{
			Code:        code,
			Name:        c.Name,
			Description: c.Description,
			Clause:      c.Clause,
		})
	}
	sort.Slice(dtos, func(i, j int) bool { return dtos[i].Code < dtos[j].Code })

	writeJSON(w, http.StatusOK, dtos)
}

// =============================================================================
// ERROR MAPPING
// =============================================================================

// writeEngineError maps a typed engine error onto an HTTP status and
// an APIError body.
func writeEngineError(w http.ResponseWriter, err error) {
	var (
		classification *engine.ClassificationNotFoundError
		rate           *engine.RateNotFoundError
		shift          *engine.InvalidShiftError
		employee       *engine.InvalidEmployeeError
		calc           *engine.CalculationError
	)

	switch {
	case errors.As(err, &classification):
		writeError(w, http.StatusBadRequest, APIError{
			Code:    CodeClassificationNotFound,
			Message: fmt.Sprintf("Classification not found: %s", classification.Code),
			Details: fmt.Sprintf("The classification code '%s' is not supported by this engine", classification.Code),
		})
	case errors.As(err, &rate):
		writeError(w, http.StatusBadRequest, APIError{
			Code:    CodeRateNotFound,
			Message: fmt.Sprintf("Rate not found for classification '%s' on date %s", rate.Classification, rate.Date),
			Details: "The requested classification does not have a rate for the specified date",
		})
	case errors.As(err, &shift):
		writeError(w, http.StatusBadRequest, APIError{
			Code:    CodeInvalidShift,
			Message: fmt.Sprintf("Invalid shift '%s': %s", shift.ShiftID, shift.Message),
			Details: "The shift data contains invalid information",
		})
	case errors.As(err, &employee):
		writeError(w, http.StatusBadRequest, APIError{
			Code:    CodeInvalidEmployee,
			Message: fmt.Sprintf("Invalid employee field '%s': %s", employee.Field, employee.Message),
			Details: "The employee data contains invalid information",
		})
	case engine.IsConfigError(err):
		writeError(w, http.StatusInternalServerError, APIError{
			Code:    CodeConfigError,
			Message: "Award configuration error",
			Details: err.Error(),
		})
	case errors.As(err, &calc):
		writeError(w, http.StatusInternalServerError, APIError{
			Code:    CodeCalculationError,
			Message: "Calculation failed",
			Details: calc.Message,
		})
	default:
		writeError(w, http.StatusInternalServerError, APIError{
			Code:    CodeInternalError,
			Message: "Internal server error",
			Details: err.Error(),
		})
	}
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, apiErr APIError) {
	writeJSON(w, status, apiErr)
}
