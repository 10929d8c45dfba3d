/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. The calculation
  endpoint binds directly onto the engine's domain types (they carry
  stable json tags), so the DTOs here cover the request envelope, the
  error body, and the classification listing.

NAMING CONVENTION:
  - *Request: Request body types from clients
  - *DTO: Response types returned to clients
  - APIError: The uniform error body for every non-2xx response

ERROR BODY:
  Every error response is an APIError with a machine-readable code,
  a human-readable message, and optional details:

    {"code": "CLASSIFICATION_NOT_FOUND",
     "message": "Classification not found: xyz",
     "details": "The classification code 'xyz' is not supported by this engine"}

VALIDATION:
  Validation is done in handlers via the domain Validate methods.
  DTOs are pure data carriers.

SEE ALSO:
  - handlers.go: Uses these types
  - engine/types.go: Employee, Shift, PayPeriod
*/
package api

import "github.com/warp/award-engine/engine"

// =============================================================================
// REQUEST TYPES
// =============================================================================

// CalculationRequest is the request body for POST /api/calculate.
type CalculationRequest struct {
	Employee  engine.Employee  `json:"employee"`
	PayPeriod engine.PayPeriod `json:"pay_period"`
	Shifts    []engine.Shift   `json:"shifts"`
}

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// ClassificationDTO is one entry in the classification listing.
type ClassificationDTO struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Clause      string `json:"clause"`
}

// APIError is the JSON body returned for every error response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// Error codes returned by the API.
const (
	CodeMalformedJSON          = "MALFORMED_JSON"
	CodeValidationError        = "VALIDATION_ERROR"
	CodeClassificationNotFound = "CLASSIFICATION_NOT_FOUND"
	CodeRateNotFound           = "RATE_NOT_FOUND"
	CodeInvalidShift           = "INVALID_SHIFT"
	CodeInvalidEmployee        = "INVALID_EMPLOYEE"
	CodeConfigError            = "CONFIG_ERROR"
	CodeCalculationError       = "CALCULATION_ERROR"
	CodeInternalError          = "INTERNAL_ERROR"
)
