package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// District error codes (DISTRICT_*)
const (
	DistrictNotFound     ErrorCode = "DISTRICT_001"
	DistrictCodeNotFound ErrorCode = "DISTRICT_002"
	DistrictNoResults    ErrorCode = "DISTRICT_003"
)

// Category error codes (CATEGORY_*)
const (
	CategoryNotFound ErrorCode = "CATEGORY_001"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationEmptyKeyword  ErrorCode = "VALIDATION_005"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemUnexpectedError    ErrorCode = "SYSTEM_004"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_005"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// District errors
	DistrictNotFound:     "District not found",
	DistrictCodeNotFound: "District code not found",
	DistrictNoResults:    "No districts matched the given criteria",

	// Category errors
	CategoryNotFound: "Service category not found",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required parameter is missing",
	ValidationInvalidFormat: "Invalid parameter format",
	ValidationOutOfRange:    "Parameter value is out of allowed range",
	ValidationEmptyKeyword:  "Search keyword must not be empty",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
