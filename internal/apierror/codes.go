package apierror

// Error type URIs following the urn:finsight:error:* pattern.
// These are used as the "type" field in RFC 9457 Problem Details.
const (
	// TypeValidation indicates request validation failed (400)
	TypeValidation = "urn:finsight:error:validation"

	// TypeNotFound indicates the requested resource was not found (404)
	TypeNotFound = "urn:finsight:error:not_found"

	// TypeConflict indicates a resource conflict (409)
	TypeConflict = "urn:finsight:error:conflict"

	// TypeUnauthorized indicates missing or invalid authentication (401)
	TypeUnauthorized = "urn:finsight:error:unauthorized"

	// TypeForbidden indicates insufficient permissions (403)
	TypeForbidden = "urn:finsight:error:forbidden"

	// TypeInternal indicates an unexpected server error (500)
	TypeInternal = "urn:finsight:error:internal"

	// TypeBadRequest indicates a malformed or invalid request (400)
	TypeBadRequest = "urn:finsight:error:bad_request"

	// TypeInvalidPeriod indicates a malformed period key or period type (400)
	TypeInvalidPeriod = "urn:finsight:error:invalid_period"

	// TypeSplitMismatch indicates shared expense splits that do not sum to the
	// expense amount (400)
	TypeSplitMismatch = "urn:finsight:error:split_mismatch"
)

// Titles for each error type - human-readable summaries
const (
	TitleValidation    = "Validation Error"
	TitleNotFound      = "Resource Not Found"
	TitleConflict      = "Resource Conflict"
	TitleUnauthorized  = "Authentication Required"
	TitleForbidden     = "Permission Denied"
	TitleInternal      = "Internal Server Error"
	TitleBadRequest    = "Bad Request"
	TitleInvalidPeriod = "Invalid Period"
	TitleSplitMismatch = "Split Amounts Do Not Match"
)
