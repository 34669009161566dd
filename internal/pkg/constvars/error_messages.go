package constvars

// Validation messages, mapped by validator tag.
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"min":      "must be at least %s",
	"max":      "must be at most %s",
	"gte":      "must be greater than or equal to %s",
	"lte":      "must be less than or equal to %s",
	"numeric":  "must be a number",
}

// Tags that require parameter substitution.
var TagsWithParams = map[string]bool{
	"min": true,
	"max": true,
	"gte": true,
	"lte": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientInvalidSearchCriteria         = "enter a national ID, or both a given name and a family name, before searching"
	ErrClientRegistryUnavailable           = "the patient registry could not be reached, please try again"
	ErrClientInvalidAPIKey                 = "invalid API key"
	ErrClientAPIKeyRequired                = "API key is required"
)

// Error messages for developers
const (
	ErrDevCannotMarshalJSON  = "cannot marshal JSON"
	ErrDevCannotParseJSON    = "cannot parse JSON"
	ErrDevCreateHTTPRequest  = "failed to create HTTP request"
	ErrDevSendHTTPRequest    = "failed to send HTTP request"
	ErrDevValidationFailed   = "validation failed"
	ErrDevInvalidSearchInput = "search request missing identifier and given+family name"
	ErrDevRequestCancelled   = "request cancelled before completion"
	ErrDevDeadlineExceeded   = "server deadline exceeded"
	ErrDevInvalidAPIKey      = "provided API key does not match"
	ErrDevAPIKeyRequired     = "API key header missing"

	// Registry messages
	ErrDevRegistrySearchFHIRPatient  = "failed to search FHIR Patient on national registry"
	ErrDevRegistryDecodeFHIRResponse = "failed to decode FHIR response from national registry"
)
