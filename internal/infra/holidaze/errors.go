package holidaze

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"
)

// APIError is a non-2xx answer from the Holidaze API.
type APIError struct {
	Status  int
	Message string
	Details json.RawMessage
}

func (e *APIError) Error() string {
	return fmt.Sprintf("holidaze: %d: %s", e.Status, e.Message)
}

// StatusOf extracts the HTTP status of an APIError anywhere in err's chain, or 0.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

type errorBody struct {
	Message string `json:"message"`
	Errors  []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// newAPIError picks the most specific message available: the first entry of
// errors[], then a top-level message, then a fixed text for the status.
func newAPIError(status int, body []byte, isJSON bool) *APIError {
	apiErr := &APIError{Status: status}
	var parsed errorBody
	switch {
	case isJSON && len(body) > 0:
		if json.Valid(body) {
			apiErr.Details = json.RawMessage(body)
			_ = json.Unmarshal(body, &parsed)
		}
	case len(body) > 0:
		parsed.Message = string(body)
		details, _ := json.Marshal(map[string]string{"message": parsed.Message})
		apiErr.Details = details
	}
	switch {
	case len(parsed.Errors) > 0 && parsed.Errors[0].Message != "":
		apiErr.Message = parsed.Errors[0].Message
	case parsed.Message != "":
		apiErr.Message = parsed.Message
	default:
		apiErr.Message = friendlyMessage(status)
	}
	return apiErr
}

func friendlyMessage(status int) string {
	switch status {
	case http.StatusUnauthorized:
		return "You need to log in to do that."
	case http.StatusForbidden:
		return "You don't have permission for this action."
	case http.StatusNotFound:
		return "Not found."
	case http.StatusUnprocessableEntity:
		return "Validation error. Please check your input."
	default:
		return "Something went wrong. Please try again."
	}
}
