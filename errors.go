package rift

import "fmt"

// EncodingError reports a value with no wire representation, or a value that
// violates an encode-time invariant (NaN, bare time.Time, ...).
type EncodingError struct {
	Value   any
	Message string
}

func (e *EncodingError) Error() string { return "rift: encode: " + e.Message }

// DecodingError reports a malformed tag payload or unparsable JSON.
type DecodingError struct {
	Tag     string // tag key being reconstructed, empty for raw JSON errors
	Value   any
	Message string
}

func (e *DecodingError) Error() string {
	if e.Tag != "" {
		return "rift: decode " + e.Tag + ": " + e.Message
	}
	return "rift: decode: " + e.Message
}

// InvalidValueError reports a value-type invariant violation, such as
// requesting the instance id of a collection-only Ref.
type InvalidValueError struct {
	Value   any
	Message string
}

func (e *InvalidValueError) Error() string { return "rift: " + e.Message }

// InvalidQueryError reports a builder-time shape or arity violation. Deep
// semantic validation is left to the server.
type InvalidQueryError struct {
	Op      string
	Message string
}

func (e *InvalidQueryError) Error() string { return "rift: query " + e.Op + ": " + e.Message }

// InvalidResponseError reports a server response that cannot be used: not
// JSON, not a mapping, or missing an expected key.
type InvalidResponseError struct {
	Description string
	Data        any
}

func (e *InvalidResponseError) Error() string { return "rift: invalid response: " + e.Description }

// ErrorData is one error entry returned by the server.
type ErrorData struct {
	Code        string
	Description string
	Position    []any
	// Failures is populated for "validation failed" errors.
	Failures []Failure
}

// Failure details one field-level problem inside a "validation failed" error.
type Failure struct {
	Code        string
	Description string
	Field       []any
}

// APIError is the base for all status-keyed server errors. It carries the
// decoded error list and the full RequestResult so a failure can be diagnosed
// without re-running the request.
type APIError struct {
	StatusCode int
	Errors     []ErrorData
	Result     *RequestResult
}

func (e *APIError) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("rift: HTTP %d: (empty errors)", e.StatusCode)
	}
	return fmt.Sprintf("rift: HTTP %d: %s", e.StatusCode, e.Errors[0].Description)
}

// BadRequest is the HTTP 400 error.
type BadRequest struct{ APIError }

// Unauthorized is the HTTP 401 error.
type Unauthorized struct{ APIError }

// PermissionDenied is the HTTP 403 error.
type PermissionDenied struct{ APIError }

// NotFound is the HTTP 404 error.
type NotFound struct{ APIError }

// MethodNotAllowed is the HTTP 405 error.
type MethodNotAllowed struct{ APIError }

// Unavailable is the HTTP 503 error.
type Unavailable struct{ APIError }

// InternalError covers HTTP 5xx other than 503.
type InternalError struct{ APIError }

// UnknownError covers any other non-2xx status.
type UnknownError struct{ APIError }

// errorFromResult builds the status-specific error variant for a completed
// request. The payload must carry an "errors" array; anything else is an
// invalid response.
func errorFromResult(rr *RequestResult) error {
	errs, err := errorsFromPayload(rr.ResponseContent)
	if err != nil {
		return err
	}
	base := APIError{StatusCode: rr.StatusCode, Errors: errs, Result: rr}
	switch rr.StatusCode {
	case 400:
		return &BadRequest{base}
	case 401:
		return &Unauthorized{base}
	case 403:
		return &PermissionDenied{base}
	case 404:
		return &NotFound{base}
	case 405:
		return &MethodNotAllowed{base}
	case 503:
		return &Unavailable{base}
	}
	if rr.StatusCode >= 500 {
		return &InternalError{base}
	}
	return &UnknownError{base}
}

func errorsFromPayload(payload any) ([]ErrorData, error) {
	m, ok := payload.(map[string]any)
	if !ok {
		return nil, &InvalidResponseError{Description: "error response should be a mapping", Data: payload}
	}
	list, ok := m["errors"].([]any)
	if !ok {
		return nil, &InvalidResponseError{Description: `error response should have an "errors" array`, Data: payload}
	}
	errs := make([]ErrorData, 0, len(list))
	for _, entry := range list {
		ed, err := errorDataFromValue(entry)
		if err != nil {
			return nil, err
		}
		errs = append(errs, ed)
	}
	return errs, nil
}

func errorDataFromValue(v any) (ErrorData, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return ErrorData{}, &InvalidResponseError{Description: "error entry should be a mapping", Data: v}
	}
	code, ok := m["code"].(string)
	if !ok {
		return ErrorData{}, &InvalidResponseError{Description: `error entry should have a "code" key`, Data: v}
	}
	desc, ok := m["description"].(string)
	if !ok {
		return ErrorData{}, &InvalidResponseError{Description: `error entry should have a "description" key`, Data: v}
	}
	ed := ErrorData{Code: code, Description: desc}
	if pos, ok := m["position"].([]any); ok {
		ed.Position = pos
	}
	if failures, ok := m["failures"].([]any); ok {
		for _, f := range failures {
			failure, err := failureFromValue(f)
			if err != nil {
				return ErrorData{}, err
			}
			ed.Failures = append(ed.Failures, failure)
		}
	}
	return ed, nil
}

func failureFromValue(v any) (Failure, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return Failure{}, &InvalidResponseError{Description: "failure entry should be a mapping", Data: v}
	}
	f := Failure{}
	f.Code, _ = m["code"].(string)
	f.Description, _ = m["description"].(string)
	if field, ok := m["field"].([]any); ok {
		f.Field = field
	}
	return f, nil
}
