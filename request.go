package rift

import (
	"net/http"
	"net/url"
	"time"
)

// RequestResult records a single completed request and its response. It is
// immutable after construction and exists for error construction and
// observability only.
type RequestResult struct {
	Client *Client

	// Method is the HTTP verb: "GET", "POST", ...
	Method string
	// Path relative to the client's endpoint.
	Path string
	// Query holds URL query parameters, nil for POST requests.
	Query url.Values
	// RequestContent is the request payload before encoding.
	RequestContent any
	// ResponseRaw is the response body text as received.
	ResponseRaw string
	// ResponseContent is the decoded response payload. It includes the
	// "resource" wrapper mapping, or an "errors" mapping instead.
	ResponseContent any

	StatusCode int
	Headers    http.Header

	StartTime time.Time
	EndTime   time.Time
}

// TimeTaken is EndTime - StartTime.
func (rr *RequestResult) TimeTaken() time.Duration {
	return rr.EndTime.Sub(rr.StartTime)
}

// Resource dispatches on the status code: 2xx returns the decoded "resource"
// field of the payload, anything else returns the status-specific error
// variant carrying the decoded server error list.
func (rr *RequestResult) Resource() (any, error) {
	if rr.StatusCode >= 200 && rr.StatusCode < 300 {
		m, ok := rr.ResponseContent.(map[string]any)
		if !ok {
			return nil, &InvalidResponseError{Description: "response should be a mapping", Data: rr.ResponseContent}
		}
		resource, ok := m["resource"]
		if !ok {
			return nil, &InvalidResponseError{Description: `response should have a "resource" key`, Data: rr.ResponseContent}
		}
		return resource, nil
	}
	return nil, errorFromResult(rr)
}
