package rift

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
)

// LogObserver adapts a plain string logger into a Client observer:
//
//	c := rift.NewClient(secret, rift.Observer(rift.LogObserver(func(s string) {
//		log.Print(s)
//	})))
func LogObserver(log func(string)) func(*RequestResult) {
	return func(rr *RequestResult) { log(ShowRequestResult(rr)) }
}

// ShowRequestResult renders a RequestResult as a multi-line string suitable
// for logging.
func ShowRequestResult(rr *RequestResult) string {
	var b strings.Builder

	queryString := ""
	if len(rr.Query) > 0 {
		queryString = "?" + rr.Query.Encode()
	}
	fmt.Fprintf(&b, "Rift %s /%s%s\n", rr.Method, rr.Path, queryString)

	if rr.RequestContent != nil {
		fmt.Fprintf(&b, "  Request JSON: %s\n", indented(prettyValue(rr.RequestContent)))
	}
	fmt.Fprintf(&b, "  Response headers: %s\n", indented(prettyHeaders(rr)))
	fmt.Fprintf(&b, "  Response JSON: %s\n", indented(prettyValue(rr.ResponseContent)))
	fmt.Fprintf(&b, "  Response (%d): Network latency %dms\n",
		rr.StatusCode, rr.TimeTaken().Milliseconds())

	return b.String()
}

func prettyValue(v any) string {
	out, err := EncodeIndent(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(out)
}

func prettyHeaders(rr *RequestResult) string {
	out, err := json.MarshalIndent(rr.Headers, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", rr.Headers)
	}
	return string(out)
}

func indented(s string) string {
	return strings.ReplaceAll(s, "\n", "\n  ")
}
