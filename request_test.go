package rift_test

import (
	"errors"
	"reflect"
	"testing"

	rift "github.com/riftdb/rift-go"
)

func resultWith(t *testing.T, status int, body string) *rift.RequestResult {
	t.Helper()
	content, err := rift.Decode([]byte(body))
	if err != nil {
		t.Fatalf("decode err: %v", err)
	}
	return &rift.RequestResult{
		Method:          "POST",
		Path:            "",
		ResponseRaw:     body,
		ResponseContent: content,
		StatusCode:      status,
	}
}

func TestResource_Success(t *testing.T) {
	rr := resultWith(t, 200, `{"resource":{"ref":{"@ref":"classes/frogs/123"}}}`)
	v, err := rr.Resource()
	if err != nil {
		t.Fatalf("resource err: %v", err)
	}
	want := map[string]any{"ref": rift.NewRef("classes/frogs", "123")}
	if !reflect.DeepEqual(v, want) {
		t.Fatalf("unexpected resource: %#v", v)
	}
}

func TestResource_MissingResourceKey(t *testing.T) {
	rr := resultWith(t, 200, `{"data":1}`)
	_, err := rr.Resource()
	var ire *rift.InvalidResponseError
	if !errors.As(err, &ire) {
		t.Fatalf("expected InvalidResponseError, got %v", err)
	}
}

func TestResource_NonMappingPayload(t *testing.T) {
	rr := resultWith(t, 200, `[1,2]`)
	if _, err := rr.Resource(); err == nil {
		t.Fatalf("expected error for non-mapping payload")
	}
}

func TestResource_NotFound(t *testing.T) {
	rr := resultWith(t, 404, `{"errors":[{"code":"instance not found","description":"Document not found.","position":["get"]}]}`)
	_, err := rr.Resource()
	var nf *rift.NotFound
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFound, got %v", err)
	}
	if len(nf.Errors) != 1 {
		t.Fatalf("expected one error entry, got %d", len(nf.Errors))
	}
	ed := nf.Errors[0]
	if ed.Code != "instance not found" || ed.Description != "Document not found." {
		t.Fatalf("unexpected error data: %+v", ed)
	}
	if !reflect.DeepEqual(ed.Position, []any{"get"}) {
		t.Fatalf("unexpected position: %#v", ed.Position)
	}
	if nf.Result != rr {
		t.Fatalf("error should carry the request result")
	}
}

func TestResource_StatusVariants(t *testing.T) {
	body := `{"errors":[{"code":"err","description":"oops"}]}`
	cases := []struct {
		status int
		target any
	}{
		{400, new(*rift.BadRequest)},
		{401, new(*rift.Unauthorized)},
		{403, new(*rift.PermissionDenied)},
		{405, new(*rift.MethodNotAllowed)},
		{500, new(*rift.InternalError)},
		{502, new(*rift.InternalError)},
		{503, new(*rift.Unavailable)},
		{418, new(*rift.UnknownError)},
	}
	for _, c := range cases {
		_, err := resultWith(t, c.status, body).Resource()
		if !errors.As(err, c.target) {
			t.Fatalf("status %d: wrong variant: %v", c.status, err)
		}
	}
}

func TestResource_ValidationFailures(t *testing.T) {
	body := `{"errors":[{"code":"validation failed","description":"Invalid.","position":["create"],` +
		`"failures":[{"code":"invalid type","description":"Expected a number.","field":["data","size"]}]}]}`
	_, err := resultWith(t, 400, body).Resource()
	var br *rift.BadRequest
	if !errors.As(err, &br) {
		t.Fatalf("expected BadRequest, got %v", err)
	}
	failures := br.Errors[0].Failures
	if len(failures) != 1 {
		t.Fatalf("expected one failure, got %d", len(failures))
	}
	if failures[0].Code != "invalid type" || !reflect.DeepEqual(failures[0].Field, []any{"data", "size"}) {
		t.Fatalf("unexpected failure: %+v", failures[0])
	}
}

func TestResource_ErrorPayloadWithoutErrors(t *testing.T) {
	rr := resultWith(t, 500, `{"unexpected":true}`)
	_, err := rr.Resource()
	var ire *rift.InvalidResponseError
	if !errors.As(err, &ire) {
		t.Fatalf("expected InvalidResponseError, got %v", err)
	}
}
