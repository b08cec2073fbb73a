package rift_test

import (
	"context"
	"errors"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	rift "github.com/riftdb/rift-go"
	"github.com/riftdb/rift-go/query"
)

func TestClient_Query(t *testing.T) {
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json;charset=utf-8" {
			t.Errorf("unexpected content type: %s", ct)
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != "alice" || pass != "s3cret" {
			t.Errorf("unexpected auth: %s %s %v", user, pass, ok)
		}
		gotBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{"resource":{"ref":{"@ref":"classes/frogs/123"}}}`))
	}))
	defer srv.Close()

	c := rift.NewClient("alice:s3cret", rift.Endpoint(srv.URL))
	v, err := c.Query(context.Background(), query.Get(rift.NewRef("classes/frogs", "123")))
	if err != nil {
		t.Fatalf("query err: %v", err)
	}
	want := map[string]any{"ref": rift.NewRef("classes/frogs", "123")}
	if !reflect.DeepEqual(v, want) {
		t.Fatalf("unexpected resource: %#v", v)
	}
	if string(gotBody) != `{"get":{"@ref":"classes/frogs/123"}}` {
		t.Fatalf("unexpected request body: %s", gotBody)
	}
}

func TestClient_QueryServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(404)
		w.Write([]byte(`{"errors":[{"code":"instance not found","description":"Document not found.","position":[]}]}`))
	}))
	defer srv.Close()

	c := rift.NewClient("secret", rift.Endpoint(srv.URL))
	_, err := c.Query(context.Background(), query.Get(rift.NewRef("classes/frogs", "404")))
	var nf *rift.NotFound
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFound, got %v", err)
	}
	if nf.Result == nil || nf.Result.StatusCode != 404 {
		t.Fatalf("error should carry the request result: %+v", nf.Result)
	}
}

func TestClient_Ping(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ping" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("scope"); got != "node" {
			t.Errorf("unexpected scope: %s", got)
		}
		if got := r.URL.Query().Get("timeout"); got != "5" {
			t.Errorf("unexpected timeout: %s", got)
		}
		w.Write([]byte(`{"resource":"Scope node is OK"}`))
	}))
	defer srv.Close()

	c := rift.NewClient("secret", rift.Endpoint(srv.URL))
	v, err := c.Ping(context.Background(), "node", 5*time.Second)
	if err != nil {
		t.Fatalf("ping err: %v", err)
	}
	if v != "Scope node is OK" {
		t.Fatalf("unexpected ping result: %#v", v)
	}
}

func TestClient_Observer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"resource":1}`))
	}))
	defer srv.Close()

	var seen *rift.RequestResult
	c := rift.NewClient("secret",
		rift.Endpoint(srv.URL),
		rift.Observer(func(rr *rift.RequestResult) { seen = rr }))

	if _, err := c.Query(context.Background(), query.Add(1, 2)); err != nil {
		t.Fatalf("query err: %v", err)
	}
	if seen == nil {
		t.Fatalf("observer not called")
	}
	if seen.Method != "POST" || seen.StatusCode != 200 {
		t.Fatalf("unexpected request result: %+v", seen)
	}
	if seen.ResponseRaw != `{"resource":1}` {
		t.Fatalf("unexpected raw response: %s", seen.ResponseRaw)
	}
	if seen.EndTime.Before(seen.StartTime) {
		t.Fatalf("end time precedes start time")
	}
}

func TestClient_InvalidJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`this is not json`))
	}))
	defer srv.Close()

	c := rift.NewClient("secret", rift.Endpoint(srv.URL))
	_, err := c.Query(context.Background(), query.Add(1, 2))
	var ire *rift.InvalidResponseError
	if !errors.As(err, &ire) {
		t.Fatalf("expected InvalidResponseError, got %v", err)
	}
}

func TestClient_EncodeFailureSendsNothing(t *testing.T) {
	hit := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit = true
	}))
	defer srv.Close()

	c := rift.NewClient("secret", rift.Endpoint(srv.URL))
	_, err := c.Query(context.Background(), math.NaN())
	var ee *rift.EncodingError
	if !errors.As(err, &ee) {
		t.Fatalf("expected EncodingError, got %v", err)
	}
	if hit {
		t.Fatalf("no request should be sent when encoding fails")
	}
}

func TestClient_Get(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/classes/frogs/123" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"resource":{"data":{"name":"Kermit"}}}`))
	}))
	defer srv.Close()

	c := rift.NewClient("secret", rift.Endpoint(srv.URL))
	v, err := c.Get(context.Background(), rift.NewRef("classes/frogs", "123"))
	if err != nil {
		t.Fatalf("get err: %v", err)
	}
	want := map[string]any{"data": map[string]any{"name": "Kermit"}}
	if !reflect.DeepEqual(v, want) {
		t.Fatalf("unexpected document: %#v", v)
	}
}
