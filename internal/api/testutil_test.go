package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/joestump/restful-notes/internal/api"
	"github.com/joestump/restful-notes/internal/resource"
	"github.com/joestump/restful-notes/internal/store"
	"github.com/joestump/restful-notes/internal/testutil"
	"github.com/joestump/restful-notes/internal/validation"
)

const testBase = "http://localhost:8080"

// testEnv holds the router and stores needed for API integration tests.
type testEnv struct {
	Router    http.Handler
	NoteStore *store.NoteStore
	TagStore  *store.TagStore
}

// newTestEnv creates an in-memory SQLite test database, runs migrations,
// and wires up the full router with real stores.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testutil.NewTestDB(t)

	notes := store.NewNoteStore(db)
	tags := store.NewTagStore(db)
	base, err := url.Parse(testBase)
	if err != nil {
		t.Fatalf("parse base: %v", err)
	}

	router := api.NewRouter(api.Deps{
		Service: resource.NewService(notes, tags, validation.New()),
		BaseURL: base,
		Logger:  zerolog.Nop(),
	})
	return &testEnv{Router: router, NoteStore: notes, TagStore: tags}
}

// do sends a request through the router. A non-empty body is sent as JSON.
func (env *testEnv) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)
	return rec
}

// create POSTs body to target, expects 201 and returns the Location header.
func (env *testEnv) create(t *testing.T, target, body string) string {
	t.Helper()
	rec := env.do(t, http.MethodPost, target, body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("POST %s status = %d, want %d; body: %s", target, rec.Code, http.StatusCreated, rec.Body.String())
	}
	loc := rec.Header().Get("Location")
	if loc == "" {
		t.Fatalf("POST %s: missing Location header", target)
	}
	return loc
}

// path strips the test base from an absolute href.
func path(href string) string {
	return strings.TrimPrefix(href, testBase)
}

// decode asserts a 200 HAL response and decodes it into v.
func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/hal+json" {
		t.Errorf("Content-Type = %q, want application/hal+json", ct)
	}
	if err := json.NewDecoder(rec.Body).Decode(v); err != nil {
		t.Fatalf("decode: %v", err)
	}
}

// decodeError asserts the status and decodes the uniform error body.
func decodeError(t *testing.T, rec *httptest.ResponseRecorder, status int) api.ErrorResponse {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, status, rec.Body.String())
	}
	var resp api.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if resp.Status != status {
		t.Errorf("body status = %d, want %d", resp.Status, status)
	}
	if resp.Error != http.StatusText(status) {
		t.Errorf("body error = %q, want %q", resp.Error, http.StatusText(status))
	}
	if resp.Timestamp == 0 {
		t.Error("body timestamp is zero")
	}
	return resp
}
