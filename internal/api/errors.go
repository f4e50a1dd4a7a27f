package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/joestump/restful-notes/internal/hal"
	"github.com/joestump/restful-notes/internal/resource"
	"github.com/joestump/restful-notes/internal/store"
	"github.com/joestump/restful-notes/internal/validation"
)

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Error      string                 `json:"error" example:"Bad Request"`
	Message    string                 `json:"message" example:"The tag 'http://localhost:8080/tags/123' does not exist"`
	Path       string                 `json:"path" example:"/notes"`
	Status     int                    `json:"status" example:"400"`
	Timestamp  int64                  `json:"timestamp" example:"1700000000000"`
	Violations []validation.Violation `json:"violations,omitempty"`
}

// now is replaced in tests.
var now = time.Now

// writeError writes the uniform error body for status. path names the request
// that failed; an empty message falls back to the status text.
func writeError(w http.ResponseWriter, status int, path, message string, violations []validation.Violation) {
	if message == "" {
		message = http.StatusText(status)
	}
	writeJSON(w, status, "application/json", ErrorResponse{
		Error:      http.StatusText(status),
		Message:    message,
		Path:       path,
		Status:     status,
		Timestamp:  now().UnixMilli(),
		Violations: violations,
	})
}

// writeJSON writes v as JSON with the given status and content type.
func writeJSON(w http.ResponseWriter, status int, contentType string, v any) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeHAL writes a hypermedia representation.
func writeHAL(w http.ResponseWriter, status int, v any) {
	writeJSON(w, status, hal.MediaType, v)
}

func notFoundMessage(path string) string {
	return fmt.Sprintf("The resource '%s' does not exist", path)
}

// writeServiceError maps errors returned by resource.Service onto the error body.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verrs *validation.Errors
	switch {
	case errors.As(err, &verrs):
		writeError(w, http.StatusBadRequest, r.URL.Path, verrs.Error(), verrs.Violations)
	case errors.Is(err, resource.ErrUnresolvedReference):
		writeError(w, http.StatusBadRequest, r.URL.Path, err.Error(), nil)
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, r.URL.Path, notFoundMessage(r.URL.Path), nil)
	case errors.Is(err, store.ErrBusy):
		w.Header().Set("Retry-After", "1")
		writeError(w, http.StatusServiceUnavailable, r.URL.Path, "", nil)
	default:
		zerolog.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		writeError(w, http.StatusInternalServerError, r.URL.Path, "", nil)
	}
}

// decodeBody decodes the JSON request body into v, writing a 400 on failure.
// Unknown fields are ignored; anything after the first JSON value is not.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	err := dec.Decode(v)
	if err == nil {
		if extra := dec.Decode(&json.RawMessage{}); !errors.Is(extra, io.EOF) {
			err = errors.New("unexpected data after JSON value")
		}
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, r.URL.Path, "Malformed JSON request body: "+err.Error(), nil)
		return false
	}
	return true
}

// notFound answers unknown routes.
func notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, r.URL.Path, notFoundMessage(r.URL.Path), nil)
}

// methodNotAllowed answers known routes hit with an unsupported method.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, r.URL.Path,
		fmt.Sprintf("Request method '%s' is not supported", r.Method), nil)
}

// ErrorPage renders the error body described by its query parameters.
// GET /error?status=404&path=/notes/1&message=...
//
// @Summary      Render an error
// @Description  Renders the uniform error body. status defaults to 500, path to /error.
// @Tags         Errors
// @Produce      json
// @Param        status   query     int     false  "HTTP status code"
// @Param        path     query     string  false  "Path of the failed request"
// @Param        message  query     string  false  "Error message"
// @Failure      default  {object}  ErrorResponse
// @Router       /error [get]
func ErrorPage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	status := http.StatusInternalServerError
	if s := q.Get("status"); s != "" {
		parsed, err := strconv.Atoi(s)
		if err != nil || parsed < 400 || parsed > 599 {
			writeError(w, http.StatusBadRequest, r.URL.Path, fmt.Sprintf("invalid status %q", s), nil)
			return
		}
		status = parsed
	}

	path := q.Get("path")
	if path == "" {
		path = r.URL.Path
	}

	writeError(w, status, path, q.Get("message"), nil)
}
