package hal_test

import (
	"encoding/json"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joestump/restful-notes/internal/hal"
)

func mustLinker(t *testing.T, raw string) hal.Linker {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return hal.NewLinker(u)
}

func TestLinker_Href(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		segments []string
		want     string
	}{
		{name: "root", base: "http://localhost:8080", segments: nil, want: "http://localhost:8080"},
		{name: "collection", base: "http://localhost:8080", segments: []string{"notes"}, want: "http://localhost:8080/notes"},
		{name: "item", base: "http://localhost:8080", segments: []string{"tags", "123"}, want: "http://localhost:8080/tags/123"},
		{name: "trailing slash base", base: "http://localhost:8080/", segments: []string{"notes"}, want: "http://localhost:8080/notes"},
		{name: "base path", base: "https://api.example.com/v1", segments: []string{"notes", "1", "tags"}, want: "https://api.example.com/v1/notes/1/tags"},
		{name: "escaped segment", base: "http://h", segments: []string{"tags", "a/b"}, want: "http://h/tags/a%2Fb"},
		{name: "query dropped", base: "http://h/?x=1", segments: []string{"tags"}, want: "http://h/tags"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mustLinker(t, tt.base).Href(tt.segments...))
		})
	}
}

func TestLinker_Segments(t *testing.T) {
	l := mustLinker(t, "http://localhost:8080/v1")

	tests := []struct {
		name   string
		ref    string
		want   []string
		wantOK bool
	}{
		{name: "absolute", ref: "http://localhost:8080/v1/tags/123", want: []string{"tags", "123"}, wantOK: true},
		{name: "other host", ref: "http://example.com/v1/tags/123", want: []string{"tags", "123"}, wantOK: true},
		{name: "root relative", ref: "/v1/tags/abc", want: []string{"tags", "abc"}, wantOK: true},
		{name: "trailing slash", ref: "/v1/tags/abc/", want: []string{"tags", "abc"}, wantOK: true},
		{name: "escaped", ref: "/v1/tags/a%2Fb", want: []string{"tags", "a/b"}, wantOK: true},
		{name: "outside base", ref: "/tags/abc", wantOK: false},
		{name: "base only", ref: "/v1/", wantOK: false},
		{name: "relative", ref: "tags/abc", wantOK: false},
		{name: "empty", ref: "", wantOK: false},
		{name: "empty segment", ref: "/v1/tags//abc", wantOK: false},
		{name: "unparseable", ref: "http://[::1", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := l.Segments(tt.ref)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestLinker_RoundTrip(t *testing.T) {
	l := mustLinker(t, "http://localhost:8080")

	segs, ok := l.Segments(l.Href("notes", "4f1c", "tags"))
	require.True(t, ok)
	assert.Equal(t, []string{"notes", "4f1c", "tags"}, segs)
}

func TestLinks_JSON(t *testing.T) {
	links := hal.Links{
		hal.RelSelf: {Href: "http://localhost:8080/notes/1"},
		"note-tags": {Href: "http://localhost:8080/notes/1/tags"},
	}

	b, err := json.Marshal(links)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"self": {"href": "http://localhost:8080/notes/1"},
		"note-tags": {"href": "http://localhost:8080/notes/1/tags"}
	}`, string(b))
	assert.Equal(t, "http://localhost:8080/notes/1/tags", links.Href("note-tags"))
	assert.Equal(t, "", links.Href("missing"))
}
