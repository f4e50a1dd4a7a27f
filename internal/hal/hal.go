// Package hal holds the hypermedia primitives shared by every resource:
// links keyed by relation, and a pure function from a base URL plus path
// segments to an absolute href.
package hal

import (
	"net/url"
	"strings"
)

// MediaType is the content type of every HAL representation.
const MediaType = "application/hal+json"

// RelSelf is the relation of a link to the resource that carries it.
const RelSelf = "self"

// Link is a single HAL link object.
type Link struct {
	Href string `json:"href"`
}

// Links maps a relation name to its link. It is rendered as "_links".
type Links map[string]Link

// Href returns the href for rel, or "" when the relation is absent.
func (l Links) Href(rel string) string {
	return l[rel].Href
}

// Linker builds absolute hrefs below a base URL.
// The zero value is not usable; construct with NewLinker.
type Linker struct {
	base url.URL
}

// NewLinker returns a Linker rooted at base. Query and fragment are dropped
// and a trailing slash on the path is ignored.
func NewLinker(base *url.URL) Linker {
	b := *base
	b.RawQuery = ""
	b.Fragment = ""
	b.RawPath = ""
	b.Path = strings.TrimSuffix(b.Path, "/")
	return Linker{base: b}
}

// Href joins segments onto the base URL. Each segment is escaped on its own,
// so an id can never introduce an extra path level.
func (l Linker) Href(segments ...string) string {
	escaped := make([]string, 0, len(segments)+1)
	escaped = append(escaped, l.base.EscapedPath())
	for _, s := range segments {
		escaped = append(escaped, url.PathEscape(s))
	}
	u := l.base
	u.Path = ""
	u.RawPath = ""
	return u.String() + strings.Join(escaped, "/")
}

// Segments is the inverse of Href: it parses ref, which may be absolute or
// root-relative, strips the base path and returns the unescaped segments.
// Scheme and host are not compared. ok is false when ref cannot be parsed or
// does not live under the base path.
func (l Linker) Segments(ref string) (segments []string, ok bool) {
	u, err := url.Parse(strings.TrimSpace(ref))
	if err != nil || u.Path == "" {
		return nil, false
	}
	if !u.IsAbs() && !strings.HasPrefix(u.Path, "/") {
		return nil, false
	}

	rest, found := strings.CutPrefix(u.EscapedPath(), l.base.EscapedPath()+"/")
	if !found || rest == "" {
		return nil, false
	}

	parts := strings.Split(strings.TrimSuffix(rest, "/"), "/")
	for i, p := range parts {
		unescaped, err := url.PathUnescape(p)
		if err != nil || unescaped == "" {
			return nil, false
		}
		parts[i] = unescaped
	}
	return parts, true
}
