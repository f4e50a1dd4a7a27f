// Package resource converts notes and tags into their hypermedia
// representations and applies create and partial-update requests to them.
package resource

import (
	"github.com/joestump/restful-notes/internal/hal"
	"github.com/joestump/restful-notes/internal/store"
)

// Assembler builds linked representations. It holds no state beyond the
// Linker, so every method is a pure function of its arguments.
type Assembler struct {
	links hal.Linker
}

func NewAssembler(links hal.Linker) Assembler {
	return Assembler{links: links}
}

// Index returns the API root with links to both collections.
func (a Assembler) Index() IndexModel {
	return IndexModel{Links: hal.Links{
		RelNotes: {Href: a.links.Href(RelNotes)},
		RelTags:  {Href: a.links.Href(RelTags)},
	}}
}

// NotesHref is the URI of the notes collection.
func (a Assembler) NotesHref() string {
	return a.links.Href(RelNotes)
}

// TagsHref is the URI of the tags collection.
func (a Assembler) TagsHref() string {
	return a.links.Href(RelTags)
}

// NoteHref is the canonical URI of note id.
func (a Assembler) NoteHref(id string) string {
	return a.links.Href(RelNotes, id)
}

// TagHref is the canonical URI of tag id.
func (a Assembler) TagHref(id string) string {
	return a.links.Href(RelTags, id)
}

// NoteTagsHref is the URI of the tags of note id.
func (a Assembler) NoteTagsHref(id string) string {
	return a.links.Href(RelNotes, id, RelTags)
}

// TagNotesHref is the URI of the notes carrying tag id.
func (a Assembler) TagNotesHref(id string) string {
	return a.links.Href(RelTags, id, RelNotes)
}

// Note returns the representation of n. The note-tags link is present even
// when the note has no tags.
func (a Assembler) Note(n *store.Note) NoteModel {
	return NoteModel{
		Title: n.Title,
		Body:  n.Body,
		Links: hal.Links{
			hal.RelSelf: {Href: a.NoteHref(n.ID)},
			RelNoteTags: {Href: a.NoteTagsHref(n.ID)},
		},
	}
}

// Tag returns the representation of t.
func (a Assembler) Tag(t *store.Tag) TagModel {
	return TagModel{
		Name: t.Name,
		Links: hal.Links{
			hal.RelSelf:    {Href: a.TagHref(t.ID)},
			RelTaggedNotes: {Href: a.TagNotesHref(t.ID)},
		},
	}
}

// Notes wraps notes in a collection whose self link is self.
func (a Assembler) Notes(self string, notes []*store.Note) NoteCollection {
	models := make([]NoteModel, 0, len(notes))
	for _, n := range notes {
		models = append(models, a.Note(n))
	}
	return NoteCollection{
		Embedded: EmbeddedNotes{Notes: models},
		Links:    hal.Links{hal.RelSelf: {Href: self}},
	}
}

// Tags wraps tags in a collection whose self link is self.
func (a Assembler) Tags(self string, tags []*store.Tag) TagCollection {
	models := make([]TagModel, 0, len(tags))
	for _, t := range tags {
		models = append(models, a.Tag(t))
	}
	return TagCollection{
		Embedded: EmbeddedTags{Tags: models},
		Links:    hal.Links{hal.RelSelf: {Href: self}},
	}
}

// TagID extracts the tag id from a tag resource URI such as
// http://localhost:8080/tags/{id}. ok is false for anything else.
func (a Assembler) TagID(ref string) (id string, ok bool) {
	segs, ok := a.links.Segments(ref)
	if !ok || len(segs) != 2 || segs[0] != RelTags {
		return "", false
	}
	return segs[1], true
}
