package resource

import (
	"context"
	"errors"

	"github.com/joestump/restful-notes/internal/metrics"
	"github.com/joestump/restful-notes/internal/store"
	"github.com/joestump/restful-notes/internal/validation"
)

// Service validates inputs, resolves tag references and applies creates and
// partial updates through the repositories.
type Service struct {
	notes    store.NoteRepository
	tags     store.TagRepository
	validate *validation.Validator
}

func NewService(notes store.NoteRepository, tags store.TagRepository, v *validation.Validator) *Service {
	return &Service{notes: notes, tags: tags, validate: v}
}

// --- Notes ---

// CreateNote validates in, resolves every tag URI through a and stores the
// note with its tags in one step. An unresolved URI yields *ReferenceError
// and nothing is stored.
func (s *Service) CreateNote(ctx context.Context, a Assembler, in NoteInput) (*store.Note, error) {
	if err := s.validate.Validate(in); err != nil {
		metrics.ValidationFailuresTotal.WithLabelValues("note").Inc()
		return nil, err
	}

	ids, refs, err := resolveTagRefs(a, in.Tags)
	if err != nil {
		return nil, err
	}

	n, err := s.notes.Create(ctx, in.Title, in.Body, ids)
	if err != nil {
		return nil, referenceError(err, refs)
	}
	metrics.NotesCreatedTotal.Inc()
	return n, nil
}

// PatchNote applies the fields present in in to note id. A present tags list
// replaces the association set; the whole patch is applied atomically.
func (s *Service) PatchNote(ctx context.Context, a Assembler, id string, in NotePatchInput) (*store.Note, error) {
	if err := s.validate.Validate(in); err != nil {
		metrics.ValidationFailuresTotal.WithLabelValues("note").Inc()
		return nil, err
	}

	u := store.NoteUpdate{Title: in.Title, Body: in.Body}
	var refs map[string]string
	if in.Tags != nil {
		ids, byID, err := resolveTagRefs(a, *in.Tags)
		if err != nil {
			return nil, err
		}
		u.TagIDs, refs = &ids, byID
	}

	n, err := s.notes.Update(ctx, id, u)
	if err != nil {
		return nil, referenceError(err, refs)
	}
	return n, nil
}

func (s *Service) Note(ctx context.Context, id string) (*store.Note, error) {
	return s.notes.GetByID(ctx, id)
}

func (s *Service) Notes(ctx context.Context) ([]*store.Note, error) {
	return s.notes.ListAll(ctx)
}

// NoteTags returns the tags of note id, or store.ErrNotFound if the note does not exist.
func (s *Service) NoteTags(ctx context.Context, id string) ([]*store.Tag, error) {
	if _, err := s.notes.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.notes.ListTags(ctx, id)
}

func (s *Service) DeleteNote(ctx context.Context, id string) error {
	return s.notes.Delete(ctx, id)
}

// DeleteAllNotes removes every note. Used by fixtures and tests.
func (s *Service) DeleteAllNotes(ctx context.Context) error {
	return s.notes.DeleteAll(ctx)
}

// --- Tags ---

func (s *Service) CreateTag(ctx context.Context, in TagInput) (*store.Tag, error) {
	if err := s.validate.Validate(in); err != nil {
		metrics.ValidationFailuresTotal.WithLabelValues("tag").Inc()
		return nil, err
	}

	t, err := s.tags.Create(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	metrics.TagsCreatedTotal.Inc()
	return t, nil
}

func (s *Service) PatchTag(ctx context.Context, id string, in TagPatchInput) (*store.Tag, error) {
	if err := s.validate.Validate(in); err != nil {
		metrics.ValidationFailuresTotal.WithLabelValues("tag").Inc()
		return nil, err
	}
	return s.tags.Update(ctx, id, store.TagUpdate{Name: in.Name})
}

func (s *Service) Tag(ctx context.Context, id string) (*store.Tag, error) {
	return s.tags.GetByID(ctx, id)
}

func (s *Service) Tags(ctx context.Context) ([]*store.Tag, error) {
	return s.tags.ListAll(ctx)
}

// TaggedNotes returns the notes carrying tag id, or store.ErrNotFound if the tag does not exist.
func (s *Service) TaggedNotes(ctx context.Context, id string) ([]*store.Note, error) {
	if _, err := s.tags.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.notes.ListByTag(ctx, id)
}

func (s *Service) DeleteTag(ctx context.Context, id string) error {
	return s.tags.Delete(ctx, id)
}

// DeleteAllTags removes every tag. Used by fixtures and tests.
func (s *Service) DeleteAllTags(ctx context.Context) error {
	return s.tags.DeleteAll(ctx)
}

// resolveTagRefs maps tag URIs to ids. byID remembers the URI each id came
// from so a store-level miss can be reported with the caller's URI.
func resolveTagRefs(a Assembler, refs []string) (ids []string, byID map[string]string, err error) {
	ids = make([]string, 0, len(refs))
	byID = make(map[string]string, len(refs))
	for _, ref := range refs {
		id, ok := a.TagID(ref)
		if !ok {
			metrics.UnresolvedReferencesTotal.Inc()
			return nil, nil, &ReferenceError{Resource: "tag", URI: ref}
		}
		if _, seen := byID[id]; !seen {
			byID[id] = ref
		}
		ids = append(ids, id)
	}
	return ids, byID, nil
}

// referenceError converts a *store.MissingTagError into a *ReferenceError
// naming the URI the client sent. Other errors pass through.
func referenceError(err error, refs map[string]string) error {
	var missing *store.MissingTagError
	if !errors.As(err, &missing) {
		return err
	}
	metrics.UnresolvedReferencesTotal.Inc()
	uri, ok := refs[missing.TagID]
	if !ok {
		uri = missing.TagID
	}
	return &ReferenceError{Resource: "tag", URI: uri}
}
