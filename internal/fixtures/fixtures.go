// Package fixtures loads sample notes and tags from YAML.
package fixtures

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/joestump/restful-notes/internal/resource"
)

//go:embed default.yaml
var defaultFixtures []byte

// File is the YAML fixture format. Notes refer to tags by key.
type File struct {
	Tags  []Tag  `yaml:"tags"`
	Notes []Note `yaml:"notes"`
}

type Tag struct {
	Key  string `yaml:"key"`
	Name string `yaml:"name"`
}

type Note struct {
	Title string   `yaml:"title"`
	Body  string   `yaml:"body"`
	Tags  []string `yaml:"tags"`
}

// Result counts what Load created.
type Result struct {
	Tags  int
	Notes int
}

// Default returns the built-in fixtures.
func Default() (*File, error) {
	return Parse(bytes.NewReader(defaultFixtures))
}

// ReadFile parses the fixture file at path.
func ReadFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes a fixture document. Unknown keys are rejected, as are tag
// keys that are duplicated or referenced without being declared.
func Parse(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse fixtures: %w", err)
	}

	keys := make(map[string]bool, len(f.Tags))
	for _, t := range f.Tags {
		if t.Key == "" {
			return nil, fmt.Errorf("tag %q has no key", t.Name)
		}
		if keys[t.Key] {
			return nil, fmt.Errorf("duplicate tag key %q", t.Key)
		}
		keys[t.Key] = true
	}
	for _, n := range f.Notes {
		for _, k := range n.Tags {
			if !keys[k] {
				return nil, fmt.Errorf("note %q references unknown tag key %q", n.Title, k)
			}
		}
	}
	return &f, nil
}

// Load creates every tag and note in f through svc, so fixtures pass the same
// validation as API requests. With reset, existing notes and tags are removed first.
func Load(ctx context.Context, svc *resource.Service, a resource.Assembler, f *File, reset bool) (Result, error) {
	var res Result
	if reset {
		if err := svc.DeleteAllNotes(ctx); err != nil {
			return res, fmt.Errorf("reset notes: %w", err)
		}
		if err := svc.DeleteAllTags(ctx); err != nil {
			return res, fmt.Errorf("reset tags: %w", err)
		}
	}

	hrefs := make(map[string]string, len(f.Tags))
	for _, t := range f.Tags {
		tag, err := svc.CreateTag(ctx, resource.TagInput{Name: t.Name})
		if err != nil {
			return res, fmt.Errorf("tag %q: %w", t.Key, err)
		}
		hrefs[t.Key] = a.TagHref(tag.ID)
		res.Tags++
	}

	for _, n := range f.Notes {
		refs := make([]string, 0, len(n.Tags))
		for _, k := range n.Tags {
			refs = append(refs, hrefs[k])
		}
		if _, err := svc.CreateNote(ctx, a, resource.NoteInput{Title: n.Title, Body: n.Body, Tags: refs}); err != nil {
			return res, fmt.Errorf("note %q: %w", n.Title, err)
		}
		res.Notes++
	}
	return res, nil
}
