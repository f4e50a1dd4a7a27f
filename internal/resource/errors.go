package resource

import (
	"errors"
	"fmt"
)

// ErrUnresolvedReference matches every *ReferenceError via errors.Is.
var ErrUnresolvedReference = errors.New("unresolved reference")

// ReferenceError reports a related-resource URI in a request body that does
// not identify an existing resource.
type ReferenceError struct {
	Resource string
	URI      string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("The %s '%s' does not exist", e.Resource, e.URI)
}

func (e *ReferenceError) Is(target error) bool {
	return target == ErrUnresolvedReference
}
