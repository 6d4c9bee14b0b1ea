package note

import (
	"context"
	"errors"
)

// Fields is a raw note document. Submissions are stored as-is, so there is no
// fixed schema beyond the store-assigned _id.
type Fields map[string]any

// ErrUnavailable reports that the note store cannot be reached or the
// operation failed server-side.
var ErrUnavailable = errors.New("note store unavailable")

// Store mediates all persistence access for notes
type Store interface {
	// List returns every document in the notes collection
	List(ctx context.Context) ([]Fields, error)
	// Insert persists the fields as one document and returns the generated id
	Insert(ctx context.Context, fields Fields) (string, error)
}
