// Package storage defines the document store used for identity documents.
package storage

import (
	"context"
	"io"

	"github.com/amirasaad/onboarding/pkg/domain"
)

// Errors returned by FileStore implementations.
var (
	ErrEmptyFile   = domain.InvalidInput("Cannot store empty file")
	ErrInvalidPath = domain.InvalidInput("Invalid file path detected")
)

// FileStore persists opaque documents under category-scoped locators of the
// form "<category>/<filename>". Locators never resolve outside the store root.
type FileStore interface {
	// Store streams content to a new file and returns its locator.
	Store(ctx context.Context, content io.Reader, originalName, category string) (string, error)
	// Load opens the document at locator. The caller closes the reader.
	Load(ctx context.Context, locator string) (io.ReadCloser, error)
	// Delete removes the document at locator. Failures are logged, not returned.
	Delete(ctx context.Context, locator string)
	// Exists reports whether a readable document lives at locator.
	Exists(ctx context.Context, locator string) bool
}
