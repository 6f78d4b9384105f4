package registration

import (
	"io"
	"strings"

	"github.com/amirasaad/onboarding/pkg/domain"
)

// Document errors.
var (
	ErrIDDocumentMandatory     = domain.InvalidInput("ID document is mandatory")
	ErrUnsupportedDocumentType = domain.InvalidInput("ID document must be an image (JPG, PNG) or PDF")
)

// Upload is an incoming document stream with its client-declared metadata.
type Upload struct {
	Content      io.Reader
	OriginalName string
	ContentType  string
	Size         int64
}

// Empty reports whether u carries no content.
func (u *Upload) Empty() bool {
	return u == nil || u.Content == nil || u.Size <= 0
}

// ValidateDocument checks presence and MIME type of an identity document.
func ValidateDocument(u *Upload) error {
	if u.Empty() {
		return ErrIDDocumentMandatory
	}
	if !AcceptedDocumentType(u.ContentType) {
		return ErrUnsupportedDocumentType
	}
	return nil
}

// AcceptedDocumentType reports whether contentType is an image or a PDF.
func AcceptedDocumentType(contentType string) bool {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	return strings.HasPrefix(ct, "image/") || ct == "application/pdf"
}
