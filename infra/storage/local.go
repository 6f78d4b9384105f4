// Package storage implements storage.FileStore on the local filesystem.
package storage

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/amirasaad/onboarding/pkg/domain"
	"github.com/amirasaad/onboarding/pkg/storage"
	"github.com/google/uuid"
)

const (
	defaultExtension = "bin"
	timestampLayout  = "20060102-150405"
	dirPerm          = 0o750
	filePerm         = 0o640
)

// LocalStore keeps documents in a directory tree rooted at a single path.
// All file access goes through os.Root, so neither ".." segments nor symlinks
// can reach outside the root.
type LocalStore struct {
	dir    string
	root   *os.Root
	logger *slog.Logger
	now    func() time.Time
}

// Option configures a LocalStore.
type Option func(*LocalStore)

// WithClock overrides the time source used for filenames.
func WithClock(now func() time.Time) Option {
	return func(s *LocalStore) { s.now = now }
}

// NewLocalStore creates dir if needed and opens it as the store root.
func NewLocalStore(dir string, logger *slog.Logger, opts ...Option) (*LocalStore, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("storage: resolve upload dir: %w", err)
	}
	if err := os.MkdirAll(abs, dirPerm); err != nil {
		return nil, fmt.Errorf("storage: create upload dir: %w", err)
	}
	root, err := os.OpenRoot(abs)
	if err != nil {
		return nil, fmt.Errorf("storage: open upload dir: %w", err)
	}
	s := &LocalStore{
		dir:    abs,
		root:   root,
		logger: logger.With("component", "file-store"),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger.Info("File storage initialized", "dir", abs)
	return s, nil
}

// Dir returns the absolute store root.
func (s *LocalStore) Dir() string { return s.dir }

// Close releases the root handle.
func (s *LocalStore) Close() error { return s.root.Close() }

// Store writes content to "<category>/<timestamp>-<random>.<ext>".
func (s *LocalStore) Store(ctx context.Context, content io.Reader, originalName, category string) (string, error) {
	if content == nil {
		return "", storage.ErrEmptyFile
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	category, ok := clean(category)
	if !ok || category == "." {
		return "", storage.ErrInvalidPath
	}

	br := bufio.NewReader(content)
	if _, err := br.Peek(1); err != nil {
		if errors.Is(err, io.EOF) {
			return "", storage.ErrEmptyFile
		}
		return "", domain.InvalidInputf("Failed to store file: %s", err.Error())
	}

	if err := s.mkdirAll(category); err != nil {
		return "", domain.InvalidInputf("Could not create category directory: %s", err.Error())
	}

	locator := path.Join(category, s.filename(originalName))
	f, err := s.root.OpenFile(filepath.FromSlash(locator), os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm)
	if err != nil {
		return "", domain.InvalidInputf("Failed to store file: %s", err.Error())
	}

	_, copyErr := io.Copy(f, &ctxReader{ctx: ctx, r: br})
	closeErr := f.Close()
	if err := errors.Join(copyErr, closeErr); err != nil {
		if rmErr := s.root.Remove(filepath.FromSlash(locator)); rmErr != nil {
			s.logger.Warn("Failed to remove partial file", "locator", locator, "error", rmErr)
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", domain.InvalidInputf("Failed to store file: %s", err.Error())
	}

	s.logger.Debug("Stored file", "locator", locator, "original_name", originalName)
	return locator, nil
}

// Load opens the document at locator. The guard runs before any file access.
func (s *LocalStore) Load(ctx context.Context, locator string) (io.ReadCloser, error) {
	name, ok := clean(locator)
	if !ok {
		return nil, storage.ErrInvalidPath
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := s.root.Open(filepath.FromSlash(name))
	if err != nil {
		if isEscape(err) {
			return nil, storage.ErrInvalidPath
		}
		return nil, domain.NotFoundf("File not found: %s", locator)
	}
	info, err := f.Stat()
	if err != nil || !info.Mode().IsRegular() {
		_ = f.Close()
		return nil, domain.NotFoundf("File not found: %s", locator)
	}
	return f, nil
}

// Delete removes the document at locator. Missing files are ignored.
func (s *LocalStore) Delete(_ context.Context, locator string) {
	name, ok := clean(locator)
	if !ok {
		s.logger.Warn("Refusing to delete file outside storage root", "locator", locator)
		return
	}
	err := s.root.Remove(filepath.FromSlash(name))
	switch {
	case err == nil:
		s.logger.Debug("Deleted file", "locator", locator)
	case errors.Is(err, fs.ErrNotExist):
	case isEscape(err):
		s.logger.Warn("Refusing to delete file outside storage root", "locator", locator)
	default:
		s.logger.Error("Failed to delete file", "locator", locator, "error", err)
	}
}

// Exists reports whether locator names a regular file inside the root.
func (s *LocalStore) Exists(_ context.Context, locator string) bool {
	if strings.TrimSpace(locator) == "" {
		return false
	}
	name, ok := clean(locator)
	if !ok {
		return false
	}
	info, err := s.root.Stat(filepath.FromSlash(name))
	return err == nil && info.Mode().IsRegular()
}

func (s *LocalStore) filename(originalName string) string {
	return fmt.Sprintf("%s-%s.%s",
		s.now().Format(timestampLayout),
		uuid.NewString()[:8],
		extension(originalName),
	)
}

// mkdirAll creates each segment of dir below the root.
func (s *LocalStore) mkdirAll(dir string) error {
	var current string
	for _, segment := range strings.Split(dir, "/") {
		current = path.Join(current, segment)
		err := s.root.Mkdir(filepath.FromSlash(current), dirPerm)
		if err != nil && !errors.Is(err, fs.ErrExist) {
			return err
		}
	}
	return nil
}

// extension returns the lower-cased suffix after the last dot, or "bin" when
// the name has no dot, starts or ends with it, or the suffix is not
// alphanumeric.
func extension(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 || i == len(name)-1 {
		return defaultExtension
	}
	ext := strings.ToLower(name[i+1:])
	for _, r := range ext {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return defaultExtension
		}
	}
	return ext
}

// clean normalizes a slash-separated locator lexically and reports whether
// it stays inside the root.
func clean(locator string) (string, bool) {
	p := strings.ReplaceAll(strings.TrimSpace(locator), `\`, "/")
	if p == "" || path.IsAbs(p) || filepath.IsAbs(p) || filepath.VolumeName(p) != "" {
		return "", false
	}
	p = path.Clean(p)
	if p == ".." || strings.HasPrefix(p, "../") {
		return "", false
	}
	return p, true
}

func isEscape(err error) bool {
	var pe *fs.PathError
	return errors.As(err, &pe) && strings.Contains(pe.Err.Error(), "escapes")
}

// ctxReader stops a copy once ctx is done.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}

var _ storage.FileStore = (*LocalStore)(nil)
