package extract

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrorKind classifies extraction failures so callers can decide per kind
// whether to warn, suppress, or skip, instead of matching error message text.
type ErrorKind int

const (
	// KindUnknown is any failure not covered by a more specific kind.
	KindUnknown ErrorKind = iota
	// KindNotFound means the file disappeared between discovery and read.
	KindNotFound
	// KindAccessDenied means the OS refused access to the file or archive.
	KindAccessDenied
	// KindEncoding means the content could not be decoded as text.
	// Callers suppress this kind rather than warning per file.
	KindEncoding
	// KindEmptyArchive means the archive file is zero bytes long.
	KindEmptyArchive
	// KindCorruptArchive means the file could not be parsed as a zip archive.
	KindCorruptArchive
)

// String returns a short name for the kind, used in log output.
func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not-found"
	case KindAccessDenied:
		return "access-denied"
	case KindEncoding:
		return "encoding"
	case KindEmptyArchive:
		return "empty-archive"
	case KindCorruptArchive:
		return "corrupt-archive"
	default:
		return "unknown"
	}
}

// Error is a classified extraction failure. Path is the filesystem path of
// the file or archive; Entry is set when the failure occurred while reading
// an entry inside an archive.
type Error struct {
	Kind  ErrorKind
	Path  string
	Entry string
	Err   error
}

func (e *Error) Error() string {
	if e.Entry != "" {
		if e.Err != nil {
			return fmt.Sprintf("extract %s -> %s: %s: %v", e.Path, e.Entry, e.Kind, e.Err)
		}
		return fmt.Sprintf("extract %s -> %s: %s", e.Path, e.Entry, e.Kind)
	}
	if e.Err != nil {
		return fmt.Sprintf("extract %s: %s: %v", e.Path, e.Kind, e.Err)
	}
	return fmt.Sprintf("extract %s: %s", e.Path, e.Kind)
}

// Unwrap returns the underlying error, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the ErrorKind carried by err, or KindUnknown when err is
// not an extraction error.
func KindOf(err error) ErrorKind {
	var extractErr *Error
	if errors.As(err, &extractErr) {
		return extractErr.Kind
	}
	return KindUnknown
}

// classifyReadError wraps a filesystem read error with the matching kind.
func classifyReadError(path string, entry string, err error) *Error {
	kind := KindUnknown
	switch {
	case errors.Is(err, fs.ErrNotExist):
		kind = KindNotFound
	case errors.Is(err, fs.ErrPermission):
		kind = KindAccessDenied
	}
	return &Error{Kind: kind, Path: path, Entry: entry, Err: err}
}
