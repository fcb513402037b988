package extract

import (
	"archive/zip"
	"errors"
	"io"
	"io/fs"
	"os"
)

// Archive is an open jar (zip) file whose entries can be read as text.
// Close must be called when enumeration is done.
type Archive struct {
	path   string
	reader *zip.ReadCloser
}

// OpenArchive opens path as a zip archive.
// A zero-byte file is rejected with KindEmptyArchive before any open
// attempt. Open failures are classified as KindAccessDenied or
// KindCorruptArchive so the caller can report and skip.
func OpenArchive(path string) (*Archive, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, classifyReadError(path, "", err)
	}
	if info.Size() == 0 {
		return nil, &Error{Kind: KindEmptyArchive, Path: path}
	}

	reader, err := zip.OpenReader(path)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return nil, &Error{Kind: KindAccessDenied, Path: path, Err: err}
		}
		return nil, &Error{Kind: KindCorruptArchive, Path: path, Err: err}
	}

	return &Archive{path: path, reader: reader}, nil
}

// Entries returns the archive's file entries in stored order, regardless of
// extension. Directory entries are skipped; extension filtering is the
// caller's responsibility.
func (a *Archive) Entries() []*Entry {
	entries := make([]*Entry, 0, len(a.reader.File))
	for _, file := range a.reader.File {
		if file.FileInfo().IsDir() {
			continue
		}
		entries = append(entries, &Entry{archivePath: a.path, file: file})
	}
	return entries
}

// Close releases the underlying archive handle.
func (a *Archive) Close() error {
	return a.reader.Close()
}

// Entry is a single named file inside an archive.
type Entry struct {
	archivePath string
	file        *zip.File
}

// Name returns the entry's internal path within the archive.
func (e *Entry) Name() string {
	return e.file.Name
}

// Text decompresses the entry and decodes its bytes as UTF-8.
// Read and decompression failures are classified; the entry reader is
// closed on every path.
func (e *Entry) Text() (string, error) {
	rc, err := e.file.Open()
	if err != nil {
		return "", classifyReadError(e.archivePath, e.file.Name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return "", classifyReadError(e.archivePath, e.file.Name, err)
	}
	return decodeEntryText(data), nil
}
