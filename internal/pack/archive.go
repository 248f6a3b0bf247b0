package pack

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"
)

// Kind tells directory markers and files apart.
type Kind int

const (
	// KindFile is an entry with content.
	KindFile Kind = iota
	// KindDirectory is a path-only directory marker.
	KindDirectory
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDirectory:
		return "directory"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Entry is a single archive member.
type Entry struct {
	// Path is the slash-separated name, without a trailing slash for directories.
	Path string
	// Kind is the entry type.
	Kind Kind
	// Data is the uncompressed content of a file, nil for directories.
	Data []byte
	// Modified is the stored modification time, if any.
	Modified time.Time
}

// IsDir reports whether the entry is a directory marker.
func (e Entry) IsDir() bool {
	return e.Kind == KindDirectory
}

// Archive is an ordered set of entries keyed by path.
type Archive struct {
	entries []Entry
	index   map[string]int
}

// NewArchive returns an empty archive.
func NewArchive() *Archive {
	return &Archive{index: make(map[string]int)}
}

// ReadArchive parses zip data into an Archive, keeping the stored order.
func ReadArchive(data []byte) (*Archive, error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedArchive, err)
	}

	archive := NewArchive()

	for _, file := range reader.File {
		entry := Entry{
			Path:     strings.TrimSuffix(file.Name, "/"),
			Modified: file.Modified,
		}

		if file.FileInfo().IsDir() {
			entry.Kind = KindDirectory
		} else {
			entry.Kind = KindFile

			if entry.Data, err = readFile(file); err != nil {
				return nil, fmt.Errorf("%w: reading %q: %w", ErrMalformedArchive, file.Name, err)
			}
		}

		if err := archive.Add(entry); err != nil {
			return nil, err
		}
	}

	return archive, nil
}

func readFile(file *zip.File) ([]byte, error) {
	rc, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return io.ReadAll(rc)
}

// Add appends an entry. Paths must be unique.
func (a *Archive) Add(entry Entry) error {
	if entry.Path == "" {
		return fmt.Errorf("%w: entry with empty path", ErrMalformedArchive)
	}

	if _, ok := a.index[entry.Path]; ok {
		return fmt.Errorf("%w: duplicate entry %q", ErrMalformedArchive, entry.Path)
	}

	a.index[entry.Path] = len(a.entries)
	a.entries = append(a.entries, entry)

	return nil
}

// AddFile appends a file entry.
func (a *Archive) AddFile(path string, data []byte) error {
	return a.Add(Entry{Path: path, Kind: KindFile, Data: data})
}

// AddDirectory appends a directory marker.
func (a *Archive) AddDirectory(path string) error {
	return a.Add(Entry{Path: strings.TrimSuffix(path, "/"), Kind: KindDirectory})
}

// Get returns the entry stored at path.
func (a *Archive) Get(path string) (Entry, bool) {
	i, ok := a.index[path]
	if !ok {
		return Entry{}, false
	}

	return a.entries[i], true
}

// File returns the content of the file at path.
// It reports false for missing paths and for directories.
func (a *Archive) File(path string) ([]byte, bool) {
	entry, ok := a.Get(path)
	if !ok || entry.IsDir() {
		return nil, false
	}

	return entry.Data, true
}

// Entries returns the entries in archive order.
func (a *Archive) Entries() []Entry {
	return append([]Entry(nil), a.entries...)
}

// Len returns the number of entries.
func (a *Archive) Len() int {
	return len(a.entries)
}

// Bytes serializes the archive as zip data. Files are deflated.
func (a *Archive) Bytes() ([]byte, error) {
	var buf bytes.Buffer

	writer := zip.NewWriter(&buf)

	for _, entry := range a.entries {
		header := &zip.FileHeader{
			Name:     entry.Path,
			Method:   zip.Deflate,
			Modified: entry.Modified,
		}

		if entry.IsDir() {
			header.Name += "/"
			header.Method = zip.Store
		}

		w, err := writer.CreateHeader(header)
		if err != nil {
			return nil, fmt.Errorf("creating %q: %w", header.Name, err)
		}

		if entry.IsDir() {
			continue
		}

		if _, err := w.Write(entry.Data); err != nil {
			return nil, fmt.Errorf("writing %q: %w", header.Name, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("finalizing archive: %w", err)
	}

	return buf.Bytes(), nil
}
