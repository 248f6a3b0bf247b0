package pack_test

import (
	"fmt"
	"testing"

	"github.com/idelchi/packcrypt/internal/pack"
)

const masterKey = "01234567890123456789012345678901"

// file is a test archive member.
type file struct {
	path  string
	data  []byte
	isDir bool
}

func dir(path string) file {
	return file{path: path, isDir: true}
}

func text(path, content string) file {
	return file{path: path, data: []byte(content)}
}

func manifestJSON(uuid string) file {
	return text(pack.ManifestPath, fmt.Sprintf(`{
	"format_version": 2,
	"header": {
		"name": "Test Pack",
		"description": "pack used in tests",
		"uuid": %q,
		"version": [1, 0, 0]
	}
}`, uuid))
}

// buildZip creates zip data holding files in order.
func buildZip(t *testing.T, files ...file) []byte {
	t.Helper()

	archive := pack.NewArchive()

	for _, f := range files {
		var err error
		if f.isDir {
			err = archive.AddDirectory(f.path)
		} else {
			err = archive.AddFile(f.path, f.data)
		}

		if err != nil {
			t.Fatalf("adding %q: %v", f.path, err)
		}
	}

	data, err := archive.Bytes()
	if err != nil {
		t.Fatalf("serializing archive: %v", err)
	}

	return data
}

func readZip(t *testing.T, data []byte) *pack.Archive {
	t.Helper()

	archive, err := pack.ReadArchive(data)
	if err != nil {
		t.Fatalf("reading archive: %v", err)
	}

	return archive
}

// rewrite returns data with fn applied to every entry.
func rewrite(t *testing.T, data []byte, fn func(pack.Entry) pack.Entry) []byte {
	t.Helper()

	source := readZip(t, data)
	output := pack.NewArchive()

	for _, entry := range source.Entries() {
		if err := output.Add(fn(entry)); err != nil {
			t.Fatalf("adding %q: %v", entry.Path, err)
		}
	}

	out, err := output.Bytes()
	if err != nil {
		t.Fatalf("serializing archive: %v", err)
	}

	return out
}

func newProcessor(t *testing.T, mutate ...func(*pack.Params)) *pack.Processor {
	t.Helper()

	params := pack.DefaultParams()
	for _, fn := range mutate {
		fn(&params)
	}

	processor, err := pack.NewProcessor(params)
	if err != nil {
		t.Fatalf("NewProcessor: %v", err)
	}

	return processor
}

func paths(archive *pack.Archive) []string {
	var out []string

	for _, entry := range archive.Entries() {
		out = append(out, entry.Path)
	}

	return out
}
