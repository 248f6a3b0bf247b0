package pack_test

import (
	"bytes"
	"errors"
	"slices"
	"testing"

	"github.com/idelchi/packcrypt/internal/pack"
)

func TestArchiveRoundTrip(t *testing.T) {
	t.Parallel()

	data := buildZip(t,
		text("manifest.json", "{}"),
		dir("textures"),
		dir("textures/blocks"),
		text("textures/blocks/stone.png", "\x89PNG stone"),
		text("empty.txt", ""),
	)

	archive := readZip(t, data)

	want := []string{"manifest.json", "textures", "textures/blocks", "textures/blocks/stone.png", "empty.txt"}
	if got := paths(archive); !slices.Equal(got, want) {
		t.Fatalf("paths = %v, want %v", got, want)
	}

	entry, ok := archive.Get("textures/blocks")
	if !ok || !entry.IsDir() {
		t.Errorf("textures/blocks = %+v, want directory", entry)
	}

	content, ok := archive.File("textures/blocks/stone.png")
	if !ok || !bytes.Equal(content, []byte("\x89PNG stone")) {
		t.Errorf("stone.png = %q", content)
	}

	content, ok = archive.File("empty.txt")
	if !ok || len(content) != 0 {
		t.Errorf("empty.txt = %q, %v", content, ok)
	}

	if _, ok := archive.File("textures"); ok {
		t.Error("File reported a directory as a file")
	}

	if _, ok := archive.Get("missing"); ok {
		t.Error("Get reported a missing path")
	}
}

func TestArchiveRejectsDuplicates(t *testing.T) {
	t.Parallel()

	archive := pack.NewArchive()

	if err := archive.AddFile("a.txt", []byte("1")); err != nil {
		t.Fatalf("AddFile: %v", err)
	}

	if err := archive.AddFile("a.txt", []byte("2")); !errors.Is(err, pack.ErrMalformedArchive) {
		t.Errorf("duplicate AddFile error = %v, want %v", err, pack.ErrMalformedArchive)
	}

	if err := archive.AddDirectory("a.txt/"); !errors.Is(err, pack.ErrMalformedArchive) {
		t.Errorf("directory shadowing a file: error = %v, want %v", err, pack.ErrMalformedArchive)
	}

	if err := archive.AddFile("", nil); !errors.Is(err, pack.ErrMalformedArchive) {
		t.Errorf("empty path: error = %v, want %v", err, pack.ErrMalformedArchive)
	}

	if archive.Len() != 1 {
		t.Errorf("Len = %d, want 1", archive.Len())
	}
}

func TestReadArchiveRejectsGarbage(t *testing.T) {
	t.Parallel()

	for _, data := range [][]byte{nil, []byte("not a zip file at all")} {
		if _, err := pack.ReadArchive(data); !errors.Is(err, pack.ErrMalformedArchive) {
			t.Errorf("ReadArchive(%q) error = %v, want %v", data, err, pack.ErrMalformedArchive)
		}
	}
}

func TestKindString(t *testing.T) {
	t.Parallel()

	if pack.KindFile.String() != "file" || pack.KindDirectory.String() != "directory" {
		t.Errorf("Kind strings = %q, %q", pack.KindFile, pack.KindDirectory)
	}
}
