package pack_test

import (
	"errors"
	"testing"

	"github.com/idelchi/packcrypt/internal/pack"
)

func TestEncodeContents(t *testing.T) {
	t.Parallel()

	key := "k1"

	got, err := pack.EncodeContents([]pack.ContentEntry{
		{Path: "manifest.json"},
		{Path: "scripts/main.js", Key: &key},
		{Path: "textures/a&b.png"},
	})
	if err != nil {
		t.Fatalf("EncodeContents: %v", err)
	}

	want := `{"content":[{"path":"manifest.json","key":null},{"path":"scripts/main.js","key":"k1"},{"path":"textures/a&b.png","key":null}]}`
	if string(got) != want {
		t.Errorf("EncodeContents =\n%s\nwant\n%s", got, want)
	}
}

func TestEncodeContentsEmpty(t *testing.T) {
	t.Parallel()

	got, err := pack.EncodeContents(nil)
	if err != nil {
		t.Fatalf("EncodeContents: %v", err)
	}

	if string(got) != `{"content":[]}` {
		t.Errorf("EncodeContents(nil) = %s", got)
	}

	entries, err := pack.DecodeContents(got)
	if err != nil {
		t.Fatalf("DecodeContents: %v", err)
	}

	if len(entries) != 0 {
		t.Errorf("len = %d, want 0", len(entries))
	}
}

func TestDecodeContentsKeepsOrder(t *testing.T) {
	t.Parallel()

	data := []byte(`{"content":[{"path":"b","key":"kb"},{"path":"a","key":null},{"path":"c"}]}`)

	entries, err := pack.DecodeContents(data)
	if err != nil {
		t.Fatalf("DecodeContents: %v", err)
	}

	if len(entries) != 3 {
		t.Fatalf("len = %d, want 3", len(entries))
	}

	for i, want := range []string{"b", "a", "c"} {
		if entries[i].Path != want {
			t.Errorf("entries[%d].Path = %q, want %q", i, entries[i].Path, want)
		}
	}

	if !entries[0].Encrypted() || *entries[0].Key != "kb" {
		t.Errorf("entries[0] = %+v, want key kb", entries[0])
	}

	if entries[1].Encrypted() || entries[2].Encrypted() {
		t.Error("null and missing keys must decode as unencrypted")
	}
}

func TestDecodeContentsErrors(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"empty":          ``,
		"truncated":      `{"content":[{"path":"a","key":nu`,
		"not json":       "\x8f\x01garbage",
		"missing list":   `{}`,
		"null list":      `{"content":null}`,
		"wrong type":     `{"content":"a"}`,
		"empty path":     `{"content":[{"path":"","key":null}]}`,
		"duplicate path": `{"content":[{"path":"a","key":null},{"path":"a","key":"k"}]}`,
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			if _, err := pack.DecodeContents([]byte(data)); !errors.Is(err, pack.ErrManifestCorrupt) {
				t.Errorf("error = %v, want %v", err, pack.ErrManifestCorrupt)
			}
		})
	}
}
