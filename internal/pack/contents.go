package pack

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ContentEntry records how one file of the pack is stored.
type ContentEntry struct {
	// Path is the archive path of the file.
	Path string `json:"path"`
	// Key is the entry key the file was encrypted with, nil when stored in clear.
	Key *string `json:"key"`
}

// Encrypted reports whether the file was encrypted.
func (c ContentEntry) Encrypted() bool {
	return c.Key != nil
}

type contents struct {
	Content []ContentEntry `json:"content"`
}

// EncodeContents serializes entries as {"content": [...]}, keeping their order.
func EncodeContents(entries []ContentEntry) ([]byte, error) {
	if entries == nil {
		entries = []ContentEntry{}
	}

	var buf bytes.Buffer

	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(contents{Content: entries}); err != nil {
		return nil, fmt.Errorf("encoding contents: %w", err)
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// DecodeContents parses the output of EncodeContents.
// A missing content field, an entry without a path or a repeated path is an error.
func DecodeContents(data []byte) ([]ContentEntry, error) {
	var raw struct {
		Content *[]ContentEntry `json:"content"`
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrManifestCorrupt, err)
	}

	if raw.Content == nil {
		return nil, fmt.Errorf("%w: missing content list", ErrManifestCorrupt)
	}

	entries := *raw.Content
	seen := make(map[string]struct{}, len(entries))

	for i, entry := range entries {
		if entry.Path == "" {
			return nil, fmt.Errorf("%w: entry %d has no path", ErrManifestCorrupt, i)
		}

		if _, ok := seen[entry.Path]; ok {
			return nil, fmt.Errorf("%w: duplicate path %q", ErrManifestCorrupt, entry.Path)
		}

		seen[entry.Path] = struct{}{}
	}

	return entries, nil
}
