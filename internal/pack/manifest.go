package pack

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tidwall/jsonc"
)

// PackManifest holds the fields of a pack's manifest.json this package reads.
type PackManifest struct {
	FormatVersion int        `json:"format_version"`
	Header        PackHeader `json:"header"`
}

// PackHeader is the header object of manifest.json.
type PackHeader struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	UUID        string `json:"uuid"`
}

// ReadPackManifest parses manifest.json from the archive.
// Comments, trailing commas and a byte order mark are tolerated.
func ReadPackManifest(archive *Archive) (PackManifest, error) {
	data, ok := archive.File(ManifestPath)
	if !ok {
		return PackManifest{}, fmt.Errorf("%w: %s not found", ErrMalformedArchive, ManifestPath)
	}

	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	var manifest PackManifest
	if err := json.Unmarshal(jsonc.ToJSON(data), &manifest); err != nil {
		return PackManifest{}, fmt.Errorf("%w: parsing %s: %w", ErrMalformedArchive, ManifestPath, err)
	}

	if manifest.Header.UUID == "" {
		return PackManifest{}, fmt.Errorf("%w: %s has no header.uuid", ErrMalformedArchive, ManifestPath)
	}

	return manifest, nil
}
