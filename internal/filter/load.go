package filter

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/jsonc"

	"github.com/idelchi/packcrypt/pkg/pathmatch"
)

// ErrNoPatterns is returned for a pattern file holding no usable pattern.
var ErrNoPatterns = errors.New("no patterns")

// LoadPatterns reads a JSONC file holding an array of glob patterns.
// Patterns are trimmed and normalized to slash-separated archive paths.
// Blank or invalid patterns and an empty list are errors.
func LoadPatterns(path string) ([]string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is from user-supplied config
	if err != nil {
		return nil, fmt.Errorf("reading patterns file %q: %w", path, err)
	}

	var raw []string
	if err := json.Unmarshal(jsonc.ToJSONInPlace(data), &raw); err != nil {
		return nil, fmt.Errorf("parsing patterns file %q: %w", path, err)
	}

	if len(raw) == 0 {
		return nil, fmt.Errorf("%w in %q", ErrNoPatterns, path)
	}

	patterns := make([]string, 0, len(raw))

	for i, pattern := range raw {
		pattern = pathmatch.Clean(strings.TrimSpace(pattern))
		if pattern == "" {
			return nil, fmt.Errorf("%w: entry %d in %q is blank", ErrNoPatterns, i, path)
		}

		if _, err := pathmatch.Match(pattern, ""); err != nil {
			return nil, fmt.Errorf("patterns file %q: %w", path, err)
		}

		patterns = append(patterns, pattern)
	}

	return patterns, nil
}
