// Package config holds the command-line configuration and its validation.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/idelchi/gogen/pkg/validator"
)

// ErrUsage marks configuration errors caused by the command-line input.
var ErrUsage = errors.New("usage error")

// Key holds the master key sources. At most one may be set.
type Key struct {
	// String is the key given on the command line.
	String string `label:"--key" mapstructure:"key" mask:"filled" validate:"exclusive=File"`
	// File is a path to a file holding the key.
	File string `mapstructure:"key-file" label:"--key-file"`
}

// Suffixes control output naming.
type Suffixes struct {
	// Encrypt is inserted before the extension of encrypted packs.
	Encrypt string `mapstructure:"encrypt-ext" validate:"required" label:"--encrypt-ext"`
	// Decrypt is inserted before the extension of decrypted packs.
	Decrypt string `mapstructure:"decrypt-ext" label:"--decrypt-ext"`
}

// Config holds the settings of one invocation.
type Config struct {
	// Show prints the configuration and exits.
	Show bool

	// Parallel is the number of workers for packs and for entries within a pack.
	Parallel int `validate:"min=1" label:"--parallel"`

	// Output control
	Quiet    bool
	Verbose  bool
	Debug    bool
	Stats    bool
	Progress bool

	// Dry lists what would be processed without writing anything.
	Dry bool

	// Delete removes the input pack after successful processing.
	Delete bool

	// PreserveTimestamps copies the input modification time to outputs.
	PreserveTimestamps bool `mapstructure:"preserve-timestamps"`

	// SaveKey writes the master key next to each encrypted pack.
	SaveKey bool `mapstructure:"save-key"`

	Key      Key      `mapstructure:",squash"`
	Suffixes Suffixes `mapstructure:",squash"`

	// Exclude adds patterns to the set of paths stored unencrypted.
	Exclude []string
	// ExcludeFrom is a JSONC file with more exclusion patterns.
	ExcludeFrom string `mapstructure:"exclude-from"`

	// Ignore skips pack files matching these patterns when walking directories.
	Ignore []string

	// Decrypt selects the decrypt mode, set by the command.
	Decrypt bool `mapstructure:"-"`

	// RequireKey demands a key source, set by commands that cannot generate one.
	RequireKey bool `mapstructure:"-"`

	// Files are the positional arguments.
	Files []string `mapstructure:"-" validate:"min=1" label:"paths"`
}

// Display returns the value of the Show field.
func (c Config) Display() bool {
	return c.Show
}

// Validate performs configuration validation using the validator package.
// It returns a wrapped ErrUsage if any validation rules are violated.
func (c Config) Validate(config any) error {
	validator := validator.NewValidator()

	if err := registerExclusive(validator); err != nil {
		return fmt.Errorf("registering exclusive: %w", err)
	}

	errs := validator.Validate(config)

	switch {
	case len(errs) == 1:
		return fmt.Errorf("%w: %w", ErrUsage, errs[0])
	case len(errs) > 1:
		return fmt.Errorf("%ws:\n%w", ErrUsage, errors.Join(errs...))
	}

	if c.RequireKey && c.Key.String == "" && c.Key.File == "" {
		return fmt.Errorf("%w: one of --key or --key-file is required", ErrUsage)
	}

	return nil
}

// MasterKey returns the key from --key or the trimmed content of --key-file.
// It returns an empty string when neither is set.
func (c Config) MasterKey() (string, error) {
	if c.Key.String != "" {
		return c.Key.String, nil
	}

	if c.Key.File == "" {
		return "", nil
	}

	data, err := os.ReadFile(c.Key.File)
	if err != nil {
		return "", fmt.Errorf("reading key file: %w", err)
	}

	return strings.TrimSpace(string(data)), nil
}
