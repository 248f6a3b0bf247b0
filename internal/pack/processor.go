package pack

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/idelchi/packcrypt/internal/encryption"
	"github.com/idelchi/packcrypt/pkg/pathmatch"
)

// Processor encrypts and decrypts packs with a fixed set of parameters.
// It holds no per-call state and is safe for concurrent use.
type Processor struct {
	// params are the format constants
	params Params

	// exclusions matches paths stored in clear
	exclusions *pathmatch.Matcher

	// keys generates entry keys
	keys encryption.KeyGenerator
}

// Result describes the outcome of Encrypt or Decrypt.
type Result struct {
	// Archive is the produced zip data.
	Archive []byte

	// Header is the contents header written or read.
	Header Header

	// Contents is the per-file list in archive order.
	Contents []ContentEntry

	// Encrypted counts files that went through the cipher.
	Encrypted int

	// Verbatim counts files copied unchanged.
	Verbatim int

	// Directories counts directory markers carried over.
	Directories int

	// Restored lists excluded files copied on decrypt although the contents list omitted them.
	Restored []string

	// Dropped lists files left out on decrypt because they were neither listed nor excluded.
	Dropped []string
}

// NewProcessor validates params and returns a Processor.
func NewProcessor(params Params) (*Processor, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}

	exclusions, err := pathmatch.NewMatcher(params.Exclusions)
	if err != nil {
		return nil, fmt.Errorf("compiling exclusions: %w", err)
	}

	return &Processor{
		params:     params,
		exclusions: exclusions,
		keys:       encryption.KeyGenerator{Length: params.KeyLength, Alphabet: params.Alphabet},
	}, nil
}

// Params returns the parameters the Processor was built with.
func (p *Processor) Params() Params {
	return p.params
}

// IsExcluded reports whether files at path are stored in clear.
func (p *Processor) IsExcluded(path string) bool {
	return p.exclusions.MatchAny(path)
}

// checkKey enforces the configured master key length.
func (p *Processor) checkKey(key string) error {
	if len(key) != p.params.KeyLength {
		return fmt.Errorf("%w: master key has %d bytes, want %d", ErrKeyLengthInvalid, len(key), p.params.KeyLength)
	}

	return nil
}

// forEach runs fn for every index in [0, n) on at most Parallel workers.
// The first error cancels the remaining work.
func (p *Processor) forEach(ctx context.Context, n int, fn func(i int) error) error {
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(p.params.Parallel)

	for i := range n {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			return fn(i)
		})
	}

	return group.Wait() //nolint:wrapcheck
}

// validateHeader checks signature and version against the parameters.
func (p *Processor) validateHeader(h Header) error {
	if h.Signature != p.params.Signature {
		return fmt.Errorf("%w: signature % X, want % X", ErrHeaderMismatch, h.Signature, p.params.Signature)
	}

	if h.Version != p.params.Version {
		return fmt.Errorf("%w: unsupported version %d", ErrHeaderMismatch, h.Version)
	}

	return nil
}
