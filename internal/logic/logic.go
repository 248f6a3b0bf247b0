// Package logic runs the pack pipeline for the command-line interface.
package logic

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/briandowns/spinner"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/idelchi/packcrypt/internal/config"
	"github.com/idelchi/packcrypt/internal/encryption"
	"github.com/idelchi/packcrypt/internal/fileutil"
	"github.com/idelchi/packcrypt/internal/filter"
	"github.com/idelchi/packcrypt/internal/logging"
	"github.com/idelchi/packcrypt/internal/pack"
)

// ErrNoKey is returned when decryption is attempted without a master key.
var ErrNoKey = errors.New("no key given")

// Run encrypts or decrypts every pack named by cfg.Files.
func Run(ctx context.Context, cfg *config.Config, log logging.Logger) error {
	scanned, start, done, err := preamble(cfg, log)
	if done || err != nil {
		return err
	}

	masterKey, err := resolveKey(cfg, log)
	if err != nil {
		return err
	}

	proc, err := newProcessor(cfg)
	if err != nil {
		return err
	}

	type result struct {
		input   string
		outputs []Output
		size    int64
		res     *pack.Result
		err     error
	}

	results := make(chan result, len(cfg.Files))

	// Packs fail independently, the group carries no context.
	group := errgroup.Group{}
	group.SetLimit(cfg.Parallel)

	printed := make(chan struct{})

	var processed, errored int

	var totalSize int64

	stop := startSpinner(cfg, len(cfg.Files))

	go func() {
		defer close(printed)

		for res := range results {
			if res.err != nil {
				errored++

				log.Errorf("processing %q: %v", res.input, res.err)

				continue
			}

			processed++

			totalSize += res.size

			for _, out := range res.outputs {
				log.Printf("Processed %q -> %q", res.input, out.Filename)
				log.Debugf("%s: %s", out.Filename, out.Description)
			}

			report(log, res.input, res.res)

			if cfg.Delete {
				if err := os.Remove(res.input); err != nil {
					log.Errorf("deleting %q: %v", res.input, err)
				} else {
					log.Printf("Deleted %q", res.input)
				}
			}
		}
	}()

	for _, file := range cfg.Files {
		group.Go(func() error {
			outputs, res, err := processPack(ctx, proc, file, masterKey, cfg)
			if err != nil {
				results <- result{input: file, err: err}

				return err
			}

			size, err := writeOutputs(outputs, file, cfg.PreserveTimestamps)
			if err != nil {
				results <- result{input: file, err: err}

				return err
			}

			results <- result{input: file, outputs: outputs, size: size, res: res}

			return nil
		})
	}

	err = group.Wait()

	close(results)

	<-printed

	stop()

	if cfg.Stats {
		printStats(log, scanned, processed, errored, totalSize, time.Since(start))
	}

	if err != nil {
		return fmt.Errorf("processing packs: %w", err)
	}

	return nil
}

// preamble resolves packs and handles dry run. Returns done=true if dry run was executed.
func preamble(cfg *config.Config, log logging.Logger) (int, time.Time, bool, error) {
	start := time.Now()

	scanned, err := resolveFiles(cfg)
	if err != nil {
		return 0, start, false, fmt.Errorf("resolving packs: %w", err)
	}

	if cfg.Dry {
		dryRun(cfg, log, scanned, start)

		return scanned, start, true, nil
	}

	return scanned, start, false, nil
}

// resolveFiles expands positional arguments into pack files.
// Returns the number of files scanned before filtering.
func resolveFiles(cfg *config.Config) (int, error) {
	includes := filter.PackPatterns()
	ignores := slices.Clone(cfg.Ignore)

	if cfg.Decrypt {
		includes = filter.SuffixedPatterns(cfg.Suffixes.Encrypt)
	} else {
		// Outputs of earlier runs are only encrypted again when named explicitly.
		ignores = append(ignores, filter.SuffixedPatterns(cfg.Suffixes.Encrypt)...)
	}

	files, scanned, err := filter.Resolve(cfg.Files, includes, ignores)
	if err != nil {
		return scanned, err
	}

	cfg.Files = files

	return scanned, nil
}

// resolveKey returns the master key from the configuration, generating one
// for encryption when none was given.
func resolveKey(cfg *config.Config, log logging.Logger) (string, error) {
	key, err := cfg.MasterKey()
	if err != nil {
		return "", err
	}

	if key != "" {
		return key, nil
	}

	if cfg.Decrypt {
		return "", ErrNoKey
	}

	key = encryption.GenerateKey()

	log.Infof("generated master key for this run")

	// The printed key is the only copy without a key file and is shown even when quiet.
	if !cfg.SaveKey {
		if _, err := fmt.Fprintf(log.OutWriter(), "Key: %s\n", key); err != nil {
			return "", fmt.Errorf("printing generated key: %w", err)
		}
	}

	return key, nil
}

// newProcessor builds a pack processor with the configured exclusions and workers.
func newProcessor(cfg *config.Config) (*pack.Processor, error) {
	params := pack.DefaultParams()
	params.Parallel = cfg.Parallel
	params.Exclusions = append(params.Exclusions, cfg.Exclude...)

	if cfg.ExcludeFrom != "" {
		patterns, err := filter.LoadPatterns(cfg.ExcludeFrom)
		if err != nil {
			return nil, fmt.Errorf("loading exclusion patterns: %w", err)
		}

		params.Exclusions = append(params.Exclusions, patterns...)
	}

	proc, err := pack.NewProcessor(params)
	if err != nil {
		return nil, fmt.Errorf("creating processor: %w", err)
	}

	return proc, nil
}

// processPack runs one pack through the processor and names its outputs.
func processPack(
	ctx context.Context,
	proc *pack.Processor,
	file, masterKey string,
	cfg *config.Config,
) ([]Output, *pack.Result, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, nil, fmt.Errorf("reading pack: %w", err)
	}

	if cfg.Decrypt {
		res, err := proc.Decrypt(ctx, data, masterKey)
		if err != nil {
			return nil, nil, err
		}

		return DecryptOutputs(file, res, cfg.Suffixes), res, nil
	}

	res, err := proc.Encrypt(ctx, data, masterKey)
	if err != nil {
		return nil, nil, err
	}

	return EncryptOutputs(file, res, masterKey, cfg.Suffixes, cfg.SaveKey), res, nil
}

// writeOutputs writes every output atomically. Returns the total size written.
func writeOutputs(outputs []Output, input string, preserve bool) (int64, error) {
	var modTime time.Time

	if preserve {
		info, err := os.Stat(input)
		if err != nil {
			return 0, fmt.Errorf("reading input timestamps: %w", err)
		}

		modTime = info.ModTime()
	}

	var total int64

	for _, out := range outputs {
		if out.Filename == input {
			return total, fmt.Errorf("output %q would overwrite its input", out.Filename)
		}

		size, err := fileutil.WriteAtomic(out.Filename, out.Data, out.Perm)
		if err != nil {
			return total, err
		}

		if preserve {
			if err := fileutil.PreserveTimestamp(out.Filename, modTime); err != nil {
				return total, err
			}
		}

		total += size
	}

	return total, nil
}

// report logs details of a processed pack.
func report(log logging.Logger, input string, res *pack.Result) {
	id := res.Header.ContentID

	if err := uuid.Validate(id); err != nil {
		log.Warnf("%q: content identifier %q is not a UUID", input, id)
	}

	log.Infof(
		"%q: %d encrypted, %d stored in clear, %d directories (content id %s)",
		input, res.Encrypted, res.Verbatim, res.Directories, id,
	)

	for _, path := range res.Restored {
		log.Warnf("%q: %q is missing from contents.json, restored unchanged", input, path)
	}

	for _, path := range res.Dropped {
		log.Warnf("%q: %q is missing from contents.json, left out", input, path)
	}
}

// startSpinner shows a spinner on stderr when progress is enabled and no
// other output would interleave with it. Returns the function stopping it.
func startSpinner(cfg *config.Config, packs int) func() {
	if !cfg.Progress || cfg.Quiet || cfg.Verbose || cfg.Debug {
		return func() {}
	}

	const interval = 100 * time.Millisecond

	s := spinner.New(spinner.CharSets[14], interval, spinner.WithWriter(os.Stderr))
	s.Suffix = fmt.Sprintf(" Processing %d pack(s)...", packs)
	s.Start()

	return s.Stop
}

// dryRun previews what would be processed without reading or writing packs.
func dryRun(cfg *config.Config, log logging.Logger, scanned int, start time.Time) {
	var totalSize int64

	for _, file := range cfg.Files {
		for _, name := range OutputNames(file, cfg) {
			log.Printf("Would process %q -> %q", file, name)
		}

		if cfg.Stats {
			if info, err := os.Stat(file); err == nil {
				totalSize += info.Size()
			}
		}
	}

	if cfg.Stats {
		printStats(log, scanned, len(cfg.Files), 0, totalSize, time.Since(start))
	}
}

func printStats(log logging.Logger, scanned, processed, errored int, totalSize int64, duration time.Duration) {
	w := log.ErrWriter()

	fmt.Fprintf(w, "\nStats\n")
	fmt.Fprintf(w, "  Scanned:   %d\n", scanned)
	fmt.Fprintf(w, "  Processed: %d\n", processed)
	fmt.Fprintf(w, "  Errors:    %d\n", errored)
	//nolint:gosec // totalSize is always non-negative (sum of file sizes)
	fmt.Fprintf(w, "  Size:      %s\n", humanize.IBytes(uint64(max(0, totalSize))))
	fmt.Fprintf(w, "  Duration:  %s\n", duration.Round(time.Millisecond))
}
