package logic

import (
	"fmt"
	"os"

	"github.com/idelchi/packcrypt/internal/config"
	"github.com/idelchi/packcrypt/internal/filter"
	"github.com/idelchi/packcrypt/internal/logging"
	"github.com/idelchi/packcrypt/internal/pack"
)

// RunInspect prints the header of every encrypted pack and, with a key, its contents list.
func RunInspect(cfg *config.Config, log logging.Logger) error {
	files, _, err := filter.Resolve(cfg.Files, filter.SuffixedPatterns(cfg.Suffixes.Encrypt), cfg.Ignore)
	if err != nil {
		return fmt.Errorf("resolving packs: %w", err)
	}

	masterKey, err := cfg.MasterKey()
	if err != nil {
		return err
	}

	proc, err := newProcessor(cfg)
	if err != nil {
		return err
	}

	var failures int

	for _, file := range files {
		if err := inspectPack(proc, file, masterKey, log); err != nil {
			failures++

			log.Errorf("inspecting %q: %v", file, err)
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d pack(s) could not be inspected", failures)
	}

	return nil
}

func inspectPack(proc *pack.Processor, file, masterKey string, log logging.Logger) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("reading pack: %w", err)
	}

	var inspection *pack.Inspection

	if masterKey == "" {
		inspection, err = proc.Inspect(data)
	} else {
		inspection, err = proc.InspectWithKey(data, masterKey)
	}

	if err != nil {
		return err
	}

	header := inspection.Header

	log.Printf("%s", file)
	log.Printf("  Version:     %d", header.Version)
	log.Printf("  Signature:   % X", header.Signature)
	log.Printf("  Content ID:  %s", header.ContentID)
	log.Printf("  Files:       %d", inspection.Files)
	log.Printf("  Directories: %d", inspection.Directories)

	for _, path := range inspection.Clear {
		log.Printf("  clear       %s", path)
	}

	for _, entry := range inspection.Contents {
		state := "clear"
		if entry.Encrypted() {
			state = "encrypted"
		}

		log.Printf("  %-11s %s", state, entry.Path)
	}

	return nil
}
