package pack

import (
	"context"
	"fmt"

	"github.com/idelchi/packcrypt/internal/encryption"
)

// outcome is what decryption decided for one entry of the encrypted archive.
type outcome int

const (
	outcomeSkip outcome = iota
	outcomeDirectory
	outcomeDecrypted
	outcomeVerbatim
	outcomeRestored
	outcomeDropped
)

// Decrypt restores the original pack from an archive produced by Encrypt.
//
// The output follows the order of the encrypted archive without contents.json.
// Excluded files missing from the contents list are copied as they are; files
// that are neither listed nor excluded are left out and reported in Dropped.
func (p *Processor) Decrypt(ctx context.Context, src []byte, masterKey string) (*Result, error) {
	if err := p.checkKey(masterKey); err != nil {
		return nil, err
	}

	archive, err := ReadArchive(src)
	if err != nil {
		return nil, err
	}

	header, listed, err := p.openContents(archive, masterKey)
	if err != nil {
		return nil, err
	}

	records := make(map[string]ContentEntry, len(listed))

	for _, record := range listed {
		if _, ok := archive.File(record.Path); !ok {
			return nil, fmt.Errorf("%w: contents list names %q but the archive has no such file",
				ErrMalformedArchive, record.Path)
		}

		records[record.Path] = record
	}

	entries := archive.Entries()
	restored := make([]Entry, len(entries))
	outcomes := make([]outcome, len(entries))

	err = p.forEach(ctx, len(entries), func(i int) error {
		var err error

		restored[i], outcomes[i], err = p.decryptEntry(entries[i], records)

		return err
	})
	if err != nil {
		return nil, err
	}

	result := &Result{Header: header, Contents: listed}
	output := NewArchive()

	for i, entry := range restored {
		switch outcomes[i] {
		case outcomeSkip:
			continue
		case outcomeDropped:
			result.Dropped = append(result.Dropped, entry.Path)

			continue
		case outcomeDirectory:
			result.Directories++
		case outcomeDecrypted:
			result.Encrypted++
		case outcomeVerbatim:
			result.Verbatim++
		case outcomeRestored:
			result.Verbatim++
			result.Restored = append(result.Restored, entry.Path)
		}

		if err := output.Add(entry); err != nil {
			return nil, err
		}
	}

	if result.Archive, err = output.Bytes(); err != nil {
		return nil, err
	}

	return result, nil
}

// decryptEntry decides and performs the restoration of one entry.
func (p *Processor) decryptEntry(entry Entry, records map[string]ContentEntry) (Entry, outcome, error) {
	if entry.IsDir() {
		return entry, outcomeDirectory, nil
	}

	if entry.Path == ContentsPath {
		return entry, outcomeSkip, nil
	}

	record, listed := records[entry.Path]

	switch {
	case listed && record.Encrypted():
		plaintext, err := encryption.Decrypt(entry.Data, *record.Key)
		if err != nil {
			return Entry{}, outcomeSkip, fmt.Errorf("decrypting %q: %w", entry.Path, err)
		}

		decrypted := entry
		decrypted.Data = plaintext

		return decrypted, outcomeDecrypted, nil
	case listed:
		return entry, outcomeVerbatim, nil
	case p.IsExcluded(entry.Path):
		return entry, outcomeRestored, nil
	default:
		return entry, outcomeDropped, nil
	}
}

// openContents reads contents.json, validates its header and decrypts the list.
func (p *Processor) openContents(archive *Archive, masterKey string) (Header, []ContentEntry, error) {
	header, payload, err := p.readContents(archive)
	if err != nil {
		return Header{}, nil, err
	}

	plaintext, err := encryption.Decrypt(payload, masterKey)
	if err != nil {
		return Header{}, nil, fmt.Errorf("decrypting contents: %w", err)
	}

	listed, err := DecodeContents(plaintext)
	if err != nil {
		return Header{}, nil, err
	}

	return header, listed, nil
}

// readContents splits contents.json into its validated header and the encrypted payload.
func (p *Processor) readContents(archive *Archive) (Header, []byte, error) {
	data, ok := archive.File(ContentsPath)
	if !ok {
		return Header{}, nil, fmt.Errorf("%w: %s not found", ErrMalformedArchive, ContentsPath)
	}

	header, err := DecodeHeader(data)
	if err != nil {
		return Header{}, nil, err
	}

	if err := p.validateHeader(header); err != nil {
		return Header{}, nil, err
	}

	return header, data[HeaderSize:], nil
}
