package pack

import (
	"context"
	"fmt"

	"github.com/idelchi/packcrypt/internal/encryption"
)

// Encrypt produces the encrypted form of the zip pack in src under masterKey.
//
// Directories are carried over, excluded files are copied and listed without a
// key, and every other file is encrypted with a freshly generated key that is
// recorded only in the encrypted contents list.
func (p *Processor) Encrypt(ctx context.Context, src []byte, masterKey string) (*Result, error) {
	if err := p.checkKey(masterKey); err != nil {
		return nil, err
	}

	source, err := ReadArchive(src)
	if err != nil {
		return nil, err
	}

	manifest, err := ReadPackManifest(source)
	if err != nil {
		return nil, err
	}

	if _, ok := source.Get(ContentsPath); ok {
		return nil, fmt.Errorf("%w: %s already present, the pack may already be encrypted",
			ErrMalformedArchive, ContentsPath)
	}

	entries := source.Entries()
	converted := make([]Entry, len(entries))
	records := make([]*ContentEntry, len(entries))

	err = p.forEach(ctx, len(entries), func(i int) error {
		var err error

		converted[i], records[i], err = p.encryptEntry(entries[i])

		return err
	})
	if err != nil {
		return nil, err
	}

	result := &Result{}
	output := NewArchive()

	for i, entry := range converted {
		if err := output.Add(entry); err != nil {
			return nil, err
		}

		switch record := records[i]; {
		case record == nil:
			result.Directories++
		case record.Encrypted():
			result.Encrypted++
			result.Contents = append(result.Contents, *record)
		default:
			result.Verbatim++
			result.Contents = append(result.Contents, *record)
		}
	}

	payload, err := EncodeContents(result.Contents)
	if err != nil {
		return nil, err
	}

	sealed, err := encryption.Encrypt(payload, masterKey)
	if err != nil {
		return nil, fmt.Errorf("encrypting contents: %w", err)
	}

	result.Header = Header{
		Version:   p.params.Version,
		Signature: p.params.Signature,
		ContentID: manifest.Header.UUID,
	}

	header, err := EncodeHeader(result.Header)
	if err != nil {
		return nil, err
	}

	if err := output.AddFile(ContentsPath, append(header, sealed...)); err != nil {
		return nil, err
	}

	if result.Archive, err = output.Bytes(); err != nil {
		return nil, err
	}

	return result, nil
}

// encryptEntry converts one source entry. The record is nil for directories.
func (p *Processor) encryptEntry(entry Entry) (Entry, *ContentEntry, error) {
	if entry.IsDir() {
		return entry, nil, nil
	}

	if p.IsExcluded(entry.Path) {
		return entry, &ContentEntry{Path: entry.Path}, nil
	}

	key := p.keys.Generate()

	ciphertext, err := encryption.Encrypt(entry.Data, key)
	if err != nil {
		return Entry{}, nil, fmt.Errorf("encrypting %q: %w", entry.Path, err)
	}

	encrypted := entry
	encrypted.Data = ciphertext

	return encrypted, &ContentEntry{Path: entry.Path, Key: &key}, nil
}
