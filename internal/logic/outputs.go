package logic

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/idelchi/packcrypt/internal/config"
	"github.com/idelchi/packcrypt/internal/pack"
)

// Output is a named buffer produced for one input pack.
type Output struct {
	// Filename is the path the buffer is written to.
	Filename string
	// Description tells the user what the file is.
	Description string
	// Data is the file content.
	Data []byte
	// Perm is the file mode of the written file.
	Perm os.FileMode
}

const (
	packPerm = 0o644
	keyPerm  = 0o600

	// KeyExtension is the extension of saved master key files.
	KeyExtension = ".key"
)

// splitExt separates the final extension from the rest of the path.
func splitExt(file string) (stem, ext string) {
	ext = filepath.Ext(file)

	return strings.TrimSuffix(file, ext), ext
}

// EncryptedName returns <stem><encrypt-ext><ext>.
func EncryptedName(file string, suffixes config.Suffixes) string {
	stem, ext := splitExt(file)

	return stem + suffixes.Encrypt + ext
}

// KeyName returns <stem><encrypt-ext>.key.
func KeyName(file string, suffixes config.Suffixes) string {
	stem, _ := splitExt(file)

	return stem + suffixes.Encrypt + KeyExtension
}

// DecryptedName returns <stem without encrypt-ext><decrypt-ext><ext>.
func DecryptedName(file string, suffixes config.Suffixes) string {
	stem, ext := splitExt(file)

	return strings.TrimSuffix(stem, suffixes.Encrypt) + suffixes.Decrypt + ext
}

// EncryptOutputs names the encrypted pack and, when saveKey is set, its key file.
func EncryptOutputs(file string, res *pack.Result, masterKey string, suffixes config.Suffixes, saveKey bool) []Output {
	outputs := []Output{{
		Filename:    EncryptedName(file, suffixes),
		Description: "Encrypted pack",
		Data:        res.Archive,
		Perm:        packPerm,
	}}

	if saveKey {
		outputs = append(outputs, Output{
			Filename:    KeyName(file, suffixes),
			Description: "Key to decrypt the pack",
			Data:        []byte(masterKey),
			Perm:        keyPerm,
		})
	}

	return outputs
}

// DecryptOutputs names the decrypted pack.
func DecryptOutputs(file string, res *pack.Result, suffixes config.Suffixes) []Output {
	return []Output{{
		Filename:    DecryptedName(file, suffixes),
		Description: "Decrypted pack",
		Data:        res.Archive,
		Perm:        packPerm,
	}}
}

// OutputNames lists the files a run would write for file.
func OutputNames(file string, cfg *config.Config) []string {
	if cfg.Decrypt {
		return []string{DecryptedName(file, cfg.Suffixes)}
	}

	names := []string{EncryptedName(file, cfg.Suffixes)}

	if cfg.SaveKey {
		names = append(names, KeyName(file, cfg.Suffixes))
	}

	return names
}
