package logic

import (
	"fmt"
	"io"

	"github.com/idelchi/packcrypt/internal/encryption"
)

// RunKeygen writes count freshly generated master keys to w, one per line.
func RunKeygen(w io.Writer, count int) error {
	for range count {
		if _, err := fmt.Fprintln(w, encryption.GenerateKey()); err != nil {
			return fmt.Errorf("writing key: %w", err)
		}
	}

	return nil
}
