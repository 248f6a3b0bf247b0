package encryption

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// Encrypt encrypts data with AES-CFB8 under key.
// The ciphertext has the same length as data.
func Encrypt(data []byte, key string) ([]byte, error) {
	stream, err := newStream(key, NewCFB8Encrypter)
	if err != nil {
		return nil, err
	}

	out := make([]byte, len(data))
	stream.XORKeyStream(out, data)

	return out, nil
}

// Decrypt reverses Encrypt. A wrong key of valid length is not detected.
func Decrypt(data []byte, key string) ([]byte, error) {
	stream, err := newStream(key, NewCFB8Decrypter)
	if err != nil {
		return nil, err
	}

	out := make([]byte, len(data))
	stream.XORKeyStream(out, data)

	return out, nil
}

// newStream builds a CFB8 stream with the key's bytes as AES key and its first
// block of bytes as IV.
func newStream(key string, mode func(cipher.Block, []byte) cipher.Stream) (cipher.Stream, error) {
	keyBytes := []byte(key)

	if len(keyBytes) < aes.BlockSize {
		return nil, fmt.Errorf("%w: key has %d bytes, at least %d are needed for the IV",
			ErrKeyLengthInvalid, len(keyBytes), aes.BlockSize)
	}

	block, err := aes.NewCipher(keyBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCipherFailure, err)
	}

	return mode(block, keyBytes[:aes.BlockSize]), nil
}
