// Package encryption provides the symmetric primitives used for packs:
// AES in CFB mode with 8-bit feedback keyed directly from a text key, and
// generation of random alphanumeric keys.
//
// The key's UTF-8 bytes are the AES key and its first 16 bytes are the IV.
// Encrypting the same data with the same key always yields the same
// ciphertext, and no authentication tag is produced: decrypting with a wrong
// key of valid length returns garbage without an error.
package encryption
