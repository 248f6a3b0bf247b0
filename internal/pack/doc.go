// Package pack converts a zip pack into its encrypted form and back.
//
// An encrypted pack keeps the source layout. Every file outside the exclusion
// set is encrypted with its own random key, and a contents.json entry is
// added: a 256-byte plaintext header followed by the list of paths and their
// keys, itself encrypted under the master key.
//
// The header layout is:
//
//	offset  size  field
//	0       4     format version, uint32 little-endian
//	4       4     signature FC B9 CF 9B
//	16      1     content identifier length (0-239)
//	17      n     content identifier (the pack's header.uuid)
//	256     -     encrypted contents list
//
// Entry processing is spread over a bounded set of workers; output order
// always follows the source archive.
package pack
