package pack

import (
	"encoding/binary"
	"fmt"
)

const (
	// HeaderSize is the fixed length of the contents header.
	HeaderSize = 256
	// MaxContentIDLength is the longest content identifier that fits the header.
	MaxContentIDLength = HeaderSize - contentIDOffset

	signatureOffset   = 4
	contentIDLenIndex = 16
	contentIDOffset   = 17
)

// Header is the plaintext prelude of contents.json.
type Header struct {
	Version   uint32
	Signature [4]byte
	ContentID string
}

// EncodeHeader returns the 256-byte form of h. Unused bytes are zero.
func EncodeHeader(h Header) ([]byte, error) {
	if len(h.ContentID) > MaxContentIDLength {
		return nil, fmt.Errorf("%w: content identifier is %d bytes, limit is %d",
			ErrMalformedArchive, len(h.ContentID), MaxContentIDLength)
	}

	buf := make([]byte, HeaderSize)

	binary.LittleEndian.PutUint32(buf, h.Version)
	copy(buf[signatureOffset:], h.Signature[:])
	buf[contentIDLenIndex] = byte(len(h.ContentID))
	copy(buf[contentIDOffset:], h.ContentID)

	return buf, nil
}

// DecodeHeader reads the fields of a header from the start of buf.
// It does not check the signature or version.
func DecodeHeader(buf []byte) (Header, error) {
	if len(buf) < HeaderSize {
		return Header{}, fmt.Errorf("%w: %d bytes, need %d", ErrHeaderMismatch, len(buf), HeaderSize)
	}

	idLen := int(buf[contentIDLenIndex])
	if idLen > MaxContentIDLength {
		return Header{}, fmt.Errorf("%w: content identifier length %d exceeds %d",
			ErrHeaderMismatch, idLen, MaxContentIDLength)
	}

	var h Header

	h.Version = binary.LittleEndian.Uint32(buf)
	copy(h.Signature[:], buf[signatureOffset:])
	h.ContentID = string(buf[contentIDOffset : contentIDOffset+idLen])

	return h, nil
}
