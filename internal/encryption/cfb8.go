package encryption

import (
	"crypto/cipher"
)

// cfb8 implements cipher.Stream for CFB mode with an 8-bit shift register.
// Each output byte costs one block encryption.
type cfb8 struct {
	block    cipher.Block
	register []byte
	out      []byte
	decrypt  bool
}

// NewCFB8Encrypter returns a cipher.Stream which encrypts with CFB8 using the given block.
// The iv must be the same length as the block size.
func NewCFB8Encrypter(block cipher.Block, iv []byte) cipher.Stream {
	return newCFB8(block, iv, false)
}

// NewCFB8Decrypter returns a cipher.Stream which decrypts with CFB8 using the given block.
// The iv must be the same length as the block size.
func NewCFB8Decrypter(block cipher.Block, iv []byte) cipher.Stream {
	return newCFB8(block, iv, true)
}

func newCFB8(block cipher.Block, iv []byte, decrypt bool) *cfb8 {
	blockSize := block.BlockSize()
	if len(iv) != blockSize {
		panic("encryption: IV length must equal block size")
	}

	register := make([]byte, blockSize)
	copy(register, iv)

	return &cfb8{
		block:    block,
		register: register,
		out:      make([]byte, blockSize),
		decrypt:  decrypt,
	}
}

// XORKeyStream implements cipher.Stream. dst and src may overlap entirely.
func (x *cfb8) XORKeyStream(dst, src []byte) {
	if len(dst) < len(src) {
		panic("encryption: output smaller than input")
	}

	last := len(x.register) - 1

	for i, in := range src {
		x.block.Encrypt(x.out, x.register)

		result := in ^ x.out[0]

		// The register is fed with ciphertext in both directions.
		feedback := result
		if x.decrypt {
			feedback = in
		}

		copy(x.register, x.register[1:])
		x.register[last] = feedback

		dst[i] = result
	}
}
