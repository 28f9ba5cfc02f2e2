// Package cryptox implements the symmetric encryption applied to stored
// secrets. Ciphertext tokens are base64(nonce || AES-GCM ciphertext) produced
// under a single process-wide key, so any server holding the key can recover
// every secret. There is no per-user key and no rotation.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/base64"

	"github.com/dmitrijs2005/passvault/internal/common"
)

// Cipher encrypts and decrypts secret strings with a fixed key.
// The key material is derived once at construction; a Cipher is safe for
// concurrent use.
type Cipher struct {
	aead cipher.AEAD
}

// NewCipher builds a Cipher from the configured key string. The string is
// hashed with SHA-256 to obtain a 32-byte AES-256 key, so any non-empty
// passphrase is accepted.
func NewCipher(key string) (*Cipher, error) {
	sum := sha256.Sum256([]byte(key))

	block, err := aes.NewCipher(sum[:])
	if err != nil {
		return nil, err
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	return &Cipher{aead: aead}, nil
}

// EncryptString seals plaintext with a fresh random nonce and returns the
// nonce-prefixed ciphertext as a base64 token.
func (c *Cipher) EncryptString(plaintext string) string {
	nonce := common.GenerateRandByteArray(c.aead.NonceSize())
	sealed := c.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed)
}

// DecryptString reverses EncryptString. Any malformed token, or a token
// produced under a different key, yields common.ErrorDecryptionFailed; the
// secret cannot be partially recovered.
func (c *Cipher) DecryptString(token string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return "", common.ErrorDecryptionFailed
	}

	ns := c.aead.NonceSize()
	if len(data) < ns+1 {
		return "", common.ErrorDecryptionFailed
	}

	plaintext, err := c.aead.Open(nil, data[:ns], data[ns:], nil)
	if err != nil {
		return "", common.ErrorDecryptionFailed
	}

	return string(plaintext), nil
}
