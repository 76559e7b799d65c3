package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"github.com/dmitrijs2005/archivevault/internal/common"
)

const (
	// KeySize is the AES-256 key length.
	KeySize = 32
	// NonceSize is the GCM nonce length.
	NonceSize = 12
	// TagSize is the GCM authentication tag length.
	TagSize = 16
)

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("new aes cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("new gcm: %w", err)
	}
	return gcm, nil
}

func checkSizes(key, nonce []byte) error {
	if len(key) != KeySize {
		return fmt.Errorf("%w: key is %d bytes, want %d", common.ErrInvalidArgument, len(key), KeySize)
	}
	if len(nonce) != NonceSize {
		return fmt.Errorf("%w: nonce is %d bytes, want %d", common.ErrInvalidArgument, len(nonce), NonceSize)
	}
	return nil
}

// Encrypt seals plaintext with AES-256-GCM, authenticating ad alongside it.
//
// The ciphertext and the 16-byte tag are returned separately. The caller owns
// nonce uniqueness: a nonce must never repeat under the same key.
//
// Example:
//
//	key := make([]byte, cryptox.KeySize)
//	nonce := make([]byte, cryptox.NonceSize)
//	// fill key and nonce from crypto/rand
//	ct, tag, err := cryptox.Encrypt(key, nonce, []byte("secret"), []byte("header"))
func Encrypt(key, nonce, plaintext, ad []byte) (ciphertext, tag []byte, err error) {
	if err := checkSizes(key, nonce); err != nil {
		return nil, nil, err
	}
	gcm, err := newGCM(key)
	if err != nil {
		return nil, nil, err
	}

	sealed := gcm.Seal(nil, nonce, plaintext, ad)
	split := len(sealed) - TagSize
	return sealed[:split:split], sealed[split:], nil
}

// Decrypt verifies tag over ciphertext and ad and returns the plaintext.
// Any mismatch yields common.ErrAuthenticationFailed and no plaintext.
func Decrypt(key, nonce, ciphertext, tag, ad []byte) ([]byte, error) {
	if err := checkSizes(key, nonce); err != nil {
		return nil, err
	}
	if len(tag) != TagSize {
		return nil, fmt.Errorf("%w: tag is %d bytes, want %d", common.ErrInvalidArgument, len(tag), TagSize)
	}
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	sealed := make([]byte, 0, len(ciphertext)+TagSize)
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	plaintext, err := gcm.Open(nil, nonce, sealed, ad)
	if err != nil {
		return nil, common.ErrAuthenticationFailed
	}
	return plaintext, nil
}
