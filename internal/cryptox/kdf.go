// Package cryptox wraps the cryptographic primitives the vault is built on:
// Argon2id password hashing, HKDF key expansion and AES-256-GCM.
package cryptox

import (
	"fmt"

	"github.com/dmitrijs2005/archivevault/internal/common"
	"golang.org/x/crypto/argon2"
)

// SaltSize is the fixed Argon2id salt length stored in every vault.
const SaltSize = 16

// MaxMemoryKiB bounds the Argon2 memory cost (4 GiB).
const MaxMemoryKiB = 4 * 1024 * 1024

// KDFParams are the Argon2id work factors.
type KDFParams struct {
	// Time is the number of passes over memory.
	Time uint32
	// MemoryKiB is the memory cost in KiB.
	MemoryKiB uint32
	// Threads is the degree of parallelism.
	Threads uint8
	// KeyLen is the output length in bytes.
	KeyLen uint32
}

// DefaultKDFParams returns the production work factors.
func DefaultKDFParams() KDFParams {
	return KDFParams{Time: 3, MemoryKiB: 64 * 1024, Threads: 4, KeyLen: 32}
}

// Validate checks the parameters against what Argon2id accepts.
func (p KDFParams) Validate() error {
	switch {
	case p.Time < 1:
		return fmt.Errorf("%w: argon2 time must be at least 1", common.ErrInvalidArgument)
	case p.Threads < 1:
		return fmt.Errorf("%w: argon2 threads must be at least 1", common.ErrInvalidArgument)
	case p.KeyLen < 16:
		return fmt.Errorf("%w: derived key length %d is below 16 bytes", common.ErrInvalidArgument, p.KeyLen)
	case p.MemoryKiB < 8*uint32(p.Threads):
		return fmt.Errorf("%w: argon2 memory must be at least 8 KiB per thread", common.ErrInvalidArgument)
	}
	return nil
}

// DeriveKey hardens password into KeyLen bytes of key material with Argon2id.
//
// The salt must be exactly SaltSize bytes. Output is deterministic in
// (password, salt, params), which is what makes later decryption possible.
// A work factor above MaxMemoryKiB, or a failure inside the primitive, is
// reported as common.ErrKeyDerivationFailed.
func DeriveKey(password, salt []byte, params KDFParams) (key []byte, err error) {
	if len(salt) != SaltSize {
		return nil, fmt.Errorf("%w: salt is %d bytes, want %d", common.ErrInvalidArgument, len(salt), SaltSize)
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if params.MemoryKiB > MaxMemoryKiB {
		return nil, fmt.Errorf("%w: memory cost %d KiB exceeds limit of %d KiB",
			common.ErrKeyDerivationFailed, params.MemoryKiB, MaxMemoryKiB)
	}

	defer func() {
		if r := recover(); r != nil {
			key = nil
			err = fmt.Errorf("%w: %v", common.ErrKeyDerivationFailed, r)
		}
	}()

	return argon2.IDKey(password, salt, params.Time, params.MemoryKiB, params.Threads, params.KeyLen), nil
}
