// Package common defines shared constants, sentinel errors and small helpers
// used across the vault packages. Callers should use errors.Is to match the
// error values; concrete errors are wrapped with context via fmt.Errorf.
package common

import "errors"

var (
	// Caller errors: empty password, wrong key/salt/nonce/tag size, invalid
	// model data handed to Seal.
	ErrInvalidArgument = errors.New("invalid argument")

	// The password hashing primitive failed or the work factor is out of bounds.
	ErrKeyDerivationFailed = errors.New("key derivation failed")

	// AEAD tag verification failed. Wrong password, tampering and corruption
	// all surface as this one error.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// Container format errors.
	ErrCorruptFormat      = errors.New("corrupt format")
	ErrUnsupportedVersion = errors.New("unsupported version")
	ErrTruncated          = errors.New("truncated data")

	// File open/read/write failure at the save/load boundary.
	ErrIOFailure = errors.New("i/o failure")

	// The secure random source could not deliver the requested bytes.
	ErrRandomness = errors.New("secure randomness unavailable")

	// In-memory repository errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")
)
