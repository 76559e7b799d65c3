/*
Package vault seals a models.Repository into a single encrypted blob and
opens it again.

# Encryption

A 32-byte password key is derived with Argon2id from the password and a
random 16-byte salt. HKDF-SHA256 expands it, with the nonce as HKDF salt and
a fixed "payload encryption" label as info, into the AES-256 key. The entry
payload is encrypted with AES-256-GCM; the encoded metadata is passed as
associated data, so header and body from different seals cannot be mixed.
Every seal draws a fresh salt and nonce.

# Binary Format

All integers are little endian.

	8 bytes   magic "ARCVAULT"
	2 bytes   format version (uint16)
	4 bytes   metadata length (uint32)
	N bytes   metadata, CBOR, unencrypted but authenticated
	16 bytes  Argon2id salt
	12 bytes  AES-GCM nonce
	4 bytes   ciphertext length (uint32)
	M bytes   ciphertext of the CBOR payload {metadata_version, entries}
	16 bytes  AES-GCM tag

The Argon2id work factors are not stored; the same KDFParams must be used
to seal and unseal.

# Errors

Failures are reported with the sentinel errors of package common. A wrong
password and a modified blob both yield common.ErrAuthenticationFailed; the
format does not reveal which one happened.
*/
package vault
