package common

// DefaultVaultFileName is the vault file used when no path is configured.
const DefaultVaultFileName = "vault.avlt"

// VaultFileMode is the permission set for vault files written to disk.
const VaultFileMode = 0o600
