// Package config loads runtime configuration for the vault CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-f string   vault file path
//	-t int      Argon2id time cost (passes)
//	-m int      Argon2id memory cost (KiB)
//	-p int      Argon2id parallelism
//	-l string   log level: debug, info, warn, error
//
// # JSON schema
//
//	{
//	  "vault_path": "/home/alice/.archive/vault.avlt",
//	  "kdf_time": 3,
//	  "kdf_memory_kib": 65536,
//	  "kdf_threads": 4,
//	  "log_level": "info"
//	}
//
// The KDF settings must be identical when a vault is sealed and when it is
// opened; changing them makes existing vault files unreadable.
package config
