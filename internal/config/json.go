package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/archivevault/internal/flagx"
)

// JsonConfig is the on-disk shape of the config file. Pointer fields let
// absent keys keep the values from earlier sources.
type JsonConfig struct {
	VaultPath    *string `json:"vault_path"`
	KDFTime      *uint32 `json:"kdf_time"`
	KDFMemoryKiB *uint32 `json:"kdf_memory_kib"`
	KDFThreads   *uint8  `json:"kdf_threads"`
	LogLevel     *string `json:"log_level"`
}

// parseJson overlays cfg with the file given by -c/-config, if any.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if jc.VaultPath != nil {
		cfg.VaultPath = *jc.VaultPath
	}
	if jc.KDFTime != nil {
		cfg.KDFTime = *jc.KDFTime
	}
	if jc.KDFMemoryKiB != nil {
		cfg.KDFMemoryKiB = *jc.KDFMemoryKiB
	}
	if jc.KDFThreads != nil {
		cfg.KDFThreads = *jc.KDFThreads
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	return nil
}
