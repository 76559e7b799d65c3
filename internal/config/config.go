package config

import (
	"fmt"

	"github.com/dmitrijs2005/archivevault/internal/common"
	"github.com/dmitrijs2005/archivevault/internal/cryptox"
)

// Config holds runtime settings for the vault CLI.
type Config struct {
	VaultPath    string
	KDFTime      uint32
	KDFMemoryKiB uint32
	KDFThreads   uint8
	LogLevel     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	d := cryptox.DefaultKDFParams()
	c.VaultPath = common.DefaultVaultFileName
	c.KDFTime = d.Time
	c.KDFMemoryKiB = d.MemoryKiB
	c.KDFThreads = d.Threads
	c.LogLevel = "info"
}

// KDFParams converts the configured work factors.
func (c *Config) KDFParams() cryptox.KDFParams {
	return cryptox.KDFParams{
		Time:      c.KDFTime,
		MemoryKiB: c.KDFMemoryKiB,
		Threads:   c.KDFThreads,
		KeyLen:    cryptox.KeySize,
	}
}

// LoadConfig applies defaults, then the JSON file named in args (if any),
// then flags from args. Later sources take precedence.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.KDFParams().Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
