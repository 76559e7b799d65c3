package config

import (
	"flag"
	"fmt"
	"io"
	"math"

	"github.com/dmitrijs2005/archivevault/internal/flagx"
)

// parseFlags populates cfg from command-line flags. Only the flags listed in
// the package doc are looked at; everything else in args is ignored.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-f", "-t", "-m", "-p", "-l"})

	fs := flag.NewFlagSet("vault", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.VaultPath, "f", cfg.VaultPath, "vault file path")
	kdfTime := fs.Uint("t", uint(cfg.KDFTime), "argon2id time cost")
	kdfMemory := fs.Uint("m", uint(cfg.KDFMemoryKiB), "argon2id memory cost in KiB")
	kdfThreads := fs.Uint("p", uint(cfg.KDFThreads), "argon2id parallelism")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	if *kdfTime > math.MaxUint32 || *kdfMemory > math.MaxUint32 {
		return fmt.Errorf("parse flags: kdf cost out of range")
	}
	if *kdfThreads > math.MaxUint8 {
		return fmt.Errorf("parse flags: kdf parallelism %d out of range", *kdfThreads)
	}
	cfg.KDFTime = uint32(*kdfTime)
	cfg.KDFMemoryKiB = uint32(*kdfMemory)
	cfg.KDFThreads = uint8(*kdfThreads)
	return nil
}
