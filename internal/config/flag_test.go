package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected  *Config
		name      string
		args      []string
		expectErr bool
	}{
		{
			name: "all flags",
			args: []string{"-f", "/tmp/v.avlt", "-t", "2", "-m", "2048", "-p", "1", "-l", "debug"},
			expected: &Config{VaultPath: "/tmp/v.avlt", KDFTime: 2, KDFMemoryKiB: 2048,
				KDFThreads: 1, LogLevel: "debug"},
		},
		{
			name:     "unrelated args ignored",
			args:     []string{"-x", "1", "-t", "4"},
			expected: &Config{KDFTime: 4},
		},
		{name: "non-numeric time", args: []string{"-t", "abc"}, expectErr: true},
		{name: "threads overflow", args: []string{"-p", "300"}, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			err := parseFlags(cfg, tt.args)
			if tt.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tt.expected, cfg))
		})
	}
}
