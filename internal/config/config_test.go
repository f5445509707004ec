package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    *Config
		wantErr bool
	}{
		{
			name:    "human buffer size",
			content: "buffer_size: 4KiB\nprogress: true\n",
			want: &Config{
				BufferSize: 4096,
				Progress:   true,
				LogLevel:   "info",
			},
		},
		{
			name:    "plain buffer size and copy flags",
			content: "buffer_size: 1\noverwrite: true\nlog_level: debug\nretain_times:\n  modification: true\n",
			want: &Config{
				BufferSize:  1,
				Overwrite:   true,
				LogLevel:    "debug",
				RetainTimes: TimeConfig{Modification: true},
			},
		},
		{
			name:    "bad buffer size",
			content: "buffer_size: lots\n",
			wantErr: true,
		},
		{
			name:    "malformed yaml",
			content: "buffer_size: [1\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.content))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg)
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("GOSPLICE_BUFFER_SIZE", "1MiB")
	t.Setenv("GOSPLICE_LOG_LEVEL", "warn")

	cfg, err := Load(writeConfig(t, "buffer_size: 10\nlog_level: debug\n"))
	require.NoError(t, err)
	assert.Equal(t, ByteSize(1<<20), cfg.BufferSize)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_BadEnvOverride(t *testing.T) {
	t.Setenv("GOSPLICE_BUFFER_SIZE", "much")
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsNotValid(errors.Cause(err)), "got %v", err)
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", DefaultFile)
	cfg := Default()
	cfg.BufferSize = 123
	cfg.SkipExist = true
	require.NoError(t, cfg.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.BufferSize = 0
	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.IsNotValid(err))
}

func TestParseByteSize(t *testing.T) {
	tests := []struct {
		in      string
		want    ByteSize
		wantErr bool
	}{
		{in: "64000", want: 64000},
		{in: "64KiB", want: 65536},
		{in: "64kb", want: 64000},
		{in: "1 MiB", want: 1 << 20},
		{in: "x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseByteSize(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestByteSize_FlagValue(t *testing.T) {
	var b ByteSize
	require.NoError(t, b.Set("2KiB"))
	assert.Equal(t, "2048", b.String())
	assert.Equal(t, "2.0 KiB", b.Human())
	assert.Equal(t, "bytes", b.Type())
}

func TestByteSize_Int(t *testing.T) {
	assert.Equal(t, 64000, ByteSize(64000).Int())
	assert.Equal(t, -1, ByteSize(-1).Int())
	assert.Equal(t, math.MaxInt, ByteSize(math.MaxInt64).Int())
	assert.Equal(t, math.MinInt, ByteSize(math.MinInt64).Int())
	assert.Positive(t, ByteSize(1<<40).Int())
}
