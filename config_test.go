package logx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, LevelAll, cfg.Level)
	assert.Equal(t, "LogX", cfg.Name)
	assert.Equal(t, "log", cfg.Extension)
	assert.Equal(t, defaultTimestampLayout, cfg.TimestampFormat)
	assert.Equal(t, int64(defaultMaxSizeKB), cfg.MaxSizeKB)
	assert.Equal(t, int64(0), cfg.MaxLogRate)
	assert.True(t, cfg.EnableFile)
	assert.True(t, cfg.EnableConsole)
	assert.Equal(t, "stdout", cfg.ConsoleTarget)

	if home, err := os.UserHomeDir(); err == nil {
		assert.Equal(t, home, cfg.Directory)
	} else {
		assert.Equal(t, ".", cfg.Directory)
	}
}

func TestDefaultConfigIsolation(t *testing.T) {
	a := DefaultConfig()
	a.Name = "mutated"

	assert.Equal(t, "LogX", DefaultConfig().Name, "DefaultConfig must return a fresh copy")
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "empty name",
			mutate:  func(c *Config) { c.Name = "  " },
			wantErr: "name cannot be empty",
		},
		{
			name:    "dotted extension",
			mutate:  func(c *Config) { c.Extension = ".log" },
			wantErr: "should not start with dot",
		},
		{
			name:    "empty timestamp format",
			mutate:  func(c *Config) { c.TimestampFormat = "" },
			wantErr: "timestamp_format cannot be empty",
		},
		{
			name:    "bad console target",
			mutate:  func(c *Config) { c.ConsoleTarget = "syslog" },
			wantErr: "invalid console_target",
		},
		{
			name:    "level out of range",
			mutate:  func(c *Config) { c.Level = Level(42) },
			wantErr: "invalid level",
		},
		{
			name:    "zero max size",
			mutate:  func(c *Config) { c.MaxSizeKB = 0 },
			wantErr: "max_size_kb must be positive",
		},
		{
			name:    "negative rate",
			mutate:  func(c *Config) { c.MaxLogRate = -1 },
			wantErr: "max_log_rate cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestConfigClone(t *testing.T) {
	original := DefaultConfig()
	clone := original.Clone()

	require.Equal(t, original, clone)

	clone.Level = LevelError
	clone.Directory = "/elsewhere"
	assert.Equal(t, LevelAll, original.Level)
	assert.NotEqual(t, original.Directory, clone.Directory)
}

func TestConfigMaxBytes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxSizeKB = 1
	assert.Equal(t, int64(1024), cfg.maxBytes())

	cfg.MaxSizeKB = 10 * 1024
	assert.Equal(t, int64(10*1024*1024), cfg.maxBytes())
}

func TestConfigSamePath(t *testing.T) {
	a := DefaultConfig()
	b := a.Clone()
	assert.True(t, a.samePath(b))

	b.Name = "other"
	assert.False(t, a.samePath(b))

	b = a.Clone()
	b.Level = LevelError // non-path field
	assert.True(t, a.samePath(b))
}

func TestNewConfigFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test_config.toml")

	configContent := `
[logx]
level = 4
name = "service"
directory = "/tmp/service_logs"
extension = "txt"
max_size_kb = 2048
max_log_rate = 100
enable_console = false
console_target = "stderr"
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	cfg, err := NewConfigFromFile(configPath)
	require.NoError(t, err)

	assert.Equal(t, LevelWarn, cfg.Level)
	assert.Equal(t, "service", cfg.Name)
	assert.Equal(t, "/tmp/service_logs", cfg.Directory)
	assert.Equal(t, "txt", cfg.Extension)
	assert.Equal(t, int64(2048), cfg.MaxSizeKB)
	assert.Equal(t, int64(100), cfg.MaxLogRate)
	assert.True(t, cfg.EnableFile, "unset keys keep defaults")
	assert.False(t, cfg.EnableConsole)
	assert.Equal(t, "stderr", cfg.ConsoleTarget)
}

// TestNewConfigFromFilePartial leaves level unset: the loader echoes the
// registered default back with its named Level type, which must round-trip
// through extraction without an error.
func TestNewConfigFromFilePartial(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "partial_config.toml")

	configContent := `
[logx]
name = "partial"
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	cfg, err := NewConfigFromFile(configPath)
	require.NoError(t, err)

	assert.Equal(t, "partial", cfg.Name)
	assert.Equal(t, LevelAll, cfg.Level, "unset level keeps the default")
	assert.Equal(t, int64(defaultMaxSizeKB), cfg.MaxSizeKB)
}

// TestNewConfigFromFileLevelName accepts level names in the file, the same
// as the override surface does.
func TestNewConfigFromFileLevelName(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "named_level.toml")

	configContent := `
[logx]
level = "warn"
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	cfg, err := NewConfigFromFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, LevelWarn, cfg.Level)
}

func TestNewConfigFromFileBadLevelName(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "bad_level.toml")

	configContent := `
[logx]
level = "verbose"
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	_, err := NewConfigFromFile(configPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid level string")
}

func TestNewConfigFromFileMissing(t *testing.T) {
	cfg, err := NewConfigFromFile(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err, "a missing config file falls back to defaults")
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestNewConfigFromFileInvalidValues(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "bad_config.toml")

	configContent := `
[logx]
max_size_kb = -5
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	_, err := NewConfigFromFile(configPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_size_kb")
}

func TestApplyOverride(t *testing.T) {
	logger, _ := createTestLogger(t)

	err := logger.ApplyOverride(
		"level=error",
		"max_log_rate=50",
	)
	require.NoError(t, err)

	cfg := logger.GetConfig()
	assert.Equal(t, LevelError, cfg.Level)
	assert.Equal(t, int64(50), cfg.MaxLogRate)
	assert.Equal(t, LevelError, logger.GetLogLevel())
}

func TestApplyOverrideNumericLevel(t *testing.T) {
	logger, _ := createTestLogger(t)

	require.NoError(t, logger.ApplyOverride("level=6"))
	assert.Equal(t, LevelFatal, logger.GetConfig().Level)
}

func TestApplyOverrideErrors(t *testing.T) {
	logger, _ := createTestLogger(t)

	err := logger.ApplyOverride("no-equals-sign")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected key=value")

	err = logger.ApplyOverride("bogus_key=1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown config key")

	err = logger.ApplyOverride("max_size_kb=ten")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid max_size_kb")

	// Multiple bad overrides are reported together
	err = logger.ApplyOverride("bogus=1", "enable_file=maybe")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "multiple configuration errors")
}
