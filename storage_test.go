package logx

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var archiveNamePattern = regexp.MustCompile(`^LogX_\d{4}_\d{2}_\d{2}_\d{2}_\d{2}_\d{2}(_\d+)?\.log$`)

func TestFileSizeMissingFile(t *testing.T) {
	size, err := fileSize(filepath.Join(t.TempDir(), "does-not-exist.log"))
	require.NoError(t, err, "a missing file is size 0, not an error")
	assert.Equal(t, int64(0), size)
}

func TestLogFilePath(t *testing.T) {
	assert.Equal(t, filepath.Join("/var/log", "LogX.log"), logFilePath("/var/log", "LogX", "log"))
	assert.Equal(t, filepath.Join("/var/log", "LogX"), logFilePath("/var/log", "LogX", ""))
}

func TestArchivePathDisambiguation(t *testing.T) {
	tmpDir := t.TempDir()
	stamp := time.Date(2024, 3, 5, 8, 9, 7, 0, time.Local)

	first, err := archivePath(tmpDir, "LogX", "log", stamp)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmpDir, "LogX_2024_03_05_08_09_07.log"), first)

	// Occupy the primary name; the next probe must not collide
	require.NoError(t, os.WriteFile(first, []byte("occupied"), 0644))

	second, err := archivePath(tmpDir, "LogX", "log", stamp)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmpDir, "LogX_2024_03_05_08_09_07_1.log"), second)

	require.NoError(t, os.WriteFile(second, []byte("occupied"), 0644))

	third, err := archivePath(tmpDir, "LogX", "log", stamp)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmpDir, "LogX_2024_03_05_08_09_07_2.log"), third)
}

// TestRotationBoundaryBelowLimit: a file at limit-1 bytes must not rotate
func TestRotationBoundaryBelowLimit(t *testing.T) {
	logger, tmpDir := createTestLogger(t, func(cfg *Config) {
		cfg.MaxSizeKB = 1 // 1024-byte limit
	})

	path := filepath.Join(tmpDir, "LogX.log")
	require.NoError(t, os.WriteFile(path, bytes.Repeat([]byte("a"), 1023), 0644))

	logger.Info("boundary probe")

	files := listLogFiles(t, tmpDir)
	assert.Len(t, files, 1, "no rotation expected below the limit")

	size, err := fileSize(path)
	require.NoError(t, err)
	assert.Greater(t, size, int64(1023), "append proceeded against the same file")
}

// TestRotationBoundaryAtLimit: a file at exactly the limit rotates before writing,
// and the fresh active file contains only the newest record
func TestRotationBoundaryAtLimit(t *testing.T) {
	logger, tmpDir := createTestLogger(t, func(cfg *Config) {
		cfg.MaxSizeKB = 1
	})

	path := filepath.Join(tmpDir, "LogX.log")
	require.NoError(t, os.WriteFile(path, bytes.Repeat([]byte("a"), 1024), 0644))

	logger.Info("first record after rotation")

	files := listLogFiles(t, tmpDir)
	require.Len(t, files, 2, "expected active file plus one archive")

	var archive string
	for _, name := range files {
		if name != "LogX.log" {
			archive = name
		}
	}
	require.NotEmpty(t, archive)
	assert.Regexp(t, archiveNamePattern, archive)

	archived, err := os.ReadFile(filepath.Join(tmpDir, archive))
	require.NoError(t, err)
	assert.Equal(t, 1024, len(archived), "archive holds the pre-rotation content")

	active, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(active), "\n"), "\n")
	assert.Len(t, lines, 1, "fresh file contains only the newest record")
	assert.Contains(t, lines[0], "first record after rotation")

	assert.Equal(t, uint64(1), logger.Stats().TotalRotations)
}

func TestRotationSequence(t *testing.T) {
	logger, tmpDir := createTestLogger(t, func(cfg *Config) {
		cfg.MaxSizeKB = 1
	})

	// Each record is ~100 bytes; 60 records cross the 1 KiB limit several times
	for i := 0; i < 60; i++ {
		logger.Info(fmt.Sprintf("rotation sequence message %03d with some padding payload", i))
	}

	files := listLogFiles(t, tmpDir)
	assert.GreaterOrEqual(t, len(files), 3, "expected multiple archives")

	for _, name := range files {
		if name == "LogX.log" {
			continue
		}
		assert.Regexp(t, archiveNamePattern, name)
	}

	assert.Equal(t, uint64(len(files)-1), logger.Stats().TotalRotations)
}

func TestAppendCreatesFile(t *testing.T) {
	logger, tmpDir := createTestLogger(t)

	logger.Info("creates the file on first append")

	content, err := os.ReadFile(filepath.Join(tmpDir, "LogX.log"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "creates the file on first append")
}

// listLogFiles returns the names of all .log files in dir
func listLogFiles(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".log") {
			names = append(names, entry.Name())
		}
	}
	return names
}
