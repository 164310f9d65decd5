package logx

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// logFilePath builds the full path of the active log file
func logFilePath(dir, name, ext string) string {
	filename := name
	if ext != "" {
		filename = name + "." + ext
	}
	return filepath.Join(dir, filename)
}

// fileSize returns the current size of the active log file.
// A missing file is size 0, not an error.
func fileSize(path string) (int64, error) {
	fi, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmtErrorf("failed to stat log file '%s': %w", path, err)
	}
	return fi.Size(), nil
}

// ensureCapacity archives the active log file once it has reached the
// configured limit. Called with the file lock held, immediately before
// every append; the next append implicitly starts a fresh file.
func (l *Logger) ensureCapacity(cfg *Config, rotatedAt time.Time) error {
	path := cfg.logFilePath()

	size, err := fileSize(path)
	if err != nil {
		return err
	}
	if size < cfg.maxBytes() {
		return nil
	}

	return l.archiveLogFile(cfg, rotatedAt)
}

// archiveLogFile renames the active log file to a timestamped archive name.
// The rename is the atomic rotation step; the active path no longer exists
// afterwards.
func (l *Logger) archiveLogFile(cfg *Config, rotatedAt time.Time) error {
	target, err := archivePath(cfg.Directory, cfg.Name, cfg.Extension, rotatedAt)
	if err != nil {
		return err
	}

	if err := os.Rename(cfg.logFilePath(), target); err != nil {
		return fmtErrorf("failed to archive log file to '%s': %w", target, err)
	}

	l.state.TotalRotations.Add(1)
	return nil
}

// archivePath picks a non-colliding archive name for the rotation instant:
// <name>_<yyyy_MM_dd_HH_mm_ss>.<ext>, with a numeric suffix probe when a
// prior archive already holds that name.
func archivePath(dir, name, ext string, rotatedAt time.Time) (string, error) {
	base := name + "_" + rotatedAt.Format(archiveTimestampLayout)

	for i := 0; i < maxArchiveAttempts; i++ {
		candidate := base
		if i > 0 {
			candidate = fmt.Sprintf("%s_%d", base, i)
		}
		if ext != "" {
			candidate += "." + ext
		}

		full := filepath.Join(dir, candidate)
		if _, err := os.Stat(full); os.IsNotExist(err) {
			return full, nil
		}
	}

	return "", fmtErrorf("no free archive name for '%s' after %d attempts", base, maxArchiveAttempts)
}

// appendLine appends one rendered line to the active log file through a
// scoped handle: open in append mode, write, sync, close, on every exit
// path. A crash between calls never leaves a record half-buffered.
func (l *Logger) appendLine(cfg *Config, line []byte) error {
	path := cfg.logFilePath()

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmtErrorf("failed to open log file '%s': %w", path, err)
	}

	var writeErr error
	if _, err := file.Write(line); err != nil {
		writeErr = fmtErrorf("failed to write log file '%s': %w", path, err)
	}

	if err := file.Sync(); err != nil && writeErr == nil {
		writeErr = fmtErrorf("failed to sync log file '%s': %w", path, err)
	}

	if err := file.Close(); err != nil && writeErr == nil {
		writeErr = fmtErrorf("failed to close log file '%s': %w", path, err)
	}

	return writeErr
}
