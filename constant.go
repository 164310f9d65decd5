package logx

// Timestamp layouts
const (
	// defaultTimestampLayout renders record timestamps at millisecond precision
	defaultTimestampLayout = "2006-01-02 15:04:05.000"
	// archiveTimestampLayout names rotated files
	archiveTimestampLayout = "2006_01_02_15_04_05"
)

// Storage
const (
	// Size multiplier for KB values in config
	sizeMultiplier int64 = 1024
	// Default rotation limit: 10 MiB
	defaultMaxSizeKB int64 = 10 * 1024
	// Archive name probes before rotation gives up
	maxArchiveAttempts = 1000
	// Padded width of the level tag in a formatted line
	levelFieldWidth = 5
)
