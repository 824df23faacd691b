package config

import "time"

// RetentionConfig controls the scheduled maintenance sweeps.
type RetentionConfig struct {
	// StuckFileTimeout promotes files stuck in a non-terminal status to
	// error after this long without progress.
	StuckFileTimeout time.Duration `yaml:"stuck_file_timeout"`

	// StagingObjectMaxAge is the GC age for leftover staging blobs.
	StagingObjectMaxAge time.Duration `yaml:"staging_object_max_age"`

	// SweepInterval is how often the maintenance loop runs.
	SweepInterval time.Duration `yaml:"sweep_interval"`

	// RebuildCheckInterval is how often the rebuild trigger inspects the
	// changelog.
	RebuildCheckInterval time.Duration `yaml:"rebuild_check_interval"`

	// NotificationTTL is the maximum age of read notifications before deletion.
	NotificationTTL time.Duration `yaml:"notification_ttl"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		StuckFileTimeout:     10 * time.Minute,
		StagingObjectMaxAge:  24 * time.Hour,
		SweepInterval:        5 * time.Minute,
		RebuildCheckInterval: 2 * time.Minute,
		NotificationTTL:      30 * 24 * time.Hour,
	}
}
