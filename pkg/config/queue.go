package config

import "time"

// QueueConfig contains ingestion queue and worker pool configuration.
// These values control how messages are polled, claimed, retried, and
// dead-lettered.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	WorkerCount int `yaml:"worker_count"`

	// PollInterval is the base interval for checking pending messages.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// MessageTimeout is the maximum time a single message may be processed.
	// Hitting it nacks the message with its retry count incremented.
	MessageTimeout time.Duration `yaml:"message_timeout"`

	// HeartbeatInterval is how often a worker refreshes its claim.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// ClaimTimeout is how long a claim may go without a heartbeat before the
	// message is considered orphaned and redelivered.
	ClaimTimeout time.Duration `yaml:"claim_timeout"`

	// GracefulShutdownTimeout is the max time to wait for active messages to
	// complete during shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// BackoffBase is the first retry delay; each retry doubles it.
	BackoffBase time.Duration `yaml:"backoff_base"`

	// BackoffCap bounds the exponential backoff.
	BackoffCap time.Duration `yaml:"backoff_cap"`

	// MaxRetriesExtraction is the dead-letter ceiling for entity_extraction
	// and graph_rebuild messages.
	MaxRetriesExtraction int `yaml:"max_retries_extraction"`

	// MaxRetriesFileProcessing is the dead-letter ceiling for file_processing
	// messages.
	MaxRetriesFileProcessing int `yaml:"max_retries_file_processing"`

	// TenantBatchLimit caps how many messages one drain pass takes per tenant,
	// keeping cross-tenant scheduling fair.
	TenantBatchLimit int `yaml:"tenant_batch_limit"`

	// RateLimitHintBuffer is the fraction added to provider retry-after hints
	// (0.1 = wait 10% longer than asked).
	RateLimitHintBuffer float64 `yaml:"rate_limit_hint_buffer"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:              5,
		PollInterval:             1 * time.Second,
		PollIntervalJitter:       500 * time.Millisecond,
		MessageTimeout:           10 * time.Minute,
		HeartbeatInterval:        30 * time.Second,
		ClaimTimeout:             2 * time.Minute,
		GracefulShutdownTimeout:  10 * time.Minute,
		BackoffBase:              2 * time.Second,
		BackoffCap:               300 * time.Second,
		MaxRetriesExtraction:     5,
		MaxRetriesFileProcessing: 3,
		TenantBatchLimit:         10,
		RateLimitHintBuffer:      0.1,
	}
}
