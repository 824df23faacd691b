package config

import "time"

// PipelineConfig carries the ingestion pipeline tuning knobs. Everything here
// was an observed constant in production at some point; none of them are
// baked into code.
type PipelineConfig struct {
	// EmbeddingDim is the fixed vector dimension. Every write is validated
	// against it.
	EmbeddingDim int `yaml:"embedding_dim"`

	// EmbeddingModel is stored with every vector's metadata.
	EmbeddingModel string `yaml:"embedding_model"`

	// EmbeddingMaxChars truncates each embedding input.
	EmbeddingMaxChars int `yaml:"embedding_max_chars"`

	// EmbeddingChunkSize is the pre-split threshold for long sources.
	EmbeddingChunkSize int `yaml:"embedding_chunk_size"`

	// EmbeddingBatchSize is the vector index upsert batch size.
	EmbeddingBatchSize int `yaml:"embedding_batch_size"`

	// EmbeddingWarnCount triggers a prominent warning when one source
	// produces more embeddings than this.
	EmbeddingWarnCount int `yaml:"embedding_warn_count"`

	// PDFChunkThresholdMB: PDFs above this are split into page-range chunks.
	PDFChunkThresholdMB int64 `yaml:"pdf_chunk_threshold_mb"`

	// PDFLargeThresholdMB: PDFs above this use the smaller page target.
	PDFLargeThresholdMB int64 `yaml:"pdf_large_threshold_mb"`

	// PDFPagesPerChunk / PDFPagesPerChunkLarge are the page targets.
	PDFPagesPerChunk      int `yaml:"pdf_pages_per_chunk"`
	PDFPagesPerChunkLarge int `yaml:"pdf_pages_per_chunk_large"`

	// NonPDFChunkThresholdMB: non-PDFs above this are split into byte ranges.
	NonPDFChunkThresholdMB int64 `yaml:"non_pdf_chunk_threshold_mb"`

	// ByteChunkSizeMB is the byte-range chunk size.
	ByteChunkSizeMB int64 `yaml:"byte_chunk_size_mb"`

	// EstimatedPageBytes estimates page count when the buffer cannot be loaded.
	EstimatedPageBytes int64 `yaml:"estimated_page_bytes"`

	// StagingChunkChars bounds one LLM extraction chunk.
	StagingChunkChars int `yaml:"staging_chunk_chars"`

	// StagingInterChunkDelay separates sequential chunk calls.
	StagingInterChunkDelay time.Duration `yaml:"staging_inter_chunk_delay"`

	// StagingMaxRetries is the per-chunk retry ceiling.
	StagingMaxRetries int `yaml:"staging_max_retries"`

	// StagingBackoffBase / StagingBackoffCap bound per-chunk retry backoff.
	StagingBackoffBase time.Duration `yaml:"staging_backoff_base"`
	StagingBackoffCap  time.Duration `yaml:"staging_backoff_cap"`

	// StagingRateLimitPause is the extra pause after a rate-limit response
	// before moving to the next chunk.
	StagingRateLimitPause time.Duration `yaml:"staging_rate_limit_pause"`

	// DedupThreshold is the cosine similarity at which a candidate entity is
	// reported as a duplicate.
	DedupThreshold float64 `yaml:"dedup_threshold"`

	// DedupTopK is how many neighbours the deduplicator inspects.
	DedupTopK int `yaml:"dedup_top_k"`

	// RebuildImpactThreshold: cumulative impact at or above this forces a
	// full rebuild.
	RebuildImpactThreshold int `yaml:"rebuild_impact_threshold"`

	// RebuildAffectedFraction: a full rebuild also triggers when more than
	// this fraction of graph nodes is affected.
	RebuildAffectedFraction float64 `yaml:"rebuild_affected_fraction"`

	// RebuildRelationshipWeight weights relationship churn into the
	// cumulative impact.
	RebuildRelationshipWeight float64 `yaml:"rebuild_relationship_weight"`

	// PlanningDecayRate is the default recency decay for context search.
	PlanningDecayRate float64 `yaml:"planning_decay_rate"`
}

// DefaultPipelineConfig returns the built-in pipeline defaults.
func DefaultPipelineConfig() *PipelineConfig {
	return &PipelineConfig{
		EmbeddingDim:              768,
		EmbeddingModel:            "text-embedding-3-small",
		EmbeddingMaxChars:         4000,
		EmbeddingChunkSize:        3500,
		EmbeddingBatchSize:        1000,
		EmbeddingWarnCount:        5000,
		PDFChunkThresholdMB:       100,
		PDFLargeThresholdMB:       200,
		PDFPagesPerChunk:          100,
		PDFPagesPerChunkLarge:     50,
		NonPDFChunkThresholdMB:    128,
		ByteChunkSizeMB:           10,
		EstimatedPageBytes:        150 * 1024,
		StagingChunkChars:         42000,
		StagingInterChunkDelay:    2 * time.Second,
		StagingMaxRetries:         3,
		StagingBackoffBase:        2 * time.Second,
		StagingBackoffCap:         30 * time.Second,
		StagingRateLimitPause:     5 * time.Second,
		DedupThreshold:            0.88,
		DedupTopK:                 5,
		RebuildImpactThreshold:    25,
		RebuildAffectedFraction:   0.2,
		RebuildRelationshipWeight: 0.5,
		PlanningDecayRate:         0.1,
	}
}
