package models

// Digest section types used by planning-context search filters.
const (
	DigestSectionRecap     = "recap"
	DigestSectionPlan      = "plan"
	DigestSectionNPCs      = "npcs"
	DigestSectionLocations = "locations"
	DigestSectionNotes     = "notes"
)

// DigestSection is one labelled text section of a session digest.
type DigestSection struct {
	SectionType string `json:"section_type"`
	Text        string `json:"text"`
}

// DigestData is the digest_data column of a SessionDigest: the labelled text
// sections planning-context search runs over.
type DigestData struct {
	Sections []DigestSection `json:"sections"`
	// VectorIDs are the section embeddings written for this revision, kept so
	// a re-upsert can drop the stale vectors first.
	VectorIDs []string `json:"vector_ids,omitempty"`
}
