// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Campaign is the predicate function for campaign builders.
type Campaign func(*sql.Selector)

// ChangelogEntry is the predicate function for changelogentry builders.
type ChangelogEntry func(*sql.Selector)

// Community is the predicate function for community builders.
type Community func(*sql.Selector)

// Entity is the predicate function for entity builders.
type Entity func(*sql.Selector)

// EntityImportance is the predicate function for entityimportance builders.
type EntityImportance func(*sql.Selector)

// EntityRelationship is the predicate function for entityrelationship builders.
type EntityRelationship func(*sql.Selector)

// File is the predicate function for file builders.
type File func(*sql.Selector)

// FileProcessingChunk is the predicate function for fileprocessingchunk builders.
type FileProcessingChunk func(*sql.Selector)

// Notification is the predicate function for notification builders.
type Notification func(*sql.Selector)

// QueueMessage is the predicate function for queuemessage builders.
type QueueMessage func(*sql.Selector)

// RebuildStatus is the predicate function for rebuildstatus builders.
type RebuildStatus func(*sql.Selector)

// SessionDigest is the predicate function for sessiondigest builders.
type SessionDigest func(*sql.Selector)
