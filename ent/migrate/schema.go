// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CampaignsColumns holds the columns for the "campaigns" table.
	CampaignsColumns = []*schema.Column{
		{Name: "campaign_id", Type: field.TypeString, Unique: true},
		{Name: "tenant", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "archived"}, Default: "active"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CampaignsTable holds the schema information for the "campaigns" table.
	CampaignsTable = &schema.Table{
		Name:       "campaigns",
		Columns:    CampaignsColumns,
		PrimaryKey: []*schema.Column{CampaignsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "campaign_tenant",
				Unique:  false,
				Columns: []*schema.Column{CampaignsColumns[1]},
			},
			{
				Name:    "campaign_tenant_status",
				Unique:  false,
				Columns: []*schema.Column{CampaignsColumns[1], CampaignsColumns[4]},
			},
		},
	}
	// ChangelogEntriesColumns holds the columns for the "changelog_entries" table.
	ChangelogEntriesColumns = []*schema.Column{
		{Name: "changelog_id", Type: field.TypeString, Unique: true},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "applied_to_graph", Type: field.TypeBool, Default: false},
		{Name: "campaign_id", Type: field.TypeString},
	}
	// ChangelogEntriesTable holds the schema information for the "changelog_entries" table.
	ChangelogEntriesTable = &schema.Table{
		Name:       "changelog_entries",
		Columns:    ChangelogEntriesColumns,
		PrimaryKey: []*schema.Column{ChangelogEntriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "changelog_entries_campaigns_changelog_entries",
				Columns:    []*schema.Column{ChangelogEntriesColumns[5]},
				RefColumns: []*schema.Column{CampaignsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "changelogentry_campaign_id_applied_to_graph",
				Unique:  false,
				Columns: []*schema.Column{ChangelogEntriesColumns[5], ChangelogEntriesColumns[4]},
			},
			{
				Name:    "changelogentry_campaign_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ChangelogEntriesColumns[5], ChangelogEntriesColumns[2]},
			},
			{
				Name:    "changelogentry_campaign_id_session_id",
				Unique:  false,
				Columns: []*schema.Column{ChangelogEntriesColumns[5], ChangelogEntriesColumns[1]},
			},
		},
	}
	// CommunitiesColumns holds the columns for the "communities" table.
	CommunitiesColumns = []*schema.Column{
		{Name: "community_id", Type: field.TypeString, Unique: true},
		{Name: "level", Type: field.TypeInt},
		{Name: "parent_community_id", Type: field.TypeString, Nullable: true},
		{Name: "entity_ids", Type: field.TypeJSON},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "campaign_id", Type: field.TypeString},
	}
	// CommunitiesTable holds the schema information for the "communities" table.
	CommunitiesTable = &schema.Table{
		Name:       "communities",
		Columns:    CommunitiesColumns,
		PrimaryKey: []*schema.Column{CommunitiesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "communities_campaigns_communities",
				Columns:    []*schema.Column{CommunitiesColumns[5]},
				RefColumns: []*schema.Column{CampaignsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "community_campaign_id_level",
				Unique:  false,
				Columns: []*schema.Column{CommunitiesColumns[5], CommunitiesColumns[1]},
			},
		},
	}
	// EntitiesColumns holds the columns for the "entities" table.
	EntitiesColumns = []*schema.Column{
		{Name: "entity_id", Type: field.TypeString, Unique: true},
		{Name: "entity_type", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "metadata", Type: field.TypeJSON},
		{Name: "confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "source_type", Type: field.TypeString},
		{Name: "source_id", Type: field.TypeString},
		{Name: "embedding_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "campaign_id", Type: field.TypeString},
	}
	// EntitiesTable holds the schema information for the "entities" table.
	EntitiesTable = &schema.Table{
		Name:       "entities",
		Columns:    EntitiesColumns,
		PrimaryKey: []*schema.Column{EntitiesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "entities_campaigns_entities",
				Columns:    []*schema.Column{EntitiesColumns[11]},
				RefColumns: []*schema.Column{CampaignsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "entity_campaign_id_entity_type",
				Unique:  false,
				Columns: []*schema.Column{EntitiesColumns[11], EntitiesColumns[1]},
			},
			{
				Name:    "entity_campaign_id_name",
				Unique:  false,
				Columns: []*schema.Column{EntitiesColumns[11], EntitiesColumns[2]},
			},
			{
				Name:    "entity_campaign_id_source_id",
				Unique:  false,
				Columns: []*schema.Column{EntitiesColumns[11], EntitiesColumns[7]},
			},
		},
	}
	// EntityImportancesColumns holds the columns for the "entity_importances" table.
	EntityImportancesColumns = []*schema.Column{
		{Name: "entity_id", Type: field.TypeString, Unique: true},
		{Name: "pagerank", Type: field.TypeFloat64},
		{Name: "betweenness_centrality", Type: field.TypeFloat64},
		{Name: "hierarchy_level", Type: field.TypeInt},
		{Name: "composite_score", Type: field.TypeFloat64},
		{Name: "computed_at", Type: field.TypeTime},
		{Name: "campaign_id", Type: field.TypeString},
	}
	// EntityImportancesTable holds the schema information for the "entity_importances" table.
	EntityImportancesTable = &schema.Table{
		Name:       "entity_importances",
		Columns:    EntityImportancesColumns,
		PrimaryKey: []*schema.Column{EntityImportancesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "entity_importances_campaigns_importances",
				Columns:    []*schema.Column{EntityImportancesColumns[6]},
				RefColumns: []*schema.Column{CampaignsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "entityimportance_campaign_id_composite_score",
				Unique:  false,
				Columns: []*schema.Column{EntityImportancesColumns[6], EntityImportancesColumns[4]},
			},
		},
	}
	// EntityRelationshipsColumns holds the columns for the "entity_relationships" table.
	EntityRelationshipsColumns = []*schema.Column{
		{Name: "relationship_id", Type: field.TypeString, Unique: true},
		{Name: "from_entity_id", Type: field.TypeString},
		{Name: "to_entity_id", Type: field.TypeString},
		{Name: "relationship_type", Type: field.TypeString},
		{Name: "strength", Type: field.TypeFloat64, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "campaign_id", Type: field.TypeString},
	}
	// EntityRelationshipsTable holds the schema information for the "entity_relationships" table.
	EntityRelationshipsTable = &schema.Table{
		Name:       "entity_relationships",
		Columns:    EntityRelationshipsColumns,
		PrimaryKey: []*schema.Column{EntityRelationshipsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "entity_relationships_campaigns_relationships",
				Columns:    []*schema.Column{EntityRelationshipsColumns[8]},
				RefColumns: []*schema.Column{CampaignsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "entityrelationship_campaign_id_from_entity_id_to_entity_id_relationship_type",
				Unique:  true,
				Columns: []*schema.Column{EntityRelationshipsColumns[8], EntityRelationshipsColumns[1], EntityRelationshipsColumns[2], EntityRelationshipsColumns[3]},
			},
			{
				Name:    "entityrelationship_campaign_id_from_entity_id",
				Unique:  false,
				Columns: []*schema.Column{EntityRelationshipsColumns[8], EntityRelationshipsColumns[1]},
			},
			{
				Name:    "entityrelationship_campaign_id_to_entity_id",
				Unique:  false,
				Columns: []*schema.Column{EntityRelationshipsColumns[8], EntityRelationshipsColumns[2]},
			},
		},
	}
	// FilesColumns holds the columns for the "files" table.
	FilesColumns = []*schema.Column{
		{Name: "file_key", Type: field.TypeString, Unique: true},
		{Name: "tenant", Type: field.TypeString},
		{Name: "file_name", Type: field.TypeString},
		{Name: "content_type", Type: field.TypeString},
		{Name: "size", Type: field.TypeInt64},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"uploaded", "processing", "chunked", "indexing", "completed", "error", "timeout"}, Default: "uploaded"},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// FilesTable holds the schema information for the "files" table.
	FilesTable = &schema.Table{
		Name:       "files",
		Columns:    FilesColumns,
		PrimaryKey: []*schema.Column{FilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "file_tenant",
				Unique:  false,
				Columns: []*schema.Column{FilesColumns[1]},
			},
			{
				Name:    "file_tenant_status",
				Unique:  false,
				Columns: []*schema.Column{FilesColumns[1], FilesColumns[5]},
			},
			{
				Name:    "file_status_updated_at",
				Unique:  false,
				Columns: []*schema.Column{FilesColumns[5], FilesColumns[8]},
			},
		},
	}
	// FileProcessingChunksColumns holds the columns for the "file_processing_chunks" table.
	FileProcessingChunksColumns = []*schema.Column{
		{Name: "chunk_id", Type: field.TypeString, Unique: true},
		{Name: "tenant", Type: field.TypeString},
		{Name: "chunk_index", Type: field.TypeInt},
		{Name: "total_chunks", Type: field.TypeInt},
		{Name: "page_start", Type: field.TypeInt, Nullable: true},
		{Name: "page_end", Type: field.TypeInt, Nullable: true},
		{Name: "byte_start", Type: field.TypeInt64, Nullable: true},
		{Name: "byte_end", Type: field.TypeInt64, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "processing", "completed", "failed"}, Default: "pending"},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "vector_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "file_key", Type: field.TypeString},
	}
	// FileProcessingChunksTable holds the schema information for the "file_processing_chunks" table.
	FileProcessingChunksTable = &schema.Table{
		Name:       "file_processing_chunks",
		Columns:    FileProcessingChunksColumns,
		PrimaryKey: []*schema.Column{FileProcessingChunksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "file_processing_chunks_files_chunks",
				Columns:    []*schema.Column{FileProcessingChunksColumns[14]},
				RefColumns: []*schema.Column{FilesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "fileprocessingchunk_file_key_chunk_index",
				Unique:  true,
				Columns: []*schema.Column{FileProcessingChunksColumns[14], FileProcessingChunksColumns[2]},
			},
			{
				Name:    "fileprocessingchunk_file_key_status",
				Unique:  false,
				Columns: []*schema.Column{FileProcessingChunksColumns[14], FileProcessingChunksColumns[8]},
			},
		},
	}
	// NotificationsColumns holds the columns for the "notifications" table.
	NotificationsColumns = []*schema.Column{
		{Name: "notification_id", Type: field.TypeString, Unique: true},
		{Name: "tenant", Type: field.TypeString},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"file_status_updated", "file_uploaded", "file_processed", "shard_generation", "rebuild_complete"}},
		{Name: "subject_id", Type: field.TypeString},
		{Name: "message", Type: field.TypeString, Size: 2147483647},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "read", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// NotificationsTable holds the schema information for the "notifications" table.
	NotificationsTable = &schema.Table{
		Name:       "notifications",
		Columns:    NotificationsColumns,
		PrimaryKey: []*schema.Column{NotificationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "notification_tenant_created_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[1], NotificationsColumns[7]},
			},
			{
				Name:    "notification_tenant_read",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[1], NotificationsColumns[6]},
			},
		},
	}
	// QueueMessagesColumns holds the columns for the "queue_messages" table.
	QueueMessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "tenant", Type: field.TypeString},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"file_processing", "entity_extraction", "graph_rebuild"}},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "processing", "completed", "dead"}, Default: "pending"},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "max_retries", Type: field.TypeInt},
		{Name: "next_retry_at", Type: field.TypeTime},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "claimed_by", Type: field.TypeString, Nullable: true},
		{Name: "claimed_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "dead_lettered_at", Type: field.TypeTime, Nullable: true},
		{Name: "elapsed_ms", Type: field.TypeInt64, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// QueueMessagesTable holds the schema information for the "queue_messages" table.
	QueueMessagesTable = &schema.Table{
		Name:       "queue_messages",
		Columns:    QueueMessagesColumns,
		PrimaryKey: []*schema.Column{QueueMessagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "queuemessage_status_next_retry_at",
				Unique:  false,
				Columns: []*schema.Column{QueueMessagesColumns[4], QueueMessagesColumns[7]},
			},
			{
				Name:    "queuemessage_tenant_status",
				Unique:  false,
				Columns: []*schema.Column{QueueMessagesColumns[1], QueueMessagesColumns[4]},
			},
			{
				Name:    "queuemessage_status_last_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{QueueMessagesColumns[4], QueueMessagesColumns[11]},
			},
		},
	}
	// RebuildStatusColumns holds the columns for the "rebuild_status" table.
	RebuildStatusColumns = []*schema.Column{
		{Name: "rebuild_id", Type: field.TypeString, Unique: true},
		{Name: "rebuild_type", Type: field.TypeEnum, Enums: []string{"partial", "full"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "succeeded", "failed"}, Default: "pending"},
		{Name: "affected_entity_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "campaign_id", Type: field.TypeString},
	}
	// RebuildStatusTable holds the schema information for the "rebuild_status" table.
	RebuildStatusTable = &schema.Table{
		Name:       "rebuild_status",
		Columns:    RebuildStatusColumns,
		PrimaryKey: []*schema.Column{RebuildStatusColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "rebuild_status_campaigns_rebuilds",
				Columns:    []*schema.Column{RebuildStatusColumns[7]},
				RefColumns: []*schema.Column{CampaignsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "rebuildstatus_campaign_id_status",
				Unique:  false,
				Columns: []*schema.Column{RebuildStatusColumns[7], RebuildStatusColumns[2]},
			},
			{
				Name:    "rebuildstatus_campaign_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{RebuildStatusColumns[7], RebuildStatusColumns[5]},
			},
		},
	}
	// SessionDigestsColumns holds the columns for the "session_digests" table.
	SessionDigestsColumns = []*schema.Column{
		{Name: "digest_id", Type: field.TypeString, Unique: true},
		{Name: "session_number", Type: field.TypeInt},
		{Name: "session_date", Type: field.TypeTime, Nullable: true},
		{Name: "digest_data", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "campaign_id", Type: field.TypeString},
	}
	// SessionDigestsTable holds the schema information for the "session_digests" table.
	SessionDigestsTable = &schema.Table{
		Name:       "session_digests",
		Columns:    SessionDigestsColumns,
		PrimaryKey: []*schema.Column{SessionDigestsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "session_digests_campaigns_digests",
				Columns:    []*schema.Column{SessionDigestsColumns[6]},
				RefColumns: []*schema.Column{CampaignsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "sessiondigest_campaign_id_session_number",
				Unique:  true,
				Columns: []*schema.Column{SessionDigestsColumns[6], SessionDigestsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CampaignsTable,
		ChangelogEntriesTable,
		CommunitiesTable,
		EntitiesTable,
		EntityImportancesTable,
		EntityRelationshipsTable,
		FilesTable,
		FileProcessingChunksTable,
		NotificationsTable,
		QueueMessagesTable,
		RebuildStatusTable,
		SessionDigestsTable,
	}
)

func init() {
	ChangelogEntriesTable.ForeignKeys[0].RefTable = CampaignsTable
	CommunitiesTable.ForeignKeys[0].RefTable = CampaignsTable
	EntitiesTable.ForeignKeys[0].RefTable = CampaignsTable
	EntityImportancesTable.ForeignKeys[0].RefTable = CampaignsTable
	EntityRelationshipsTable.ForeignKeys[0].RefTable = CampaignsTable
	FileProcessingChunksTable.ForeignKeys[0].RefTable = FilesTable
	RebuildStatusTable.ForeignKeys[0].RefTable = CampaignsTable
	SessionDigestsTable.ForeignKeys[0].RefTable = CampaignsTable
}
