// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/loresmith/loresmith/ent/campaign"
	"github.com/loresmith/loresmith/ent/changelogentry"
	"github.com/loresmith/loresmith/ent/entity"
	"github.com/loresmith/loresmith/ent/entityimportance"
	"github.com/loresmith/loresmith/ent/entityrelationship"
	"github.com/loresmith/loresmith/ent/file"
	"github.com/loresmith/loresmith/ent/fileprocessingchunk"
	"github.com/loresmith/loresmith/ent/notification"
	"github.com/loresmith/loresmith/ent/queuemessage"
	"github.com/loresmith/loresmith/ent/rebuildstatus"
	"github.com/loresmith/loresmith/ent/schema"
	"github.com/loresmith/loresmith/ent/sessiondigest"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	campaignFields := schema.Campaign{}.Fields()
	_ = campaignFields
	// campaignDescCreatedAt is the schema descriptor for created_at field.
	campaignDescCreatedAt := campaignFields[5].Descriptor()
	// campaign.DefaultCreatedAt holds the default value on creation for the created_at field.
	campaign.DefaultCreatedAt = campaignDescCreatedAt.Default.(func() time.Time)
	// campaignDescUpdatedAt is the schema descriptor for updated_at field.
	campaignDescUpdatedAt := campaignFields[6].Descriptor()
	// campaign.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	campaign.DefaultUpdatedAt = campaignDescUpdatedAt.Default.(func() time.Time)
	// campaign.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	campaign.UpdateDefaultUpdatedAt = campaignDescUpdatedAt.UpdateDefault.(func() time.Time)
	changelogentryFields := schema.ChangelogEntry{}.Fields()
	_ = changelogentryFields
	// changelogentryDescTimestamp is the schema descriptor for timestamp field.
	changelogentryDescTimestamp := changelogentryFields[3].Descriptor()
	// changelogentry.DefaultTimestamp holds the default value on creation for the timestamp field.
	changelogentry.DefaultTimestamp = changelogentryDescTimestamp.Default.(func() time.Time)
	// changelogentryDescAppliedToGraph is the schema descriptor for applied_to_graph field.
	changelogentryDescAppliedToGraph := changelogentryFields[5].Descriptor()
	// changelogentry.DefaultAppliedToGraph holds the default value on creation for the applied_to_graph field.
	changelogentry.DefaultAppliedToGraph = changelogentryDescAppliedToGraph.Default.(bool)
	entityFields := schema.Entity{}.Fields()
	_ = entityFields
	// entityDescCreatedAt is the schema descriptor for created_at field.
	entityDescCreatedAt := entityFields[10].Descriptor()
	// entity.DefaultCreatedAt holds the default value on creation for the created_at field.
	entity.DefaultCreatedAt = entityDescCreatedAt.Default.(func() time.Time)
	// entityDescUpdatedAt is the schema descriptor for updated_at field.
	entityDescUpdatedAt := entityFields[11].Descriptor()
	// entity.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	entity.DefaultUpdatedAt = entityDescUpdatedAt.Default.(func() time.Time)
	// entity.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	entity.UpdateDefaultUpdatedAt = entityDescUpdatedAt.UpdateDefault.(func() time.Time)
	entityimportanceFields := schema.EntityImportance{}.Fields()
	_ = entityimportanceFields
	// entityimportanceDescComputedAt is the schema descriptor for computed_at field.
	entityimportanceDescComputedAt := entityimportanceFields[6].Descriptor()
	// entityimportance.DefaultComputedAt holds the default value on creation for the computed_at field.
	entityimportance.DefaultComputedAt = entityimportanceDescComputedAt.Default.(func() time.Time)
	// entityimportance.UpdateDefaultComputedAt holds the default value on update for the computed_at field.
	entityimportance.UpdateDefaultComputedAt = entityimportanceDescComputedAt.UpdateDefault.(func() time.Time)
	entityrelationshipFields := schema.EntityRelationship{}.Fields()
	_ = entityrelationshipFields
	// entityrelationshipDescCreatedAt is the schema descriptor for created_at field.
	entityrelationshipDescCreatedAt := entityrelationshipFields[7].Descriptor()
	// entityrelationship.DefaultCreatedAt holds the default value on creation for the created_at field.
	entityrelationship.DefaultCreatedAt = entityrelationshipDescCreatedAt.Default.(func() time.Time)
	// entityrelationshipDescUpdatedAt is the schema descriptor for updated_at field.
	entityrelationshipDescUpdatedAt := entityrelationshipFields[8].Descriptor()
	// entityrelationship.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	entityrelationship.DefaultUpdatedAt = entityrelationshipDescUpdatedAt.Default.(func() time.Time)
	// entityrelationship.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	entityrelationship.UpdateDefaultUpdatedAt = entityrelationshipDescUpdatedAt.UpdateDefault.(func() time.Time)
	fileFields := schema.File{}.Fields()
	_ = fileFields
	// fileDescCreatedAt is the schema descriptor for created_at field.
	fileDescCreatedAt := fileFields[7].Descriptor()
	// file.DefaultCreatedAt holds the default value on creation for the created_at field.
	file.DefaultCreatedAt = fileDescCreatedAt.Default.(func() time.Time)
	// fileDescUpdatedAt is the schema descriptor for updated_at field.
	fileDescUpdatedAt := fileFields[8].Descriptor()
	// file.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	file.DefaultUpdatedAt = fileDescUpdatedAt.Default.(func() time.Time)
	// file.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	file.UpdateDefaultUpdatedAt = fileDescUpdatedAt.UpdateDefault.(func() time.Time)
	fileprocessingchunkFields := schema.FileProcessingChunk{}.Fields()
	_ = fileprocessingchunkFields
	// fileprocessingchunkDescRetryCount is the schema descriptor for retry_count field.
	fileprocessingchunkDescRetryCount := fileprocessingchunkFields[10].Descriptor()
	// fileprocessingchunk.DefaultRetryCount holds the default value on creation for the retry_count field.
	fileprocessingchunk.DefaultRetryCount = fileprocessingchunkDescRetryCount.Default.(int)
	// fileprocessingchunkDescCreatedAt is the schema descriptor for created_at field.
	fileprocessingchunkDescCreatedAt := fileprocessingchunkFields[13].Descriptor()
	// fileprocessingchunk.DefaultCreatedAt holds the default value on creation for the created_at field.
	fileprocessingchunk.DefaultCreatedAt = fileprocessingchunkDescCreatedAt.Default.(func() time.Time)
	// fileprocessingchunkDescUpdatedAt is the schema descriptor for updated_at field.
	fileprocessingchunkDescUpdatedAt := fileprocessingchunkFields[14].Descriptor()
	// fileprocessingchunk.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	fileprocessingchunk.DefaultUpdatedAt = fileprocessingchunkDescUpdatedAt.Default.(func() time.Time)
	// fileprocessingchunk.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	fileprocessingchunk.UpdateDefaultUpdatedAt = fileprocessingchunkDescUpdatedAt.UpdateDefault.(func() time.Time)
	notificationFields := schema.Notification{}.Fields()
	_ = notificationFields
	// notificationDescRead is the schema descriptor for read field.
	notificationDescRead := notificationFields[6].Descriptor()
	// notification.DefaultRead holds the default value on creation for the read field.
	notification.DefaultRead = notificationDescRead.Default.(bool)
	// notificationDescCreatedAt is the schema descriptor for created_at field.
	notificationDescCreatedAt := notificationFields[7].Descriptor()
	// notification.DefaultCreatedAt holds the default value on creation for the created_at field.
	notification.DefaultCreatedAt = notificationDescCreatedAt.Default.(func() time.Time)
	queuemessageFields := schema.QueueMessage{}.Fields()
	_ = queuemessageFields
	// queuemessageDescRetryCount is the schema descriptor for retry_count field.
	queuemessageDescRetryCount := queuemessageFields[5].Descriptor()
	// queuemessage.DefaultRetryCount holds the default value on creation for the retry_count field.
	queuemessage.DefaultRetryCount = queuemessageDescRetryCount.Default.(int)
	// queuemessageDescNextRetryAt is the schema descriptor for next_retry_at field.
	queuemessageDescNextRetryAt := queuemessageFields[7].Descriptor()
	// queuemessage.DefaultNextRetryAt holds the default value on creation for the next_retry_at field.
	queuemessage.DefaultNextRetryAt = queuemessageDescNextRetryAt.Default.(func() time.Time)
	// queuemessageDescCreatedAt is the schema descriptor for created_at field.
	queuemessageDescCreatedAt := queuemessageFields[14].Descriptor()
	// queuemessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	queuemessage.DefaultCreatedAt = queuemessageDescCreatedAt.Default.(func() time.Time)
	// queuemessageDescUpdatedAt is the schema descriptor for updated_at field.
	queuemessageDescUpdatedAt := queuemessageFields[15].Descriptor()
	// queuemessage.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	queuemessage.DefaultUpdatedAt = queuemessageDescUpdatedAt.Default.(func() time.Time)
	// queuemessage.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	queuemessage.UpdateDefaultUpdatedAt = queuemessageDescUpdatedAt.UpdateDefault.(func() time.Time)
	rebuildstatusFields := schema.RebuildStatus{}.Fields()
	_ = rebuildstatusFields
	// rebuildstatusDescCreatedAt is the schema descriptor for created_at field.
	rebuildstatusDescCreatedAt := rebuildstatusFields[6].Descriptor()
	// rebuildstatus.DefaultCreatedAt holds the default value on creation for the created_at field.
	rebuildstatus.DefaultCreatedAt = rebuildstatusDescCreatedAt.Default.(func() time.Time)
	sessiondigestFields := schema.SessionDigest{}.Fields()
	_ = sessiondigestFields
	// sessiondigestDescCreatedAt is the schema descriptor for created_at field.
	sessiondigestDescCreatedAt := sessiondigestFields[5].Descriptor()
	// sessiondigest.DefaultCreatedAt holds the default value on creation for the created_at field.
	sessiondigest.DefaultCreatedAt = sessiondigestDescCreatedAt.Default.(func() time.Time)
	// sessiondigestDescUpdatedAt is the schema descriptor for updated_at field.
	sessiondigestDescUpdatedAt := sessiondigestFields[6].Descriptor()
	// sessiondigest.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	sessiondigest.DefaultUpdatedAt = sessiondigestDescUpdatedAt.Default.(func() time.Time)
	// sessiondigest.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	sessiondigest.UpdateDefaultUpdatedAt = sessiondigestDescUpdatedAt.UpdateDefault.(func() time.Time)
}
