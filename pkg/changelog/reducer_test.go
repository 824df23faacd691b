package changelog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loresmith/loresmith/pkg/models"
)

func testPayloads() []models.ChangelogPayload {
	return []models.ChangelogPayload{
		{
			NewEntities: []models.NewEntityChange{
				{EntityID: "c1_zara", EntityType: "character", Name: "Zara"},
			},
			EntityUpdates: []models.EntityUpdateChange{
				{EntityID: "c1_zara", NewStatus: "staging", Metadata: map[string]string{"source": "book1"}},
			},
		},
		{
			EntityUpdates: []models.EntityUpdateChange{
				{EntityID: "c1_zara", NewStatus: "approved", Description: "A smuggler turned informant."},
			},
			RelationshipUpdates: []models.RelationshipUpdateChange{
				{FromEntityID: "c1_zara", ToEntityID: "c1_docks", RelationshipType: "operates_in", NewStatus: "staging"},
			},
		},
		{
			RelationshipUpdates: []models.RelationshipUpdateChange{
				{FromEntityID: "c1_zara", ToEntityID: "c1_docks", RelationshipType: "operates_in", NewStatus: "active", Metadata: map[string]string{"since": "session 3"}},
			},
		},
	}
}

func TestReduceLatestWins(t *testing.T) {
	overlay := Reduce(testPayloads())

	zara := overlay.EntityState["c1_zara"]
	assert.Equal(t, "approved", zara.Status)
	assert.Equal(t, "A smuggler turned informant.", zara.Description)
	// Earlier metadata survives unless overwritten.
	assert.Equal(t, "book1", zara.Metadata["source"])

	rel := overlay.RelationshipState[RelationshipKey("c1_zara", "c1_docks", "operates_in")]
	assert.Equal(t, "active", rel.Status)
	assert.Equal(t, "session 3", rel.Metadata["since"])

	require.Contains(t, overlay.NewEntities, "c1_zara")
}

func TestReduceReplayIdempotent(t *testing.T) {
	once := Reduce(testPayloads())
	again := Reduce([]models.ChangelogPayload{once.AsPayload()})

	assert.Equal(t, once.EntityState, again.EntityState)
	assert.Equal(t, once.RelationshipState, again.RelationshipState)
	assert.Equal(t, once.NewEntities, again.NewEntities)
}

func TestReduceEmpty(t *testing.T) {
	overlay := Reduce(nil)
	assert.Empty(t, overlay.EntityState)
	assert.Empty(t, overlay.RelationshipState)
	assert.Empty(t, overlay.NewEntities)
}

func TestAffectedEntityIDs(t *testing.T) {
	ids := AffectedEntityIDs(testPayloads())
	assert.Equal(t, []string{"c1_docks", "c1_zara"}, ids)
}

func TestRelationshipChurn(t *testing.T) {
	assert.Equal(t, 2, RelationshipChurn(testPayloads()))
	assert.Equal(t, 0, RelationshipChurn(nil))
}
