package graph

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loresmith/loresmith/ent"
	"github.com/loresmith/loresmith/pkg/models"
	testdb "github.com/loresmith/loresmith/test/database"
)

func setupGraph(t *testing.T) (*ent.Client, *Service, string) {
	t.Helper()
	client := testdb.NewTestClient(t)

	campaignID := "campaign_" + uuid.NewString()
	_, err := client.Client.Campaign.Create().
		SetID(campaignID).
		SetTenant("acme").
		SetName("Test Campaign").
		Save(context.Background())
	require.NoError(t, err)

	return client.Client, NewService(client.Client, slog.Default()), campaignID
}

func createEntity(t *testing.T, svc *Service, campaignID, id, name string) *ent.Entity {
	t.Helper()
	row, created, err := svc.UpsertEntity(context.Background(), EntityInput{
		ID:         campaignID + "_" + id,
		CampaignID: campaignID,
		EntityType: "character",
		Name:       name,
		Content:    name + " content",
		SourceType: "file",
		SourceID:   "staging/acme/source.txt",
		Metadata:   models.EntityMetadata{ShardStatus: models.ShardStatusStaging},
	})
	require.NoError(t, err)
	require.True(t, created)
	return row
}

func TestUpsertEntity_CreateThenUpdate(t *testing.T) {
	_, svc, campaignID := setupGraph(t)
	ctx := context.Background()

	row := createEntity(t, svc, campaignID, "strahd", "Strahd von Zarovich")
	assert.Equal(t, "Strahd von Zarovich", row.Name)

	updated, created, err := svc.UpsertEntity(ctx, EntityInput{
		ID:         row.ID,
		CampaignID: campaignID,
		EntityType: "character",
		Name:       "Strahd",
		Content:    "revised content",
		SourceType: "file",
		SourceID:   "staging/acme/source.txt",
		Metadata:   models.EntityMetadata{ShardStatus: models.ShardStatusStaging},
	})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "Strahd", updated.Name)
	assert.Equal(t, "revised content", updated.Content)
}

func TestUpsertEntity_ApprovedIsProtected(t *testing.T) {
	_, svc, campaignID := setupGraph(t)
	ctx := context.Background()

	row := createEntity(t, svc, campaignID, "ireena", "Ireena Kolyana")
	_, err := svc.UpdateShardStatus(ctx, campaignID, row.ID, models.ShardStatusApproved)
	require.NoError(t, err)

	existing, created, err := svc.UpsertEntity(ctx, EntityInput{
		ID:         row.ID,
		CampaignID: campaignID,
		EntityType: "character",
		Name:       "Overwritten",
		Content:    "overwritten",
		SourceType: "file",
		SourceID:   "staging/acme/other.txt",
		Metadata:   models.EntityMetadata{ShardStatus: models.ShardStatusStaging},
	})
	require.ErrorIs(t, err, ErrApprovedEntity)
	assert.False(t, created)
	require.NotNil(t, existing)
	assert.Equal(t, "Ireena Kolyana", existing.Name, "approved row must be returned untouched")
}

func TestUpsertEntity_MissingCampaignSurfacesError(t *testing.T) {
	_, svc, _ := setupGraph(t)

	// A foreign-key violation is not a create race, so it must return
	// instead of retrying forever.
	_, created, err := svc.UpsertEntity(context.Background(), EntityInput{
		ID:         "ghost_campaign_entity",
		CampaignID: "campaign_that_does_not_exist",
		EntityType: "character",
		Name:       "Ghost",
		Content:    "ghost content",
		SourceType: "file",
		SourceID:   "staging/acme/source.txt",
		Metadata:   models.EntityMetadata{ShardStatus: models.ShardStatusStaging},
	})
	require.Error(t, err)
	assert.False(t, created)
	assert.True(t, ent.IsConstraintError(err))
}

func TestUpsertEdge_MissingCampaignSurfacesError(t *testing.T) {
	_, svc, campaignID := setupGraph(t)

	a := createEntity(t, svc, campaignID, "a", "Entity A")
	b := createEntity(t, svc, campaignID, "b", "Entity B")
	_, err := svc.UpsertEdge(context.Background(), EdgeInput{
		CampaignID:       "campaign_that_does_not_exist",
		From:             a.ID,
		To:               b.ID,
		RelationshipType: "knows",
	})
	require.Error(t, err)
}

func TestUpsertEdge_RejectsSelfRelation(t *testing.T) {
	_, svc, campaignID := setupGraph(t)

	a := createEntity(t, svc, campaignID, "a", "Entity A")
	_, err := svc.UpsertEdge(context.Background(), EdgeInput{
		CampaignID:       campaignID,
		From:             a.ID,
		To:               a.ID,
		RelationshipType: "knows",
	})
	assert.ErrorIs(t, err, ErrSelfRelation)
}

func TestUpsertEdge_ConflictMergesMetadata(t *testing.T) {
	_, svc, campaignID := setupGraph(t)
	ctx := context.Background()

	a := createEntity(t, svc, campaignID, "a", "Entity A")
	b := createEntity(t, svc, campaignID, "b", "Entity B")

	strength := 0.4
	first, err := svc.UpsertEdge(ctx, EdgeInput{
		CampaignID:       campaignID,
		From:             a.ID,
		To:               b.ID,
		RelationshipType: "allied_with",
		Strength:         &strength,
		Metadata:         map[string]string{"source": "session 1", "note": "original"},
	})
	require.NoError(t, err)

	newStrength := 0.9
	second, err := svc.UpsertEdge(ctx, EdgeInput{
		CampaignID:       campaignID,
		From:             a.ID,
		To:               b.ID,
		RelationshipType: "allied_with",
		Strength:         &newStrength,
		Metadata:         map[string]string{"note": "updated"},
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "same tuple must converge on one row")
	require.NotNil(t, second.Strength)
	assert.InDelta(t, 0.9, *second.Strength, 1e-9)
	assert.Equal(t, "session 1", second.Metadata["source"], "untouched keys survive the merge")
	assert.Equal(t, "updated", second.Metadata["note"], "new values win")
}

func TestGetNeighbors_BoundedByDepth(t *testing.T) {
	_, svc, campaignID := setupGraph(t)
	ctx := context.Background()

	// a -> b -> c -> d, traversal from a.
	ids := make([]string, 4)
	for i, name := range []string{"a", "b", "c", "d"} {
		ids[i] = createEntity(t, svc, campaignID, name, "Entity "+name).ID
	}
	for i := 0; i < 3; i++ {
		_, err := svc.UpsertEdge(ctx, EdgeInput{
			CampaignID:       campaignID,
			From:             ids[i],
			To:               ids[i+1],
			RelationshipType: "leads_to",
		})
		require.NoError(t, err)
	}

	neighbors, err := svc.GetNeighbors(ctx, campaignID, ids[0], 2, 0)
	require.NoError(t, err)
	require.Len(t, neighbors, 2)
	assert.Equal(t, ids[1], neighbors[0].EntityID)
	assert.Equal(t, 1, neighbors[0].Hop)
	assert.Equal(t, ids[2], neighbors[1].EntityID)
	assert.Equal(t, 2, neighbors[1].Hop)
}

func TestGetNeighbors_FollowsReverseEdges(t *testing.T) {
	_, svc, campaignID := setupGraph(t)
	ctx := context.Background()

	a := createEntity(t, svc, campaignID, "a", "Entity A")
	b := createEntity(t, svc, campaignID, "b", "Entity B")
	_, err := svc.UpsertEdge(ctx, EdgeInput{
		CampaignID:       campaignID,
		From:             b.ID,
		To:               a.ID,
		RelationshipType: "serves",
	})
	require.NoError(t, err)

	neighbors, err := svc.GetNeighbors(ctx, campaignID, a.ID, 1, 0)
	require.NoError(t, err)
	require.Len(t, neighbors, 1)
	assert.Equal(t, b.ID, neighbors[0].EntityID)
}

func TestSearchEntitiesByName_SubstringBothDirections(t *testing.T) {
	_, svc, campaignID := setupGraph(t)
	ctx := context.Background()

	createEntity(t, svc, campaignID, "strahd", "Strahd von Zarovich")
	createEntity(t, svc, campaignID, "vallaki", "Vallaki")

	// Query contained in entity name.
	matches, err := svc.SearchEntitiesByName(ctx, campaignID, []string{"strahd"}, 5)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "Strahd von Zarovich", matches[0].Name)

	// Entity name contained in query.
	matches, err = svc.SearchEntitiesByName(ctx, campaignID, []string{"the town of Vallaki at night"}, 5)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "Vallaki", matches[0].Name)

	matches, err = svc.SearchEntitiesByName(ctx, campaignID, nil, 5)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestSearchEntitiesByName_LimitAndScope(t *testing.T) {
	_, svc, campaignID := setupGraph(t)
	ctx := context.Background()

	createEntity(t, svc, campaignID, "g1", "Guard One")
	createEntity(t, svc, campaignID, "g2", "Guard Two")
	createEntity(t, svc, campaignID, "g3", "Guard Three")
	createEntity(t, svc, campaignID, "m", "Mayor")

	matches, err := svc.SearchEntitiesByName(ctx, campaignID, []string{"guard"}, 2)
	require.NoError(t, err)
	require.Len(t, matches, 2, "the limit bounds the result set")
	assert.Equal(t, "Guard One", matches[0].Name)
	assert.Equal(t, "Guard Two", matches[1].Name)

	// Blank queries match nothing rather than everything.
	matches, err = svc.SearchEntitiesByName(ctx, campaignID, []string{"  "}, 5)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestUpdateShardStatus_ApprovalClearsPendingRelations(t *testing.T) {
	client, svc, campaignID := setupGraph(t)
	ctx := context.Background()

	row := createEntity(t, svc, campaignID, "x", "Entity X")
	meta := row.Metadata
	meta.PendingRelations = []models.PendingRelation{
		{RelationshipType: "knows", TargetID: campaignID + "_y"},
	}
	_, err := client.Entity.UpdateOneID(row.ID).SetMetadata(meta).Save(ctx)
	require.NoError(t, err)

	updated, err := svc.UpdateShardStatus(ctx, campaignID, row.ID, models.ShardStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, models.ShardStatusApproved, updated.Metadata.ShardStatus)
	assert.Empty(t, updated.Metadata.PendingRelations)
}
