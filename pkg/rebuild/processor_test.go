package rebuild

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loresmith/loresmith/ent"
	"github.com/loresmith/loresmith/ent/rebuildstatus"
	"github.com/loresmith/loresmith/pkg/changelog"
	"github.com/loresmith/loresmith/pkg/config"
	"github.com/loresmith/loresmith/pkg/embedding"
	"github.com/loresmith/loresmith/pkg/graph"
	"github.com/loresmith/loresmith/pkg/llm"
	"github.com/loresmith/loresmith/pkg/models"
	"github.com/loresmith/loresmith/pkg/queue"
	"github.com/loresmith/loresmith/pkg/vector"
	testdb "github.com/loresmith/loresmith/test/database"
)

func summaryFixture() map[string]*ent.Entity {
	return map[string]*ent.Entity{
		"c1_aragorn": {ID: "c1_aragorn", Name: "Aragorn", EntityType: "character", Content: "Ranger of the North."},
		"c1_bree":    {ID: "c1_bree", Name: "Bree", EntityType: "location", Content: "Crossroads town."},
	}
}

func TestSummarizeUsesProviderResponse(t *testing.T) {
	mock := llm.NewMock(8)
	mock.QueueResponse(`{"summary": "A ranger and the town he frequents."}`)
	p := &Processor{provider: mock, logger: slog.Default()}

	summary, err := p.summarize(context.Background(), []string{"c1_aragorn", "c1_bree"}, summaryFixture())
	require.NoError(t, err)
	assert.Equal(t, "A ranger and the town he frequents.", summary)

	require.Len(t, mock.CompletionCalls, 1)
	assert.Contains(t, mock.CompletionCalls[0].User, "Aragorn (character)")
	assert.Contains(t, mock.CompletionCalls[0].User, "Bree (location)")
}

func TestSummarizeFallsBackOnProviderError(t *testing.T) {
	mock := llm.NewMock(8)
	mock.QueueError(assert.AnError)
	p := &Processor{provider: mock, logger: slog.Default()}

	summary, err := p.summarize(context.Background(), []string{"c1_aragorn", "c1_bree"}, summaryFixture())
	require.NoError(t, err)
	assert.Equal(t, "Community of 2 entities: Aragorn, Bree", summary)
}

func TestSummarizeFallsBackOnUnparseableResponse(t *testing.T) {
	mock := llm.NewMock(8)
	mock.QueueResponse("not json")
	p := &Processor{provider: mock, logger: slog.Default()}

	summary, err := p.summarize(context.Background(), []string{"c1_bree"}, summaryFixture())
	require.NoError(t, err)
	assert.Equal(t, "Community of 1 entities: Bree", summary)
}

func TestSummarizePropagatesRateLimit(t *testing.T) {
	mock := llm.NewMock(8)
	mock.QueueError(&llm.RateLimitError{Message: "too many requests"})
	p := &Processor{provider: mock, logger: slog.Default()}

	_, err := p.summarize(context.Background(), []string{"c1_bree"}, summaryFixture())
	require.Error(t, err)
	assert.True(t, llm.IsRateLimit(err))
}

func TestSummarizeEmptyMembers(t *testing.T) {
	p := &Processor{provider: llm.NewMock(8), logger: slog.Default()}

	summary, err := p.summarize(context.Background(), []string{"ghost"}, summaryFixture())
	require.NoError(t, err)
	assert.Empty(t, summary)
}

func TestRollupSummaryTruncatesLongLists(t *testing.T) {
	names := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}
	assert.Equal(t, "Community of 10 entities: a, b, c, d, e, f, g, h and 2 more", rollupSummary(names))
}

func TestCoveredEntryIDs(t *testing.T) {
	entries := []*ent.ChangelogEntry{
		{ID: "e1", Payload: models.ChangelogPayload{
			EntityUpdates: []models.EntityUpdateChange{{EntityID: "a", NewStatus: "dead"}},
		}},
		{ID: "e2", Payload: models.ChangelogPayload{
			RelationshipUpdates: []models.RelationshipUpdateChange{{FromEntityID: "a", ToEntityID: "c", RelationshipType: "knows"}},
		}},
		{ID: "e3", Payload: models.ChangelogPayload{
			EntityUpdates: []models.EntityUpdateChange{{EntityID: "b", Description: "updated"}},
		}},
	}

	full := &ent.RebuildStatus{RebuildType: rebuildstatus.RebuildTypeFull}
	assert.Equal(t, []string{"e1", "e2", "e3"}, coveredEntryIDs(entries, full))

	partial := &ent.RebuildStatus{
		RebuildType:       rebuildstatus.RebuildTypePartial,
		AffectedEntityIds: []string{"a", "b"},
	}
	// e2 touches c through a relationship endpoint, so it is out of scope.
	assert.Equal(t, []string{"e1", "e3"}, coveredEntryIDs(entries, partial))
}

func TestExecutePartialAppliesOnlyCoveredEntries(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	campaignID := "campaign_rebuild_scope"
	_, err := client.Client.Campaign.Create().
		SetID(campaignID).
		SetTenant("acme").
		SetName("Scope Campaign").
		Save(ctx)
	require.NoError(t, err)

	graphSvc := graph.NewService(client.Client, slog.Default())
	mkEntity := func(id, name string) string {
		t.Helper()
		full := campaignID + "_" + id
		_, _, err := graphSvc.UpsertEntity(ctx, graph.EntityInput{
			ID:         full,
			CampaignID: campaignID,
			EntityType: "character",
			Name:       name,
			Content:    name + " content",
			SourceType: "file",
			SourceID:   "staging/acme/source.txt",
			Metadata:   models.EntityMetadata{ShardStatus: models.ShardStatusStaging},
		})
		require.NoError(t, err)
		return full
	}
	aID := mkEntity("a", "Aldric")
	bID := mkEntity("b", "Bree")
	cID := mkEntity("c", "Cedric")
	_, err = graphSvc.UpsertEdge(ctx, graph.EdgeInput{
		CampaignID:       campaignID,
		From:             aID,
		To:               bID,
		RelationshipType: "knows",
	})
	require.NoError(t, err)

	// Seed an existing community so the partial path patches it instead of
	// falling back to a full detection run.
	require.NoError(t, graphSvc.ReplaceCommunities(ctx, campaignID, []graph.CommunityInput{
		{ID: campaignID + "_comm_l0_0", Level: 0, EntityIDs: []string{aID, bID, cID}, Metadata: map[string]string{}},
	}))

	changes := changelog.NewStore(client.Client, slog.Default())
	covered, err := changes.Append(ctx, campaignID, "", models.ChangelogPayload{
		EntityUpdates: []models.EntityUpdateChange{{EntityID: aID, NewStatus: "dead"}},
	})
	require.NoError(t, err)
	// Appended after the affected set was frozen; touches an entity outside it.
	late, err := changes.Append(ctx, campaignID, "", models.ChangelogPayload{
		EntityUpdates: []models.EntityUpdateChange{{EntityID: cID, Description: "moved to Bree"}},
	})
	require.NoError(t, err)

	rebuildID := "rebuild_scope_1"
	_, err = client.Client.RebuildStatus.Create().
		SetID(rebuildID).
		SetCampaignID(campaignID).
		SetRebuildType(rebuildstatus.RebuildTypePartial).
		SetStatus(rebuildstatus.StatusPending).
		SetAffectedEntityIds([]string{aID}).
		Save(ctx)
	require.NoError(t, err)

	cfg := config.DefaultPipelineConfig()
	cfg.EmbeddingDim = 8
	mock := llm.NewMock(8)
	embedder := embedding.NewService(mock, vector.NewMemory(8), *cfg, slog.Default())
	p := NewProcessor(client.Client, graphSvc, changes, embedder, mock, nil, cfg, slog.Default())

	err = p.Execute(ctx, &ent.QueueMessage{
		ID:     "msg_rebuild_scope",
		Tenant: "acme",
		Payload: map[string]string{
			queue.PayloadCampaignID: campaignID,
			queue.PayloadRebuildID:  rebuildID,
		},
	})
	require.NoError(t, err)

	appliedEntry, err := client.Client.ChangelogEntry.Get(ctx, covered.ID)
	require.NoError(t, err)
	assert.True(t, appliedEntry.AppliedToGraph, "entry inside the affected set must be applied")

	lateEntry, err := client.Client.ChangelogEntry.Get(ctx, late.ID)
	require.NoError(t, err)
	assert.False(t, lateEntry.AppliedToGraph, "entry outside the affected set must stay unapplied")

	status, err := client.Client.RebuildStatus.Get(ctx, rebuildID)
	require.NoError(t, err)
	assert.Equal(t, rebuildstatus.StatusSucceeded, status.Status)
}
