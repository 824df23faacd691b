package staging

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loresmith/loresmith/ent"
	"github.com/loresmith/loresmith/pkg/config"
	"github.com/loresmith/loresmith/pkg/dedup"
	"github.com/loresmith/loresmith/pkg/entityextract"
	"github.com/loresmith/loresmith/pkg/graph"
	"github.com/loresmith/loresmith/pkg/models"
)

type fakeProvider struct {
	content string
	err     error
}

func (f *fakeProvider) Content(context.Context, string, string) (string, error) {
	return f.content, f.err
}

// fakeExtractor returns one scripted outcome per call.
type fakeExtractor struct {
	mu       sync.Mutex
	outcomes []extractOutcome
	calls    int
}

type extractOutcome struct {
	entities []models.ExtractedEntity
	err      error
}

func (f *fakeExtractor) Extract(_ context.Context, _ entityextract.Request) ([]models.ExtractedEntity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if len(f.outcomes) == 0 {
		return nil, nil
	}
	next := f.outcomes[0]
	f.outcomes = f.outcomes[1:]
	return next.entities, next.err
}

// fakeGraph keeps entities and edges in memory.
type fakeGraph struct {
	entities map[string]*ent.Entity
	edges    map[string]graph.EdgeInput
}

func newFakeGraph() *fakeGraph {
	return &fakeGraph{
		entities: make(map[string]*ent.Entity),
		edges:    make(map[string]graph.EdgeInput),
	}
}

func (g *fakeGraph) UpsertEntity(_ context.Context, in graph.EntityInput) (*ent.Entity, bool, error) {
	if existing, ok := g.entities[in.ID]; ok {
		if existing.Metadata.ShardStatus == models.ShardStatusApproved {
			return existing, false, graph.ErrApprovedEntity
		}
		existing.EntityType = in.EntityType
		existing.Name = in.Name
		existing.Content = in.Content
		existing.Metadata = in.Metadata
		return existing, false, nil
	}
	row := &ent.Entity{
		ID:         in.ID,
		CampaignID: in.CampaignID,
		EntityType: in.EntityType,
		Name:       in.Name,
		Content:    in.Content,
		Metadata:   in.Metadata,
		CreatedAt:  time.Now(),
	}
	g.entities[in.ID] = row
	return row, true, nil
}

func (g *fakeGraph) UpsertEdge(_ context.Context, in graph.EdgeInput) (*ent.EntityRelationship, error) {
	if in.From == in.To && !in.AllowSelf {
		return nil, graph.ErrSelfRelation
	}
	key := in.From + "|" + in.To + "|" + in.RelationshipType
	g.edges[key] = in
	return &ent.EntityRelationship{
		CampaignID:       in.CampaignID,
		FromEntityID:     in.From,
		ToEntityID:       in.To,
		RelationshipType: in.RelationshipType,
		Metadata:         in.Metadata,
	}, nil
}

func (g *fakeGraph) GetEntity(_ context.Context, _, entityID string) (*ent.Entity, error) {
	if row, ok := g.entities[entityID]; ok {
		return row, nil
	}
	return nil, &ent.NotFoundError{}
}

type fakeDeduper struct {
	verdicts map[string]dedup.Result
}

func (d *fakeDeduper) IsDuplicate(_ context.Context, _, _, _, excludeID string) (dedup.Result, error) {
	if d.verdicts == nil {
		return dedup.Result{}, nil
	}
	return d.verdicts[excludeID], nil
}

type fakeEmbedder struct {
	indexed []string
}

func (e *fakeEmbedder) EmbedAndIndex(_ context.Context, sourceID, _ string, _ map[string]any) (EmbedResult, error) {
	e.indexed = append(e.indexed, sourceID)
	return EmbedResult{VectorIDs: []string{"v_fake"}}, nil
}

type fakeChangelog struct {
	payloads []models.ChangelogPayload
}

func (c *fakeChangelog) Append(_ context.Context, _, _ string, payload models.ChangelogPayload) (*ent.ChangelogEntry, error) {
	c.payloads = append(c.payloads, payload)
	return &ent.ChangelogEntry{Payload: payload}, nil
}

type fakeImportance struct {
	calls int
}

func (i *fakeImportance) RecomputeImportance(context.Context, string) error {
	i.calls++
	return nil
}

type harness struct {
	svc        *Service
	graph      *fakeGraph
	deduper    *fakeDeduper
	embedder   *fakeEmbedder
	changes    *fakeChangelog
	importance *fakeImportance
	sleeps     *[]time.Duration
}

func newHarness(provider ContentProvider, extractor EntityExtractor) *harness {
	cfg := *config.DefaultPipelineConfig()
	h := &harness{
		graph:      newFakeGraph(),
		deduper:    &fakeDeduper{},
		embedder:   &fakeEmbedder{},
		changes:    &fakeChangelog{},
		importance: &fakeImportance{},
		sleeps:     &[]time.Duration{},
	}
	h.svc = NewService(provider, extractor, h.graph, h.deduper, h.embedder, h.changes, h.importance, cfg, slog.Default())
	h.svc.sleep = func(_ context.Context, d time.Duration) error {
		*h.sleeps = append(*h.sleeps, d)
		return nil
	}
	return h
}

func entityFixture(id, entityType, name, content string, relations ...models.ExtractedRelation) models.ExtractedEntity {
	return models.ExtractedEntity{
		ID: id, EntityType: entityType, Name: name, Content: content, Relations: relations,
	}
}

func TestRunHappyPath(t *testing.T) {
	extractor := &fakeExtractor{outcomes: []extractOutcome{{
		entities: []models.ExtractedEntity{
			entityFixture("c1_aragorn", "character", "Aragorn", "A ranger of the north.",
				models.ExtractedRelation{RelationshipType: "travels_to", TargetID: "bree"}),
			entityFixture("c1_bree", "location", "Bree", "A crossroads town."),
		},
	}}}
	h := newHarness(&fakeProvider{content: "[Page 1]\nAragorn is a ranger."}, extractor)

	res, err := h.svc.Run(context.Background(), "c1", "t1", "staging/t1/book.pdf", "book.pdf")
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, 2, res.EntityCount)
	assert.Empty(t, res.FailedChunks)

	aragorn := h.graph.entities["c1_aragorn"]
	require.NotNil(t, aragorn)
	assert.Equal(t, models.ShardStatusStaging, aragorn.Metadata.ShardStatus)
	require.Len(t, aragorn.Metadata.PendingRelations, 1)
	assert.Equal(t, "c1_bree", aragorn.Metadata.PendingRelations[0].TargetID)

	// Relationship created immediately with staging status and prefixed target.
	edge, ok := h.graph.edges["c1_aragorn|c1_bree|travels_to"]
	require.True(t, ok)
	assert.Equal(t, models.ShardStatusStaging, edge.Metadata["status"])

	// One importance recompute for the whole resource.
	assert.Equal(t, 1, h.importance.calls)

	// Changelog recorded both creates.
	require.Len(t, h.changes.payloads, 1)
	assert.Len(t, h.changes.payloads[0].NewEntities, 2)
}

func TestRunEmptyContent(t *testing.T) {
	extractor := &fakeExtractor{}
	h := newHarness(&fakeProvider{content: ""}, extractor)

	res, err := h.svc.Run(context.Background(), "c1", "t1", "staging/t1/empty.txt", "empty.txt")
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Zero(t, res.EntityCount)
	assert.Equal(t, 0, extractor.calls)
	assert.Equal(t, 0, h.importance.calls)
}

func TestRunRetriesTransientFailure(t *testing.T) {
	extractor := &fakeExtractor{outcomes: []extractOutcome{
		{err: errors.New("provider 503")},
		{err: errors.New("provider 503")},
		{entities: []models.ExtractedEntity{entityFixture("c1_zara", "character", "Zara", "A smuggler.")}},
	}}
	h := newHarness(&fakeProvider{content: "Zara smuggles."}, extractor)

	res, err := h.svc.Run(context.Background(), "c1", "t1", "staging/t1/a.txt", "a.txt")
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, 1, res.EntityCount)
	assert.Equal(t, 3, extractor.calls)

	// Backoff doubles: 2s then 4s.
	require.GreaterOrEqual(t, len(*h.sleeps), 2)
	assert.Equal(t, 2*time.Second, (*h.sleeps)[0])
	assert.Equal(t, 4*time.Second, (*h.sleeps)[1])
}

func TestRunPartialFailure(t *testing.T) {
	// Two chunks; the first one fails through all retries.
	long := "[Page 1]\n" + pad(41000) + "\n[Page 2]\n" + pad(41000)
	failing := errors.New("parse error")
	extractor := &fakeExtractor{outcomes: []extractOutcome{
		{err: failing}, {err: failing}, {err: failing}, {err: failing},
		{entities: []models.ExtractedEntity{entityFixture("c1_keep", "location", "Keep", "A keep.")}},
	}}
	h := newHarness(&fakeProvider{content: long}, extractor)

	res, err := h.svc.Run(context.Background(), "c1", "t1", "staging/t1/big.pdf", "big.pdf")
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, []int{0}, res.FailedChunks)
	assert.Equal(t, 1, res.SuccessfulChunks)
	assert.Equal(t, 2, res.TotalChunks)
	assert.Contains(t, res.Warning, "50%")
}

func TestRunTotalFailure(t *testing.T) {
	failing := errors.New("parse error")
	extractor := &fakeExtractor{outcomes: []extractOutcome{
		{err: failing}, {err: failing}, {err: failing}, {err: failing},
	}}
	h := newHarness(&fakeProvider{content: "some text"}, extractor)

	res, err := h.svc.Run(context.Background(), "c1", "t1", "staging/t1/a.txt", "a.txt")
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, []int{0}, res.FailedChunks)
}

func TestRunSkipsApprovedEntity(t *testing.T) {
	extractor := &fakeExtractor{outcomes: []extractOutcome{{
		entities: []models.ExtractedEntity{
			entityFixture("c1_frodo", "character", "Frodo", "An overwritten description.",
				models.ExtractedRelation{RelationshipType: "carries", TargetID: "ring"}),
		},
	}}}
	h := newHarness(&fakeProvider{content: "Frodo carries the ring."}, extractor)

	h.graph.entities["c1_frodo"] = &ent.Entity{
		ID: "c1_frodo", CampaignID: "c1", EntityType: "character",
		Name: "Frodo", Content: "The original description.",
		Metadata: models.EntityMetadata{ShardStatus: models.ShardStatusApproved},
	}

	res, err := h.svc.Run(context.Background(), "c1", "t1", "staging/t1/a.txt", "a.txt")
	require.NoError(t, err)
	assert.Equal(t, 0, res.EntityCount)
	assert.Equal(t, []string{"c1_frodo"}, res.SkippedApproved)

	frodo := h.graph.entities["c1_frodo"]
	assert.Equal(t, "The original description.", frodo.Content)
	assert.Empty(t, frodo.Metadata.PendingRelations)
}

func TestRunSkipsSemanticDuplicate(t *testing.T) {
	extractor := &fakeExtractor{outcomes: []extractOutcome{{
		entities: []models.ExtractedEntity{
			entityFixture("c1_barliman_butterbur", "character", "Barliman Butterbur", "Barliman Butterbur the innkeeper."),
		},
	}}}
	h := newHarness(&fakeProvider{content: "Barliman tends the inn."}, extractor)
	h.graph.entities["c1_barliman"] = &ent.Entity{
		ID: "c1_barliman", CampaignID: "c1", EntityType: "character",
		Name: "Barliman", Content: "the innkeeper Barliman",
		Metadata: models.EntityMetadata{ShardStatus: models.ShardStatusStaging},
	}
	h.deduper.verdicts = map[string]dedup.Result{
		"c1_barliman_butterbur": {Duplicate: true, ExistingID: "c1_barliman", Score: 0.93},
	}

	res, err := h.svc.Run(context.Background(), "c1", "t1", "staging/t1/b.txt", "b.txt")
	require.NoError(t, err)
	assert.Equal(t, 0, res.EntityCount)
	assert.Equal(t, []string{"c1_barliman_butterbur"}, res.SkippedDuplicate)

	// Provenance merged onto the surviving entity.
	assert.Equal(t, "b.txt", h.graph.entities["c1_barliman"].Metadata.Extra["also_from"])
	_, created := h.graph.entities["c1_barliman_butterbur"]
	assert.False(t, created)
}

func TestMergeEntitiesAcrossChunks(t *testing.T) {
	acc := make(map[string]models.ExtractedEntity)
	mergeEntities(acc, []models.ExtractedEntity{
		entityFixture("c1_zara", "character", "Zara", "A smuggler.",
			models.ExtractedRelation{RelationshipType: "operates_in", TargetID: "docks"}),
	})
	mergeEntities(acc, []models.ExtractedEntity{
		entityFixture("c1_zara", "character", "Zara", "An informant for the guard.",
			models.ExtractedRelation{RelationshipType: "operates_in", TargetID: "docks"},
			models.ExtractedRelation{RelationshipType: "informs", TargetID: "guard"}),
	})

	require.Len(t, acc, 1)
	zara := acc["c1_zara"]
	assert.Contains(t, zara.Content, "A smuggler.")
	assert.Contains(t, zara.Content, "An informant for the guard.")
	assert.Len(t, zara.Relations, 2)
}

func pad(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = 'x'
		if i%80 == 79 {
			b[i] = '\n'
		}
	}
	return string(b)
}
