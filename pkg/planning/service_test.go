package planning

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loresmith/loresmith/ent"
	"github.com/loresmith/loresmith/pkg/config"
	"github.com/loresmith/loresmith/pkg/embedding"
	"github.com/loresmith/loresmith/pkg/graph"
	"github.com/loresmith/loresmith/pkg/llm"
	"github.com/loresmith/loresmith/pkg/vector"
)

const testDim = 8

type fakeFinder struct {
	entities      []*ent.Entity
	neighbors     map[string][]graph.Neighbor
	searchedNames []string
}

func (f *fakeFinder) SearchEntitiesByName(_ context.Context, _ string, names []string, limit int) ([]*ent.Entity, error) {
	f.searchedNames = names
	if len(f.entities) > limit {
		return f.entities[:limit], nil
	}
	return f.entities, nil
}

func (f *fakeFinder) GetNeighbors(_ context.Context, _ string, entityID string, _, _ int) ([]graph.Neighbor, error) {
	return f.neighbors[entityID], nil
}

type digestFixture struct {
	id            string
	text          string
	sectionType   string
	sessionNumber int
	sessionDate   time.Time
}

func seedDigests(t *testing.T, index *vector.Memory, campaignID string, fixtures []digestFixture) {
	t.Helper()
	records := make([]vector.Record, 0, len(fixtures))
	for _, f := range fixtures {
		meta := map[string]any{
			"digest_id":    f.id,
			"campaign_id":  campaignID,
			"contentType":  vector.ContentTypeSessionDigest,
			"section_type": f.sectionType,
			"snippet":      f.text,
		}
		if f.sessionNumber > 0 {
			meta["session_number"] = float64(f.sessionNumber)
		}
		if !f.sessionDate.IsZero() {
			meta["session_date"] = float64(f.sessionDate.Unix())
		}
		records = append(records, vector.Record{
			ID:       vector.ID("digest:"+f.id, ""),
			Values:   llm.DeterministicVector(f.text, testDim),
			Metadata: meta,
		})
	}
	require.NoError(t, index.Upsert(context.Background(), records))
}

func newTestService(index *vector.Memory, mock *llm.Mock, finder EntityFinder, telemetry TelemetryFunc) *Service {
	cfg := config.DefaultPipelineConfig()
	cfg.EmbeddingDim = testDim
	embedder := embedding.NewService(mock, index, *cfg, slog.Default())
	return NewService(embedder, index, finder, mock, cfg, telemetry, slog.Default())
}

func TestSearchRanksAndLimits(t *testing.T) {
	index := vector.NewMemory(testDim)
	mock := llm.NewMock(testDim)
	seedDigests(t, index, "c1", []digestFixture{
		{id: "d1", text: "the party met the lich king", sectionType: "recap", sessionNumber: 1},
		{id: "d2", text: "plans to siege the necropolis", sectionType: "plan", sessionNumber: 2},
		{id: "d3", text: "shopping trip in the bazaar", sectionType: "recap", sessionNumber: 3},
	})
	// Same text embeds identically, so d1 scores 1.0 for this query.
	mock.QueueResponse(`{"names": []}`)
	svc := newTestService(index, mock, &fakeFinder{}, nil)

	result, err := svc.Search(context.Background(), "c1", "the party met the lich king", SearchOptions{Limit: 2})
	require.NoError(t, err)
	require.Len(t, result.Items, 2)
	assert.Equal(t, "d1", result.Items[0].DigestID)
	assert.InDelta(t, 1.0, result.Items[0].Score, 1e-5)
	assert.Empty(t, result.RelatedEntities)
}

func TestSearchCampaignIsolation(t *testing.T) {
	index := vector.NewMemory(testDim)
	mock := llm.NewMock(testDim)
	seedDigests(t, index, "c1", []digestFixture{
		{id: "mine", text: "heist at the mint", sectionType: "plan", sessionNumber: 1},
	})
	seedDigests(t, index, "c2", []digestFixture{
		{id: "theirs", text: "heist at the mint", sectionType: "plan", sessionNumber: 1},
	})
	mock.QueueResponse(`{"names": []}`)
	svc := newTestService(index, mock, &fakeFinder{}, nil)

	result, err := svc.Search(context.Background(), "c1", "heist at the mint", SearchOptions{Limit: 5})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "mine", result.Items[0].DigestID)
}

func TestSearchSectionTypeFilter(t *testing.T) {
	index := vector.NewMemory(testDim)
	mock := llm.NewMock(testDim)
	seedDigests(t, index, "c1", []digestFixture{
		{id: "d1", text: "dragon attack recap", sectionType: "recap", sessionNumber: 1},
		{id: "d2", text: "dragon attack plan", sectionType: "plan", sessionNumber: 1},
	})
	mock.QueueResponse(`{"names": []}`)
	svc := newTestService(index, mock, &fakeFinder{}, nil)

	result, err := svc.Search(context.Background(), "c1", "dragon attack", SearchOptions{
		Limit:        5,
		SectionTypes: []string{"plan"},
	})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "d2", result.Items[0].DigestID)
}

func TestSearchDateFilterExcludesUndated(t *testing.T) {
	index := vector.NewMemory(testDim)
	mock := llm.NewMock(testDim)
	march := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	seedDigests(t, index, "c1", []digestFixture{
		{id: "dated", text: "ambush in the pass", sectionType: "recap", sessionNumber: 1, sessionDate: march},
		{id: "undated", text: "ambush in the pass again", sectionType: "recap", sessionNumber: 2},
	})
	mock.QueueResponse(`{"names": []}`)
	svc := newTestService(index, mock, &fakeFinder{}, nil)

	from := march.AddDate(0, 0, -1)
	to := march.AddDate(0, 0, 1)
	result, err := svc.Search(context.Background(), "c1", "ambush", SearchOptions{
		Limit: 5,
		From:  &from,
		To:    &to,
	})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "dated", result.Items[0].DigestID)
}

func TestSearchRecencyWeighting(t *testing.T) {
	index := vector.NewMemory(testDim)
	mock := llm.NewMock(testDim)
	// Identical text in three sessions: raw scores tie, recency decides.
	seedDigests(t, index, "c1", []digestFixture{
		{id: "old", text: "war council at the keep", sectionType: "recap", sessionNumber: 1},
		{id: "new", text: "war council at the keep", sectionType: "recap", sessionNumber: 10},
		{id: "unnumbered", text: "war council at the keep", sectionType: "recap"},
	})
	mock.QueueResponse(`{"names": []}`)
	svc := newTestService(index, mock, &fakeFinder{}, nil)

	result, err := svc.Search(context.Background(), "c1", "war council at the keep", SearchOptions{
		Limit:        5,
		ApplyRecency: true,
	})
	require.NoError(t, err)
	require.Len(t, result.Items, 3)
	assert.Equal(t, "new", result.Items[0].DigestID)
	assert.InDelta(t, 1.0, result.Items[0].WeightedScore, 1e-5)

	for _, item := range result.Items {
		switch item.DigestID {
		case "old":
			// exp(-0.1 * 9)
			assert.InDelta(t, 0.40657, item.WeightedScore, 1e-3)
		case "unnumbered":
			assert.InDelta(t, 0.5, item.WeightedScore, 1e-5)
		}
	}
}

func TestSearchAttachesRelatedEntities(t *testing.T) {
	index := vector.NewMemory(testDim)
	mock := llm.NewMock(testDim)
	seedDigests(t, index, "c1", []digestFixture{
		{id: "d1", text: "Strahd brooded in Ravenloft", sectionType: "recap", sessionNumber: 1},
	})
	mock.QueueResponse(`{"names": ["Strahd", "Ravenloft"]}`)
	finder := &fakeFinder{
		entities: []*ent.Entity{
			{ID: "c1_strahd", Name: "Strahd", EntityType: "character"},
		},
		neighbors: map[string][]graph.Neighbor{
			"c1_strahd": {{EntityID: "c1_ravenloft", RelationshipType: "resides_in", Hop: 1}},
		},
	}
	svc := newTestService(index, mock, finder, nil)

	result, err := svc.Search(context.Background(), "c1", "what is Strahd planning in Ravenloft?", SearchOptions{Limit: 5})
	require.NoError(t, err)
	assert.Equal(t, []string{"Strahd", "Ravenloft"}, finder.searchedNames)
	require.Len(t, result.RelatedEntities, 1)
	assert.Equal(t, "c1_strahd", result.RelatedEntities[0].EntityID)
	require.Len(t, result.RelatedEntities[0].Neighbors, 1)
	assert.Equal(t, "c1_ravenloft", result.RelatedEntities[0].Neighbors[0].EntityID)
}

func TestSearchNameExtractionFailureIsNonFatal(t *testing.T) {
	index := vector.NewMemory(testDim)
	mock := llm.NewMock(testDim)
	seedDigests(t, index, "c1", []digestFixture{
		{id: "d1", text: "the festival of lanterns", sectionType: "recap", sessionNumber: 1},
	})
	mock.QueueError(assert.AnError)
	svc := newTestService(index, mock, &fakeFinder{}, nil)

	result, err := svc.Search(context.Background(), "c1", "the festival of lanterns", SearchOptions{Limit: 5})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Empty(t, result.RelatedEntities)
}

func TestSearchTelemetryHook(t *testing.T) {
	index := vector.NewMemory(testDim)
	mock := llm.NewMock(testDim)
	seedDigests(t, index, "c1", []digestFixture{
		{id: "d1", text: "caravan schedules", sectionType: "notes", sessionNumber: 1},
	})
	mock.QueueResponse(`{"names": []}`)

	var gotCampaign string
	var gotResults int
	var gotDuration time.Duration
	svc := newTestService(index, mock, &fakeFinder{}, func(campaignID string, d time.Duration, results int) {
		gotCampaign, gotDuration, gotResults = campaignID, d, results
	})

	_, err := svc.Search(context.Background(), "c1", "caravan schedules", SearchOptions{Limit: 5})
	require.NoError(t, err)
	assert.Equal(t, "c1", gotCampaign)
	assert.Equal(t, 1, gotResults)
	assert.Greater(t, gotDuration, time.Duration(0))
}
