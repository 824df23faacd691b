package rebuild

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loresmith/loresmith/ent"
)

func testEntities(ids ...string) []*ent.Entity {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	entities := make([]*ent.Entity, len(ids))
	for i, id := range ids {
		entities[i] = &ent.Entity{ID: id, CreatedAt: base.Add(time.Duration(i) * time.Second)}
	}
	return entities
}

func testEdge(from, to string) *ent.EntityRelationship {
	return &ent.EntityRelationship{FromEntityID: from, ToEntityID: to}
}

// Two triangles joined by a single bridge edge through b1.
func bridgedTriangles() ([]*ent.Entity, []*ent.EntityRelationship) {
	entities := testEntities("a1", "a2", "a3", "b1", "b2", "b3")
	edges := []*ent.EntityRelationship{
		testEdge("a1", "a2"), testEdge("a2", "a3"), testEdge("a3", "a1"),
		testEdge("b1", "b2"), testEdge("b2", "b3"), testEdge("b3", "b1"),
		testEdge("a1", "b1"),
	}
	return entities, edges
}

func TestCampaignGraphIgnoresBadEdges(t *testing.T) {
	entities := testEntities("e1", "e2")
	edges := []*ent.EntityRelationship{
		testEdge("e1", "e2"),
		testEdge("e1", "e1"),
		testEdge("e1", "ghost"),
	}
	cg := newCampaignGraph(entities, edges)

	assert.Equal(t, 2, cg.size())
	assert.Equal(t, 1, cg.connectivity("e1", []string{"e2"}))
	assert.Equal(t, 0, cg.connectivity("e1", []string{"ghost"}))
}

func TestPageRankFavorsConnectedNodes(t *testing.T) {
	entities := testEntities("hub", "s1", "s2", "s3", "lone")
	edges := []*ent.EntityRelationship{
		testEdge("hub", "s1"), testEdge("hub", "s2"), testEdge("hub", "s3"),
	}
	cg := newCampaignGraph(entities, edges)

	ranks := cg.pageRank()
	require.Len(t, ranks, 5)
	assert.Greater(t, ranks["hub"], ranks["s1"])
	assert.Greater(t, ranks["s1"], ranks["lone"])
}

func TestBetweennessPeaksAtBridge(t *testing.T) {
	entities, edges := bridgedTriangles()
	cg := newCampaignGraph(entities, edges)

	btw := cg.betweenness()
	// The bridge endpoints carry all cross-triangle shortest paths.
	assert.Greater(t, btw["a1"], btw["a2"])
	assert.Greater(t, btw["b1"], btw["b3"])
	assert.Equal(t, btw["a2"], btw["a3"])
}

func TestCommunitiesSplitBridgedTriangles(t *testing.T) {
	entities, edges := bridgedTriangles()
	cg := newCampaignGraph(entities, edges)

	groups := cg.communities(communitySeed)
	require.Len(t, groups, 2)
	assert.Equal(t, []string{"a1", "a2", "a3"}, groups[0])
	assert.Equal(t, []string{"b1", "b2", "b3"}, groups[1])
}

func TestCommunitiesDeterministic(t *testing.T) {
	entities, edges := bridgedTriangles()

	first := newCampaignGraph(entities, edges).communities(communitySeed)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, newCampaignGraph(entities, edges).communities(communitySeed))
	}
}

func TestExpandTwoHop(t *testing.T) {
	entities := testEntities("a", "b", "c", "d", "e")
	edges := []*ent.EntityRelationship{
		testEdge("a", "b"), testEdge("b", "c"), testEdge("c", "d"), testEdge("d", "e"),
	}
	cg := newCampaignGraph(entities, edges)

	assert.Equal(t, []string{"a", "b", "c"}, cg.expandTwoHop([]string{"a"}))
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, cg.expandTwoHop([]string{"c"}))
	assert.Empty(t, cg.expandTwoHop([]string{"ghost"}))
}

func TestCondenseGroupsConnectedLeaves(t *testing.T) {
	// Four leaf communities: 0-1 densely interlinked, 2-3 densely interlinked,
	// nothing across the halves.
	entities := testEntities("a1", "a2", "b1", "b2", "c1", "c2", "d1", "d2")
	edges := []*ent.EntityRelationship{
		testEdge("a1", "a2"), testEdge("b1", "b2"),
		testEdge("c1", "c2"), testEdge("d1", "d2"),
		testEdge("a1", "b1"), testEdge("a2", "b2"),
		testEdge("c1", "d1"), testEdge("c2", "d2"),
	}
	cg := newCampaignGraph(entities, edges)
	groups := [][]string{{"a1", "a2"}, {"b1", "b2"}, {"c1", "c2"}, {"d1", "d2"}}

	parents := cg.condense(groups, communitySeed)
	require.Len(t, parents, 2)
	assert.Equal(t, []int{0, 1}, parents[0])
	assert.Equal(t, []int{2, 3}, parents[1])
}

func TestCompositeScore(t *testing.T) {
	top := compositeScore(0.4, 0.4, 2.0, 2.0, 0)
	assert.InDelta(t, 1.0, top, 1e-9)

	// Deeper hierarchy placement damps the score.
	assert.Greater(t, compositeScore(0.2, 0.4, 1.0, 2.0, 0), compositeScore(0.2, 0.4, 1.0, 2.0, 1))

	// Degenerate graphs with zero maxima stay finite.
	assert.InDelta(t, 0.2, compositeScore(0, 0, 0, 0, 0), 1e-9)
}

func TestImportanceRowsScope(t *testing.T) {
	entities, edges := bridgedTriangles()
	cg := newCampaignGraph(entities, edges)
	levels := map[string]int{"a1": 1, "b1": 1}

	all := importanceRows(cg, levels, nil)
	require.Len(t, all, 6)

	scoped := importanceRows(cg, levels, map[string]bool{"a1": true, "b2": true})
	require.Len(t, scoped, 2)
	assert.Equal(t, "a1", scoped[0].EntityID)
	assert.Equal(t, "b2", scoped[1].EntityID)

	// Scoped values match the full computation.
	assert.Equal(t, all[0].PageRank, scoped[0].PageRank)
	assert.Equal(t, all[0].CompositeScore, scoped[0].CompositeScore)
}

func TestHierarchyLevels(t *testing.T) {
	communities := []*ent.Community{
		{ID: "p", Level: 0, EntityIds: []string{"a", "b", "c"}},
		{ID: "l", Level: 1, EntityIds: []string{"a", "b"}},
	}
	levels := hierarchyLevels(communities)
	assert.Equal(t, 1, levels["a"])
	assert.Equal(t, 0, levels["c"])
	assert.Equal(t, 0, levels["unknown"])
}
