package rebuild

import (
	"math"
	"math/rand/v2"
	"sort"

	"gonum.org/v1/gonum/graph/community"
	"gonum.org/v1/gonum/graph/network"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/loresmith/loresmith/ent"
)

const (
	pageRankDamping   = 0.85
	pageRankTolerance = 1e-6

	// communitySeed fixes the randomization of the local-moving phase so
	// identical graphs always yield identical partitions.
	communitySeed = 1

	// communityAlgorithm is recorded in Community.metadata so stored
	// partitions can be told apart after an algorithm change.
	communityAlgorithm = "louvain-gonum/1"
)

// campaignGraph is an in-memory snapshot of one campaign's entity graph with
// entities mapped to dense node indices. Index assignment follows creation
// time then id, which keeps every derived computation deterministic.
type campaignGraph struct {
	ids   []string
	index map[string]int64
	adj   map[int64]map[int64]bool
}

func newCampaignGraph(entities []*ent.Entity, edges []*ent.EntityRelationship) *campaignGraph {
	ordered := make([]*ent.Entity, len(entities))
	copy(ordered, entities)
	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].CreatedAt.Equal(ordered[j].CreatedAt) {
			return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
		}
		return ordered[i].ID < ordered[j].ID
	})

	cg := &campaignGraph{
		ids:   make([]string, len(ordered)),
		index: make(map[string]int64, len(ordered)),
		adj:   make(map[int64]map[int64]bool, len(ordered)),
	}
	for i, e := range ordered {
		cg.ids[i] = e.ID
		cg.index[e.ID] = int64(i)
		cg.adj[int64(i)] = make(map[int64]bool)
	}
	for _, edge := range edges {
		from, okFrom := cg.index[edge.FromEntityID]
		to, okTo := cg.index[edge.ToEntityID]
		if !okFrom || !okTo || from == to {
			continue
		}
		cg.adj[from][to] = true
		cg.adj[to][from] = true
	}
	return cg
}

func (cg *campaignGraph) size() int { return len(cg.ids) }

// undirected materializes the gonum graph, including isolated nodes.
func (cg *campaignGraph) undirected() *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	for i := range cg.ids {
		g.AddNode(simple.Node(int64(i)))
	}
	for from, peers := range cg.adj {
		for to := range peers {
			if from < to {
				g.SetEdge(simple.Edge{F: simple.Node(from), T: simple.Node(to)})
			}
		}
	}
	return g
}

// directed mirrors every undirected adjacency in both directions. PageRank
// over mutual links behaves like the undirected degree-weighted variant and
// stays stable when an edge's stored direction flips on re-extraction.
func (cg *campaignGraph) directed() *simple.DirectedGraph {
	g := simple.NewDirectedGraph()
	for i := range cg.ids {
		g.AddNode(simple.Node(int64(i)))
	}
	for from, peers := range cg.adj {
		for to := range peers {
			g.SetEdge(simple.Edge{F: simple.Node(from), T: simple.Node(to)})
		}
	}
	return g
}

// pageRank returns the PageRank score per entity id.
func (cg *campaignGraph) pageRank() map[string]float64 {
	scores := make(map[string]float64, len(cg.ids))
	if len(cg.ids) == 0 {
		return scores
	}
	ranks := network.PageRank(cg.directed(), pageRankDamping, pageRankTolerance)
	for i, id := range cg.ids {
		scores[id] = ranks[int64(i)]
	}
	return scores
}

// betweenness returns betweenness centrality per entity id. Nodes gonum omits
// from its result have exact zero centrality.
func (cg *campaignGraph) betweenness() map[string]float64 {
	scores := make(map[string]float64, len(cg.ids))
	if len(cg.ids) == 0 {
		return scores
	}
	centrality := network.Betweenness(cg.undirected())
	for i, id := range cg.ids {
		scores[id] = centrality[int64(i)]
	}
	return scores
}

// communities runs modularity-maximizing detection with a fixed seed and
// returns entity-id groups. Groups and their members are sorted so the result
// is reproducible byte for byte.
func (cg *campaignGraph) communities(seed uint64) [][]string {
	if len(cg.ids) == 0 {
		return nil
	}
	reduced := community.Modularize(cg.undirected(), 1.0, rand.NewPCG(seed, seed))

	groups := make([][]string, 0, len(reduced.Communities()))
	for _, nodes := range reduced.Communities() {
		members := make([]string, 0, len(nodes))
		for _, n := range nodes {
			members = append(members, cg.ids[n.ID()])
		}
		sort.Strings(members)
		groups = append(groups, members)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i][0] < groups[j][0] })
	return groups
}

// condense groups leaf communities into parent groups by running detection
// once more over the condensed graph (one node per leaf, edges where any
// member pair is adjacent). Returns leaf indices per parent, deterministic.
func (cg *campaignGraph) condense(groups [][]string, seed uint64) [][]int {
	leafOf := make(map[int64]int64)
	for li, members := range groups {
		for _, id := range members {
			if idx, ok := cg.index[id]; ok {
				leafOf[idx] = int64(li)
			}
		}
	}

	g := simple.NewUndirectedGraph()
	for li := range groups {
		g.AddNode(simple.Node(int64(li)))
	}
	for from, peers := range cg.adj {
		for to := range peers {
			if from >= to {
				continue
			}
			lf, lt := leafOf[from], leafOf[to]
			if lf != lt {
				g.SetEdge(simple.Edge{F: simple.Node(lf), T: simple.Node(lt)})
			}
		}
	}

	reduced := community.Modularize(g, 1.0, rand.NewPCG(seed, seed))
	parents := make([][]int, 0, len(reduced.Communities()))
	for _, nodes := range reduced.Communities() {
		leaves := make([]int, 0, len(nodes))
		for _, n := range nodes {
			leaves = append(leaves, int(n.ID()))
		}
		sort.Ints(leaves)
		parents = append(parents, leaves)
	}
	sort.Slice(parents, func(i, j int) bool { return parents[i][0] < parents[j][0] })
	return parents
}

// expandTwoHop returns the seed ids plus everything reachable within two
// hops, sorted.
func (cg *campaignGraph) expandTwoHop(seedIDs []string) []string {
	reached := make(map[int64]bool)
	frontier := make([]int64, 0, len(seedIDs))
	for _, id := range seedIDs {
		if idx, ok := cg.index[id]; ok && !reached[idx] {
			reached[idx] = true
			frontier = append(frontier, idx)
		}
	}
	for hop := 0; hop < 2; hop++ {
		var next []int64
		for _, idx := range frontier {
			for peer := range cg.adj[idx] {
				if !reached[peer] {
					reached[peer] = true
					next = append(next, peer)
				}
			}
		}
		frontier = next
	}

	out := make([]string, 0, len(reached))
	for idx := range reached {
		out = append(out, cg.ids[idx])
	}
	sort.Strings(out)
	return out
}

// connectivity counts edges between one entity and a set of member ids.
func (cg *campaignGraph) connectivity(entityID string, members []string) int {
	idx, ok := cg.index[entityID]
	if !ok {
		return 0
	}
	count := 0
	for _, m := range members {
		if peer, ok := cg.index[m]; ok && cg.adj[idx][peer] {
			count++
		}
	}
	return count
}

// compositeScore folds the three importance signals into one ranking value.
// PageRank and betweenness are normalized against the campaign maximum;
// deeper hierarchy placement damps the score.
func compositeScore(pagerank, maxPagerank, betweenness, maxBetweenness float64, hierarchyLevel int) float64 {
	pr := 0.0
	if maxPagerank > 0 {
		pr = pagerank / maxPagerank
	}
	btw := 0.0
	if maxBetweenness > 0 {
		btw = betweenness / maxBetweenness
	}
	return 0.5*pr + 0.3*btw + 0.2/math.Pow(2, float64(hierarchyLevel))
}
