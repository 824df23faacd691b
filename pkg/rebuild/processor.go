package rebuild

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

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
)

// summarySchema shapes the community summary completion.
var summarySchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"summary": {
			"type": "string",
			"description": "Two or three sentences describing what binds this group together"
		}
	},
	"required": ["summary"],
	"additionalProperties": false
}`)

const summarySystemPrompt = `You summarize groups of related tabletop-RPG lore entries. ` +
	`Given entity names and descriptions from one community of a campaign's knowledge graph, ` +
	`write a short summary of what connects them. Mention the most central entities by name.`

const summaryMaxTokens = 512

// Notifier is told when a rebuild reaches a terminal state.
type Notifier interface {
	RebuildFinished(ctx context.Context, tenant, campaignID, rebuildID string, succeeded bool)
}

// Processor executes graph_rebuild queue messages. Partial rebuilds touch
// only the affected entities and their communities; full rebuilds recompute
// the campaign from scratch.
type Processor struct {
	client   *ent.Client
	graph    *graph.Service
	changes  *changelog.Store
	embedder *embedding.Service
	provider llm.Client
	notifier Notifier
	cfg      *config.PipelineConfig
	logger   *slog.Logger
}

// NewProcessor creates a rebuild processor. notifier may be nil.
func NewProcessor(
	client *ent.Client,
	graphSvc *graph.Service,
	changes *changelog.Store,
	embedder *embedding.Service,
	provider llm.Client,
	notifier Notifier,
	cfg *config.PipelineConfig,
	logger *slog.Logger,
) *Processor {
	return &Processor{
		client:   client,
		graph:    graphSvc,
		changes:  changes,
		embedder: embedder,
		provider: provider,
		notifier: notifier,
		cfg:      cfg,
		logger:   logger.With("component", "rebuild_processor"),
	}
}

// Execute implements queue.Executor for graph_rebuild messages.
func (p *Processor) Execute(ctx context.Context, msg *ent.QueueMessage) error {
	campaignID := msg.Payload[queue.PayloadCampaignID]
	rebuildID := msg.Payload[queue.PayloadRebuildID]
	if campaignID == "" || rebuildID == "" {
		return fmt.Errorf("graph_rebuild message %s missing campaign_id or rebuild_id", msg.ID)
	}

	status, err := p.client.RebuildStatus.Get(ctx, rebuildID)
	if err != nil {
		return fmt.Errorf("loading rebuild %s: %w", rebuildID, err)
	}
	if status.Status == rebuildstatus.StatusSucceeded {
		p.logger.Info("rebuild already succeeded, skipping redelivery", "rebuild_id", rebuildID)
		return nil
	}

	log := p.logger.With("campaign_id", campaignID, "rebuild_id", rebuildID, "rebuild_type", status.RebuildType)
	log.Info("rebuild started")

	if err := p.setStatus(ctx, rebuildID, rebuildstatus.StatusRunning, nil); err != nil {
		return err
	}

	// Capture the entry set up front: entries appended mid-rebuild stay
	// unapplied and get picked up by the next trigger pass.
	entries, err := p.changes.ListUnapplied(ctx, campaignID)
	if err != nil {
		return fmt.Errorf("listing unapplied entries: %w", err)
	}
	entryIDs := coveredEntryIDs(entries, status)

	start := time.Now()
	switch status.RebuildType {
	case rebuildstatus.RebuildTypeFull:
		err = p.runFull(ctx, msg.Tenant, campaignID)
	default:
		err = p.runPartial(ctx, msg.Tenant, campaignID, status.AffectedEntityIds)
	}

	// Terminal writes use a fresh context so a deadline mid-rebuild still
	// leaves an accurate status row.
	finishCtx := context.WithoutCancel(ctx)
	if err != nil {
		if statusErr := p.setStatus(finishCtx, rebuildID, rebuildstatus.StatusFailed, err); statusErr != nil {
			log.Error("recording rebuild failure failed", "error", statusErr)
		}
		p.notify(finishCtx, msg.Tenant, campaignID, rebuildID, false)
		return err
	}

	if err := p.changes.MarkApplied(finishCtx, entryIDs); err != nil {
		return fmt.Errorf("marking changelog entries applied: %w", err)
	}
	if err := p.setStatus(finishCtx, rebuildID, rebuildstatus.StatusSucceeded, nil); err != nil {
		return err
	}
	p.notify(finishCtx, msg.Tenant, campaignID, rebuildID, true)
	log.Info("rebuild complete", "entries_applied", len(entryIDs), "duration", time.Since(start))
	return nil
}

// coveredEntryIDs filters the captured entries down to the ones this rebuild
// actually processes. A full rebuild covers everything; a partial rebuild
// covers an entry only when every entity it touches is in the affected set
// frozen at trigger time. Entries appended between trigger and claim fail
// that check and stay unapplied for the next trigger pass.
func coveredEntryIDs(entries []*ent.ChangelogEntry, status *ent.RebuildStatus) []string {
	ids := make([]string, 0, len(entries))
	if status.RebuildType == rebuildstatus.RebuildTypeFull {
		for _, entry := range entries {
			ids = append(ids, entry.ID)
		}
		return ids
	}

	covered := make(map[string]bool, len(status.AffectedEntityIds))
	for _, id := range status.AffectedEntityIds {
		covered[id] = true
	}
	for _, entry := range entries {
		touched := changelog.AffectedEntityIDs([]models.ChangelogPayload{entry.Payload})
		inScope := true
		for _, id := range touched {
			if !covered[id] {
				inScope = false
				break
			}
		}
		if inScope {
			ids = append(ids, entry.ID)
		}
	}
	return ids
}

func (p *Processor) notify(ctx context.Context, tenant, campaignID, rebuildID string, ok bool) {
	if p.notifier != nil {
		p.notifier.RebuildFinished(ctx, tenant, campaignID, rebuildID, ok)
	}
}

func (p *Processor) setStatus(ctx context.Context, rebuildID string, status rebuildstatus.Status, cause error) error {
	update := p.client.RebuildStatus.UpdateOneID(rebuildID).SetStatus(status)
	if cause != nil {
		msg := cause.Error()
		if len(msg) > 2000 {
			msg = msg[:2000]
		}
		update = update.SetLastError(msg)
	}
	if status == rebuildstatus.StatusSucceeded || status == rebuildstatus.StatusFailed {
		update = update.SetCompletedAt(time.Now())
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("updating rebuild %s to %s: %w", rebuildID, status, err)
	}
	return nil
}

// runFull recomputes the whole campaign: embeddings, community detection,
// global metrics, hierarchy, and summaries.
func (p *Processor) runFull(ctx context.Context, tenant, campaignID string) error {
	entities, edges, err := p.loadGraph(ctx, campaignID)
	if err != nil {
		return err
	}
	if len(entities) == 0 {
		return nil
	}
	byID := entitiesByID(entities)
	cg := newCampaignGraph(entities, edges)

	for _, entity := range entities {
		if err := p.reembed(ctx, tenant, campaignID, entity); err != nil {
			return err
		}
	}

	groups := cg.communities(communitySeed)
	inputs, levels, err := p.buildCommunities(ctx, campaignID, cg, groups, byID)
	if err != nil {
		return err
	}
	if err := p.graph.ReplaceCommunities(ctx, campaignID, inputs); err != nil {
		return fmt.Errorf("replacing communities: %w", err)
	}

	rows := importanceRows(cg, levels, nil)
	if err := p.graph.UpsertImportance(ctx, campaignID, rows); err != nil {
		return fmt.Errorf("writing importance: %w", err)
	}
	return nil
}

// runPartial limits recomputation to the affected entities: their embeddings,
// the communities containing them, and importance for their 2-hop
// neighborhood.
func (p *Processor) runPartial(ctx context.Context, tenant, campaignID string, affected []string) error {
	entities, edges, err := p.loadGraph(ctx, campaignID)
	if err != nil {
		return err
	}
	if len(entities) == 0 {
		return nil
	}
	byID := entitiesByID(entities)
	cg := newCampaignGraph(entities, edges)

	communities, err := p.graph.ListCommunities(ctx, campaignID)
	if err != nil {
		return fmt.Errorf("listing communities: %w", err)
	}
	// A campaign that has never had a full rebuild has no community structure
	// to patch; detect from scratch instead.
	if len(communities) == 0 {
		return p.runFull(ctx, tenant, campaignID)
	}

	affectedSet := make(map[string]bool, len(affected))
	for _, id := range affected {
		if _, ok := byID[id]; ok {
			affectedSet[id] = true
		}
	}

	for _, id := range sortedSet(affectedSet) {
		if err := p.reembed(ctx, tenant, campaignID, byID[id]); err != nil {
			return err
		}
	}

	if err := p.patchCommunities(ctx, campaignID, cg, communities, affectedSet, byID); err != nil {
		return err
	}

	// Importance rows update for the affected entities and their 2-hop
	// neighborhoods only; metrics still come from the full graph.
	scopeIDs := cg.expandTwoHop(sortedSet(affectedSet))
	scope := make(map[string]bool, len(scopeIDs))
	for _, id := range scopeIDs {
		scope[id] = true
	}
	updated, err := p.graph.ListCommunities(ctx, campaignID)
	if err != nil {
		return fmt.Errorf("listing communities: %w", err)
	}
	rows := importanceRows(cg, hierarchyLevels(updated), scope)
	if err := p.graph.UpsertImportance(ctx, campaignID, rows); err != nil {
		return fmt.Errorf("writing importance: %w", err)
	}
	return nil
}

// patchCommunities recomputes membership only where an affected entity is
// involved. Affected members move to the community they connect to most;
// orphans with any connectivity join their nearest community, while fully
// disconnected orphans wait for the next full rebuild.
func (p *Processor) patchCommunities(
	ctx context.Context,
	campaignID string,
	cg *campaignGraph,
	communities []*ent.Community,
	affectedSet map[string]bool,
	byID map[string]*ent.Entity,
) error {
	membership := make(map[string][]string, len(communities))
	homeOf := make(map[string]string)
	for _, comm := range communities {
		members := make([]string, 0, len(comm.EntityIds))
		for _, id := range comm.EntityIds {
			if _, ok := byID[id]; ok {
				members = append(members, id)
			}
		}
		membership[comm.ID] = members
		for _, id := range members {
			homeOf[id] = comm.ID
		}
	}

	touched := make(map[string]bool)
	for _, id := range sortedSet(affectedSet) {
		best, bestScore := "", 0
		for _, comm := range communities {
			score := cg.connectivity(id, membership[comm.ID])
			if score > bestScore || (score == bestScore && score > 0 && comm.ID < best) {
				best, bestScore = comm.ID, score
			}
		}

		home := homeOf[id]
		if bestScore == 0 {
			if home == "" {
				p.logger.Debug("orphan entity has no connectivity, deferring to next full rebuild",
					"campaign_id", campaignID, "entity_id", id)
			} else {
				touched[home] = true
			}
			continue
		}
		touched[best] = true
		if home == best {
			continue
		}
		if home != "" {
			membership[home] = remove(membership[home], id)
			touched[home] = true
		}
		membership[best] = append(membership[best], id)
		homeOf[id] = best
	}

	for _, comm := range communities {
		if !touched[comm.ID] {
			continue
		}
		members := membership[comm.ID]
		sort.Strings(members)
		meta := comm.Metadata
		if meta == nil {
			meta = make(map[string]string)
		}
		summary, err := p.summarize(ctx, members, byID)
		if err != nil {
			return err
		}
		meta["summary"] = summary
		if err := p.graph.UpdateCommunity(ctx, comm.ID, members, meta); err != nil {
			return err
		}
	}
	return nil
}

// buildCommunities turns detection output into a two-level forest: leaf
// communities at level 1 grouped under level-0 parents by re-running
// detection on the condensed graph. Small partitions stay flat.
func (p *Processor) buildCommunities(
	ctx context.Context,
	campaignID string,
	cg *campaignGraph,
	groups [][]string,
	byID map[string]*ent.Entity,
) ([]graph.CommunityInput, map[string]int, error) {
	levels := make(map[string]int)
	if len(groups) == 0 {
		return nil, levels, nil
	}

	meta := func(summary string) map[string]string {
		return map[string]string{
			"algorithm": communityAlgorithm,
			"seed":      fmt.Sprintf("%d", communitySeed),
			"summary":   summary,
		}
	}

	if len(groups) <= 2 {
		inputs := make([]graph.CommunityInput, 0, len(groups))
		for i, members := range groups {
			summary, err := p.summarize(ctx, members, byID)
			if err != nil {
				return nil, nil, err
			}
			inputs = append(inputs, graph.CommunityInput{
				ID:        communityID(campaignID, 0, i),
				Level:     0,
				EntityIDs: members,
				Metadata:  meta(summary),
			})
			for _, id := range members {
				levels[id] = 0
			}
		}
		return inputs, levels, nil
	}

	parents := cg.condense(groups, communitySeed)
	var inputs []graph.CommunityInput
	leafIndex := 0
	for parentIdx, leafIdxs := range parents {
		parentID := communityID(campaignID, 0, parentIdx)
		var parentMembers []string
		var leafInputs []graph.CommunityInput
		for _, li := range leafIdxs {
			members := groups[li]
			summary, err := p.summarize(ctx, members, byID)
			if err != nil {
				return nil, nil, err
			}
			leafInputs = append(leafInputs, graph.CommunityInput{
				ID:                communityID(campaignID, 1, leafIndex),
				Level:             1,
				ParentCommunityID: parentID,
				EntityIDs:         members,
				Metadata:          meta(summary),
			})
			leafIndex++
			parentMembers = append(parentMembers, members...)
			for _, id := range members {
				levels[id] = 1
			}
		}
		sort.Strings(parentMembers)
		summary, err := p.summarize(ctx, parentMembers, byID)
		if err != nil {
			return nil, nil, err
		}
		inputs = append(inputs, graph.CommunityInput{
			ID:        parentID,
			Level:     0,
			EntityIDs: parentMembers,
			Metadata:  meta(summary),
		})
		inputs = append(inputs, leafInputs...)
	}
	return inputs, levels, nil
}

// summarize produces the community summary text. Provider failures other
// than rate limits degrade to a name roll-up; rate limits propagate so the
// whole rebuild backs off.
func (p *Processor) summarize(ctx context.Context, members []string, byID map[string]*ent.Entity) (string, error) {
	names := make([]string, 0, len(members))
	var sb strings.Builder
	for _, id := range members {
		entity, ok := byID[id]
		if !ok {
			continue
		}
		names = append(names, entity.Name)
		fmt.Fprintf(&sb, "%s (%s): %s\n", entity.Name, entity.EntityType, embedding.Truncate(entity.Content, 400))
	}
	if len(names) == 0 {
		return "", nil
	}

	raw, err := p.provider.CompleteStructured(ctx, llm.StructuredRequest{
		System:     summarySystemPrompt,
		User:       sb.String(),
		SchemaName: "community_summary",
		Schema:     summarySchema,
		MaxTokens:  summaryMaxTokens,
	})
	if err != nil {
		if llm.IsRateLimit(err) {
			return "", err
		}
		p.logger.Warn("community summary generation failed, using roll-up", "error", err)
		return rollupSummary(names), nil
	}

	var parsed struct {
		Summary string `json:"summary"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil || parsed.Summary == "" {
		p.logger.Warn("community summary response unparseable, using roll-up", "error", err)
		return rollupSummary(names), nil
	}
	return parsed.Summary, nil
}

// rollupSummary is the deterministic fallback summary.
func rollupSummary(names []string) string {
	const sample = 8
	shown := names
	if len(shown) > sample {
		shown = shown[:sample]
	}
	s := fmt.Sprintf("Community of %d entities: %s", len(names), strings.Join(shown, ", "))
	if len(names) > sample {
		s += fmt.Sprintf(" and %d more", len(names)-sample)
	}
	return s
}

func (p *Processor) loadGraph(ctx context.Context, campaignID string) ([]*ent.Entity, []*ent.EntityRelationship, error) {
	entities, err := p.graph.ListEntities(ctx, campaignID, "", 0, 0)
	if err != nil {
		return nil, nil, fmt.Errorf("listing entities: %w", err)
	}
	edges, err := p.graph.ListEdges(ctx, campaignID)
	if err != nil {
		return nil, nil, fmt.Errorf("listing edges: %w", err)
	}
	return entities, edges, nil
}

// reembed rewrites one entity's vector under its stable id. Rate limits
// propagate; the embedder handles everything else with its fallback.
func (p *Processor) reembed(ctx context.Context, tenant, campaignID string, entity *ent.Entity) error {
	_, err := p.embedder.EmbedAndIndex(ctx, "entity:"+entity.ID, entity.Content, map[string]any{
		"entity_id":   entity.ID,
		"campaign_id": campaignID,
		"tenant":      tenant,
		"contentType": vector.ContentTypeEntity,
		"entity_type": entity.EntityType,
		"created_at":  float64(entity.CreatedAt.Unix()),
	})
	if err != nil {
		return fmt.Errorf("re-embedding %s: %w", entity.ID, err)
	}
	return nil
}

func communityID(campaignID string, level, n int) string {
	return fmt.Sprintf("%s_comm_l%d_%d", campaignID, level, n)
}

func entitiesByID(entities []*ent.Entity) map[string]*ent.Entity {
	byID := make(map[string]*ent.Entity, len(entities))
	for _, e := range entities {
		byID[e.ID] = e
	}
	return byID
}

func sortedSet(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func remove(members []string, id string) []string {
	out := members[:0]
	for _, m := range members {
		if m != id {
			out = append(out, m)
		}
	}
	return out
}
