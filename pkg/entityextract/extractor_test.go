package entityextract

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loresmith/loresmith/pkg/llm"
)

func newTestService(mock *llm.Mock) *Service {
	return NewService(mock, 16384, slog.Default())
}

func TestExtract(t *testing.T) {
	mock := llm.NewMock(8)
	mock.QueueResponse(`{"entities":[
		{"id":"c1_aragorn","entity_type":"character","name":"Aragorn","content":"A ranger of the north.",
		 "relations":[{"relationship_type":"travels_to","target_id":"c1_bree"}]},
		{"id":"c1_bree","entity_type":"location","name":"Bree","content":"A crossroads town."}
	]}`)

	entities, err := newTestService(mock).Extract(context.Background(), Request{
		Text:       "[Page 1]\nAragorn is a ranger. [Page 2]\nAragorn travels to Bree.",
		CampaignID: "c1",
		SourceID:   "staging/t1/book.pdf",
		SourceType: "file",
	})
	require.NoError(t, err)
	require.Len(t, entities, 2)
	assert.Equal(t, "c1_aragorn", entities[0].ID)
	assert.Equal(t, "character", entities[0].EntityType)
	require.Len(t, entities[0].Relations, 1)
	assert.Equal(t, "travels_to", entities[0].Relations[0].RelationshipType)

	// Prompt carries the campaign id and the source text.
	require.Len(t, mock.CompletionCalls, 1)
	assert.Contains(t, mock.CompletionCalls[0].User, "Campaign id: c1")
	assert.Contains(t, mock.CompletionCalls[0].User, "Aragorn is a ranger")
}

func TestExtractRetriesParseFailureOnce(t *testing.T) {
	mock := llm.NewMock(8)
	mock.QueueResponse(`not json at all`)
	mock.QueueResponse(`{"entities":[{"id":"c1_zara","entity_type":"character","name":"Zara","content":"A smuggler."}]}`)

	entities, err := newTestService(mock).Extract(context.Background(), Request{CampaignID: "c1", Text: "Zara smuggles."})
	require.NoError(t, err)
	require.Len(t, entities, 1)
	assert.Len(t, mock.CompletionCalls, 2)
}

func TestExtractParseFailureTwiceFails(t *testing.T) {
	mock := llm.NewMock(8)
	mock.QueueResponse(`broken`)
	mock.QueueResponse(`still broken`)

	_, err := newTestService(mock).Extract(context.Background(), Request{CampaignID: "c1", Text: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "after retry")
}

func TestExtractRateLimitPropagates(t *testing.T) {
	mock := llm.NewMock(8)
	mock.QueueError(&llm.RateLimitError{Message: "try again in 2s"})

	_, err := newTestService(mock).Extract(context.Background(), Request{CampaignID: "c1", Text: "x"})
	require.Error(t, err)
	assert.True(t, llm.IsRateLimit(err))
}

func TestNormalize(t *testing.T) {
	mock := llm.NewMock(8)
	mock.QueueResponse(`{"entities":[
		{"id":"","entity_type":"weird-type","name":"The Gray Wastes","content":"A desert."},
		{"id":"c1_ok","entity_type":"location","name":"","content":"dropped, no name"},
		{"id":"unprefixed","entity_type":"item","name":"Moon Blade","content":"A sword.",
		 "relations":[{"relationship_type":"","target_id":"c1_x"},{"relationship_type":"owned_by","target_id":"c1_zara"}]}
	]}`)

	entities, err := newTestService(mock).Extract(context.Background(), Request{CampaignID: "c1", Text: "x"})
	require.NoError(t, err)
	require.Len(t, entities, 2)

	assert.Equal(t, "c1_the_gray_wastes", entities[0].ID)
	assert.Equal(t, TypeConcept, entities[0].EntityType)

	assert.Equal(t, "c1_unprefixed", entities[1].ID)
	require.Len(t, entities[1].Relations, 1)
	assert.Equal(t, "owned_by", entities[1].Relations[0].RelationshipType)
}

func TestEntityID(t *testing.T) {
	assert.Equal(t, "c1_aragorn", EntityID("c1", "Aragorn"))
	assert.Equal(t, "c1_barliman_butterbur", EntityID("c1", "  Barliman Butterbur "))
	assert.Equal(t, "c1_the_prancing_pony", EntityID("c1", "The Prancing Pony!"))
}
