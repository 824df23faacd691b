package vector

import (
	"context"
	"fmt"

	"github.com/qdrant/go-client/qdrant"
)

// QdrantIndex implements Index on a Qdrant collection. Tenant isolation is
// payload-level: every record carries tenant/campaign/contentType fields and
// every query filters on them.
type QdrantIndex struct {
	client     *qdrant.Client
	collection string
	dim        int
}

// QdrantOptions configures NewQdrantIndex.
type QdrantOptions struct {
	Host       string
	Port       int
	APIKey     string
	UseTLS     bool
	Collection string
	Dim        int
}

// NewQdrantIndex connects to Qdrant and ensures the collection exists with
// cosine distance and the configured dimension.
func NewQdrantIndex(ctx context.Context, opts QdrantOptions) (*QdrantIndex, error) {
	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   opts.Host,
		Port:   opts.Port,
		APIKey: opts.APIKey,
		UseTLS: opts.UseTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("qdrant: connecting: %w", err)
	}

	exists, err := client.CollectionExists(ctx, opts.Collection)
	if err != nil {
		return nil, fmt.Errorf("qdrant: checking collection %s: %w", opts.Collection, err)
	}
	if !exists {
		err = client.CreateCollection(ctx, &qdrant.CreateCollection{
			CollectionName: opts.Collection,
			VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
				Size:     uint64(opts.Dim),
				Distance: qdrant.Distance_Cosine,
			}),
		})
		if err != nil {
			return nil, fmt.Errorf("qdrant: creating collection %s: %w", opts.Collection, err)
		}
	}

	return &QdrantIndex{client: client, collection: opts.Collection, dim: opts.Dim}, nil
}

// Close releases the underlying gRPC connection.
func (q *QdrantIndex) Close() error {
	return q.client.Close()
}

// Upsert validates and writes records. Qdrant upsert is idempotent by point id.
func (q *QdrantIndex) Upsert(ctx context.Context, records []Record) error {
	if len(records) == 0 {
		return nil
	}
	points := make([]*qdrant.PointStruct, 0, len(records))
	for _, rec := range records {
		if err := Validate(rec, q.dim); err != nil {
			return err
		}
		payload := SanitizeMetadata(rec.Metadata)
		if payload == nil {
			payload = map[string]any{}
		}
		// Qdrant point ids must be UUIDs; the external v_<hex> id lives in
		// the payload and maps deterministically onto a UUID.
		payload["vector_id"] = rec.ID
		points = append(points, &qdrant.PointStruct{
			Id:      qdrant.NewID(pointUUID(rec.ID)),
			Vectors: qdrant.NewVectors(rec.Values...),
			Payload: qdrant.NewValueMap(payload),
		})
	}

	_, err := q.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: q.collection,
		Points:         points,
	})
	if err != nil {
		return fmt.Errorf("qdrant: upserting %d points: %w", len(points), err)
	}
	return nil
}

// Query runs a filtered similarity search.
func (q *QdrantIndex) Query(ctx context.Context, query Query) ([]Match, error) {
	var filter *qdrant.Filter
	if len(query.Filter) > 0 {
		conditions := make([]*qdrant.Condition, 0, len(query.Filter))
		for field, value := range query.Filter {
			conditions = append(conditions, qdrant.NewMatch(field, value))
		}
		filter = &qdrant.Filter{Must: conditions}
	}

	limit := uint64(query.TopK)
	points, err := q.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: q.collection,
		Query:          qdrant.NewQuery(query.Vector...),
		Limit:          &limit,
		Filter:         filter,
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("qdrant: query: %w", err)
	}

	matches := make([]Match, 0, len(points))
	for _, pt := range points {
		match := Match{Score: pt.Score}
		payload := pt.Payload
		if vid, ok := payload["vector_id"]; ok {
			match.ID = vid.GetStringValue()
		}
		if query.WithMetadata {
			meta := make(map[string]any, len(payload))
			for k, v := range payload {
				if k == "vector_id" {
					continue
				}
				meta[k] = valueToAny(v)
			}
			match.Metadata = meta
		}
		matches = append(matches, match)
	}
	return matches, nil
}

// DeleteByIDs removes the given vectors. Missing ids are ignored.
func (q *QdrantIndex) DeleteByIDs(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	pointIDs := make([]*qdrant.PointId, 0, len(ids))
	for _, id := range ids {
		pointIDs = append(pointIDs, qdrant.NewID(pointUUID(id)))
	}
	_, err := q.client.Delete(ctx, &qdrant.DeletePoints{
		CollectionName: q.collection,
		Points:         qdrant.NewPointsSelector(pointIDs...),
	})
	if err != nil {
		return fmt.Errorf("qdrant: deleting %d points: %w", len(ids), err)
	}
	return nil
}

// pointUUID formats the first 32 hex chars of a v_<hex> id as a UUID.
// Deterministic, so upserts stay idempotent.
func pointUUID(vectorID string) string {
	h := vectorID[2:] // strip "v_"
	return fmt.Sprintf("%s-%s-%s-%s-%s", h[0:8], h[8:12], h[12:16], h[16:20], h[20:32])
}

func valueToAny(v *qdrant.Value) any {
	switch kind := v.GetKind().(type) {
	case *qdrant.Value_StringValue:
		return kind.StringValue
	case *qdrant.Value_DoubleValue:
		return kind.DoubleValue
	case *qdrant.Value_IntegerValue:
		return kind.IntegerValue
	case *qdrant.Value_BoolValue:
		return kind.BoolValue
	case *qdrant.Value_ListValue:
		items := kind.ListValue.GetValues()
		out := make([]string, 0, len(items))
		for _, item := range items {
			out = append(out, item.GetStringValue())
		}
		return out
	default:
		return v.String()
	}
}
