package qdrant

import (
	"context"
	"errors"
	"fmt"

	qdrant "github.com/qdrant/go-client/qdrant"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Aleph-Alpha/infra-showcase/v1/vectordb"
)

// ListCollections returns the names of all collections in server order.
func (c *QdrantClient) ListCollections(ctx context.Context) ([]string, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	done := c.startOperation("list_collections", "")
	names, err := c.api.ListCollections(ctx)
	done(err, int64(len(names)))
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	return names, nil
}

// CollectionExists reports whether a collection named name exists.
func (c *QdrantClient) CollectionExists(ctx context.Context, name string) (bool, error) {
	if name == "" {
		return false, errors.New("collection name cannot be empty")
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	done := c.startOperation("collection_exists", name)
	exists, err := c.api.CollectionExists(ctx, name)
	done(err, 0)
	if err != nil {
		return false, fmt.Errorf("failed to check collection '%s': %w", name, err)
	}
	return exists, nil
}

// EnsureCollection creates the collection if it is missing and reports
// whether this call created it. Losing a creation race to another caller
// counts as already existing.
func (c *QdrantClient) EnsureCollection(ctx context.Context, name string, vectorSize uint64, distance vectordb.Distance) (bool, error) {
	if vectorSize == 0 {
		return false, errors.New("vector size must be greater than 0")
	}
	qdist, err := toQdrantDistance(distance)
	if err != nil {
		return false, err
	}

	exists, err := c.CollectionExists(ctx, name)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	done := c.startOperation("create_collection", name)
	err = c.api.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: name,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     vectorSize,
			Distance: qdist,
		}),
	})
	done(err, 0)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return false, nil
		}
		return false, fmt.Errorf("failed to create collection '%s': %w", name, err)
	}

	if c.logger != nil {
		c.logger.Info("created qdrant collection", nil, map[string]interface{}{
			"collection": name,
			"size":       vectorSize,
			"distance":   distance.String(),
		})
	}
	return true, nil
}

// Upsert writes points in batches of Config.BatchSize and waits for each
// batch to be persisted. Existing ids are overwritten.
func (c *QdrantClient) Upsert(ctx context.Context, collection string, points []vectordb.Point) error {
	if collection == "" {
		return errors.New("collection name cannot be empty")
	}

	for start := 0; start < len(points); start += c.cfg.BatchSize {
		end := min(start+c.cfg.BatchSize, len(points))
		if err := c.upsertBatch(ctx, collection, points[start:end]); err != nil {
			return fmt.Errorf("batch upsert failed at [%d:%d]: %w", start, end, err)
		}
	}
	return nil
}

func (c *QdrantClient) upsertBatch(ctx context.Context, collection string, batch []vectordb.Point) error {
	structs := make([]*qdrant.PointStruct, 0, len(batch))
	for _, p := range batch {
		payload, err := qdrant.TryValueMap(p.Payload)
		if err != nil {
			return fmt.Errorf("point %d: invalid payload: %w", p.ID, err)
		}
		structs = append(structs, &qdrant.PointStruct{
			Id:      qdrant.NewIDNum(p.ID),
			Vectors: qdrant.NewVectors(p.Vector...),
			Payload: payload,
		})
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	wait := true
	done := c.startOperation("upsert", collection)
	_, err := c.api.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: collection,
		Points:         structs,
		Wait:           &wait,
	})
	done(err, int64(len(structs)))
	return err
}

// GetCollection retrieves metadata about a collection.
func (c *QdrantClient) GetCollection(ctx context.Context, name string) (*vectordb.Collection, error) {
	if name == "" {
		return nil, errors.New("collection name cannot be empty")
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	done := c.startOperation("get_collection", name)
	info, err := c.api.GetCollectionInfo(ctx, name)
	done(err, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to get collection '%s': %w", name, err)
	}

	size, distance := extractVectorDetails(info)
	return &vectordb.Collection{
		Name:        name,
		Status:      info.GetStatus().String(),
		VectorSize:  size,
		Distance:    distance,
		VectorCount: info.GetIndexedVectorsCount(),
		PointCount:  info.GetPointsCount(),
	}, nil
}

// Search queries req.CollectionName for the req.TopK nearest points to
// req.Vector, with payloads. Results keep the server's descending-score order.
func (c *QdrantClient) Search(ctx context.Context, req vectordb.SearchRequest) ([]vectordb.SearchResult, error) {
	if err := validateSearchInput(req.CollectionName, req.Vector, req.TopK); err != nil {
		return nil, err
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	limit := uint64(req.TopK)
	done := c.startOperation("search", req.CollectionName)
	resp, err := c.api.Query(ctx, &qdrant.QueryPoints{
		CollectionName: req.CollectionName,
		Query:          qdrant.NewQuery(req.Vector...),
		Limit:          &limit,
		WithPayload:    qdrant.NewWithPayload(true),
		Filter:         convertFilterSet(req.Filters),
	})
	done(err, int64(len(resp)))
	if err != nil {
		return nil, fmt.Errorf("search in '%s' failed: %w", req.CollectionName, err)
	}

	return parseSearchResults(resp)
}

func validateSearchInput(collectionName string, vector []float32, topK int) error {
	if collectionName == "" {
		return errors.New("collection name cannot be empty")
	}
	if len(vector) == 0 {
		return errors.New("vector cannot be empty")
	}
	if topK <= 0 {
		return errors.New("topK must be greater than 0")
	}
	return nil
}

// extractVectorDetails reads size and distance of the single unnamed vector
// from a collection's config. Named-vector collections yield (0, "").
func extractVectorDetails(info *qdrant.CollectionInfo) (int, vectordb.Distance) {
	params := info.GetConfig().GetParams().GetVectorsConfig().GetParams()
	if params == nil {
		return 0, ""
	}
	return int(params.GetSize()), fromQdrantDistance(params.GetDistance())
}
