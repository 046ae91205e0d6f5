package vectordb

import "context"

// Service is the set of vector store operations the service relies on.
// The qdrant package provides the implementation.
type Service interface {
	// ListCollections returns names of all collections.
	ListCollections(ctx context.Context) ([]string, error)

	// CollectionExists reports whether a collection with this name exists.
	CollectionExists(ctx context.Context, name string) (bool, error)

	// EnsureCollection creates the collection when it is missing and reports
	// whether it did. An existing collection is left untouched, even if its
	// size or distance differ.
	EnsureCollection(ctx context.Context, name string, vectorSize uint64, distance Distance) (bool, error)

	// Upsert writes points, replacing any with the same id, and returns once
	// they are persisted.
	Upsert(ctx context.Context, collection string, points []Point) error

	// GetCollection retrieves metadata about a collection.
	GetCollection(ctx context.Context, name string) (*Collection, error)

	// Search returns up to req.TopK points ordered by descending score.
	Search(ctx context.Context, req SearchRequest) ([]SearchResult, error)
}
