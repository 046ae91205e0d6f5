package router

import (
	"context"
	"time"

	"github.com/Aleph-Alpha/infra-showcase/v1/vectordb"
)

// KeyValueStore is the cache the routes talk to. *redis.RedisClient
// implements it.
//
//go:generate mockgen -source=interface.go -destination=mock_stores.go -package=router
type KeyValueStore interface {
	Ping(ctx context.Context) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Keys(ctx context.Context, pattern string) ([]string, error)
}

// VectorStore is the vector database the routes talk to.
// *qdrant.QdrantClient implements it.
type VectorStore interface {
	HealthCheck(ctx context.Context) error
	ListCollections(ctx context.Context) ([]string, error)
	EnsureCollection(ctx context.Context, name string, vectorSize uint64, distance vectordb.Distance) (bool, error)
	Upsert(ctx context.Context, collection string, points []vectordb.Point) error
	GetCollection(ctx context.Context, name string) (*vectordb.Collection, error)
	Search(ctx context.Context, req vectordb.SearchRequest) ([]vectordb.SearchResult, error)
}
