package vectordb

import (
	"fmt"
	"strings"
)

// Point is a vector with an id and a JSON-compatible payload.
// Writing a Point whose ID already exists replaces it.
type Point struct {
	ID      uint64         `json:"id" yaml:"id" mapstructure:"id"`
	Vector  []float32      `json:"vector" yaml:"vector" mapstructure:"vector"`
	Payload map[string]any `json:"payload,omitempty" yaml:"payload" mapstructure:"payload"`
}

// SearchRequest represents a single similarity search query.
type SearchRequest struct {
	// CollectionName is the target collection to search in
	CollectionName string `json:"collectionName"`

	// Vector is the query embedding to find similar vectors for
	Vector []float32 `json:"vector"`

	// TopK is the maximum number of results to return
	TopK int `json:"maxResults"`

	// Filters is optional payload filtering
	Filters *FilterSet `json:"filters,omitempty"`
}

// SearchResult is one scored hit. Results are returned ordered by
// descending Score.
type SearchResult struct {
	// ID is the point id rendered as a string (numeric ids in base 10).
	ID string `json:"id"`

	Score float32 `json:"score"`

	// Payload contains the metadata stored with the vector
	Payload map[string]any `json:"payload"`
}

// Collection contains metadata about a vector collection.
type Collection struct {
	Name string `json:"name"`

	// Status indicates the operational state (e.g., "Green", "Yellow")
	Status string `json:"status"`

	// VectorSize is the dimension of vectors in this collection
	VectorSize int `json:"vectorSize"`

	Distance Distance `json:"distance"`

	// VectorCount is the number of indexed vectors
	VectorCount uint64 `json:"vectorCount"`

	// PointCount is the number of stored points
	PointCount uint64 `json:"pointCount"`
}

// Distance is the similarity metric of a collection.
type Distance string

const (
	Cosine    Distance = "Cosine"
	Euclid    Distance = "Euclid"
	Dot       Distance = "Dot"
	Manhattan Distance = "Manhattan"
)

// ParseDistance accepts a metric name in any letter case.
func ParseDistance(s string) (Distance, error) {
	for _, d := range []Distance{Cosine, Euclid, Dot, Manhattan} {
		if strings.EqualFold(s, string(d)) {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown distance %q", s)
}

func (d Distance) String() string {
	return string(d)
}
