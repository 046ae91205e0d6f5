// Package vectordb holds the database-agnostic vector types shared by the
// router and the qdrant client: Point, Collection, SearchRequest,
// SearchResult, Distance and a small payload filter vocabulary.
//
// Handlers depend on Service, never on the qdrant SDK:
//
//	results, err := db.Search(ctx, vectordb.SearchRequest{
//	    CollectionName: "test_vectors",
//	    Vector:         []float32{0.2, 0.3, 0.4, 0.5},
//	    TopK:           3,
//	    Filters:        vectordb.NewFilterSet(vectordb.Must(vectordb.NewMatch("type", "greeting"))),
//	})
package vectordb
