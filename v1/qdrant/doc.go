// Package qdrant wraps the official Qdrant Go client (gRPC) and implements
// vectordb.Service.
//
// # Connection
//
//	client, err := qdrant.NewClient(qdrant.Config{
//	    Endpoint: "localhost",
//	    Port:     6334,
//	})
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
// NewClient never dials eagerly. HealthCheck probes the server, and the fx
// start hook calls it once, logging a failure without aborting startup.
//
// # Collections and points
//
//	created, err := client.EnsureCollection(ctx, "test_vectors", 4, vectordb.Cosine)
//
//	err = client.Upsert(ctx, "test_vectors", []vectordb.Point{
//	    {ID: 1, Vector: []float32{0.1, 0.2, 0.3, 0.4}, Payload: map[string]any{"type": "greeting"}},
//	})
//
// Upsert splits input into batches of Config.BatchSize (default 200) and waits
// for each batch to be persisted before sending the next.
//
// # Search
//
//	results, err := client.Search(ctx, vectordb.SearchRequest{
//	    CollectionName: "test_vectors",
//	    Vector:         []float32{0.2, 0.3, 0.4, 0.5},
//	    TopK:           3,
//	})
//
// Payload values come back as plain Go values: nil, bool, int64, float64,
// string, []any and map[string]any.
//
// # Errors
//
// Errors wrap the gRPC status returned by the server, so callers can use
// status.Code(err) to tell NotFound, InvalidArgument and Unavailable apart.
//
// # Configuration
//
//	SHOWCASE_QDRANT_ENDPOINT=localhost
//	SHOWCASE_QDRANT_PORT=6334
//	SHOWCASE_QDRANT_API_KEY=
//	SHOWCASE_QDRANT_USE_TLS=false
//	SHOWCASE_QDRANT_TIMEOUT=5s
package qdrant
