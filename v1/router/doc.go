// Package router is the HTTP surface of the service, built on fiber.
//
// Routes (all GET):
//
//	/             HTML index linking every route
//	/health       {app, redis, qdrant}; always 200
//	/test/redis   writes and reads back the demo message and counter
//	/test/qdrant  creates the demo collection if missing, upserts the demo points
//	/cache/data   every cached key with its value
//	/vectors      collections with their point counts
//	/search       similarity search; ?vector=, ?limit=, ?type=, ?query=
//
// Handlers depend on the KeyValueStore and VectorStore interfaces. A failing
// route returns an error that Classify maps to a Kind, and the body is
// {"status":"error","kind":...,"message":...} with 500 for connection and
// unknown errors, 404 for not_found and 400 for validation.
//
// Every request gets an X-Request-ID, a tracing span, request metrics and
// one access log line.
package router
