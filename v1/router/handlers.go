package router

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"

	"github.com/Aleph-Alpha/infra-showcase/v1/logger"
	"github.com/Aleph-Alpha/infra-showcase/v1/redis"
	"github.com/Aleph-Alpha/infra-showcase/v1/vectordb"
)

// Handler serves the showcase routes on top of a KeyValueStore and a
// VectorStore. It holds no per-request state and is safe for concurrent use.
type Handler struct {
	kv  KeyValueStore
	vs  VectorStore
	cfg Config
	log logger.Logger
}

func NewHandler(cfg Config, kv KeyValueStore, vs VectorStore, log logger.Logger) *Handler {
	return &Handler{kv: kv, vs: vs, cfg: cfg.withDefaults(), log: log}
}

// Register mounts every route on app.
func (h *Handler) Register(app fiber.Router) {
	app.Get("/", h.Index)
	app.Get("/health", h.Health)
	app.Get("/test/redis", h.TestRedis)
	app.Get("/test/qdrant", h.TestQdrant)
	app.Get("/cache/data", h.CacheData)
	app.Get("/vectors", h.Vectors)
	app.Get("/search", h.Search)
}

func (h *Handler) Index(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(indexHTML)
}

// Health probes both backends concurrently. It never fails: a probe error
// only marks that backend unavailable.
func (h *Handler) Health(c *fiber.Ctx) error {
	ctx := c.UserContext()
	resp := HealthResponse{App: serviceRunning, Redis: serviceUnavailable, Qdrant: serviceUnavailable}

	var g errgroup.Group
	g.Go(func() error {
		if h.probe(ctx, "redis", h.kv.Ping) {
			resp.Redis = serviceRunning
		}
		return nil
	})
	g.Go(func() error {
		if h.probe(ctx, "qdrant", h.vs.HealthCheck) {
			resp.Qdrant = serviceRunning
		}
		return nil
	})
	_ = g.Wait()

	return c.JSON(resp)
}

func (h *Handler) probe(ctx context.Context, name string, ping func(context.Context) error) bool {
	ctx, cancel := context.WithTimeout(ctx, h.cfg.HealthTimeout)
	defer cancel()

	if err := ping(ctx); err != nil {
		h.log.WarnWithContext(ctx, "health probe failed", err, map[string]interface{}{"service": name})
		return false
	}
	return true
}

// TestRedis writes the demo message and counter and reads both back.
func (h *Handler) TestRedis(c *fiber.Ctx) error {
	ctx := c.UserContext()
	demo := h.cfg.Demo

	if err := h.kv.Set(ctx, demo.MessageKey, demo.MessageValue, 0); err != nil {
		return err
	}
	if err := h.kv.Set(ctx, demo.CounterKey, *demo.CounterValue, 0); err != nil {
		return err
	}

	message, err := h.kv.Get(ctx, demo.MessageKey)
	if err != nil {
		return err
	}
	counter, err := h.kv.Get(ctx, demo.CounterKey)
	if err != nil {
		return err
	}

	return c.JSON(RedisTestResponse{Status: statusSuccess, Message: message, Counter: counter})
}

// TestQdrant lists collections, creates the demo collection when missing and
// upserts the demo points. The returned names are those listed before
// creation.
func (h *Handler) TestQdrant(c *fiber.Ctx) error {
	ctx := c.UserContext()
	demo := h.cfg.Demo

	names, err := h.vs.ListCollections(ctx)
	if err != nil {
		return err
	}

	created, err := h.vs.EnsureCollection(ctx, demo.Collection, demo.VectorSize, demo.Distance)
	if err != nil {
		return err
	}
	if created {
		h.log.InfoWithContext(ctx, "created demo collection", nil, map[string]interface{}{"collection": demo.Collection})
	}

	if err := h.vs.Upsert(ctx, demo.Collection, demo.Points); err != nil {
		return err
	}

	if names == nil {
		names = []string{}
	}
	return c.JSON(QdrantTestResponse{
		Status:      statusSuccess,
		Message:     fmt.Sprintf("Added %d test vectors to Qdrant", len(demo.Points)),
		Collections: names,
	})
}

// CacheData returns every key matching the demo pattern with its value.
// Keys that vanish between KEYS and GET are skipped.
func (h *Handler) CacheData(c *fiber.Ctx) error {
	ctx := c.UserContext()

	keys, err := h.kv.Keys(ctx, h.cfg.Demo.CachePattern)
	if err != nil {
		return err
	}

	data := make(map[string]string, len(keys))
	for _, key := range keys {
		value, err := h.kv.Get(ctx, key)
		if redis.IsNilError(err) {
			continue
		}
		if err != nil {
			return err
		}
		data[key] = value
	}

	return c.JSON(CacheDataResponse{Status: statusSuccess, CacheData: data})
}

// Vectors lists collections with their point counts. Lookups run
// concurrently up to FanOutLimit and the output keeps the listing order.
func (h *Handler) Vectors(c *fiber.Ctx) error {
	ctx := c.UserContext()

	names, err := h.vs.ListCollections(ctx)
	if err != nil {
		return err
	}

	summaries := make([]CollectionSummary, len(names))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(h.cfg.FanOutLimit)
	for i, name := range names {
		g.Go(func() error {
			info, err := h.vs.GetCollection(gctx, name)
			if err != nil {
				return err
			}
			summaries[i] = CollectionSummary{Name: name, VectorsCount: info.PointCount}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return c.JSON(VectorsResponse{Status: statusSuccess, Collections: summaries})
}

// Search runs a similarity search against the demo collection.
//
// Query parameters:
//   - vector: comma-separated floats, defaults to the configured query vector
//   - limit:  positive integer, defaults to DefaultLimit, capped at MaxLimit
//   - type:   optional exact match on the payload "type" field
//   - query:  free text, echoed back unchanged
func (h *Handler) Search(c *fiber.Ctx) error {
	ctx := c.UserContext()
	demo := h.cfg.Demo

	vector, err := h.parseVector(c.Query("vector"))
	if err != nil {
		return err
	}
	limit, err := h.parseLimit(c.Query("limit"))
	if err != nil {
		return err
	}

	req := vectordb.SearchRequest{
		CollectionName: demo.Collection,
		Vector:         vector,
		TopK:           limit,
	}
	if t := c.Query("type"); t != "" {
		req.Filters = vectordb.NewFilterSet(vectordb.Must(vectordb.NewMatch("type", t)))
	}

	results, err := h.vs.Search(ctx, req)
	if err != nil {
		return err
	}

	hits := make([]SearchHit, 0, len(results))
	for _, r := range results {
		payload := r.Payload
		if payload == nil {
			payload = map[string]any{}
		}
		hits = append(hits, SearchHit{ID: pointID(r.ID), Score: r.Score, Payload: payload})
	}

	return c.JSON(SearchResponse{
		Status:      statusSuccess,
		Query:       c.Query("query"),
		QueryVector: vector,
		Results:     hits,
	})
}

func (h *Handler) parseVector(raw string) ([]float32, error) {
	want := h.cfg.Demo.VectorSize
	if raw == "" {
		return h.cfg.Demo.QueryVector, nil
	}

	parts := strings.Split(raw, ",")
	vector := make([]float32, 0, len(parts))
	for _, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return nil, NewValidationError("invalid vector component %q", p)
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, NewValidationError("vector component %q is not a finite number", p)
		}
		vector = append(vector, float32(f))
	}
	if uint64(len(vector)) != want {
		return nil, NewValidationError("vector must have %d components, got %d", want, len(vector))
	}
	return vector, nil
}

func (h *Handler) parseLimit(raw string) (int, error) {
	if raw == "" {
		return h.cfg.Demo.DefaultLimit, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return 0, NewValidationError("limit must be a positive integer, got %q", raw)
	}
	return min(limit, h.cfg.Demo.MaxLimit), nil
}

// pointID turns numeric ids back into numbers for the response.
func pointID(id string) any {
	if n, err := strconv.ParseUint(id, 10, 64); err == nil {
		return n
	}
	return id
}
