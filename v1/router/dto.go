package router

const (
	statusSuccess = "success"
	statusError   = "error"

	serviceRunning     = "running"
	serviceUnavailable = "unavailable"
)

type HealthResponse struct {
	App    string `json:"app"`
	Redis  string `json:"redis"`
	Qdrant string `json:"qdrant"`
}

type RedisTestResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Counter string `json:"counter"`
}

type QdrantTestResponse struct {
	Status      string   `json:"status"`
	Message     string   `json:"message"`
	Collections []string `json:"collections"`
}

type CacheDataResponse struct {
	Status    string            `json:"status"`
	CacheData map[string]string `json:"cache_data"`
}

type CollectionSummary struct {
	Name         string `json:"name"`
	VectorsCount uint64 `json:"vectors_count"`
}

type VectorsResponse struct {
	Status      string              `json:"status"`
	Collections []CollectionSummary `json:"collections"`
}

// SearchHit carries numeric point ids as JSON numbers and UUIDs as strings.
type SearchHit struct {
	ID      any            `json:"id"`
	Score   float32        `json:"score"`
	Payload map[string]any `json:"payload"`
}

type SearchResponse struct {
	Status      string      `json:"status"`
	Query       string      `json:"query"`
	QueryVector []float32   `json:"query_vector"`
	Results     []SearchHit `json:"results"`
}
