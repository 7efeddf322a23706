package domain

import "time"

// PostFeedback é o snapshot de métricas e score de um post publicado.
// Exatamente uma linha por post: criada no momento da publicação e
// sobrescrita a cada ciclo de coleta.
type PostFeedback struct {
	ID              string        `json:"id"`
	PostID          string        `json:"post_id"`
	Channel         ChannelTarget `json:"channel"`
	IGMediaID       *string       `json:"ig_media_id,omitempty"`
	FBPostID        *string       `json:"fb_post_id,omitempty"`
	Metrics         *PostMetrics  `json:"metrics,omitempty"`
	PerfScore       int           `json:"perf_score"`
	CollectionError *string       `json:"collection_error,omitempty"`
	CollectedAt     *time.Time    `json:"collected_at,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// ProductPerformance é o sinal de performance por produto usado pela
// seleção de produtos. Uma linha por produto, sobrescrita a cada coleta.
type ProductPerformance struct {
	ProductID   string    `json:"product_id"`
	PerfScore   int       `json:"perf_score"`
	LastUpdated time.Time `json:"last_updated"`
}

// CollectResult é o resultado da coleta de métricas de um único post.
// Falhas por post são valores inspecionáveis, não exceções engolidas.
type CollectResult struct {
	PostID    string `json:"post_id"`
	PerfScore int    `json:"perf_score"`
	Degraded  bool   `json:"degraded"`
	Error     string `json:"error,omitempty"`
}

// CollectReport resume um lote de coleta de métricas
type CollectReport struct {
	StartedAt  time.Time       `json:"started_at"`
	FinishedAt time.Time       `json:"finished_at"`
	Processed  int             `json:"processed"`
	Degraded   int             `json:"degraded"`
	Results    []CollectResult `json:"results"`
}
