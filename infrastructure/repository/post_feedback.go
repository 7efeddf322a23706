package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/catalog-social-api/infrastructure/database/postgres"
	"github.com/vfg2006/catalog-social-api/internal/domain"
)

const (
	postFeedbackTable = "post_feedback pf"
)

type PostFeedbackRepository interface {
	GetByPostID(postID string) (*domain.PostFeedback, error)
	Seed(feedback *domain.PostFeedback) error
	SaveCollection(postID string, metrics *domain.PostMetrics, perfScore int, collectedAt time.Time) error
	SaveCollectionError(postID string, detail string, collectedAt time.Time) error
}

type postFeedbackRepository struct {
	conn *postgres.Connection
}

func NewPostFeedbackRepository(conn *postgres.Connection) PostFeedbackRepository {
	return &postFeedbackRepository{
		conn: conn,
	}
}

func (r *postFeedbackRepository) GetByPostID(postID string) (*domain.PostFeedback, error) {
	query, args, err := squirrel.
		Select("pf.id, pf.post_id, pf.channel, pf.ig_media_id, pf.fb_post_id, pf.metrics, pf.perf_score, pf.collection_error, pf.collected_at, pf.created_at, pf.updated_at").
		From(postFeedbackTable).
		Where(squirrel.Eq{"pf.post_id": postID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	feedback := &domain.PostFeedback{}
	var igMediaID, fbPostID, collectionError sql.NullString
	var collectedAt sql.NullTime
	var metricsJSON []byte

	row := r.conn.QueryRow(query, args...)
	err = row.Scan(
		&feedback.ID,
		&feedback.PostID,
		&feedback.Channel,
		&igMediaID,
		&fbPostID,
		&metricsJSON,
		&feedback.PerfScore,
		&collectionError,
		&collectedAt,
		&feedback.CreatedAt,
		&feedback.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear post_feedback: %w", err)
	}

	if igMediaID.Valid {
		feedback.IGMediaID = &igMediaID.String
	}
	if fbPostID.Valid {
		feedback.FBPostID = &fbPostID.String
	}
	if collectionError.Valid {
		feedback.CollectionError = &collectionError.String
	}
	if collectedAt.Valid {
		feedback.CollectedAt = &collectedAt.Time
	}

	if metricsJSON != nil {
		metrics := &domain.PostMetrics{}
		if err := json.Unmarshal(metricsJSON, metrics); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de metrics: %w", err)
		}
		feedback.Metrics = metrics
	}

	return feedback, nil
}

// Seed cria a linha de feedback no momento da publicação, com métricas
// vazias. Upsert por post_id: uma republicação não duplica a linha.
func (r *postFeedbackRepository) Seed(feedback *domain.PostFeedback) error {
	metricsJSON, err := json.Marshal(feedback.Metrics)
	if err != nil {
		return fmt.Errorf("erro ao serializar metrics para JSON: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert("post_feedback").
		Columns("post_id", "channel", "ig_media_id", "fb_post_id", "metrics", "perf_score").
		Values(
			feedback.PostID,
			feedback.Channel,
			feedback.IGMediaID,
			feedback.FBPostID,
			metricsJSON,
			feedback.PerfScore,
		).
		Suffix(`
			ON CONFLICT (post_id) DO UPDATE SET
				channel = EXCLUDED.channel,
				ig_media_id = EXCLUDED.ig_media_id,
				fb_post_id = EXCLUDED.fb_post_id,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// SaveCollection sobrescreve o snapshot de métricas e score do post.
// O snapshot é substituído a cada ciclo de coleta, não acumulado.
func (r *postFeedbackRepository) SaveCollection(postID string, metrics *domain.PostMetrics, perfScore int, collectedAt time.Time) error {
	metricsJSON, err := json.Marshal(metrics)
	if err != nil {
		return fmt.Errorf("erro ao serializar metrics para JSON: %w", err)
	}

	query, args, err := squirrel.
		Update("post_feedback").
		Set("metrics", metricsJSON).
		Set("perf_score", perfScore).
		Set("collection_error", nil).
		Set("collected_at", collectedAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"post_id": postID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// SaveCollectionError registra uma coleta degradada: score zero e o
// detalhe do erro, para que o post não seja tentado eternamente
func (r *postFeedbackRepository) SaveCollectionError(postID string, detail string, collectedAt time.Time) error {
	query, args, err := squirrel.
		Update("post_feedback").
		Set("metrics", nil).
		Set("perf_score", 0).
		Set("collection_error", detail).
		Set("collected_at", collectedAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"post_id": postID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}
