package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/catalog-social-api/infrastructure/database/postgres"
	"github.com/vfg2006/catalog-social-api/internal/domain"
)

const (
	postsTable   = "generated_posts gp"
	postsColumns = "gp.id, gp.product_id, gp.caption_ig, gp.caption_fb, gp.image_url, gp.carousel_images, gp.visual_format, gp.channel_target, gp.status, gp.channel, gp.ig_media_id, gp.fb_post_id, gp.published_at, gp.created_at, gp.updated_at"
)

type PostRepository interface {
	GetByID(id string) (*domain.Post, error)
	ClaimForPublish(id string, force bool) (bool, error)
	SavePublishResult(post *domain.Post) error
	ListPublishedSince(cutoff time.Time) ([]*domain.Post, error)
}

type postRepository struct {
	conn *postgres.Connection
}

func NewPostRepository(conn *postgres.Connection) PostRepository {
	return &postRepository{
		conn: conn,
	}
}

func (r *postRepository) GetByID(id string) (*domain.Post, error) {
	query, args, err := squirrel.
		Select(postsColumns).
		From(postsTable).
		Where(squirrel.Eq{"gp.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	post, err := r.scanPost(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear post: %w", err)
	}

	return post, nil
}

// ClaimForPublish faz a transição DRAFT → QUEUED de forma atômica: a
// condição de status no UPDATE garante que apenas uma invocação concorrente
// reivindica o post. Com force, o predicado de status é dispensado
// (republicação manual).
func (r *postRepository) ClaimForPublish(id string, force bool) (bool, error) {
	update := squirrel.
		Update("generated_posts").
		Set("status", domain.PostStatusQueued).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if !force {
		update = update.Where(squirrel.Eq{"status": domain.PostStatusDraft})
	}

	query, args, err := update.
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected > 0, nil
}

// SavePublishResult grava o desfecho da publicação: status, identificadores
// por canal, canal efetivo e timestamp de publicação
func (r *postRepository) SavePublishResult(post *domain.Post) error {
	query, args, err := squirrel.
		Update("generated_posts").
		Set("status", post.Status).
		Set("channel", post.Channel).
		Set("ig_media_id", post.IGMediaID).
		Set("fb_post_id", post.FBPostID).
		Set("published_at", post.PublishedAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": post.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// ListPublishedSince seleciona os posts elegíveis para coleta de métricas:
// publicados dentro da janela e com media id do Instagram preenchido,
// ordenados por data de criação
func (r *postRepository) ListPublishedSince(cutoff time.Time) ([]*domain.Post, error) {
	query, args, err := squirrel.
		Select(postsColumns).
		From(postsTable).
		Where(squirrel.Eq{"gp.status": domain.PostStatusPublished}).
		Where(squirrel.NotEq{"gp.ig_media_id": nil}).
		Where(squirrel.GtOrEq{"gp.published_at": cutoff}).
		OrderBy("gp.created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	posts := make([]*domain.Post, 0)
	for rows.Next() {
		post, err := r.scanPostRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear posts: %w", err)
		}
		posts = append(posts, post)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return posts, nil
}

func (r *postRepository) scanPost(row *sql.Row) (*domain.Post, error) {
	post := &domain.Post{}
	var channel, igMediaID, fbPostID sql.NullString
	var publishedAt sql.NullTime

	err := row.Scan(
		&post.ID,
		&post.ProductID,
		&post.CaptionIG,
		&post.CaptionFB,
		&post.ImageURL,
		pq.Array(&post.CarouselImages),
		&post.VisualFormat,
		&post.ChannelTarget,
		&post.Status,
		&channel,
		&igMediaID,
		&fbPostID,
		&publishedAt,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	fillPostNullables(post, channel, igMediaID, fbPostID, publishedAt)
	return post, nil
}

func (r *postRepository) scanPostRows(rows *sql.Rows) (*domain.Post, error) {
	post := &domain.Post{}
	var channel, igMediaID, fbPostID sql.NullString
	var publishedAt sql.NullTime

	err := rows.Scan(
		&post.ID,
		&post.ProductID,
		&post.CaptionIG,
		&post.CaptionFB,
		&post.ImageURL,
		pq.Array(&post.CarouselImages),
		&post.VisualFormat,
		&post.ChannelTarget,
		&post.Status,
		&channel,
		&igMediaID,
		&fbPostID,
		&publishedAt,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	fillPostNullables(post, channel, igMediaID, fbPostID, publishedAt)
	return post, nil
}

func fillPostNullables(post *domain.Post, channel, igMediaID, fbPostID sql.NullString, publishedAt sql.NullTime) {
	if channel.Valid {
		c := domain.ChannelTarget(channel.String)
		post.Channel = &c
	}
	if igMediaID.Valid {
		post.IGMediaID = &igMediaID.String
	}
	if fbPostID.Valid {
		post.FBPostID = &fbPostID.String
	}
	if publishedAt.Valid {
		post.PublishedAt = &publishedAt.Time
	}
}
