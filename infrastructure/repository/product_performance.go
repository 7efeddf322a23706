package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/catalog-social-api/infrastructure/database/postgres"
	"github.com/vfg2006/catalog-social-api/internal/domain"
)

const (
	productPerformanceTable = "product_performance pp"
)

type ProductPerformanceRepository interface {
	GetByProductID(productID string) (*domain.ProductPerformance, error)
	Upsert(perf *domain.ProductPerformance) error
}

type productPerformanceRepository struct {
	conn *postgres.Connection
}

func NewProductPerformanceRepository(conn *postgres.Connection) ProductPerformanceRepository {
	return &productPerformanceRepository{
		conn: conn,
	}
}

func (r *productPerformanceRepository) GetByProductID(productID string) (*domain.ProductPerformance, error) {
	query, args, err := squirrel.
		Select("pp.product_id, pp.perf_score, pp.last_updated").
		From(productPerformanceTable).
		Where(squirrel.Eq{"pp.product_id": productID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	perf := &domain.ProductPerformance{}
	row := r.conn.QueryRow(query, args...)
	err = row.Scan(&perf.ProductID, &perf.PerfScore, &perf.LastUpdated)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear product_performance: %w", err)
	}

	return perf, nil
}

// Upsert sobrescreve o sinal de performance do produto. Uma linha por
// produto: o score é substituído, não agregado, a cada ciclo de coleta.
func (r *productPerformanceRepository) Upsert(perf *domain.ProductPerformance) error {
	query := squirrel.StatementBuilder.
		Insert("product_performance").
		Columns("product_id", "perf_score", "last_updated").
		Values(
			perf.ProductID,
			perf.PerfScore,
			perf.LastUpdated,
		).
		Suffix(`
			ON CONFLICT (product_id) DO UPDATE SET
				perf_score = EXCLUDED.perf_score,
				last_updated = EXCLUDED.last_updated
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
