package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mammoscan/mammoscan/internal/platform/db"
)

type querier interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type analysisRepoPG struct {
	pool *pgxpool.Pool
}

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &analysisRepoPG{pool: pool}
}

func (r *analysisRepoPG) conn(ctx context.Context) querier {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const analysisCols = `id, user_id, analysis_type, result, risk_level,
	recommendations, image_data, created_at`

func scanAnalysis(row pgx.Row) (*Analysis, error) {
	var a Analysis
	var level string
	err := row.Scan(&a.ID, &a.UserID, &a.AnalysisType, &a.Result, &level,
		&a.Recommendations, &a.ImageData, &a.CreatedAt)
	a.RiskLevel = RiskLevel(level)
	return &a, err
}

func (r *analysisRepoPG) Create(ctx context.Context, a *Analysis) error {
	a.ID = uuid.New()
	a.CreatedAt = time.Now().UTC()

	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO analyses (id, user_id, analysis_type, result, risk_level,
			recommendations, image_data, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		a.ID, a.UserID, a.AnalysisType, a.Result, string(a.RiskLevel),
		a.Recommendations, a.ImageData, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert analysis: %w", err)
	}
	return nil
}

func (r *analysisRepoPG) ListByUser(ctx context.Context, userID uuid.UUID) ([]*Analysis, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT `+analysisCols+` FROM analyses
		WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`, userID, ListLimit)
	if err != nil {
		return nil, fmt.Errorf("list analyses: %w", err)
	}
	defer rows.Close()

	var out []*Analysis
	for rows.Next() {
		a, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
