package profile

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mammoscan/mammoscan/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type historyRepoPG struct {
	pool *pgxpool.Pool
}

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &historyRepoPG{pool: pool}
}

func (r *historyRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const historyCols = `id, user_id, age, family_history, previous_biopsies, hormone_therapy,
	first_pregnancy_age, menstruation_age, breast_density, created_at`

func scanHistory(row pgx.Row) (*MedicalHistory, error) {
	var h MedicalHistory
	err := row.Scan(&h.ID, &h.UserID, &h.Age, &h.FamilyHistory, &h.PreviousBiopsies,
		&h.HormoneTherapy, &h.FirstPregnancyAge, &h.MenstruationAge, &h.BreastDensity,
		&h.CreatedAt)
	return &h, err
}

// Replace runs delete then insert as two statements. Concurrent writers
// for the same user can interleave; the last insert wins.
func (r *historyRepoPG) Replace(ctx context.Context, h *MedicalHistory) error {
	h.ID = uuid.New()
	h.CreatedAt = time.Now().UTC()

	if _, err := r.conn(ctx).Exec(ctx, `DELETE FROM medical_history WHERE user_id = $1`, h.UserID); err != nil {
		return err
	}
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO medical_history (id, user_id, age, family_history, previous_biopsies,
			hormone_therapy, first_pregnancy_age, menstruation_age, breast_density, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		h.ID, h.UserID, h.Age, h.FamilyHistory, h.PreviousBiopsies,
		h.HormoneTherapy, h.FirstPregnancyAge, h.MenstruationAge, h.BreastDensity, h.CreatedAt)
	return err
}

func (r *historyRepoPG) GetByUser(ctx context.Context, userID uuid.UUID) (*MedicalHistory, error) {
	h, err := scanHistory(r.conn(ctx).QueryRow(ctx, `
		SELECT `+historyCols+` FROM medical_history
		WHERE user_id = $1 ORDER BY created_at DESC LIMIT 1`, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return h, nil
}
