// Package history implements the append-only submission log using PostgreSQL.
package history

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	postgres "github.com/ved-2004/Bias-Removal-Prompt-Game/internal/adapter/postgres"
	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/domain"
)

const table = "history_items"

var columns = []string{
	"id", "uid", "mode", "bias_type", "original", "rewrite",
	"original_score", "rewrite_score", "delta", "threshold",
	"passed", "points_awarded", "created_at",
}

// Repo provides history persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new history repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Append stores one scored submission. The id and created_at are assigned by
// the database; the insert is a single statement so a failed append leaves
// nothing behind.
func (r *Repo) Append(ctx context.Context, uid string, f domain.HistoryItemFields) (*domain.HistoryItem, error) {
	if f.Passed != (f.PointsAwarded > 0) {
		return nil, domain.NewValidationError("points_awarded", "must be positive exactly when passed")
	}

	query, args, err := postgres.Builder.
		Insert(table).
		Columns(columns[1:12]...).
		Values(
			uid, string(f.Mode), string(f.BiasType), f.Original, f.Rewrite,
			f.OriginalScore, f.RewriteScore, f.Delta, f.Threshold,
			f.Passed, f.PointsAwarded,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("history.Append build: %w", err)
	}

	item := domain.HistoryItem{UID: uid, HistoryItemFields: f}
	err = postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		// A foreign-key miss here means the owning user row does not exist.
		return nil, postgres.MapError(err, "history_item", uid)
	}
	return &item, nil
}

// ListRecent returns up to limit of uid's submissions, newest first, ties
// broken by id descending.
func (r *Repo) ListRecent(ctx context.Context, uid string, limit int) ([]domain.HistoryItem, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"uid": uid}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("history.ListRecent build: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "history_item", uid)
	}

	items, err := pgx.CollectRows(rows, scanItem)
	if err != nil {
		return nil, postgres.MapError(err, "history_item", uid)
	}
	return items, nil
}

// SumAwarded returns the total points recorded across uid's history.
func (r *Repo) SumAwarded(ctx context.Context, uid string) (int64, error) {
	query, args, err := postgres.Builder.
		Select("COALESCE(SUM(points_awarded), 0)").
		From(table).
		Where(sq.Eq{"uid": uid}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("history.SumAwarded build: %w", err)
	}

	var total int64
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, postgres.MapError(err, "history_item", uid)
	}
	return total, nil
}

func scanItem(row pgx.CollectableRow) (domain.HistoryItem, error) {
	var (
		it             domain.HistoryItem
		mode, biasType string
	)
	err := row.Scan(
		&it.ID, &it.UID, &mode, &biasType, &it.Original, &it.Rewrite,
		&it.OriginalScore, &it.RewriteScore, &it.Delta, &it.Threshold,
		&it.Passed, &it.PointsAwarded, &it.CreatedAt,
	)
	it.Mode = domain.Mode(mode)
	it.BiasType = domain.BiasType(biasType)
	return it, err
}
