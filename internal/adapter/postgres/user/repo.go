// Package user implements the user store using PostgreSQL.
package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	postgres "github.com/ved-2004/Bias-Removal-Prompt-Game/internal/adapter/postgres"
	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/domain"
)

const table = "users"

var columns = []string{
	"uid", "email", "display_name", "photo_url",
	"points", "streak", "created_at", "updated_at",
}

// ensureConflict backfills profile fields that are still NULL and never
// touches points or streak.
const ensureConflict = `ON CONFLICT (uid) DO UPDATE SET
	email        = COALESCE(users.email, EXCLUDED.email),
	display_name = COALESCE(users.display_name, EXCLUDED.display_name),
	photo_url    = COALESCE(users.photo_url, EXCLUDED.photo_url)`

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// EnsureUser creates the user with zero points if absent and returns the
// stored row. Concurrent calls for the same uid converge on one row; an
// existing row keeps its points and only gains profile fields it lacked.
func (r *Repo) EnsureUser(ctx context.Context, id domain.Identity) (*domain.User, error) {
	if strings.TrimSpace(id.UID) == "" {
		return nil, domain.NewValidationError("uid", "required")
	}

	query, args, err := postgres.Builder.
		Insert(table).
		Columns("uid", "email", "display_name", "photo_url").
		Values(id.UID, nullIfEmpty(id.Email), nullIfEmpty(id.Name), nullIfEmpty(id.Picture)).
		Suffix(ensureConflict + " RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("user.EnsureUser build: %w", err)
	}

	u, err := scanUser(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", id.UID)
	}
	return u, nil
}

// AddPoints atomically increments the user's points by delta and returns the
// new total. It never reads the balance first. A missing user yields
// domain.ErrUserNotFound.
func (r *Repo) AddPoints(ctx context.Context, uid string, delta int) (int64, error) {
	if delta <= 0 {
		return 0, domain.NewValidationError("delta", "must be positive")
	}

	query, args, err := postgres.Builder.
		Update(table).
		Set("points", sq.Expr("points + ?", delta)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"uid": uid}).
		Suffix("RETURNING points").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("user.AddPoints build: %w", err)
	}

	var total int64
	err = postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&total)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("user %s: %w", uid, domain.ErrUserNotFound)
	}
	if err != nil {
		return 0, postgres.MapError(err, "user", uid)
	}
	return total, nil
}

// UpdateDisplayName sets the display name. Points are untouched.
func (r *Repo) UpdateDisplayName(ctx context.Context, uid, name string) (*domain.User, error) {
	query, args, err := postgres.Builder.
		Update(table).
		Set("display_name", name).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"uid": uid}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("user.UpdateDisplayName build: %w", err)
	}

	u, err := scanUser(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", uid)
	}
	return u, nil
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// GetUser returns a user by uid.
func (r *Repo) GetUser(ctx context.Context, uid string) (*domain.User, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"uid": uid}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("user.GetUser build: %w", err)
	}

	u, err := scanUser(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", uid)
	}
	return u, nil
}

// Top returns up to limit users ordered by points descending, ties broken
// by uid ascending.
func (r *Repo) Top(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	query, args, err := postgres.Builder.
		Select("uid", "display_name", "photo_url", "points").
		From(table).
		Where(sq.GtOrEq{"points": 0}).
		OrderBy("points DESC", "uid ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("user.Top build: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "leaderboard", "")
	}

	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.LeaderboardEntry, error) {
		var e domain.LeaderboardEntry
		err := row.Scan(&e.UID, &e.Name, &e.PhotoURL, &e.Points)
		return e, err
	})
	if err != nil {
		return nil, postgres.MapError(err, "leaderboard", "")
	}
	return entries, nil
}

// Divergent returns users whose points differ from the sum of their
// history awards, ordered by uid.
func (r *Repo) Divergent(ctx context.Context, limit int) ([]domain.PointsDivergence, error) {
	awarded := "COALESCE(SUM(h.points_awarded), 0)"

	query, args, err := postgres.Builder.
		Select("u.uid", "u.points", awarded).
		From(table + " u").
		LeftJoin("history_items h ON h.uid = u.uid").
		GroupBy("u.uid", "u.points").
		Having("u.points <> " + awarded).
		OrderBy("u.uid").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("user.Divergent build: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "points_audit", "")
	}

	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.PointsDivergence, error) {
		var d domain.PointsDivergence
		err := row.Scan(&d.UID, &d.Points, &d.AwardedTotal)
		return d, err
	})
	if err != nil {
		return nil, postgres.MapError(err, "points_audit", "")
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.UID, &u.Email, &u.DisplayName, &u.PhotoURL,
		&u.Points, &u.Streak, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func nullIfEmpty(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
