package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/domain"
)

// UniqueUID returns a uid that does not collide with other tests sharing
// the container.
func UniqueUID(prefix string) string {
	return prefix + "-" + uuid.New().String()[:8]
}

// SeedUser inserts a user row with the given points and returns its uid.
func SeedUser(t *testing.T, pool *pgxpool.Pool, points int64) string {
	t.Helper()

	uid := UniqueUID("user")
	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (uid, display_name, points) VALUES ($1, $2, $3)`,
		uid, "Seed "+uid, points,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return uid
}

// SeedHistory inserts a history row for uid with the given award.
func SeedHistory(t *testing.T, pool *pgxpool.Pool, uid string, pointsAwarded int) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO history_items
		   (uid, mode, bias_type, original, rewrite, original_score, rewrite_score, delta, threshold, passed, points_awarded)
		 VALUES ($1, $2, $3, 'o', 'r', 50, 5, 45, 15, $4, $5)`,
		uid, string(domain.ModeGPT4Gender), string(domain.BiasTypeGender), pointsAwarded > 0, pointsAwarded,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedHistory: %v", err)
	}
}
