package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/ahmed-n-abdeltwab/tennis-coach-platform-sub007/internal/config"
)

// Seeds a demo coach, player, booking type, and one upcoming session.
func main() {
	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		fatalf("load config: %v", err)
	}
	pgCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		fatalf("invalid DATABASE_URL: %v", err)
	}
	pgPool, err := pgxpool.NewWithConfig(ctx, pgCfg)
	if err != nil {
		fatalf("pg pool: %v", err)
	}
	defer pgPool.Close()

	coachID := seedUser(ctx, pgPool, "coach.smith@example.com", "Coach Smith", "coach")
	userID := seedUser(ctx, pgPool, "john@example.com", "John Doe", "user")

	btID := uuid.New()
	_, err = pgPool.Exec(ctx, `
		INSERT INTO booking_types (id, name) VALUES ($1, $2)
		ON CONFLICT (name) DO NOTHING`, btID, "Private Lesson")
	if err != nil {
		fatalf("seed booking type: %v", err)
	}
	if err := pgPool.QueryRow(ctx, `SELECT id FROM booking_types WHERE name = $1`, "Private Lesson").Scan(&btID); err != nil {
		fatalf("lookup booking type: %v", err)
	}

	sessionID := uuid.New()
	_, err = pgPool.Exec(ctx, `
		INSERT INTO sessions (id, user_id, coach_id, booking_type_id, scheduled_at, duration_minutes, price)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		sessionID, userID, coachID, btID, time.Now().Add(48*time.Hour), 60, 100.0)
	if err != nil {
		fatalf("seed session: %v", err)
	}

	fmt.Printf("seeded coach=%s user=%s session=%s\n", coachID, userID, sessionID)
}

func seedUser(ctx context.Context, pg *pgxpool.Pool, email, name, role string) uuid.UUID {
	hash, err := bcrypt.GenerateFromPassword([]byte("Password123!"), bcrypt.DefaultCost)
	if err != nil {
		fatalf("hash password: %v", err)
	}
	id := uuid.New()
	_, err = pg.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, name, role, is_active)
		VALUES ($1, $2, $3, $4, $5, TRUE)
		ON CONFLICT (email) DO NOTHING`, id, email, string(hash), name, role)
	if err != nil {
		fatalf("seed user %s: %v", email, err)
	}
	if err := pg.QueryRow(ctx, `SELECT id FROM users WHERE lower(email) = lower($1)`, email).Scan(&id); err != nil {
		fatalf("lookup user %s: %v", email, err)
	}
	return id
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
