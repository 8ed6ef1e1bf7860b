//go:build integration

package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/ahmed-n-abdeltwab/tennis-coach-platform-sub007/internal/sessions/domain"
)

func TestPostgresRepository_RoundTrip(t *testing.T) {
	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("skipping integration test: DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, os.Getenv("DATABASE_URL"))
	require.NoError(t, err)
	defer pool.Close()

	userID := seedUser(t, ctx, pool, "it-user-"+uuid.NewString()[:8]+"@example.com", "IT User", "user")
	coachID := seedUser(t, ctx, pool, "it-coach-"+uuid.NewString()[:8]+"@example.com", "IT Coach", "coach")

	btID := uuid.New()
	_, err = pool.Exec(ctx, `INSERT INTO booking_types (id, name) VALUES ($1, $2)`,
		btID, "it-lesson-"+uuid.NewString()[:8])
	require.NoError(t, err)

	repo := New(pool)
	id := uuid.New()
	at := time.Now().Add(24 * time.Hour).Truncate(time.Second)
	require.NoError(t, repo.Create(ctx, id, domain.CreateInput{
		UserID: userID, CoachID: coachID, BookingTypeID: btID,
		ScheduledAt: at, Duration: 60, Price: 100,
	}))

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, 60, got.DurationMinutes)
	assert.Equal(t, userID, got.User.ID)
	assert.Equal(t, coachID, got.Coach.ID)
	assert.NotEmpty(t, got.User.Email)
	assert.NotEmpty(t, got.BookingType.Name)

	mine, err := repo.ListByParticipant(ctx, userID)
	require.NoError(t, err)
	assert.NotEmpty(t, mine)
}

func seedUser(t *testing.T, ctx context.Context, pool *pgxpool.Pool, email, name, role string) uuid.UUID {
	t.Helper()
	id := uuid.New()
	_, err := pool.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, name, role, is_active)
		VALUES ($1, $2, 'x', $3, $4, TRUE)`, id, email, name, role)
	require.NoError(t, err)
	return id
}
