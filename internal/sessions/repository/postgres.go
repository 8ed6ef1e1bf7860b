package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/ahmed-n-abdeltwab/tennis-coach-platform-sub007/internal/sessions/domain"
)

type PostgresRepository struct{ pg *pgxpool.Pool }

func New(pg *pgxpool.Pool) *PostgresRepository { return &PostgresRepository{pg: pg} }

const sessionSelect = `
	SELECT s.id, s.scheduled_at, s.duration_minutes, s.price, s.created_at,
	       u.id, u.name, u.email,
	       c.id, c.name, c.email,
	       bt.id, bt.name
	FROM sessions s
	JOIN users u ON u.id = s.user_id
	JOIN users c ON c.id = s.coach_id
	JOIN booking_types bt ON bt.id = s.booking_type_id`

func (r *PostgresRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.Session, error) {
	row := r.pg.QueryRow(ctx, sessionSelect+` WHERE s.id = $1`, id)
	return scanSession(row)
}

func (r *PostgresRepository) ListByParticipant(ctx context.Context, participantID uuid.UUID) ([]domain.Session, error) {
	rows, err := r.pg.Query(ctx, sessionSelect+`
		WHERE s.user_id = $1 OR s.coach_id = $1
		ORDER BY s.scheduled_at`, participantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collect(rows)
}

func (r *PostgresRepository) ListAll(ctx context.Context) ([]domain.Session, error) {
	rows, err := r.pg.Query(ctx, sessionSelect+` ORDER BY s.scheduled_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collect(rows)
}

func (r *PostgresRepository) Create(ctx context.Context, id uuid.UUID, in domain.CreateInput) error {
	_, err := r.pg.Exec(ctx, `
		INSERT INTO sessions (id, user_id, coach_id, booking_type_id, scheduled_at, duration_minutes, price)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, in.UserID, in.CoachID, in.BookingTypeID, in.ScheduledAt, in.Duration, in.Price)
	return err
}

func scanSession(row pgx.Row) (domain.Session, error) {
	var s domain.Session
	err := row.Scan(
		&s.ID, &s.ScheduledAt, &s.DurationMinutes, &s.Price, &s.CreatedAt,
		&s.User.ID, &s.User.Name, &s.User.Email,
		&s.Coach.ID, &s.Coach.Name, &s.Coach.Email,
		&s.BookingType.ID, &s.BookingType.Name,
	)
	if err != nil {
		return domain.Session{}, err
	}
	return s, nil
}

func collect(rows pgx.Rows) ([]domain.Session, error) {
	var out []domain.Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
