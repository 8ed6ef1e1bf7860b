package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	adomain "github.com/ahmed-n-abdeltwab/tennis-coach-platform-sub007/internal/auth/domain"
	domain "github.com/ahmed-n-abdeltwab/tennis-coach-platform-sub007/internal/sessions/domain"
)

type service struct {
	repo domain.Repository
}

func New(repo domain.Repository) domain.Service {
	return &service{repo: repo}
}

func (s *service) FindOne(ctx context.Context, sessionID, callerID uuid.UUID, callerRole string) (domain.Session, error) {
	sess, err := s.repo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Session{}, domain.ErrNotParticipant
		}
		return domain.Session{}, err
	}
	if callerRole == adomain.RoleAdmin {
		return sess, nil
	}
	if sess.User.ID != callerID && sess.Coach.ID != callerID {
		return domain.Session{}, domain.ErrNotParticipant
	}
	return sess, nil
}

func (s *service) ListForCaller(ctx context.Context, callerID uuid.UUID, callerRole string) ([]domain.Session, error) {
	if callerRole == adomain.RoleAdmin {
		return s.repo.ListAll(ctx)
	}
	return s.repo.ListByParticipant(ctx, callerID)
}

func (s *service) Create(ctx context.Context, in domain.CreateInput) (domain.Session, error) {
	if in.Duration <= 0 {
		return domain.Session{}, errors.New("duration must be positive")
	}
	if in.Price < 0 {
		return domain.Session{}, errors.New("price must not be negative")
	}
	id := uuid.New()
	if err := s.repo.Create(ctx, id, in); err != nil {
		return domain.Session{}, err
	}
	return s.repo.GetByID(ctx, id)
}
