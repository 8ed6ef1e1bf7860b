package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	domain "github.com/ahmed-n-abdeltwab/tennis-coach-platform-sub007/internal/auth/domain"
	"github.com/ahmed-n-abdeltwab/tennis-coach-platform-sub007/internal/config"
	"github.com/ahmed-n-abdeltwab/tennis-coach-platform-sub007/internal/logger"
	"github.com/ahmed-n-abdeltwab/tennis-coach-platform-sub007/internal/metrics"
)

type service struct {
	repo domain.Repository
	cfg  config.Config
	log  zerolog.Logger
}

func New(repo domain.Repository, cfg config.Config) *service {
	return &service{repo: repo, cfg: cfg, log: logger.Nop()}
}

func (s *service) SetLogger(l zerolog.Logger) { s.log = l }

var _ domain.Service = (*service)(nil)

func (s *service) Signup(ctx context.Context, in domain.SignupInput) (domain.AccessToken, error) {
	role := strings.ToLower(in.Role)
	if role != domain.RoleUser && role != domain.RoleCoach {
		return domain.AccessToken{}, errors.New("role must be user or coach")
	}
	if _, err := s.repo.GetByEmail(ctx, in.Email); err == nil {
		return domain.AccessToken{}, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return domain.AccessToken{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.AccessToken{}, err
	}
	u := domain.User{
		ID:           uuid.New(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         in.Name,
		Role:         role,
		IsActive:     true,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return domain.AccessToken{}, err
	}
	s.log.Info().Str("user_id", u.ID.String()).Str("role", u.Role).Msg("user signed up")
	return s.issue(u)
}

func (s *service) Login(ctx context.Context, in domain.LoginInput) (domain.AccessToken, error) {
	u, err := s.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.IncLogin("failure")
			return domain.AccessToken{}, domain.ErrInvalidCredentials
		}
		return domain.AccessToken{}, err
	}
	if !u.IsActive {
		metrics.IncLogin("failure")
		return domain.AccessToken{}, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		metrics.IncLogin("failure")
		return domain.AccessToken{}, domain.ErrInvalidCredentials
	}
	metrics.IncLogin("success")
	return s.issue(u)
}

func (s *service) Me(ctx context.Context, userID uuid.UUID) (domain.User, error) {
	return s.repo.GetByID(ctx, userID)
}

func (s *service) issue(u domain.User) (domain.AccessToken, error) {
	now := time.Now()
	exp := now.Add(s.cfg.AccessTokenTTL)
	claims := jwt.MapClaims{
		"sub":  u.ID.String(),
		"role": u.Role,
		"iat":  now.Unix(),
		"exp":  exp.Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(s.cfg.JWTSigningKey))
	if err != nil {
		return domain.AccessToken{}, err
	}
	return domain.AccessToken{Token: signed, ExpiresAt: exp}, nil
}
