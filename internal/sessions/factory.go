package sessions

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"

	"github.com/ahmed-n-abdeltwab/tennis-coach-platform-sub007/internal/config"
	ctrl "github.com/ahmed-n-abdeltwab/tennis-coach-platform-sub007/internal/sessions/controller"
	domain "github.com/ahmed-n-abdeltwab/tennis-coach-platform-sub007/internal/sessions/domain"
	repo "github.com/ahmed-n-abdeltwab/tennis-coach-platform-sub007/internal/sessions/repository"
	svc "github.com/ahmed-n-abdeltwab/tennis-coach-platform-sub007/internal/sessions/service"
)

// NewService builds the sessions service on a pgx pool. Exposed so other
// slices (notifications) can consume it as a collaborator.
func NewService(pg *pgxpool.Pool) domain.Service {
	return svc.New(repo.New(pg))
}

// Register wires the sessions slice and mounts its routes.
func Register(e *echo.Echo, pg *pgxpool.Pool, cfg config.Config) domain.Service {
	s := NewService(pg)
	ctrl.New(s, cfg).Register(e)
	return s
}
