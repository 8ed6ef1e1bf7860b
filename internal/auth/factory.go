package auth

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"

	ctrl "github.com/ahmed-n-abdeltwab/tennis-coach-platform-sub007/internal/auth/controller"
	repo "github.com/ahmed-n-abdeltwab/tennis-coach-platform-sub007/internal/auth/repository"
	svc "github.com/ahmed-n-abdeltwab/tennis-coach-platform-sub007/internal/auth/service"
	"github.com/ahmed-n-abdeltwab/tennis-coach-platform-sub007/internal/config"
	"github.com/ahmed-n-abdeltwab/tennis-coach-platform-sub007/internal/logger"
	rl "github.com/ahmed-n-abdeltwab/tennis-coach-platform-sub007/internal/platform/ratelimit"
)

// Register wires the auth slice and mounts its routes.
func Register(e *echo.Echo, pg *pgxpool.Pool, cfg config.Config, rlStore rl.Store) {
	r := repo.New(pg)
	authSvc := svc.New(r, cfg)
	authSvc.SetLogger(logger.New(cfg.AppEnv))

	ctrl.New(authSvc, cfg).WithRateLimit(rlStore).Register(e)
}
