package notifications

import (
	"github.com/labstack/echo/v4"

	"github.com/ahmed-n-abdeltwab/tennis-coach-platform-sub007/internal/config"
	emailsvc "github.com/ahmed-n-abdeltwab/tennis-coach-platform-sub007/internal/email/service"
	evsvc "github.com/ahmed-n-abdeltwab/tennis-coach-platform-sub007/internal/events/service"
	"github.com/ahmed-n-abdeltwab/tennis-coach-platform-sub007/internal/logger"
	ctrl "github.com/ahmed-n-abdeltwab/tennis-coach-platform-sub007/internal/notifications/controller"
	svc "github.com/ahmed-n-abdeltwab/tennis-coach-platform-sub007/internal/notifications/service"
	rl "github.com/ahmed-n-abdeltwab/tennis-coach-platform-sub007/internal/platform/ratelimit"
	sdomain "github.com/ahmed-n-abdeltwab/tennis-coach-platform-sub007/internal/sessions/domain"
)

// Register wires the notifications slice against the sessions collaborator
// and mounts its routes. The email transport is constructed once here and
// shared across requests.
func Register(e *echo.Echo, sessions sdomain.Service, cfg config.Config, rlStore rl.Store) {
	sender := emailsvc.NewRouter(cfg)
	notifSvc := svc.New(sessions, sender)
	notifSvc.SetLogger(logger.New(cfg.AppEnv))
	notifSvc.SetPublisher(evsvc.NewLogger())

	ctrl.New(notifSvc, cfg).WithRateLimit(rlStore).Register(e)
}
