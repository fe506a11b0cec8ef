package httpserver

import (
	alertHTTP "crm-alert-srv/internal/alert/delivery/http"
	alertRepo "crm-alert-srv/internal/alert/repository/postgre"
	alertUC "crm-alert-srv/internal/alert/usecase"
	crmPostgre "crm-alert-srv/internal/crm/postgre"
	mtHTTP "crm-alert-srv/internal/marketingtask/delivery/http"
	mtRepo "crm-alert-srv/internal/marketingtask/repository/postgre"
	mtUC "crm-alert-srv/internal/marketingtask/usecase"
	"crm-alert-srv/internal/middleware"
	outcomeUC "crm-alert-srv/internal/outcome/usecase"
	settingsHTTP "crm-alert-srv/internal/settings/delivery/http"
	settingsRepo "crm-alert-srv/internal/settings/repository/postgre"
	settingsUC "crm-alert-srv/internal/settings/usecase"
)

const (
	Api         = "/api/v1"
	InternalApi = "/internal/api/v1"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.gin.Use(middleware.Recovery(srv.logger, srv.discord))
	srv.gin.Use(middleware.CORS(middleware.DefaultCORSConfig()))

	// Health check endpoints (no auth required)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	mw := middleware.New(srv.logger, srv.jwtManager, srv.redis, srv.internalKey)

	// Repositories
	crmReader := crmPostgre.New(srv.logger, srv.db)
	alertRepository := alertRepo.New(srv.logger, srv.db)
	settingsRepository := settingsRepo.New(srv.logger, srv.db)
	taskRepository := mtRepo.New(srv.logger, srv.db)

	// Usecases
	classifier := outcomeUC.New()
	settingsUsecase := settingsUC.New(srv.logger, settingsRepository)
	alertUsecase := alertUC.New(srv.logger, alertRepository, crmReader,
		settingsUsecase, srv.mailer, srv.storage, srv.discord)
	taskUsecase := mtUC.New(srv.logger, taskRepository, classifier)

	// Handlers
	alertHandler := alertHTTP.New(srv.logger, alertUsecase, srv.discord)
	settingsHandler := settingsHTTP.New(srv.logger, settingsUsecase, srv.discord)
	taskHandler := mtHTTP.New(srv.logger, taskUsecase, srv.discord)

	api := srv.gin.Group(Api)
	alertHandler.RegisterRoutes(api, mw)
	settingsHandler.RegisterRoutes(api, mw)
	taskHandler.RegisterRoutes(api, mw)

	internal := srv.gin.Group(InternalApi)
	alertHandler.RegisterInternalRoutes(internal, mw)

	return nil
}
