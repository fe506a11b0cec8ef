package httpserver

import (
	"errors"

	"crm-alert-srv/pkg/discord"
	pkgLog "crm-alert-srv/pkg/log"
	"crm-alert-srv/pkg/mailer"
	"crm-alert-srv/pkg/minio"
	pkgRedis "crm-alert-srv/pkg/redis"
	"crm-alert-srv/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

// HTTPServer holds the wired dependencies of the service. New only wires
// and validates; Run (in httpserver.go) starts serving.
type HTTPServer struct {
	// Server configuration
	gin         *gin.Engine
	logger      pkgLog.Logger
	port        int
	environment string

	// Storage
	db      *sqlx.DB
	redis   pkgRedis.IRedis
	storage minio.IMinIO

	// Auth & security
	jwtManager  scope.Manager
	internalKey string

	// External services
	mailer  mailer.IMailer
	discord discord.IDiscord
}

// Config is the constructor input for HTTPServer.
type Config struct {
	Port        int
	Mode        string
	Environment string

	PostgresDB *sqlx.DB
	Redis      pkgRedis.IRedis
	MinIO      minio.IMinIO

	JWTManager  scope.Manager
	InternalKey string

	Mailer  mailer.IMailer
	Discord discord.IDiscord
}

// New creates an HTTPServer with the provided configuration. It starts no
// goroutines; use Run.
func New(logger pkgLog.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	srv := &HTTPServer{
		gin:         gin.New(),
		logger:      logger,
		port:        cfg.Port,
		environment: cfg.Environment,

		db:      cfg.PostgresDB,
		redis:   cfg.Redis,
		storage: cfg.MinIO,

		jwtManager:  cfg.JWTManager,
		internalKey: cfg.InternalKey,

		mailer:  cfg.Mailer,
		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (s *HTTPServer) validate() error {
	if s.logger == nil {
		return errors.New("logger is required")
	}
	if s.port == 0 {
		return errors.New("port is required")
	}
	if s.db == nil {
		return errors.New("PostgreSQL connection is required")
	}
	if s.jwtManager == nil {
		return errors.New("JWT manager is required")
	}
	if s.internalKey == "" {
		return errors.New("internal trigger key is required")
	}
	if s.mailer == nil {
		return errors.New("mailer is required")
	}

	return nil
}
