package usecase

import (
	"time"

	"crm-alert-srv/internal/alert"
	"crm-alert-srv/internal/alert/repository"
	"crm-alert-srv/internal/crm"
	"crm-alert-srv/internal/settings"
	"crm-alert-srv/pkg/discord"
	pkgLog "crm-alert-srv/pkg/log"
	"crm-alert-srv/pkg/mailer"
	"crm-alert-srv/pkg/minio"
)

type implUsecase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	crm      crm.Reader
	settings settings.UseCase
	mailer   mailer.IMailer
	storage  minio.IMinIO
	discord  discord.IDiscord
	clock    func() time.Time
}

var _ alert.UseCase = &implUsecase{}

// New wires the evaluation driver. storage and d may be nil; body archival
// and ops reporting are then skipped.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	crmReader crm.Reader,
	settingsUC settings.UseCase,
	m mailer.IMailer,
	storage minio.IMinIO,
	d discord.IDiscord,
) *implUsecase {
	return &implUsecase{
		l:        l,
		repo:     repo,
		crm:      crmReader,
		settings: settingsUC,
		mailer:   m,
		storage:  storage,
		discord:  d,
		clock:    time.Now,
	}
}
