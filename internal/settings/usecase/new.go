package usecase

import (
	"time"

	"crm-alert-srv/internal/settings"
	"crm-alert-srv/internal/settings/repository"
	pkgLog "crm-alert-srv/pkg/log"
)

type implUsecase struct {
	l     pkgLog.Logger
	repo  repository.Repository
	clock func() time.Time
}

var _ settings.UseCase = &implUsecase{}

func New(l pkgLog.Logger, repo repository.Repository) *implUsecase {
	return &implUsecase{
		l:     l,
		repo:  repo,
		clock: time.Now,
	}
}
