package usecase

import (
	"time"

	"crm-alert-srv/internal/marketingtask"
	"crm-alert-srv/internal/marketingtask/repository"
	"crm-alert-srv/internal/outcome"
	pkgLog "crm-alert-srv/pkg/log"
)

type implUsecase struct {
	l          pkgLog.Logger
	repo       repository.Repository
	classifier outcome.Classifier
	clock      func() time.Time
}

var _ marketingtask.UseCase = &implUsecase{}

func New(l pkgLog.Logger, repo repository.Repository, classifier outcome.Classifier) *implUsecase {
	return &implUsecase{
		l:          l,
		repo:       repo,
		classifier: classifier,
		clock:      time.Now,
	}
}
