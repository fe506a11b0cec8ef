package http

import (
	"crm-alert-srv/internal/settings"
	"crm-alert-srv/pkg/discord"
	pkgLog "crm-alert-srv/pkg/log"
)

type Handler struct {
	l       pkgLog.Logger
	uc      settings.UseCase
	discord discord.IDiscord
}

func New(l pkgLog.Logger, uc settings.UseCase, d discord.IDiscord) *Handler {
	return &Handler{
		l:       l,
		uc:      uc,
		discord: d,
	}
}
