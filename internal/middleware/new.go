package middleware

import (
	pkgLog "crm-alert-srv/pkg/log"
	pkgRedis "crm-alert-srv/pkg/redis"
	"crm-alert-srv/pkg/scope"
)

type Middleware struct {
	l           pkgLog.Logger
	jwtManager  scope.Manager
	redis       pkgRedis.IRedis
	internalKey string
}

func New(l pkgLog.Logger, jwtManager scope.Manager, redis pkgRedis.IRedis, internalKey string) Middleware {
	return Middleware{
		l:           l,
		jwtManager:  jwtManager,
		redis:       redis,
		internalKey: internalKey,
	}
}
