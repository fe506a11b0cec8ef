package postgre

import (
	"crm-alert-srv/internal/crm"
	pkgLog "crm-alert-srv/pkg/log"

	"github.com/jmoiron/sqlx"
)

type implReader struct {
	l  pkgLog.Logger
	db *sqlx.DB
}

var _ crm.Reader = &implReader{}

func New(l pkgLog.Logger, db *sqlx.DB) *implReader {
	return &implReader{l: l, db: db}
}
