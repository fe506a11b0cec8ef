package http

import (
	"context"

	"crm-alert-srv/internal/model"
	"crm-alert-srv/pkg/scope"
)

func scopeFromContext(ctx context.Context) (model.Scope, bool) {
	payload, ok := scope.GetPayloadFromContext(ctx)
	if !ok {
		return model.Scope{}, false
	}
	return model.Scope{
		UserID: payload.UserID(),
		Email:  payload.Email,
		Role:   payload.Role,
	}, true
}
