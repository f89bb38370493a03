package http

import (
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/errs"
)

// sessionID parses the {session} path parameter.
func sessionID(raw string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("session id", err)
	}
	return id, nil
}

// intOr dereferences an optional integer parameter.
func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}
