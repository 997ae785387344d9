package models

import (
	"fmt"
	"time"

	"github.com/harentsoaR/dentallab-api/internal/errs"
)

// requireWindow checks the lifecycle window every embedded sub-record with a
// lifespan must carry: both timestamps set, expiry strictly after creation.
func requireWindow(scope string, createdAt, expiresAt time.Time) error {
	if createdAt.IsZero() {
		return fmt.Errorf("%w: %s: createdAt is required", errs.ErrValidation, scope)
	}
	if expiresAt.IsZero() {
		return fmt.Errorf("%w: %s: expiresAt is required", errs.ErrValidation, scope)
	}
	if !expiresAt.After(createdAt) {
		return fmt.Errorf("%w: %s: expiresAt must be after createdAt", errs.ErrValidation, scope)
	}
	return nil
}

func requireString(scope, field, value string) error {
	if value == "" {
		return fmt.Errorf("%w: %s: %s is required", errs.ErrValidation, scope, field)
	}
	return nil
}

func requireTime(scope, field string, value time.Time) error {
	if value.IsZero() {
		return fmt.Errorf("%w: %s: %s is required", errs.ErrValidation, scope, field)
	}
	return nil
}

func requireNumber(scope, field string, value *float64) error {
	if value == nil {
		return fmt.Errorf("%w: %s: %s is required", errs.ErrValidation, scope, field)
	}
	return nil
}
