package repository

import (
	"context"
	"errors"

	"github.com/Domenick1991/flighttracker/internal/domain"
)

var ErrPreferenceNotFound = errors.New("preference not found")

// PreferenceRepository is a tiny key/value store for display preferences.
type PreferenceRepository interface {
	Get(ctx context.Context, key string) (*domain.Preference, error)
	Set(ctx context.Context, key, value string) error
}
