package preferences

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/Domenick1991/flighttracker/internal/domain"
	"github.com/Domenick1991/flighttracker/internal/repository"
)

type PreferenceUseCase interface {
	DarkMode(ctx context.Context) (bool, error)
	SetDarkMode(ctx context.Context, enabled bool) (bool, error)
	ToggleDarkMode(ctx context.Context) (bool, error)
}

type PreferenceService struct {
	store repository.PreferenceRepository
}

func NewPreferenceService(store repository.PreferenceRepository) *PreferenceService {
	return &PreferenceService{store: store}
}

// DarkMode reads the stored flag. A missing or unparsable value means light
// mode.
func (s *PreferenceService) DarkMode(ctx context.Context) (bool, error) {
	pref, err := s.store.Get(ctx, domain.PreferenceDarkMode)
	if err != nil {
		if errors.Is(err, repository.ErrPreferenceNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("read dark mode: %w", err)
	}

	enabled, err := strconv.ParseBool(pref.Value)
	if err != nil {
		log.Printf("ignoring unparsable %s preference %q", domain.PreferenceDarkMode, pref.Value)
		return false, nil
	}
	return enabled, nil
}

func (s *PreferenceService) SetDarkMode(ctx context.Context, enabled bool) (bool, error) {
	if err := s.store.Set(ctx, domain.PreferenceDarkMode, strconv.FormatBool(enabled)); err != nil {
		return false, fmt.Errorf("write dark mode: %w", err)
	}
	return enabled, nil
}

func (s *PreferenceService) ToggleDarkMode(ctx context.Context) (bool, error) {
	current, err := s.DarkMode(ctx)
	if err != nil {
		return false, err
	}
	return s.SetDarkMode(ctx, !current)
}

var _ PreferenceUseCase = (*PreferenceService)(nil)
