package services

import (
	"context"

	"github.com/vytor/phonicsplay/internal/errors"
	"github.com/vytor/phonicsplay/internal/logger"
	"github.com/vytor/phonicsplay/internal/models"
)

// SettingsUpdate carries the flags to change; nil fields are left alone.
type SettingsUpdate struct {
	AutoRead        *bool `json:"auto_read,omitempty"`
	SpellBeforeRead *bool `json:"spell_before_read,omitempty"`
}

// PreferencesService manages state shared by every drill session.
type PreferencesService interface {
	Settings() models.PlaybackSettings
	UpdateSettings(ctx context.Context, update SettingsUpdate) (models.PlaybackSettings, error)
	HiddenWords() []models.Word
	ResetHiddenWords(ctx context.Context) error
}

type preferencesService struct {
	settings SettingsStore
	hidden   HiddenWordStore
}

// NewPreferencesService creates a new PreferencesService
func NewPreferencesService(settings SettingsStore, hidden HiddenWordStore) PreferencesService {
	return &preferencesService{settings: settings, hidden: hidden}
}

func (s *preferencesService) Settings() models.PlaybackSettings {
	return s.settings.Current()
}

func (s *preferencesService) UpdateSettings(ctx context.Context, update SettingsUpdate) (models.PlaybackSettings, error) {
	log := logger.FromContext(ctx)
	current := s.settings.Current()

	if update.AutoRead != nil && *update.AutoRead != current.AutoRead {
		log.Info("setting auto_read=%t", *update.AutoRead)
		next, err := s.settings.SetAutoRead(ctx, *update.AutoRead)
		if err != nil {
			log.Error("failed to save auto_read: %v", err)
			return current, errors.NewInternalError(err)
		}
		current = next
	}
	if update.SpellBeforeRead != nil && *update.SpellBeforeRead != current.SpellBeforeRead {
		log.Info("setting spell_before_read=%t", *update.SpellBeforeRead)
		next, err := s.settings.SetSpellBeforeRead(ctx, *update.SpellBeforeRead)
		if err != nil {
			log.Error("failed to save spell_before_read: %v", err)
			return current, errors.NewInternalError(err)
		}
		current = next
	}
	return current, nil
}

func (s *preferencesService) HiddenWords() []models.Word {
	return s.hidden.Snapshot().Words()
}

func (s *preferencesService) ResetHiddenWords(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info("resetting hidden words (%d)", s.hidden.Snapshot().Len())

	if err := s.hidden.Reset(ctx); err != nil {
		log.Error("failed to reset hidden words: %v", err)
		return errors.NewInternalError(err)
	}
	return nil
}
