package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"

	"github.com/vytor/phonicsplay/internal/errors"
	"github.com/vytor/phonicsplay/internal/logger"
	"github.com/vytor/phonicsplay/internal/models"
	"github.com/vytor/phonicsplay/internal/repository"
)

// Settings holds the two playback toggles, read once and written through.
type Settings struct {
	repo repository.StateRepository

	mu      sync.RWMutex
	current models.PlaybackSettings
}

func NewSettings(repo repository.StateRepository) *Settings {
	return &Settings{repo: repo}
}

// Load reads both flags; each defaults to false when absent or unparsable.
func (s *Settings) Load(ctx context.Context) models.PlaybackSettings {
	loaded := models.PlaybackSettings{
		AutoRead:        s.readFlag(ctx, KeyAutoRead),
		SpellBeforeRead: s.readFlag(ctx, KeySpellBeforeRead),
	}

	s.mu.Lock()
	s.current = loaded
	s.mu.Unlock()
	return loaded
}

func (s *Settings) readFlag(ctx context.Context, key string) bool {
	log := logger.FromContext(ctx).WithPrefix("settings")

	raw, found, err := s.repo.Get(ctx, key)
	if err != nil {
		log.WithError(err).Warn("could not read %s, using false", key)
		return false
	}
	if !found {
		return false
	}
	var v bool
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		log.Warn("%v", errors.NewMalformedEntryError(key, err))
		return false
	}
	return v
}

// Current returns the cached settings.
func (s *Settings) Current() models.PlaybackSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *Settings) SetAutoRead(ctx context.Context, v bool) (models.PlaybackSettings, error) {
	return s.set(ctx, KeyAutoRead, v, func(p *models.PlaybackSettings) { p.AutoRead = v })
}

func (s *Settings) SetSpellBeforeRead(ctx context.Context, v bool) (models.PlaybackSettings, error) {
	return s.set(ctx, KeySpellBeforeRead, v, func(p *models.PlaybackSettings) { p.SpellBeforeRead = v })
}

func (s *Settings) set(ctx context.Context, key string, v bool, apply func(*models.PlaybackSettings)) (models.PlaybackSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Set(ctx, key, strconv.FormatBool(v)); err != nil {
		return s.current, fmt.Errorf("persist %s: %w", key, err)
	}
	apply(&s.current)
	logger.FromContext(ctx).WithPrefix("settings").Debug("%s=%t", key, v)
	return s.current, nil
}
