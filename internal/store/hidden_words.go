package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/vytor/phonicsplay/internal/errors"
	"github.com/vytor/phonicsplay/internal/logger"
	"github.com/vytor/phonicsplay/internal/models"
	"github.com/vytor/phonicsplay/internal/repository"
)

// HiddenWords is the process-wide set of mastered words, written through to
// the state repository on every change.
type HiddenWords struct {
	repo repository.StateRepository

	mu     sync.RWMutex
	set    models.HiddenWordSet
	resets uint64
}

func NewHiddenWords(repo repository.StateRepository) *HiddenWords {
	return &HiddenWords{repo: repo, set: models.NewHiddenWordSet()}
}

// Load replaces the in-memory set with the persisted one. It never fails:
// a missing, unreadable or unparsable value yields an empty set.
func (h *HiddenWords) Load(ctx context.Context) models.HiddenWordSet {
	log := logger.FromContext(ctx).WithPrefix("hidden_words")

	set := models.NewHiddenWordSet()
	raw, found, err := h.repo.Get(ctx, KeyHiddenWords)
	switch {
	case err != nil:
		log.WithError(err).Warn("could not read hidden words, starting empty")
	case !found:
		log.Debug("no hidden words persisted")
	default:
		var words []string
		if err := json.Unmarshal([]byte(raw), &words); err != nil {
			log.Warn("%v", errors.NewMalformedEntryError(KeyHiddenWords, err))
		} else {
			set = models.NewHiddenWordSet(words...)
		}
	}

	h.mu.Lock()
	h.set = set
	h.mu.Unlock()

	log.Debug("loaded %d hidden words", set.Len())
	return set
}

// Snapshot returns the current set. The returned value is immutable.
func (h *HiddenWords) Snapshot() models.HiddenWordSet {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.set
}

// Resets counts Reset calls so holders of stale navigation state can tell
// that every word became visible again.
func (h *HiddenWords) Resets() uint64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.resets
}

// Hide adds word and persists the new set before returning it. Hiding a word
// that is already hidden changes nothing and writes nothing. If the write
// fails the in-memory set is left as it was.
func (h *HiddenWords) Hide(ctx context.Context, word models.Word) (models.HiddenWordSet, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.set.Contains(word) {
		return h.set, nil
	}

	next := h.set.With(word)
	raw, err := json.Marshal(next.Words())
	if err != nil {
		return h.set, err
	}
	if err := h.repo.Set(ctx, KeyHiddenWords, string(raw)); err != nil {
		return h.set, fmt.Errorf("persist hidden words: %w", err)
	}

	h.set = next
	logger.FromContext(ctx).WithPrefix("hidden_words").Debug("hid %q (%d hidden)", word, next.Len())
	return next, nil
}

// Reset removes the persisted value and empties the set.
func (h *HiddenWords) Reset(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.repo.Delete(ctx, KeyHiddenWords); err != nil {
		return fmt.Errorf("clear hidden words: %w", err)
	}
	h.set = models.NewHiddenWordSet()
	h.resets++

	logger.FromContext(ctx).WithPrefix("hidden_words").Info("hidden words reset")
	return nil
}
