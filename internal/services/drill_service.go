package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/vytor/phonicsplay/internal/errors"
	"github.com/vytor/phonicsplay/internal/logger"
	"github.com/vytor/phonicsplay/internal/models"
	"github.com/vytor/phonicsplay/internal/navigation"
)

// ListLoader produces word lists and the sections manifest.
type ListLoader interface {
	LoadList(ctx context.Context, source string) (models.WordList, error)
	LoadManifest(ctx context.Context) (models.Manifest, error)
}

// HiddenWordStore is the process-wide set of hidden words.
type HiddenWordStore interface {
	Snapshot() models.HiddenWordSet
	Resets() uint64
	Hide(ctx context.Context, word models.Word) (models.HiddenWordSet, error)
	Reset(ctx context.Context) error
}

// SettingsStore holds the playback flags.
type SettingsStore interface {
	Current() models.PlaybackSettings
	SetAutoRead(ctx context.Context, v bool) (models.PlaybackSettings, error)
	SetSpellBeforeRead(ctx context.Context, v bool) (models.PlaybackSettings, error)
}

// Reader requests playback of a word and returns what will be said.
type Reader interface {
	Read(ctx context.Context, word models.Word, spell bool) string
}

// Snapshot is what a drill page renders after an action.
type Snapshot struct {
	Source    string                  `json:"source"`
	Label     string                  `json:"label"`
	State     navigation.State        `json:"state"`
	Message   string                  `json:"message,omitempty"`
	Position  int                     `json:"position"`
	Settings  models.PlaybackSettings `json:"settings"`
	Utterance string                  `json:"utterance,omitempty"`
}

// DrillService owns one navigation session per client.
type DrillService interface {
	NewSessionID() string
	Select(ctx context.Context, sessionID, source string) (Snapshot, error)
	View(ctx context.Context, sessionID string) Snapshot
	Next(ctx context.Context, sessionID string) Snapshot
	Previous(ctx context.Context, sessionID string) Snapshot
	Hide(ctx context.Context, sessionID string) (Snapshot, error)
	Read(ctx context.Context, sessionID string) Snapshot
	Sweep(now time.Time) int
	Run(ctx context.Context, every time.Duration)
}

type session struct {
	mu     sync.Mutex
	list   models.WordList
	loaded bool
	state  navigation.State
	gen    uint64
	resets uint64

	// guarded by drillService.mu
	lastSeen time.Time
}

type drillService struct {
	loader   ListLoader
	hidden   HiddenWordStore
	settings SettingsStore
	reader   Reader
	idle     time.Duration
	now      func() time.Time

	mu       sync.Mutex
	sessions map[string]*session
}

// DrillOption configures a DrillService.
type DrillOption func(*drillService)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) DrillOption {
	return func(s *drillService) { s.now = now }
}

// NewDrillService creates a new DrillService. Sessions untouched for idle
// are dropped by Sweep.
func NewDrillService(loader ListLoader, hidden HiddenWordStore, settings SettingsStore, reader Reader, idle time.Duration, opts ...DrillOption) DrillService {
	s := &drillService{
		loader:   loader,
		hidden:   hidden,
		settings: settings,
		reader:   reader,
		idle:     idle,
		now:      time.Now,
		sessions: make(map[string]*session),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *drillService) NewSessionID() string {
	return uuid.NewString()
}

func (s *drillService) session(id string) *session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		sess = &session{state: navigation.None()}
		s.sessions[id] = sess
	}
	sess.lastSeen = s.now()
	return sess
}

// Select makes source the session's active list. Re-selecting the list that
// is already loaded keeps the position. Loads run outside the session lock;
// if another Select started meanwhile, this result is discarded.
func (s *drillService) Select(ctx context.Context, sessionID, source string) (Snapshot, error) {
	log := logger.FromContext(ctx).WithFields(map[string]any{"session": sessionID, "source": source})
	sess := s.session(sessionID)

	sess.mu.Lock()
	if sess.loaded && sess.list.Source == source {
		s.sync(sess)
		snap := s.snapshot(sess, "")
		sess.mu.Unlock()
		return snap, nil
	}
	sess.gen++
	gen := sess.gen
	sess.mu.Unlock()

	log.Debug("loading word list")
	list, err := s.loader.LoadList(ctx, source)
	if err == nil {
		list.Label = s.label(ctx, source)
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.gen != gen {
		log.Debug("discarding superseded load (generation %d, latest %d)", gen, sess.gen)
		s.sync(sess)
		return s.snapshot(sess, ""), nil
	}

	if err != nil {
		log.WithError(err).Warn("failed to load word list")
		sess.list = models.WordList{Source: source, Label: source}
		sess.loaded = false
		sess.state = navigation.Unavailable()
		return s.snapshot(sess, ""), err
	}

	sess.list = list
	sess.loaded = true
	sess.resets = s.hidden.Resets()
	sess.state = navigation.Initialize(list, s.hidden.Snapshot())
	log.Info("selected list with %d words (%s)", list.Len(), sess.state.Kind)
	return s.snapshot(sess, ""), nil
}

func (s *drillService) label(ctx context.Context, source string) string {
	manifest, err := s.loader.LoadManifest(ctx)
	if err != nil {
		logger.FromContext(ctx).Debug("manifest unavailable, using filename as label: %v", err)
		return source
	}
	return manifest.Label(source)
}

func (s *drillService) View(ctx context.Context, sessionID string) Snapshot {
	sess := s.session(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	s.sync(sess)
	return s.snapshot(sess, "")
}

func (s *drillService) Next(ctx context.Context, sessionID string) Snapshot {
	return s.move(ctx, sessionID, navigation.Next)
}

func (s *drillService) Previous(ctx context.Context, sessionID string) Snapshot {
	return s.move(ctx, sessionID, navigation.Previous)
}

func (s *drillService) move(ctx context.Context, sessionID string, step func(models.WordList, navigation.HiddenSet, navigation.State) navigation.State) Snapshot {
	sess := s.session(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	s.sync(sess)
	before := sess.state
	sess.state = step(sess.list, s.hidden.Snapshot(), before)
	return s.snapshot(sess, s.autoRead(ctx, before, sess.state))
}

// Hide marks the current word hidden and moves on. When the write fails the
// session stays where it was.
func (s *drillService) Hide(ctx context.Context, sessionID string) (Snapshot, error) {
	log := logger.FromContext(ctx).WithField("session", sessionID)
	sess := s.session(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	s.sync(sess)
	before := sess.state
	state, err := navigation.HideCurrent(sess.list, before, func(w models.Word) (navigation.HiddenSet, error) {
		return s.hidden.Hide(ctx, w)
	})
	if err != nil {
		log.WithError(err).Error("failed to hide word %q", before.Word)
		return s.snapshot(sess, ""), errors.NewInternalError(err)
	}
	if before.Kind == navigation.Active {
		log.Info("hid word %q", before.Word)
	}
	sess.state = state
	return s.snapshot(sess, s.autoRead(ctx, before, state)), nil
}

func (s *drillService) Read(ctx context.Context, sessionID string) Snapshot {
	sess := s.session(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	s.sync(sess)
	utterance := ""
	if sess.state.Kind == navigation.Active {
		utterance = s.reader.Read(ctx, sess.state.Word, s.settings.Current().SpellBeforeRead)
	}
	return s.snapshot(sess, utterance)
}

// autoRead speaks the new word when auto-read is on and the position changed.
func (s *drillService) autoRead(ctx context.Context, before, after navigation.State) string {
	if after.Kind != navigation.Active || (before.Kind == after.Kind && before.Index == after.Index) {
		return ""
	}
	settings := s.settings.Current()
	if !settings.AutoRead {
		return ""
	}
	return s.reader.Read(ctx, after.Word, settings.SpellBeforeRead)
}

// sync brings the session in line with the shared hidden set, which other
// sessions and the reset action may have changed. Caller holds sess.mu.
func (s *drillService) sync(sess *session) {
	if !sess.loaded {
		return
	}
	hidden := s.hidden.Snapshot()
	if r := s.hidden.Resets(); r != sess.resets {
		sess.resets = r
		sess.state = navigation.Reset(sess.list, hidden)
		return
	}
	sess.state = navigation.Revalidate(sess.list, hidden, sess.state)
}

func (s *drillService) snapshot(sess *session, utterance string) Snapshot {
	return Snapshot{
		Source:    sess.list.Source,
		Label:     sess.list.Label,
		State:     sess.state,
		Message:   sess.state.Message(),
		Position:  sess.state.Position(),
		Settings:  s.settings.Current(),
		Utterance: utterance,
	}
}

// Sweep drops sessions idle since before now-idle and returns how many.
func (s *drillService) Sweep(now time.Time) int {
	if s.idle <= 0 {
		return 0
	}
	cutoff := now.Add(-s.idle)

	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for id, sess := range s.sessions {
		if sess.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			n++
		}
	}
	return n
}

// Run sweeps idle sessions until ctx is done.
func (s *drillService) Run(ctx context.Context, every time.Duration) {
	log := logger.Default().WithPrefix("drill-sessions")
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(s.now()); n > 0 {
				log.Info("evicted %d idle sessions", n)
			}
		}
	}
}
