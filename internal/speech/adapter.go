package speech

import (
	"context"
	"errors"

	"github.com/vytor/phonicsplay/internal/logger"
	"github.com/vytor/phonicsplay/internal/models"
	"github.com/vytor/phonicsplay/internal/worker"
)

// Submitter accepts background jobs without blocking.
type Submitter interface {
	Submit(job worker.Job) error
}

// Adapter composes utterances and queues them for playback.
type Adapter struct {
	jobs Submitter
	sink Sink
}

func NewAdapter(jobs Submitter, sink Sink) *Adapter {
	return &Adapter{jobs: jobs, sink: sink}
}

// Read requests playback of word and returns the composed utterance, or ""
// when there is nothing to say. The request is fire-and-forget: a full
// queue drops it.
func (a *Adapter) Read(ctx context.Context, word models.Word, spell bool) string {
	text, ok := Compose(word, spell)
	if !ok {
		return ""
	}

	log := logger.FromContext(ctx)
	if a == nil || a.jobs == nil || a.sink == nil {
		return text
	}

	err := a.jobs.Submit(&worker.SpeakJob{Speaker: a.sink, Text: text})
	switch {
	case err == nil:
	case errors.Is(err, worker.ErrQueueFull):
		log.Warn("speech queue full, dropping utterance %q", text)
	default:
		log.Warn("speech request not queued: %v", err)
	}
	return text
}
