package worker

import (
	"context"

	"github.com/vytor/phonicsplay/internal/logger"
)

// Speaker plays a single utterance.
type Speaker interface {
	Speak(ctx context.Context, text string) error
}

// SpeakJob hands one composed utterance to a Speaker.
type SpeakJob struct {
	Speaker Speaker
	Text    string
}

func (j *SpeakJob) Name() string { return "speak" }

func (j *SpeakJob) Run(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("text", j.Text)
	log.Debug("speaking utterance")

	if err := j.Speaker.Speak(ctx, j.Text); err != nil {
		log.Error("failed to speak utterance: %v", err)
		return err
	}
	return nil
}
