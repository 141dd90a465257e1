package speech

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/vytor/phonicsplay/internal/logger"
)

// Sink is where utterances end up.
type Sink interface {
	Speak(ctx context.Context, text string) error
}

// CommandSink runs an external text-to-speech program with the utterance
// as its only argument, e.g. espeak or say.
type CommandSink struct {
	path string
	log  *logger.Logger
}

func NewCommandSink(path string) *CommandSink {
	return &CommandSink{
		path: path,
		log:  logger.Default().WithPrefix("speech"),
	}
}

func (s *CommandSink) Speak(ctx context.Context, text string) error {
	cmd := exec.CommandContext(ctx, s.path, text)
	out, err := cmd.CombinedOutput()
	if err != nil {
		s.log.Warn("%s failed: %v (output: %s)", s.path, err, out)
		return fmt.Errorf("run %s: %w", s.path, err)
	}
	return nil
}

// LogSink records utterances without producing sound. Used when no speech
// command is configured; the browser speaks the utterance instead.
type LogSink struct {
	log *logger.Logger
}

func NewLogSink(log *logger.Logger) *LogSink {
	if log == nil {
		log = logger.Default()
	}
	return &LogSink{log: log.WithPrefix("speech")}
}

func (s *LogSink) Speak(_ context.Context, text string) error {
	s.log.Info("utterance: %q", text)
	return nil
}
