package wordlist

import (
	"context"
	"path"

	"github.com/vytor/phonicsplay/internal/errors"
	"github.com/vytor/phonicsplay/internal/logger"
	"github.com/vytor/phonicsplay/internal/models"
)

// Loader turns source identifiers into word lists and reads the section manifest.
// It keeps no cache: every call performs the I/O again.
type Loader struct {
	fetcher      Fetcher
	manifestName string
	listsPath    string
}

func NewLoader(fetcher Fetcher, manifestName, listsPath string) *Loader {
	return &Loader{
		fetcher:      fetcher,
		manifestName: manifestName,
		listsPath:    listsPath,
	}
}

// LoadList fetches and parses the list for source. On failure it returns an
// empty list for source together with a RESOURCE_UNAVAILABLE error.
func (l *Loader) LoadList(ctx context.Context, source string) (models.WordList, error) {
	log := logger.FromContext(ctx).WithPrefix("wordlist").WithField("source", source)

	list := models.WordList{Source: source, Label: source}
	if err := checkName(source); err != nil {
		log.Warn("rejected source: %v", err)
		return list, errors.NewResourceUnavailableError(source, err)
	}

	text, err := l.fetcher.Fetch(ctx, path.Join(l.listsPath, source))
	if err != nil {
		log.Warn("word list unavailable: %v", err)
		return list, errors.NewResourceUnavailableError(source, err)
	}

	list.Words = ParseWords(text)
	log.Debug("loaded %d words", len(list.Words))
	return list, nil
}

// LoadManifest fetches and parses the section manifest. Malformed lines are
// logged and dropped.
func (l *Loader) LoadManifest(ctx context.Context) (models.Manifest, error) {
	log := logger.FromContext(ctx).WithPrefix("wordlist").WithField("manifest", l.manifestName)

	text, err := l.fetcher.Fetch(ctx, l.manifestName)
	if err != nil {
		log.Warn("manifest unavailable: %v", err)
		return nil, errors.NewResourceUnavailableError(l.manifestName, err)
	}

	manifest, skipped := ParseManifest(text)
	for _, s := range skipped {
		log.Debug("skipping %v", s)
	}
	log.Debug("manifest has %d sections (%d lines skipped)", len(manifest), len(skipped))
	return manifest, nil
}
