package services

import (
	"context"

	"github.com/vytor/phonicsplay/internal/logger"
	"github.com/vytor/phonicsplay/internal/models"
)

// LibraryService lists the sections available for drilling.
type LibraryService interface {
	Sections(ctx context.Context) (models.Manifest, error)
}

type libraryService struct {
	loader ListLoader
}

// NewLibraryService creates a new LibraryService
func NewLibraryService(loader ListLoader) LibraryService {
	return &libraryService{loader: loader}
}

func (s *libraryService) Sections(ctx context.Context) (models.Manifest, error) {
	log := logger.FromContext(ctx)
	log.Debug("loading sections manifest")

	manifest, err := s.loader.LoadManifest(ctx)
	if err != nil {
		log.Warn("failed to load manifest: %v", err)
		return nil, err
	}
	return manifest, nil
}
