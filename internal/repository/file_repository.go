package repository

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"unbored/internal/domain"
	apperrors "unbored/pkg/errors"
	"unbored/pkg/logger"
)

// FileRepository persists the activity list as a single JSON document in
// the user's data directory. Every save is a whole-file rewrite through a
// temporary file in the same directory, so a reader never observes a
// partial document.
type FileRepository struct {
	path   string
	logger *logger.Logger
}

// NewFileRepository creates a repository backed by the given file path
func NewFileRepository(path string, logger *logger.Logger) *FileRepository {
	return &FileRepository{
		path:   path,
		logger: logger,
	}
}

// Load reads the persisted activity list. A missing file means the user has
// no saved activities yet; a file that cannot be parsed is surfaced as a
// corruption error rather than silently replaced with an empty list.
func (r *FileRepository) Load(_ context.Context) ([]domain.Activity, error) {
	raw, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.NewPersistenceError("failed to read activity list", err)
	}

	var activities []domain.Activity
	if err := json.Unmarshal(raw, &activities); err != nil {
		return nil, apperrors.NewCorruptError("activity list document is malformed", err)
	}

	for i := range activities {
		if err := activities[i].Validate(); err != nil {
			return nil, apperrors.NewCorruptError("activity list document holds an invalid record", err)
		}
		// Identity is per-session, not part of the document.
		activities[i].ID = uuid.New()
	}

	r.logger.WithField("count", len(activities)).Debug("Loaded activity list")
	return activities, nil
}

// Save atomically replaces the on-disk document with the given list,
// creating the data directory on first use.
func (r *FileRepository) Save(_ context.Context, activities []domain.Activity) error {
	if activities == nil {
		activities = []domain.Activity{}
	}

	raw, err := json.MarshalIndent(activities, "", "    ")
	if err != nil {
		return apperrors.NewPersistenceError("failed to encode activity list", err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return apperrors.NewPersistenceError("failed to create data directory", err)
	}

	tmp, err := os.CreateTemp(dir, ".unbored-*.json")
	if err != nil {
		return apperrors.NewPersistenceError("failed to create temporary file", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return apperrors.NewPersistenceError("failed to write activity list", err)
	}
	if err := tmp.Close(); err != nil {
		return apperrors.NewPersistenceError("failed to write activity list", err)
	}

	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return apperrors.NewPersistenceError("failed to replace activity list", err)
	}

	r.logger.WithField("count", len(activities)).Debug("Saved activity list")
	return nil
}
