package activities

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// Lister is the read-only view of a store that the Snapshotter needs.
type Lister interface {
	List() map[string]Activity
}

// Snapshotter writes point-in-time copies of the activity roster to disk as
// JSON files. Snapshots are operational backups; the seed file remains the
// source of truth at startup.
type Snapshotter struct {
	dir      string
	maxCount int
	store    Lister
	logger   *slog.Logger
}

// NewSnapshotter creates a Snapshotter writing to dir, retaining at most
// maxCount snapshot files. A non-positive maxCount retains all snapshots.
// The directory is created if it doesn't exist.
func NewSnapshotter(dir string, maxCount int, store Lister, logger *slog.Logger) (*Snapshotter, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create snapshot directory: %w", err)
	}
	return &Snapshotter{
		dir:      dir,
		maxCount: maxCount,
		store:    store,
		logger:   logger,
	}, nil
}

// Run writes a snapshot. It satisfies the cron trigger's Runnable interface.
func (s *Snapshotter) Run() error {
	return s.Save(time.Now())
}

// Save writes the current roster to a timestamped file in the snapshot
// directory and prunes old snapshots beyond the retention limit.
func (s *Snapshotter) Save(now time.Time) error {
	catalog := s.store.List()

	data, err := json.MarshalIndent(catalog, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	// Use timestamp as filename: 2006-01-02T15-04-05.json
	filename := now.Format("2006-01-02T15-04-05") + ".json"
	path := filepath.Join(s.dir, filename)

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot file: %w", err)
	}

	s.logger.Debug("saved roster snapshot", "path", path, "activities", len(catalog))

	return s.prune()
}

// RestoreLatest loads the most recent snapshot in the directory.
// Returns ErrNoSnapshots via os.ErrNotExist semantics when the directory
// holds no snapshot files.
func (s *Snapshotter) RestoreLatest() (map[string]Activity, error) {
	names, err := s.snapshotFiles()
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no snapshots in %s: %w", s.dir, os.ErrNotExist)
	}

	// Timestamped names sort chronologically
	latest := names[len(names)-1]
	path := filepath.Join(s.dir, latest)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot file %s: %w", path, err)
	}

	var catalog map[string]Activity
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot file %s: %w", path, err)
	}

	s.logger.Info("restored roster snapshot", "path", path, "activities", len(catalog))
	return catalog, nil
}

// prune removes the oldest snapshot files beyond the retention limit.
func (s *Snapshotter) prune() error {
	if s.maxCount <= 0 {
		return nil
	}

	names, err := s.snapshotFiles()
	if err != nil {
		return err
	}

	for len(names) > s.maxCount {
		oldest := names[0]
		names = names[1:]
		path := filepath.Join(s.dir, oldest)
		if err := os.Remove(path); err != nil {
			s.logger.Warn("failed to remove old snapshot", "path", path, "error", err)
			continue
		}
		s.logger.Debug("pruned old snapshot", "path", path)
	}
	return nil
}

// snapshotFiles returns the snapshot filenames in the directory, oldest first.
func (s *Snapshotter) snapshotFiles() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}
