package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"shorts-factory/config"
	"shorts-factory/types"
)

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// Store persists run artifacts and manages the input/completed cycle
// for source images
type Store struct {
	paths config.PathsConfig
}

func New(paths config.PathsConfig) *Store {
	return &Store{paths: paths}
}

// EnsureDirs creates every directory the pipeline writes to
func (s *Store) EnsureDirs() error {
	for _, dir := range []string{s.paths.Images, s.paths.Completed, s.paths.Results, s.paths.Videos, s.paths.Scripts} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return nil
}

// ScanPending lists source images waiting in the input directory, one
// BatchItem per image, with a humanized topic derived from the filename
func (s *Store) ScanPending() ([]types.BatchItem, error) {
	entries, err := os.ReadDir(s.paths.Images)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan images: %w", err)
	}

	var items []types.BatchItem
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if !imageExtensions[ext] {
			continue
		}
		stem := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		items = append(items, types.BatchItem{
			Name:      stem,
			ImagePath: filepath.Join(s.paths.Images, entry.Name()),
			Topic:     Humanize(stem),
		})
	}
	return items, nil
}

// Humanize turns a filename stem into a readable topic
func Humanize(stem string) string {
	topic := strings.NewReplacer("_", " ", "-", " ").Replace(stem)
	return strings.Join(strings.Fields(topic), " ")
}

// WriteResult persists one pipeline record as pretty-printed JSON and
// returns the path written
func (s *Store) WriteResult(result *types.PipelineResult) (string, error) {
	name := fmt.Sprintf("%s_%s.json", result.Item, time.Now().Format("20060102_150405"))
	path := filepath.Join(s.paths.Results, name)
	if err := writeJSON(path, result); err != nil {
		return "", err
	}
	return path, nil
}

// SaveVersions persists the generated script matrix for one item
func (s *Store) SaveVersions(item string, versions []types.ScriptVersion) (string, error) {
	path := filepath.Join(s.paths.Scripts, item+"_versions.json")
	if err := writeJSON(path, versions); err != nil {
		return "", err
	}
	return path, nil
}

// SaveBatchState persists the summary record of a whole run
func (s *Store) SaveBatchState(runID string, results []types.PipelineResult) (string, error) {
	path := filepath.Join(s.paths.Results, fmt.Sprintf("batch_%s.json", runID))
	state := map[string]interface{}{
		"run_id":     runID,
		"created_at": time.Now().UTC(),
		"results":    results,
	}
	if err := writeJSON(path, state); err != nil {
		return "", err
	}
	return path, nil
}

// Relocate moves a processed source image into the completed directory
// so the next run does not pick it up again
func (s *Store) Relocate(item types.BatchItem) error {
	if item.ImagePath == "" {
		return nil
	}
	if err := os.MkdirAll(s.paths.Completed, 0755); err != nil {
		return err
	}
	dest := filepath.Join(s.paths.Completed, filepath.Base(item.ImagePath))
	if err := os.Rename(item.ImagePath, dest); err != nil {
		return fmt.Errorf("relocate %s: %w", item.Name, err)
	}
	return nil
}

func writeJSON(path string, v interface{}) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
