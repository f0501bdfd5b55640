package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// PhotoStore persists job photos on the local filesystem. Files are laid
// out as <base>/<jobID>/<photoID>.<ext> so a whole job's media can be
// listed or removed in one pass.
type PhotoStore struct {
	baseDir string
}

// NewPhotoStore ensures the base directory exists and returns a handle.
func NewPhotoStore(baseDir string) (*PhotoStore, error) {
	if baseDir == "" {
		baseDir = "./media"
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create media directory: %w", err)
	}
	return &PhotoStore{baseDir: baseDir}, nil
}

// Save streams an uploaded photo to disk and returns its relative path.
// The extension is taken from the original filename; anything without one
// is stored as .jpg.
func (s *PhotoStore) Save(jobID, photoID, originalName string, r io.Reader) (string, error) {
	if jobID == "" || photoID == "" {
		return "", fmt.Errorf("jobID and photoID required")
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	if ext == "" {
		ext = ".jpg"
	}

	rel := filepath.Join(jobID, photoID+ext)
	abs := filepath.Join(s.baseDir, rel)
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return "", fmt.Errorf("prepare media directory: %w", err)
	}

	file, err := os.Create(abs)
	if err != nil {
		return "", fmt.Errorf("create media file: %w", err)
	}
	defer file.Close() //nolint:errcheck

	if _, err := io.Copy(file, r); err != nil {
		return "", fmt.Errorf("write media file: %w", err)
	}
	return rel, nil
}

// Open returns a read-only handle for a stored photo. Absolute paths and
// traversal outside the base directory are rejected.
func (s *PhotoStore) Open(relPath string) (*os.File, error) {
	abs, err := s.resolve(relPath)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(abs)
	if err != nil {
		return nil, fmt.Errorf("open media file: %w", err)
	}
	return file, nil
}

// Remove deletes a stored photo if present.
func (s *PhotoStore) Remove(relPath string) error {
	abs, err := s.resolve(relPath)
	if err != nil {
		return err
	}
	if err := os.Remove(abs); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete media file: %w", err)
	}
	return nil
}

// RemoveJob deletes every photo stored for a job.
func (s *PhotoStore) RemoveJob(jobID string) error {
	if jobID == "" || strings.ContainsAny(jobID, `/\`) {
		return fmt.Errorf("invalid job id")
	}
	if err := os.RemoveAll(filepath.Join(s.baseDir, jobID)); err != nil {
		return fmt.Errorf("delete job media: %w", err)
	}
	return nil
}

// CleanupOlderThan removes photos older than the provided TTL and returns
// the relative paths it deleted.
func (s *PhotoStore) CleanupOlderThan(ttl time.Duration) ([]string, error) {
	cutoff := time.Now().Add(-ttl)
	deleted := make([]string, 0)
	err := filepath.WalkDir(s.baseDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		if info.ModTime().After(cutoff) {
			return nil
		}
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return err
		}
		rel, err := filepath.Rel(s.baseDir, path)
		if err != nil {
			rel = path
		}
		deleted = append(deleted, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("cleanup media: %w", err)
	}
	return deleted, nil
}

func (s *PhotoStore) resolve(relPath string) (string, error) {
	if relPath == "" || filepath.IsAbs(relPath) {
		return "", fmt.Errorf("invalid media path")
	}
	abs := filepath.Join(s.baseDir, filepath.Clean(relPath))
	base, err := filepath.Abs(s.baseDir)
	if err != nil {
		return "", err
	}
	resolved, err := filepath.Abs(abs)
	if err != nil {
		return "", err
	}
	if !strings.HasPrefix(resolved, base+string(os.PathSeparator)) {
		return "", fmt.Errorf("invalid media path")
	}
	return resolved, nil
}
