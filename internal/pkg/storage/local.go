package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage keeps each slot in its own JSON file under basePath.
type LocalStorage struct {
	basePath string
}

func NewLocalStorage(basePath string) (*LocalStorage, error) {
	// Create base directory if not exists
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &LocalStorage{
		basePath: filepath.Clean(basePath),
	}, nil
}

func (s *LocalStorage) slotPath(key string) (string, error) {
	// Sanitize key to prevent directory traversal
	cleanKey := filepath.Clean(key)
	if cleanKey == "." || strings.ContainsRune(cleanKey, filepath.Separator) || strings.Contains(cleanKey, "..") {
		return "", fmt.Errorf("invalid slot key: %s", key)
	}

	fullPath := filepath.Join(s.basePath, cleanKey+".json")
	if !strings.HasPrefix(fullPath, s.basePath) {
		return "", fmt.Errorf("invalid slot key: %s", key)
	}
	return fullPath, nil
}

func (s *LocalStorage) Read(ctx context.Context, key string) ([]byte, error) {
	fullPath, err := s.slotPath(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrSlotNotFound
		}
		return nil, fmt.Errorf("failed to read slot %s: %w", key, err)
	}

	return data, nil
}

func (s *LocalStorage) WriteAll(ctx context.Context, slots []Slot) error {
	for _, slot := range slots {
		if err := s.write(slot); err != nil {
			return err
		}
	}
	return nil
}

// write replaces one slot file atomically so readers never see half a file
func (s *LocalStorage) write(slot Slot) error {
	fullPath, err := s.slotPath(slot.Key)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.basePath, "."+slot.Key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(slot.Value); err != nil {
		tmp.Close()
		// Cleanup on error
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write file: %w", err)
	}

	if err := os.Rename(tmpPath, fullPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace slot %s: %w", slot.Key, err)
	}

	return nil
}
