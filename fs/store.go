package fs

import (
	"bytes"
	"os"
	"path/filepath"
)

// DatasetStore replaces a dataset file with atomic update semantics.
// Data is saved to a temporary file, then moved over the target on Commit.
type DatasetStore struct {
	path string
}

// NewDatasetStore creates a new DatasetStore targeting path.
// Data is saved to path.tmp and moved to path on Commit.
func NewDatasetStore(path string) *DatasetStore {
	return &DatasetStore{path: path}
}

func (s *DatasetStore) tempPath() string {
	return s.path + ".tmp"
}

// Save validates data as a status dataset and writes it to the temporary file.
// Returns the number of records saved.
func (s *DatasetStore) Save(data []byte) (int, error) {
	statuses, err := DecodeStatuses(bytes.NewReader(data))
	if err != nil {
		return 0, err
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return 0, err
		}
	}

	if err := os.WriteFile(s.tempPath(), data, 0644); err != nil {
		return 0, err
	}
	return len(statuses), nil
}

// Commit moves the temporary file over the target.
func (s *DatasetStore) Commit() error {
	return os.Rename(s.tempPath(), s.path)
}

// Abort removes the temporary file.
func (s *DatasetStore) Abort() error {
	err := os.Remove(s.tempPath())
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
