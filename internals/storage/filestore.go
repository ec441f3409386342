package storage

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// FileStore keeps each collection as <dataDir>/<collection>.json.
type FileStore struct {
	dataDir string
	log     *logrus.Logger
}

func NewFileStore(dataDir string, log *logrus.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{dataDir: dataDir, log: log}, nil
}

func (fs *FileStore) path(collection string) string {
	return filepath.Join(fs.dataDir, collection+".json")
}

// Read decodes the collection file into v. A missing file seeds the default
// (v as passed in); an unreadable or corrupt file falls back to the default
// and is logged, never fatal.
func (fs *FileStore) Read(collection string, v interface{}) error {
	path := fs.path(collection)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return fs.Write(collection, v)
	}
	if err != nil {
		fs.log.WithError(err).WithField("collection", collection).Warn("could not read collection, using defaults")
		return nil
	}

	if err := json.Unmarshal(data, v); err != nil {
		fs.log.WithError(err).WithField("collection", collection).Warn("corrupt collection document, using defaults")
		return nil
	}
	return nil
}

func (fs *FileStore) Write(collection string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(fs.path(collection), data, 0o644); err != nil {
		fs.log.WithError(err).WithField("collection", collection).Error("could not write collection")
		return err
	}
	return nil
}
