package images

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// BaseURL is the public path prefix player photo references start with.
const BaseURL = "/uploads"

// Store is the photo collaborator: hand it a binary, get back a retrievable
// URL that doubles as the deletable reference.
type Store interface {
	Save(r io.Reader, ext string) (string, error)
	Delete(ref string) error
	Reset() error
}

// DiskStore writes photos under dir with random names, served statically
// under BaseURL.
type DiskStore struct {
	dir string
	log *logrus.Logger
}

func NewDiskStore(dir string, log *logrus.Logger) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskStore{dir: dir, log: log}, nil
}

// Dir is the directory photos live in, for static serving.
func (ds *DiskStore) Dir() string {
	return ds.dir
}

func (ds *DiskStore) Save(r io.Reader, ext string) (string, error) {
	name := uuid.NewString() + ext
	f, err := os.Create(filepath.Join(ds.dir, name))
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", err
	}
	return BaseURL + "/" + name, nil
}

// Delete removes the photo a reference points at. A reference outside
// BaseURL or an already-gone file is ignored.
func (ds *DiskStore) Delete(ref string) error {
	name, ok := strings.CutPrefix(ref, BaseURL+"/")
	if !ok || name == "" || strings.Contains(name, "/") {
		return nil
	}
	err := os.Remove(filepath.Join(ds.dir, name))
	if err != nil && !os.IsNotExist(err) {
		ds.log.WithError(err).WithField("photo", name).Error("could not delete photo")
		return err
	}
	return nil
}

// Reset clears every stored photo.
func (ds *DiskStore) Reset() error {
	entries, err := os.ReadDir(ds.dir)
	if err != nil {
		ds.log.WithError(err).Error("could not read uploads directory")
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || entry.Name() == ".gitkeep" {
			continue
		}
		if err := os.Remove(filepath.Join(ds.dir, entry.Name())); err != nil {
			ds.log.WithError(err).WithField("photo", entry.Name()).Error("could not delete photo")
		}
	}
	return nil
}
