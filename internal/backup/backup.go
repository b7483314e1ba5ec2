// Package backup stores export documents as named JSON files on disk so
// that users can move them between devices.
package backup

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/exp/slices"
)

var (
	// ErrNotFound is returned when a named backup does not exist.
	ErrNotFound = errors.New("there is no backup with this name")

	// ErrInvalidName rejects names that would escape the backup directory.
	ErrInvalidName = errors.New("the backup name must be a plain file name ending in .json")
)

// Store reads and writes backups in one directory.
type Store struct {
	dir string
}

// New returns a Store for the given directory, creating it when needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("could not create backup directory: %w", err)
	}

	return &Store{dir: dir}, nil
}

// FileName returns the canonical backup file name for a point in time.
func FileName(now time.Time) string {
	return fmt.Sprintf("umuryango_budget_%s.json", now.Format("2006-01-02"))
}

func validName(name string) bool {
	return name != "" &&
		name == filepath.Base(name) &&
		!strings.HasPrefix(name, ".") &&
		strings.HasSuffix(name, ".json")
}

// Save writes the data under the given name. The write goes to a
// temporary file first and is moved into place afterwards, a reader can
// never observe a half-written backup.
func (s *Store) Save(name string, data []byte) error {
	if !validName(name) {
		return ErrInvalidName
	}

	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return err
	}

	_, err = tmp.Write(data)
	if err1 := tmp.Close(); err == nil {
		err = err1
	}
	if err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}

	return os.Rename(tmp.Name(), filepath.Join(s.dir, name))
}

// Load returns the content of the named backup.
func (s *Store) Load(name string) ([]byte, error) {
	if !validName(name) {
		return nil, ErrInvalidName
	}

	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return data, nil
}

// List returns the names of all backups, newest name first.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !validName(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}

	slices.Sort(names)
	slices.Reverse(names)

	return names, nil
}
