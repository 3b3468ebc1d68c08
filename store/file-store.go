package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var errUnsetName = errors.New("document name cannot be empty")

// FileStore keeps one file per document under dir, encoded as yaml or json.
type FileStore[T any] struct {
	dir    string
	format string
}

// NewFileStore creates dir if needed. format is "yaml" or "json".
func NewFileStore[T any](dir string, format string) (*FileStore[T], error) {
	switch format {
	case "yaml", "json":
	case "yml":
		format = "yaml"
	default:
		return nil, errors.Errorf("unsupported store format %q", format)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "creating store directory %s", dir)
	}
	return &FileStore[T]{dir: dir, format: format}, nil
}

// Dir returns the directory documents are written to.
func (fs *FileStore[T]) Dir() string {
	return fs.dir
}

func (fs *FileStore[T]) Marshal(data T) ([]byte, error) {
	if fs.format == "json" {
		return json.MarshalIndent(data, "", "  ")
	}
	return yaml.Marshal(data)
}

func (fs *FileStore[T]) Unmarshal(raw []byte, data *T) error {
	if fs.format == "json" {
		return json.Unmarshal(raw, data)
	}
	return yaml.Unmarshal(raw, data)
}

// Path returns the file backing the named document.
func (fs *FileStore[T]) Path(name string) string {
	return filepath.Join(fs.dir, name+"."+fs.format)
}

func (fs *FileStore[T]) checkName(name string) error {
	if name == "" {
		return errUnsetName
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return errors.Errorf("invalid document name %q", name)
	}
	return nil
}

// Save serializes data and writes it under name, replacing any previous copy.
func (fs *FileStore[T]) Save(name string, data T) error {
	if err := fs.checkName(name); err != nil {
		return err
	}
	serialized, err := fs.Marshal(data)
	if err != nil {
		return errors.Wrapf(err, "encoding %s", name)
	}
	tmp := fs.Path(name) + ".tmp"
	if err := os.WriteFile(tmp, serialized, 0o644); err != nil {
		return errors.Wrapf(err, "writing %s", tmp)
	}
	return errors.Wrap(os.Rename(tmp, fs.Path(name)), "replacing document")
}

// Load reads the named document. A missing document is an error that
// satisfies errors.Is(err, os.ErrNotExist).
func (fs *FileStore[T]) Load(name string) (T, error) {
	var data T
	if err := fs.checkName(name); err != nil {
		return data, err
	}
	serialized, err := os.ReadFile(fs.Path(name))
	if err != nil {
		return data, errors.Wrapf(err, "reading %s", name)
	}
	if err := fs.Unmarshal(serialized, &data); err != nil {
		return data, errors.Wrapf(err, "decoding %s", fs.Path(name))
	}
	return data, nil
}

func (fs *FileStore[T]) Exists(name string) bool {
	if fs.checkName(name) != nil {
		return false
	}
	_, err := os.Stat(fs.Path(name))
	return err == nil
}

// List returns the sorted names of stored documents.
func (fs *FileStore[T]) List() ([]string, error) {
	entries, err := os.ReadDir(fs.dir)
	if err != nil {
		return nil, errors.Wrapf(err, "listing %s", fs.dir)
	}
	suffix := "." + fs.format
	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), suffix) {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), suffix))
	}
	sort.Strings(names)
	return names, nil
}
