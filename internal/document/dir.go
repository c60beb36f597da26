package document

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nauticalab/uconfig/pkg/uconfig"
)

// ErrNotFound is returned when no document exists for a name.
var ErrNotFound = errors.New("config not found")

// ErrInvalidName is returned for names that could escape the directory.
var ErrInvalidName = errors.New("invalid config name")

// Entry describes one document in a Dir.
type Entry struct {
	Name   string
	Path   string
	Format Format
}

// Dir is a flat directory of config documents addressed by file name
// without extension.
type Dir struct {
	Root string
}

// NewDir returns a Dir rooted at root after checking that it is a directory.
func NewDir(root string) (*Dir, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to access config directory %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("config path %s is not a directory", root)
	}
	return &Dir{Root: root}, nil
}

// List returns the documents in the directory sorted by name. When several
// files share a name the first of .json, .yaml, .yml wins.
func (d *Dir) List() ([]Entry, error) {
	files, err := os.ReadDir(d.Root)
	if err != nil {
		return nil, fmt.Errorf("failed to read config directory %s: %w", d.Root, err)
	}

	byName := make(map[string]Entry)
	for _, f := range files {
		if f.IsDir() || strings.HasPrefix(f.Name(), ".") {
			continue
		}
		format, err := FormatFromPath(f.Name())
		if err != nil {
			continue
		}
		name := NameFromPath(f.Name())
		if existing, ok := byName[name]; ok && extRank(existing.Path) <= extRank(f.Name()) {
			continue
		}
		byName[name] = Entry{Name: name, Path: filepath.Join(d.Root, f.Name()), Format: format}
	}

	entries := make([]Entry, 0, len(byName))
	for _, e := range byName {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

// Find locates the document for name.
func (d *Dir) Find(name string) (Entry, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return Entry{}, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	for _, ext := range extensions {
		path := filepath.Join(d.Root, name+ext)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			format, _ := FormatFromPath(path)
			return Entry{Name: name, Path: path, Format: format}, nil
		}
	}
	return Entry{}, fmt.Errorf("%w: %s", ErrNotFound, name)
}

// Load finds and parses the document for name.
func (d *Dir) Load(name string) (*uconfig.Config, error) {
	entry, err := d.Find(name)
	if err != nil {
		return nil, err
	}
	return LoadFile(entry.Path)
}

var extensions = []string{".json", ".yaml", ".yml"}

func extRank(path string) int {
	ext := strings.ToLower(filepath.Ext(path))
	for i, e := range extensions {
		if e == ext {
			return i
		}
	}
	return len(extensions)
}
