package saves

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/reusee/novel/logs"
)

var (
	ErrNotFound = errors.New("save not found")
	ErrBadName  = errors.New("bad save name")
)

const tmpSuffix = ".tmp"

// Store keeps programs as plain text files in Dir, one file per save, each line newline terminated.
// The directory is created on first write.
type Store struct {
	Dir    string
	Logger logs.Logger
}

func checkName(name string) error {
	if name == "" ||
		name == "." ||
		name == ".." ||
		strings.ContainsAny(name, `/\`) ||
		strings.HasSuffix(name, tmpSuffix) {
		return fmt.Errorf("%w: %q", ErrBadName, name)
	}
	return nil
}

func (s *Store) openRoot(create bool) (*os.Root, error) {
	if create {
		if err := os.MkdirAll(s.Dir, 0755); err != nil {
			return nil, wrap(err)
		}
	}
	root, err := os.OpenRoot(s.Dir)
	if err != nil {
		return nil, wrap(err)
	}
	return root, nil
}

// Save writes lines under name, replacing any previous save atomically.
func (s *Store) Save(name string, lines []string) error {
	if err := checkName(name); err != nil {
		return err
	}
	root, err := s.openRoot(true)
	if err != nil {
		return err
	}
	defer root.Close()

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	tmp := name + tmpSuffix
	if err := root.WriteFile(tmp, []byte(b.String()), 0644); err != nil {
		return wrap(err)
	}
	if err := root.Rename(tmp, name); err != nil {
		return wrap(err)
	}

	if s.Logger != nil {
		s.Logger.Info("saved", "name", name, "lines", len(lines))
	}
	return nil
}

// Open returns the lines of a save, without the terminating newline of the last line.
func (s *Store) Open(name string) ([]string, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	root, err := s.openRoot(false)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, s.notFound(name)
		}
		return nil, err
	}
	defer root.Close()

	content, err := root.ReadFile(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, s.notFound(name)
		}
		return nil, wrap(err)
	}

	text := strings.TrimSuffix(string(content), "\n")
	if text == "" {
		return []string{}, nil
	}
	return strings.Split(text, "\n"), nil
}

// List returns the names of all saves, sorted.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, wrap(err)
	}
	var names []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		name := entry.Name()
		if checkName(name) != nil {
			continue
		}
		names = append(names, name)
	}
	slices.Sort(names)
	return names, nil
}

// Delete removes the save with exactly this name. Names are never resolved fuzzily here;
// a missing name fails with a *NotFoundError listing close matches.
func (s *Store) Delete(name string) error {
	if err := checkName(name); err != nil {
		return err
	}
	root, err := s.openRoot(false)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s.notFound(name)
		}
		return err
	}
	defer root.Close()

	if err := root.Remove(name); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s.notFound(name)
		}
		return wrap(err)
	}
	if s.Logger != nil {
		s.Logger.Info("deleted", "name", name)
	}
	return nil
}
