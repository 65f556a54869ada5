package app

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/gobwas/glob"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

// Entry is one item of a directory listing.
type Entry struct {
	Name  string
	Size  int64
	IsDir bool
}

// Scanner lists directories and totals their sizes.
type Scanner struct {
	fs      afero.Fs
	ignore  []glob.Glob
	workers int
}

// NewScanner creates a scanner over fs. Entries whose name matches one of
// the ignore patterns are left out of listings and size totals.
func NewScanner(fs afero.Fs, ignore []string, workers int) (*Scanner, error) {
	if workers < 1 {
		workers = 1
	}

	s := &Scanner{fs: fs, workers: workers}
	for _, pattern := range ignore {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %v", ErrInvalidPattern, pattern, err)
		}
		s.ignore = append(s.ignore, g)
	}
	return s, nil
}

func (s *Scanner) ignored(name string) bool {
	for _, g := range s.ignore {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// List returns the entries of dir, largest first. Directory sizes are the
// total size of the regular files below them.
func (s *Scanner) List(dir string) ([]Entry, error) {
	info, err := s.fs.Stat(dir)
	if err != nil {
		return nil, NewOperationError("list", dir, err)
	}
	if !info.IsDir() {
		return nil, NewOperationError("list", dir, ErrNotADirectory)
	}

	infos, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		return nil, NewOperationError("list", dir, err).WithContext("read dir")
	}

	entries := make([]Entry, 0, len(infos))
	for _, fi := range infos {
		if s.ignored(fi.Name()) {
			continue
		}
		e := Entry{Name: fi.Name(), IsDir: fi.IsDir()}
		if !e.IsDir {
			e.Size = fi.Size()
		}
		entries = append(entries, e)
	}

	var g errgroup.Group
	g.SetLimit(s.workers)
	for i := range entries {
		if !entries[i].IsDir {
			continue
		}
		i := i
		g.Go(func() error {
			entries[i].Size = s.dirSize(filepath.Join(dir, entries[i].Name))
			return nil
		})
	}
	_ = g.Wait()

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Size != entries[j].Size {
			return entries[i].Size > entries[j].Size
		}
		return entries[i].Name < entries[j].Name
	})
	return entries, nil
}

// dirSize walks dir and sums regular file sizes. Unreadable subtrees are
// skipped.
func (s *Scanner) dirSize(dir string) int64 {
	var total int64
	_ = afero.Walk(s.fs, dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if info != nil && info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if path != dir && s.ignored(info.Name()) {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if info.Mode().IsRegular() {
			total += info.Size()
		}
		return nil
	})
	return total
}

// Total returns the sum of the entry sizes.
func Total(entries []Entry) int64 {
	var total int64
	for _, e := range entries {
		total += e.Size
	}
	return total
}
