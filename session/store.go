package session

import (
	"context"
	"os"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// Store is the file access collaborator. The engine never touches the disk
// itself; read errors are surfaced to the caller and write errors leave the
// session dirty for a retry.
type Store interface {
	ReadFile(ctx context.Context, path string) (string, error)
	WriteFile(ctx context.Context, path, text string) error
}

// Candidate is one config file believed to belong to a mod.
type Candidate struct {
	Path string
	Name string
}

// Finder locates candidate config files for a mod. Callers treat the result
// as an opaque ordered list and default to the first entry.
type Finder interface {
	ListCandidateConfigFiles(ctx context.Context, modName, modFilenameBase string) ([]Candidate, error)
}

// AferoStore adapts an afero.Fs to Store, which keeps the orchestrator
// testable against an in-memory filesystem.
type AferoStore struct {
	Fs afero.Fs
}

func NewAferoStore(fs afero.Fs) *AferoStore {
	return &AferoStore{Fs: fs}
}

func (s *AferoStore) ReadFile(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	d, err := afero.ReadFile(s.Fs, path)
	if err != nil {
		return "", err
	}
	return string(d), nil
}

func (s *AferoStore) WriteFile(ctx context.Context, path, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return afero.WriteFile(s.Fs, path, []byte(text), 0o644)
}

// OSStore is an AferoStore over the real filesystem.
func OSStore() *AferoStore {
	return NewAferoStore(afero.NewOsFs())
}

// AferoFinder walks Root and keeps files whose name or path contains the mod
// identity, case-insensitively. Name matches on the filename base rank ahead
// of name matches on the display name, which rank ahead of path-only
// matches; ties break on path order.
type AferoFinder struct {
	Fs   afero.Fs
	Root string
}

func NewAferoFinder(fs afero.Fs, root string) *AferoFinder {
	return &AferoFinder{Fs: fs, Root: root}
}

func (f *AferoFinder) ListCandidateConfigFiles(ctx context.Context, modName, modFilenameBase string) ([]Candidate, error) {
	type scored struct {
		c     Candidate
		score int
	}
	var found []scored
	name := strings.ToLower(modName)
	base := strings.ToLower(modFilenameBase)
	err := afero.Walk(f.Fs, f.Root, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}
		if cErr := ctx.Err(); cErr != nil {
			return cErr
		}
		lowName := strings.ToLower(info.Name())
		lowPath := strings.ToLower(path)
		var score int
		switch {
		case base != "" && strings.Contains(lowName, base):
			score = 3
		case name != "" && strings.Contains(lowName, name):
			score = 2
		case (base != "" && strings.Contains(lowPath, base)) ||
			(name != "" && strings.Contains(lowPath, name)):
			score = 1
		default:
			return nil
		}
		found = append(found, scored{Candidate{Path: path, Name: info.Name()}, score})
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(found, func(i, j int) bool {
		if found[i].score != found[j].score {
			return found[i].score > found[j].score
		}
		return found[i].c.Path < found[j].c.Path
	})
	res := make([]Candidate, len(found))
	for i, s := range found {
		res[i] = s.c
	}
	return res, nil
}
