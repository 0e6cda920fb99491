package osfile

import (
	"context"
	"io/fs"
	"os"
	"strings"

	"github.com/datatug/pathview/pkg/files"
	"github.com/datatug/pathview/pkg/fsutils"
)

var osReadDir = os.ReadDir
var osStat = os.Stat
var osHostname = os.Hostname
var readFileData = fsutils.ReadFileData

var _ files.Store = (*Store)(nil)

// Store reads the local file system. Paths are used as given.
type Store struct {
	title string
}

func NewStore() *Store {
	var store Store
	var err error
	if store.title, err = osHostname(); err != nil {
		store.title = err.Error()
	}
	return &store
}

func (s Store) RootTitle() string {
	return strings.TrimSuffix(s.title, ".local")
}

func (s Store) ReadDir(ctx context.Context, name string) ([]os.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return osReadDir(name)
}

func (s Store) Stat(ctx context.Context, name string) (fs.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return osStat(name)
}

func (s Store) ReadFile(ctx context.Context, name string, max int) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if max < 0 {
		max = 0
	}
	return readFileData(name, max)
}
