package files

import (
	"context"
	"io/fs"
	"os"
)

// Store is a read-only view of a file system.
type Store interface {
	RootTitle() string
	ReadDir(ctx context.Context, name string) ([]os.DirEntry, error)
	Stat(ctx context.Context, name string) (fs.FileInfo, error)
	// ReadFile reads at most max bytes; max <= 0 reads the whole file.
	ReadFile(ctx context.Context, name string, max int) ([]byte, error)
}
