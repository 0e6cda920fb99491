package files

import (
	"os"
	"path/filepath"
)

func NewDirEntry(name string, isDir bool, o ...FileInfoOption) DirEntry {
	if parent, _ := filepath.Split(name); parent != "" {
		// It's OK to have panic here.
		panic("dir entry name can not have path: " + name)
	}
	dirEntry := DirEntry{
		name:  name,
		isDir: isDir,
	}
	if len(o) > 0 {
		dirEntry.info = NewFileInfo(dirEntry, o...)
	}
	return dirEntry
}

// FromOSDirEntry copies name, kind and (when available) size & mod time.
func FromOSDirEntry(entry os.DirEntry) DirEntry {
	isDir := entry.IsDir()
	if fi, err := entry.Info(); err == nil && fi != nil {
		return NewDirEntry(entry.Name(), isDir, Size(fi.Size()), ModTime(fi.ModTime()))
	}
	return NewDirEntry(entry.Name(), isDir)
}

var _ os.DirEntry = (*DirEntry)(nil)

type DirEntry struct {
	name  string
	isDir bool
	info  *FileInfo
}

func (d DirEntry) Name() string { return d.name }
func (d DirEntry) IsDir() bool  { return d.isDir }
func (d DirEntry) Type() os.FileMode {
	if d.isDir {
		return os.ModeDir
	}
	return 0
}
func (d DirEntry) Info() (os.FileInfo, error) {
	if d.info == nil {
		return nil, nil
	}
	return d.info, nil
}

func (d DirEntry) String() string {
	if d.isDir {
		return d.name + "/"
	}
	return d.name
}
