package files

import (
	"io/fs"
	"time"
)

type FileInfoOption func(*FileInfo)

func Size(v int64) FileInfoOption {
	return func(info *FileInfo) {
		info.size = v
	}
}

func ModTime(v time.Time) FileInfoOption {
	return func(info *FileInfo) {
		info.modTime = v
	}
}

var _ fs.FileInfo = (*FileInfo)(nil)

// FileInfo is the fs.FileInfo of a DirEntry built from listing data.
type FileInfo struct {
	entry   DirEntry
	size    int64
	modTime time.Time
}

func NewFileInfo(entry DirEntry, o ...FileInfoOption) *FileInfo {
	info := &FileInfo{entry: entry}
	for _, opt := range o {
		opt(info)
	}
	return info
}

func (f *FileInfo) Name() string {
	if f == nil {
		return ""
	}
	return f.entry.name
}

func (f *FileInfo) Size() int64 {
	if f == nil {
		return 0
	}
	return f.size
}

func (f *FileInfo) Mode() fs.FileMode {
	if f == nil {
		return 0
	}
	return f.entry.Type()
}

func (f *FileInfo) ModTime() time.Time {
	if f == nil {
		return time.Time{}
	}
	return f.modTime
}

func (f *FileInfo) IsDir() bool {
	return f != nil && f.entry.isDir
}

func (f *FileInfo) Sys() any { return nil }
