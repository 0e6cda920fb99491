package files

import (
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// DirContext is the result of listing a single directory.
type DirContext struct {
	path     string
	children []DirEntry
}

func NewDirContext(path string, children []DirEntry) *DirContext {
	return &DirContext{
		path:     path,
		children: children,
	}
}

func (c *DirContext) Path() string {
	return c.path
}

func (c *DirContext) SetChildren(entries []DirEntry) {
	c.children = SortDirChildren(entries)
}

func (c *DirContext) Children() []DirEntry {
	return c.children
}

// Child looks up a direct child by name.
func (c *DirContext) Child(name string) (DirEntry, bool) {
	for _, child := range c.children {
		if child.Name() == name {
			return child, true
		}
	}
	return DirEntry{}, false
}

func (c *DirContext) ChildPath(name string) string {
	return filepath.Join(c.path, name)
}

func (c *DirContext) Name() string {
	if c.path == "" {
		return ""
	}
	if c.path == "/" {
		return "/"
	}
	trimmed := strings.TrimSuffix(filepath.ToSlash(c.path), "/")
	return path.Base(trimmed)
}

func (c *DirContext) String() string {
	return c.path
}

// SortDirChildren puts directories first, then orders by name.
func SortDirChildren(children []DirEntry) []DirEntry {
	sort.SliceStable(children, func(i, j int) bool {
		if children[i].IsDir() != children[j].IsDir() {
			return children[i].IsDir()
		}
		return children[i].Name() < children[j].Name()
	})
	return children
}
