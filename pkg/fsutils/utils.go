package fsutils

import (
	"os"
	"path/filepath"
	"strings"
)

var osUserHomeDir = os.UserHomeDir

// ExpandHome expands leading ~ to the user's home directory.
func ExpandHome(p string) string {
	if p == "" {
		return p
	}
	if strings.HasPrefix(p, "~/") || p == "~" {
		home, err := osUserHomeDir()
		if err == nil {
			if p == "~" {
				return home
			}
			return filepath.Join(home, strings.TrimPrefix(p, "~/"))
		}
	}
	return p
}

// ParentDir returns the parent of dir and false when dir is a root.
func ParentDir(dir string) (string, bool) {
	cleaned := filepath.Clean(dir)
	parent := filepath.Dir(cleaned)
	if parent == cleaned {
		return cleaned, false
	}
	return parent, true
}

// SamePath reports whether a and b name the same location after cleaning.
func SamePath(a, b string) bool {
	if a == "" || b == "" {
		return a == b
	}
	return filepath.Clean(ExpandHome(a)) == filepath.Clean(ExpandHome(b))
}
