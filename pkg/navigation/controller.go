// Package navigation holds the directory navigation state machine.
// It does not depend on any UI toolkit.
package navigation

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/datatug/pathview/pkg/files"
	"github.com/datatug/pathview/pkg/fsutils"
	"github.com/datatug/pathview/pkg/logging"
	"github.com/datatug/pathview/pkg/viewer"
	"github.com/sirupsen/logrus"
)

var errInvalidEntryName = errors.New("invalid entry name")

type Option func(c *Controller)

func WithViewer(v *viewer.FileViewer) Option {
	return func(c *Controller) {
		c.viewer = v
	}
}

func WithLogger(log *logrus.Entry) Option {
	return func(c *Controller) {
		c.log = log
	}
}

// WithOnExit sets the hook Exit calls once.
func WithOnExit(f func()) Option {
	return func(c *Controller) {
		c.onExit = f
	}
}

// WithShowHidden controls whether dot-files are listed. Defaults to true.
func WithShowHidden(v bool) Option {
	return func(c *Controller) {
		c.showHidden = v
	}
}

// Controller owns the navigation State. It is not safe for concurrent use:
// all calls are expected from a single (UI) goroutine.
type Controller struct {
	store      files.Store
	viewer     *viewer.FileViewer
	log        *logrus.Entry
	onExit     func()
	showHidden bool

	state      State
	listedPath string
	dir        *files.DirContext

	content     string
	contentName string
	lastErr     error
	exited      bool
}

func NewController(store files.Store, initialPath string, o ...Option) *Controller {
	c := &Controller{
		store:      store,
		showHidden: true,
		state:      State{CurrentPath: initialPath},
	}
	for _, opt := range o {
		opt(c)
	}
	if c.log == nil {
		c.log = logging.NewLogger("navigation")
	}
	if c.viewer == nil {
		c.viewer = viewer.New(store, viewer.WithLogger(c.log))
	}
	return c
}

// SetPath stores path as is. It is validated by the next Refresh.
func (c *Controller) SetPath(path string) {
	if c.exited {
		return
	}
	c.state.CurrentPath = path
}

// Refresh lists the current path. A missing or unreadable directory gives an empty list.
// When the path differs from the last listed one, the latter is pushed to history.
func (c *Controller) Refresh(ctx context.Context) []files.DirEntry {
	if c.exited {
		return nil
	}
	if c.listedPath != "" && !fsutils.SamePath(c.listedPath, c.state.CurrentPath) {
		c.state.push(c.listedPath)
		c.clearContent()
	}
	return c.list(ctx)
}

// NavigateInto enters the child directory name. Files and unknown names are ignored.
func (c *Controller) NavigateInto(ctx context.Context, name string) bool {
	if c.exited {
		return false
	}
	entry, ok := c.lookup(ctx, name)
	if !ok || !entry.IsDir() {
		return false
	}
	c.moveTo(ctx, filepath.Join(c.state.CurrentPath, name))
	return true
}

// OpenFile returns the text of the child file name, or "" when it can not be read.
func (c *Controller) OpenFile(ctx context.Context, name string) string {
	if c.exited {
		return ""
	}
	entry, ok := c.lookup(ctx, name)
	if !ok || entry.IsDir() {
		return ""
	}
	filePath := c.current().ChildPath(name)
	text, err := c.viewer.Read(ctx, filePath)
	if err != nil {
		c.setError(err)
		c.content, c.contentName = "", name
		return ""
	}
	c.lastErr = nil
	c.content, c.contentName = text, name
	return text
}

// Activate is what a double click does: enter a directory or open a file.
func (c *Controller) Activate(ctx context.Context, name string) {
	if c.exited {
		return
	}
	entry, ok := c.lookup(ctx, name)
	if !ok {
		return
	}
	if entry.IsDir() {
		c.NavigateInto(ctx, name)
		return
	}
	c.OpenFile(ctx, name)
}

// Back returns to the previous path. With empty history it does nothing.
func (c *Controller) Back(ctx context.Context) bool {
	if c.exited {
		return false
	}
	prev, ok := c.state.pop()
	if !ok {
		return false
	}
	c.state.CurrentPath = prev
	c.clearContent()
	c.list(ctx)
	return true
}

// Up moves to the parent directory. At the file system root it does nothing.
func (c *Controller) Up(ctx context.Context) bool {
	if c.exited {
		return false
	}
	parent, ok := fsutils.ParentDir(fsutils.ExpandHome(c.state.CurrentPath))
	if !ok {
		return false
	}
	c.moveTo(ctx, parent)
	return true
}

// Exit marks the controller as closed and calls the exit hook.
func (c *Controller) Exit() {
	if c.exited {
		return
	}
	c.exited = true
	c.clearContent()
	c.log.Debug("exit")
	if c.onExit != nil {
		c.onExit()
	}
}

// RootTitle names the file system being browsed.
func (c *Controller) RootTitle() string {
	return c.store.RootTitle()
}

func (c *Controller) Exited() bool {
	return c.exited
}

func (c *Controller) State() State {
	return c.state.clone()
}

func (c *Controller) Entries() []files.DirEntry {
	if c.dir == nil {
		return nil
	}
	children := c.dir.Children()
	entries := make([]files.DirEntry, len(children))
	copy(entries, children)
	return entries
}

func (c *Controller) Content() string {
	return c.content
}

// LastError is the classified error of the last failed listing or read.
func (c *Controller) LastError() error {
	return c.lastErr
}

func (c *Controller) Snapshot() Snapshot {
	dirName := ""
	if c.dir != nil {
		dirName = c.dir.Name()
	}
	return Snapshot{
		Path:        c.state.CurrentPath,
		DirName:     dirName,
		Entries:     c.Entries(),
		Content:     c.content,
		ContentName: c.contentName,
		Exited:      c.exited,
	}
}

func (c *Controller) moveTo(ctx context.Context, path string) {
	c.state.push(c.state.CurrentPath)
	c.state.CurrentPath = path
	c.clearContent()
	c.list(ctx)
}

func (c *Controller) list(ctx context.Context) []files.DirEntry {
	c.listedPath = c.state.CurrentPath
	dirPath := fsutils.ExpandHome(c.state.CurrentPath)
	c.dir = files.NewDirContext(dirPath, nil)

	children, err := c.readDir(ctx, dirPath)
	if err != nil {
		c.setError(err)
		return nil
	}
	c.lastErr = nil
	entries := make([]files.DirEntry, 0, len(children))
	for _, child := range children {
		if !c.showHidden && strings.HasPrefix(child.Name(), ".") {
			continue
		}
		entry := files.FromOSDirEntry(child)
		if child.Type()&fs.ModeSymlink != 0 {
			entry = c.resolveLink(ctx, entry)
		}
		entries = append(entries, entry)
	}
	c.dir.SetChildren(entries)
	c.log.WithField("path", c.dir.String()).Debugf("listed %d entries", len(entries))
	return c.Entries()
}

func (c *Controller) readDir(ctx context.Context, dirPath string) ([]os.DirEntry, error) {
	fi, err := c.store.Stat(ctx, dirPath)
	if err != nil {
		return nil, err
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("%s: %w", dirPath, files.ErrNotADirectory)
	}
	return c.store.ReadDir(ctx, dirPath)
}

func (c *Controller) lookup(ctx context.Context, name string) (files.DirEntry, bool) {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		c.setError(fmt.Errorf("%w: %q", errInvalidEntryName, name))
		return files.DirEntry{}, false
	}
	dir := c.current()
	if entry, ok := dir.Child(name); ok {
		return entry, true
	}
	fi, err := c.store.Stat(ctx, dir.ChildPath(name))
	if err != nil {
		c.setError(err)
		return files.DirEntry{}, false
	}
	return files.NewDirEntry(name, fi.IsDir()), true
}

// current is the last listing when it is of the current path, otherwise an empty one.
func (c *Controller) current() *files.DirContext {
	dirPath := fsutils.ExpandHome(c.state.CurrentPath)
	if c.dir != nil && c.dir.Path() == dirPath {
		return c.dir
	}
	return files.NewDirContext(dirPath, nil)
}

// resolveLink takes the kind of a symlink from its target. A dangling link stays a file.
func (c *Controller) resolveLink(ctx context.Context, entry files.DirEntry) files.DirEntry {
	fi, err := c.store.Stat(ctx, c.dir.ChildPath(entry.Name()))
	if err != nil {
		c.log.WithError(err).WithField("name", entry.Name()).Debug("dangling link")
		return entry
	}
	return files.NewDirEntry(entry.Name(), fi.IsDir(), files.Size(fi.Size()), files.ModTime(fi.ModTime()))
}

func (c *Controller) setError(err error) {
	c.lastErr = files.Classify(err)
	c.log.WithError(err).Debug("absorbed error")
}

func (c *Controller) clearContent() {
	c.content, c.contentName = "", ""
}
