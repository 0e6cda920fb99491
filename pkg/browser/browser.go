// Package browser is the terminal window of pathview.
// It only translates widget events into navigation events and redraws snapshots.
package browser

import (
	"context"
	"fmt"

	"github.com/datatug/pathview/pkg/files"
	"github.com/datatug/pathview/pkg/fsutils"
	"github.com/datatug/pathview/pkg/logging"
	"github.com/datatug/pathview/pkg/navigation"
	"github.com/datatug/pathview/pkg/viewer"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/sirupsen/logrus"
)

// DirWatcher is implemented by *watch.Watcher.
type DirWatcher interface {
	Watch(dir string) error
}

type Browser struct {
	*tview.Flex

	app    App
	ctrl   *navigation.Controller
	viewer *viewer.FileViewer
	log    *logrus.Entry

	pathInput *tview.InputField
	list      *tview.List
	content   *tview.TextView
	bottom    *bottom

	refreshButton *tview.Button
	backButton    *tview.Button
	upButton      *tview.Button
	exitButton    *tview.Button

	entries []files.DirEntry
	watcher DirWatcher
	visible bool
}

type Option func(b *Browser)

func WithWatcher(w DirWatcher) Option {
	return func(b *Browser) {
		b.watcher = w
	}
}

func WithViewer(v *viewer.FileViewer) Option {
	return func(b *Browser) {
		b.viewer = v
	}
}

func New(app App, ctrl *navigation.Controller, o ...Option) *Browser {
	b := &Browser{
		app:     app,
		ctrl:    ctrl,
		log:     logging.NewLogger("browser"),
		visible: true,
	}
	for _, opt := range o {
		opt(b)
	}
	if b.viewer == nil {
		b.viewer = viewer.New(nil)
	}
	b.createLayout()
	return b
}

func (b *Browser) createLayout() {
	b.pathInput = tview.NewInputField().
		SetLabel(fmt.Sprintf(" %s: ", b.ctrl.RootTitle())).
		SetDoneFunc(func(key tcell.Key) {
			if key == tcell.KeyEnter {
				b.submitPath()
			}
		})

	b.list = tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	b.list.SetBorder(true).SetTitle(" Entries ")

	b.content = tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetScrollable(true)
	b.content.SetBorder(true).SetTitle(" Content ")

	b.refreshButton = tview.NewButton("Refresh").SetSelectedFunc(b.submitPath)
	b.backButton = tview.NewButton("Back").SetSelectedFunc(func() {
		b.dispatch(navigation.EventBack, "")
	})
	b.upButton = tview.NewButton("Up").SetSelectedFunc(func() {
		b.dispatch(navigation.EventUp, "")
	})
	b.exitButton = tview.NewButton("Exit").SetSelectedFunc(func() {
		b.dispatch(navigation.EventExit, "")
	})

	b.bottom = newBottom([]MenuItem{
		{Region: "refresh", Title: "Refresh", HotKey: "F5", Action: b.submitPath},
		{Region: "back", Title: "Back", HotKey: "Bksp", Action: func() { b.dispatch(navigation.EventBack, "") }},
		{Region: "up", Title: "Up", HotKey: "Alt+↑", Action: func() { b.dispatch(navigation.EventUp, "") }},
		{Region: "path", Title: "Path", HotKey: "Alt+L", Action: func() { b.app.SetFocus(b.pathInput) }},
		{Region: "exit", Title: "Exit", HotKey: "Alt+X", Action: func() { b.dispatch(navigation.EventExit, "") }},
	})

	buttons := tview.NewFlex().
		AddItem(b.refreshButton, 0, 1, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(b.backButton, 0, 1, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(b.upButton, 0, 1, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(b.exitButton, 0, 1, false)

	panels := tview.NewFlex().
		AddItem(b.list, 0, 2, true).
		AddItem(b.content, 0, 3, false)

	b.Flex = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(b.pathInput, 1, 0, false).
		AddItem(panels, 0, 1, true).
		AddItem(buttons, 1, 0, false).
		AddItem(b.bottom, 1, 0, false)
	b.SetInputCapture(b.inputCapture)
}

func (b *Browser) inputCapture(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyF5, tcell.KeyCtrlR:
		b.submitPath()
		return nil
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if b.pathInput.HasFocus() {
			return event
		}
		b.dispatch(navigation.EventBack, "")
		return nil
	case tcell.KeyLeft:
		if event.Modifiers()&tcell.ModAlt != 0 {
			b.dispatch(navigation.EventBack, "")
			return nil
		}
	case tcell.KeyUp:
		if event.Modifiers()&tcell.ModAlt != 0 {
			b.dispatch(navigation.EventUp, "")
			return nil
		}
	case tcell.KeyRune:
		if event.Modifiers()&tcell.ModAlt != 0 {
			switch event.Rune() {
			case 'x', 'X':
				b.dispatch(navigation.EventExit, "")
				return nil
			case 'l', 'L':
				b.app.SetFocus(b.pathInput)
				return nil
			}
		}
	}
	return event
}

// Start lists the initial directory.
func (b *Browser) Start() {
	b.dispatch(navigation.EventRefresh, "")
	b.app.SetFocus(b.list)
}

// Refresh re-lists the current directory; used by the directory watcher.
// Unlike the Refresh button it ignores whatever is typed in the path field.
func (b *Browser) Refresh() {
	b.dispatch(navigation.EventRefresh, "")
}

// submitPath lists the path typed in the path field.
func (b *Browser) submitPath() {
	b.dispatch(navigation.EventPathEntered, b.pathInput.GetText())
}

// Visible reports whether the main view is still shown, i.e. Exit was not requested.
func (b *Browser) Visible() bool {
	return b.visible
}

func (b *Browser) Controller() *navigation.Controller {
	return b.ctrl
}

func (b *Browser) dispatch(event navigation.Event, arg string) {
	if !b.visible {
		return
	}
	b.log.WithField("event", string(event)).Debug(arg)
	snapshot := b.ctrl.Dispatch(context.Background(), event, arg)
	b.render(snapshot)
}

func (b *Browser) render(snapshot navigation.Snapshot) {
	if snapshot.Exited {
		b.visible = false
		if b.watcher != nil {
			_ = b.watcher.Watch("")
		}
		b.Flex.Clear()
		b.app.Stop()
		return
	}

	b.pathInput.SetText(snapshot.Path)
	b.renderEntries(snapshot.DirName, snapshot.Entries)

	if snapshot.ContentName == "" {
		b.content.SetTitle(" Content ")
		b.content.Clear()
	} else {
		b.content.SetTitle(b.contentTitle(snapshot))
		b.content.SetText(b.viewer.Highlight(snapshot.ContentName, snapshot.Content))
		b.content.ScrollToBeginning()
	}

	if b.watcher != nil {
		dir := fsutils.ExpandHome(snapshot.Path)
		if err := b.watcher.Watch(dir); err != nil {
			b.log.WithError(err).Debug("watch failed")
			_ = b.watcher.Watch("")
		}
	}
}

func (b *Browser) renderEntries(dirName string, entries []files.DirEntry) {
	current := ""
	if i := b.list.GetCurrentItem(); i >= 0 && i < len(b.entries) {
		current = b.entries[i].Name()
	}
	b.entries = entries
	b.list.Clear()
	if dirName == "" {
		dirName = "Entries"
	}
	b.list.SetTitle(fmt.Sprintf(" %s (%d) ", tview.Escape(dirName), len(entries)))
	for i, entry := range entries {
		name := entry.Name()
		text := fmt.Sprintf("[%s]%s[-]", EntryColor(name, entry.IsDir()).String(), tview.Escape(entry.String()))
		b.list.AddItem(text, "", 0, func() {
			b.dispatch(navigation.EventActivate, name)
		})
		if name == current {
			b.list.SetCurrentItem(i)
		}
	}
}

func (b *Browser) contentTitle(snapshot navigation.Snapshot) string {
	for _, entry := range snapshot.Entries {
		if entry.Name() != snapshot.ContentName {
			continue
		}
		if fi, err := entry.Info(); err == nil && fi != nil {
			return fmt.Sprintf(" %s · %s ", snapshot.ContentName, fsutils.GetSizeShortText(fi.Size()))
		}
	}
	return fmt.Sprintf(" %s ", snapshot.ContentName)
}

// EntryCount is the number of items in the directory list.
func (b *Browser) EntryCount() int {
	return b.list.GetItemCount()
}

// PathText is the text of the path field.
func (b *Browser) PathText() string {
	return b.pathInput.GetText()
}

// ContentText is the plain text shown in the content pane.
func (b *Browser) ContentText() string {
	return b.content.GetText(true)
}
