package browser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/stretchr/testify/require"
)

type fakeApp struct {
	focused tview.Primitive
	stopped int
	queued  int
}

func (a *fakeApp) QueueUpdateDraw(f func()) {
	a.queued++
	f()
}

func (a *fakeApp) SetFocus(p tview.Primitive) {
	a.focused = p
}

func (a *fakeApp) Stop() {
	a.stopped++
}

type fakeWatcher struct {
	dirs     []string
	onChange func(string)
	started  bool
	closed   bool
	startErr error
}

func (w *fakeWatcher) Watch(dir string) error {
	w.dirs = append(w.dirs, dir)
	return nil
}

func (w *fakeWatcher) Start() error {
	w.started = true
	return w.startErr
}

func (w *fakeWatcher) Close() error {
	w.closed = true
	return nil
}

// newTestTree mirrors the layout the window is usually exercised with.
func newTestTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "test_subdir"), 0755))
	require.NoError(t, os.Mkdir(filepath.Join(root, "empty_dir"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "test_file.txt"), []byte("Hello, world!"), 0644))
	return root
}

func newTestBrowser(t *testing.T, startDir string) (*Browser, *fakeApp) {
	t.Helper()
	app := &fakeApp{}
	b, cleanup := setup(app, nil, Config{StartDir: startDir, ShowHidden: true})
	t.Cleanup(cleanup)
	return b, app
}

func press(p tview.Primitive, key tcell.Key) {
	p.InputHandler()(tcell.NewEventKey(key, 0, tcell.ModNone), func(tview.Primitive) {})
}

func selectEntry(t *testing.T, b *Browser, name string) {
	t.Helper()
	for i, e := range b.entries {
		if e.Name() == name {
			b.list.SetCurrentItem(i)
			return
		}
	}
	t.Fatalf("entry %q not found", name)
}

func newSimScreen(t *testing.T, width, height int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("failed to init simulation screen: %v", err)
	}
	s.SetSize(width, height)
	return s
}

func readLine(screen tcell.Screen, y, width int) string {
	var sb strings.Builder
	for x := 0; x < width; x++ {
		str, _, _ := screen.Get(x, y)
		if str == "" {
			sb.WriteRune(' ')
			continue
		}
		sb.WriteString(str)
	}
	return sb.String()
}
