package browser

import (
	"sync/atomic"

	"github.com/datatug/pathview/pkg/files/osfile"
	"github.com/datatug/pathview/pkg/logging"
	"github.com/datatug/pathview/pkg/navigation"
	"github.com/datatug/pathview/pkg/viewer"
	"github.com/datatug/pathview/pkg/watch"
	"github.com/rivo/tview"
)

// Config is built from command line flags.
type Config struct {
	StartDir   string
	ShowHidden bool
	// Watch refreshes the listing when the displayed directory changes.
	Watch bool
	// MaxFileSize caps how many bytes of a file are shown; 0 shows everything.
	MaxFileSize int
}

var newWatcher = func(onChange func(dir string)) (dirWatcher, error) {
	w, err := watch.New(onChange)
	if err != nil {
		return nil, err
	}
	return w, nil
}

type dirWatcher interface {
	DirWatcher
	Start() error
	Close() error
}

// SetupApp builds the browser and sets it as the application root.
// The returned func releases resources and must be called after app.Run returns.
func SetupApp(app *tview.Application, cfg Config) (b *Browser, cleanup func()) {
	return setup(tviewApp{Application: app}, app, cfg)
}

func setup(a App, app *tview.Application, cfg Config) (b *Browser, cleanup func()) {
	log := logging.NewLogger("browser")
	store := osfile.NewStore()
	fileViewer := viewer.New(store,
		viewer.WithMaxSize(cfg.MaxFileSize),
		viewer.WithLogger(logging.NewLogger("viewer")),
	)
	// exited is read by the watcher goroutine, so no updates are queued for a stopped app.
	var exited atomic.Bool
	ctrl := navigation.NewController(store, cfg.StartDir,
		navigation.WithViewer(fileViewer),
		navigation.WithShowHidden(cfg.ShowHidden),
		navigation.WithOnExit(func() { exited.Store(true) }),
	)

	options := []Option{WithViewer(fileViewer)}
	cleanup = func() {}

	if cfg.Watch {
		var w dirWatcher
		var err error
		w, err = newWatcher(func(string) {
			if exited.Load() {
				return
			}
			a.QueueUpdateDraw(func() {
				if b != nil {
					b.Refresh()
				}
			})
		})
		if err == nil {
			if err = w.Start(); err != nil {
				_ = w.Close()
			}
		}
		if err != nil {
			log.WithError(err).Warn("directory watching disabled")
		} else {
			options = append(options, WithWatcher(w))
			cleanup = func() {
				_ = w.Close()
			}
		}
	}

	b = New(a, ctrl, options...)
	if app != nil {
		app.EnableMouse(true)
		app.SetRoot(b, true)
	}
	b.Start()
	return b, cleanup
}
