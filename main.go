package main

import (
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/datatug/pathview/pkg/browser"
	"github.com/datatug/pathview/pkg/logging"
	"github.com/datatug/pathview/pkg/profiling"
	"github.com/rivo/tview"
	"github.com/spf13/cobra"
)

type options struct {
	showHidden  bool
	watch       bool
	maxFileSize int
	logFile     string
	logLevel    string
	logJSON     bool
	cpuProfile  string
	memProfile  string
	pprofAddr   string
}

var httpListenAndServe = http.ListenAndServe
var osExit = os.Exit
var osGetwd = os.Getwd

func main() {
	if err := newRootCommand().Execute(); err != nil {
		osExit(1)
	}
}

func newRootCommand() *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:   "pathview [dir]",
		Short: "Browse directories and view text files in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if o.maxFileSize < 0 {
				return fmt.Errorf("--max-file-size must not be negative: %d", o.maxFileSize)
			}
			startDir := ""
			if len(args) > 0 {
				startDir = args[0]
			}
			return runApp(o, startDir)
		},
		SilenceUsage: true,
	}
	flags := cmd.Flags()
	flags.BoolVar(&o.showHidden, "hidden", true, "list entries whose names start with a dot")
	flags.BoolVar(&o.watch, "watch", false, "refresh the listing when the directory changes")
	flags.IntVar(&o.maxFileSize, "max-file-size", 0, "show at most this many bytes of a file (0 = no limit)")
	flags.StringVar(&o.logFile, "log-file", "", "write logs to `file`")
	flags.StringVar(&o.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	flags.BoolVar(&o.logJSON, "log-json", false, "write logs as JSON")
	flags.StringVar(&o.cpuProfile, "cpuprofile", "", "write cpu profile to `file`")
	flags.StringVar(&o.memProfile, "memprofile", "", "write memory profile to `file`")
	flags.StringVar(&o.pprofAddr, "pprof", "", "start pprof http server on `address` (e.g. localhost:6060)")
	return cmd
}

func runApp(o options, startDir string) (err error) {
	if err = logging.Configure(logging.Config{Level: o.logLevel, File: o.logFile, JSON: o.logJSON}); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
	}
	defer logging.Close()
	log := logging.NewLogger("main")

	if startDir == "" {
		if startDir, err = osGetwd(); err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
	}

	if o.pprofAddr != "" {
		go func() {
			if err := httpListenAndServe(o.pprofAddr, nil); err != nil {
				log.WithError(err).Error("pprof server error")
			}
		}()
	}
	if o.cpuProfile != "" {
		stopCPUProfiling := profiling.DoCPUProfiling(o.cpuProfile)
		defer stopCPUProfiling()
	}
	if o.memProfile != "" {
		stopMemProfiling := profiling.DoMemProfiling(o.memProfile)
		defer stopMemProfiling()
	}

	app := newApp()
	_, cleanup := setupApp(app, browser.Config{
		StartDir:    startDir,
		ShowHidden:  o.showHidden,
		Watch:       o.watch,
		MaxFileSize: o.maxFileSize,
	})
	defer cleanup()

	log.WithField("dir", startDir).Info("starting")
	return run(app)
}

var setupApp = browser.SetupApp

var newApp = tview.NewApplication

type application interface{ Run() error }

var run = func(app application) error {
	if err := app.Run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}
