package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/datatug/pathview/pkg/browser"
	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubApp replaces the seams that would start a terminal UI.
func stubApp(t *testing.T) (cfgs *[]browser.Config, runs *int) {
	t.Helper()
	oldRun, oldSetupApp := run, setupApp
	t.Cleanup(func() {
		run, setupApp = oldRun, oldSetupApp
	})
	cfgs = &[]browser.Config{}
	runs = new(int)
	setupApp = func(app *tview.Application, cfg browser.Config) (*browser.Browser, func()) {
		*cfgs = append(*cfgs, cfg)
		return nil, func() {}
	}
	run = func(app application) error {
		*runs++
		return nil
	}
	return cfgs, runs
}

func TestMainRoot(t *testing.T) {
	_, runs := stubApp(t)
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"pathview", t.TempDir()}

	main()

	assert.Equal(t, 1, *runs)
}

func TestMain_ExitsOnError(t *testing.T) {
	stubApp(t)
	oldArgs, oldExit := os.Args, osExit
	defer func() { os.Args, osExit = oldArgs, oldExit }()
	os.Args = []string{"pathview", "a", "b"}
	exitCode := -1
	osExit = func(code int) { exitCode = code }

	main()

	assert.Equal(t, 1, exitCode)
}

func TestRootCommand(t *testing.T) {
	t.Run("start_dir_and_flags", func(t *testing.T) {
		cfgs, _ := stubApp(t)
		dir := t.TempDir()
		cmd := newRootCommand()
		cmd.SetArgs([]string{dir, "--hidden=false", "--watch", "--max-file-size", "100"})
		require.NoError(t, cmd.Execute())
		require.Len(t, *cfgs, 1)
		assert.Equal(t, browser.Config{StartDir: dir, ShowHidden: false, Watch: true, MaxFileSize: 100}, (*cfgs)[0])
	})

	t.Run("defaults_to_working_dir", func(t *testing.T) {
		cfgs, _ := stubApp(t)
		wd, err := os.Getwd()
		require.NoError(t, err)
		cmd := newRootCommand()
		cmd.SetArgs(nil)
		require.NoError(t, cmd.Execute())
		require.Len(t, *cfgs, 1)
		assert.Equal(t, wd, (*cfgs)[0].StartDir)
		assert.True(t, (*cfgs)[0].ShowHidden)
	})

	t.Run("negative_max_file_size", func(t *testing.T) {
		cfgs, runs := stubApp(t)
		cmd := newRootCommand()
		cmd.SetArgs([]string{t.TempDir(), "--max-file-size=-5"})
		cmd.SetErr(io.Discard)
		err := cmd.Execute()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--max-file-size")
		assert.Empty(t, *cfgs)
		assert.Equal(t, 0, *runs)
	})

	t.Run("too_many_args", func(t *testing.T) {
		stubApp(t)
		cmd := newRootCommand()
		cmd.SetArgs([]string{"a", "b"})
		cmd.SetErr(io.Discard)
		assert.Error(t, cmd.Execute())
	})
}

func TestRunApp_GetwdError(t *testing.T) {
	stubApp(t)
	old := osGetwd
	defer func() { osGetwd = old }()
	osGetwd = func() (string, error) {
		return "", errors.New("gone")
	}
	err := runApp(options{}, "")
	assert.Error(t, err)
}

func TestRunApp_ProfilingAndLogging(t *testing.T) {
	_, runs := stubApp(t)
	oldListen := httpListenAndServe
	defer func() { httpListenAndServe = oldListen }()
	listened := make(chan string, 1)
	httpListenAndServe = func(addr string, handler http.Handler) error {
		listened <- addr
		return errors.New("not really listening")
	}

	dir := t.TempDir()
	err := runApp(options{
		cpuProfile: filepath.Join(dir, "cpu.prof"),
		memProfile: filepath.Join(dir, "mem.prof"),
		pprofAddr:  "localhost:0",
		logFile:    filepath.Join(dir, "pathview.log"),
		logLevel:   "debug",
		logJSON:    true,
	}, dir)
	require.NoError(t, err)
	assert.Equal(t, 1, *runs)
	assert.Equal(t, "localhost:0", <-listened)

	for _, name := range []string{"cpu.prof", "mem.prof", "pathview.log"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
	logData, err := os.ReadFile(filepath.Join(dir, "pathview.log"))
	require.NoError(t, err)
	assert.Contains(t, string(logData), `"msg":"starting"`)
}

type fakeApp struct {
	err error
}

func (f fakeApp) Run() error {
	if f.err == nil {
		return nil
	}
	return fmt.Errorf("app failed: %w", f.err)
}

func Test_run(t *testing.T) {
	oldStderr := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w
	defer func() {
		os.Stderr = oldStderr
	}()

	var expectedErr = errors.New("test error")
	err := run(fakeApp{err: expectedErr})
	assert.ErrorIs(t, err, expectedErr)
	assert.NoError(t, run(fakeApp{}))

	_ = w.Close()
	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	assert.Contains(t, buf.String(), expectedErr.Error())
}
