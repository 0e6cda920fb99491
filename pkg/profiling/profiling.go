// Package profiling wires the --cpuprofile and --memprofile flags to runtime/pprof.
package profiling

import (
	"io"
	"os"
	"runtime/pprof"
	"sync"
	"time"

	"github.com/datatug/pathview/pkg/logging"
)

var osCreate = os.Create
var pprofStartCPUProfile = pprof.StartCPUProfile
var pprofStopCPUProfile = pprof.StopCPUProfile
var pprofWriteHeapProfile = pprof.WriteHeapProfile

var memProfilingInterval = 30 * time.Second

var log = logging.NewLogger("profiling")

// DoCPUProfiling starts CPU profiling into fileName. Call the returned func to stop.
func DoCPUProfiling(fileName string) (stop func()) {
	f, err := osCreate(fileName)
	if err != nil {
		log.WithError(err).Error("could not create CPU profile")
		return func() {}
	}
	if err = pprofStartCPUProfile(f); err != nil {
		log.WithError(err).Error("could not start CPU profile")
		_ = f.Close()
		return func() {}
	}
	return func() {
		pprofStopCPUProfile()
		_ = f.Close()
	}
}

// DoMemProfiling writes a heap profile to fileName every memProfilingInterval
// and once more when the returned func is called.
func DoMemProfiling(fileName string) (stop func()) {
	interval := memProfilingInterval
	write := func() {
		f, err := osCreate(fileName)
		if err != nil {
			log.WithError(err).Error("could not create memory profile")
			return
		}
		defer func() {
			_ = f.Close()
		}()
		writeHeapProfile(f)
	}

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				write()
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(done)
			wg.Wait()
			write()
		})
	}
}

func writeHeapProfile(w io.Writer) {
	if err := pprofWriteHeapProfile(w); err != nil {
		log.WithError(err).Error("could not write memory profile")
	}
}
