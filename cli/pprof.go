//go:build pprof

package cli

import (
	"log/slog"
	"os"

	"github.com/webzeppelin/rusty-sharutils/log"
	"github.com/webzeppelin/rusty-sharutils/profile"
)

// startProfiling begins profiling when the binary was built with the
// pprof tag and SHARUTILS_PPROF names a supported mode. The returned stop
// function is always safe to call.
//
//	SHARUTILS_PPROF      profiling mode (cpu, heap, mutex, ...)
//	SHARUTILS_PPROF_DIR  profile output directory
func startProfiling() (stop func()) {
	mode := os.Getenv("SHARUTILS_PPROF")
	if mode == "" {
		return func() {}
	}

	dir := os.Getenv("SHARUTILS_PPROF_DIR")

	log.Debug("pprof start",
		slog.String("mode", mode),
		slog.String("dir", dir),
	)

	cfg := profile.Default()
	cfg = profile.WithMode(mode)(cfg)
	cfg = profile.WithPath(dir)(cfg)
	cfg = profile.WithQuiet(true)(cfg)
	profiler := cfg.Start()

	return func() {
		log.Debug("pprof stop", slog.String("mode", mode))
		profiler.Stop()
	}
}
