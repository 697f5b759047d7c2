// Package profile provides optional runtime profiling for the sharutils
// tools.
//
// It integrates [github.com/pkg/profile] behind the "pprof" build tag.
// When built without the tag (the default), all operations are no-ops with
// zero runtime overhead. When built with the tag, a profiling mode and
// output directory may be selected through the SHARUTILS_PPROF and
// SHARUTILS_PPROF_DIR environment variables read by the cli package.
//
// Use [Modes] to retrieve the list of supported modes programmatically,
// and go tool pprof to analyze the written profiles.
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
