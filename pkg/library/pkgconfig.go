// pkg/library/pkgconfig.go
package library

import (
	"context"
	"fmt"
	"strings"

	"github.com/turbojpeg-go/tjbuild/pkg/core"
)

// findPkgConfig probes the system pkg-config registry for libturbojpeg
func (r *Resolver) findPkgConfig(ctx context.Context) (*Library, error) {
	r.emitter.Diagnosticf("Using pkg-config to find %s", r.config.PkgConfigName)

	if !r.caps.Enabled(core.CapPkgConfig) {
		return nil, fmt.Errorf("%w: trying to find turbojpeg using pkg-config, but the %q capability is disabled; "+
			"enable it or use TURBOJPEG_SOURCE to select another source for the library",
			core.ErrCapabilityDisabled, core.CapPkgConfig)
	}

	name := r.config.PkgConfigName

	if _, err := r.runner.Output(ctx, "pkg-config", "--atleast-version="+r.config.MinVersion, name); err != nil {
		return nil, fmt.Errorf("%w: could not find %s (>= %s) using pkg-config: %w",
			core.ErrProbeFailed, name, r.config.MinVersion, err)
	}

	cflags, err := r.runner.Output(ctx, "pkg-config", "--cflags", name)
	if err != nil {
		return nil, fmt.Errorf("%w: querying cflags for %s: %w", core.ErrProbeFailed, name, err)
	}

	libs, err := r.runner.Output(ctx, "pkg-config", "--libs", name)
	if err != nil {
		return nil, fmt.Errorf("%w: querying libs for %s: %w", core.ErrProbeFailed, name, err)
	}

	static, err := r.staticLink(false)
	if err != nil {
		return nil, err
	}

	lib := parseCflags(cflags)
	for _, flag := range strings.Fields(libs) {
		switch {
		case strings.HasPrefix(flag, "-L"):
			r.emitter.LinkSearch(strings.TrimPrefix(flag, "-L"))
		case strings.HasPrefix(flag, "-l"):
			r.emitter.LinkLib(strings.TrimPrefix(flag, "-l"), static)
		}
	}

	return lib, nil
}

// parseCflags turns pkg-config --cflags output into include paths and defines
func parseCflags(cflags string) *Library {
	lib := &Library{Defines: make(map[string]*string)}

	for _, flag := range strings.Fields(cflags) {
		switch {
		case strings.HasPrefix(flag, "-I"):
			lib.IncludePaths = append(lib.IncludePaths, strings.TrimPrefix(flag, "-I"))
		case strings.HasPrefix(flag, "-D"):
			define := strings.TrimPrefix(flag, "-D")
			if name, value, found := strings.Cut(define, "="); found {
				v := value
				lib.Defines[name] = &v
			} else {
				lib.Defines[define] = nil
			}
		}
	}

	return lib
}
