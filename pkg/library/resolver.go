// pkg/library/resolver.go
package library

import (
	"context"
	"fmt"
	"strings"

	"github.com/turbojpeg-go/tjbuild/pkg/buildenv"
	"github.com/turbojpeg-go/tjbuild/pkg/core"
	"github.com/turbojpeg-go/tjbuild/pkg/directive"
)

// Resolver locates or builds libturbojpeg
type Resolver struct {
	env     *buildenv.Accessor
	emitter *directive.Emitter
	caps    core.Capabilities
	config  *core.Config
	runner  core.Runner
}

// NewResolver creates a library resolver
func NewResolver(env *buildenv.Accessor, emitter *directive.Emitter, caps core.Capabilities, config *core.Config, runner core.Runner) *Resolver {
	return &Resolver{
		env:     env,
		emitter: emitter,
		caps:    caps,
		config:  config,
		runner:  runner,
	}
}

// Resolve selects a strategy from TURBOJPEG_SOURCE and runs it. With the
// variable unset, the enabled capabilities decide: a vendor build is
// preferred over a pkg-config probe, which is preferred over explicit
// directories.
func (r *Resolver) Resolve(ctx context.Context) (*Library, error) {
	source, ok := r.env.Get("TURBOJPEG_SOURCE")
	if ok {
		switch {
		case strings.EqualFold(source, string(SourceVendor)):
			return r.buildVendor(ctx)
		case strings.EqualFold(source, string(SourcePkgConfig)),
			strings.EqualFold(source, "pkgconfig"),
			strings.EqualFold(source, "pkgconf"):
			return r.findPkgConfig(ctx)
		case strings.EqualFold(source, string(SourceExplicit)):
			return r.findExplicit()
		default:
			return nil, fmt.Errorf("%w: TURBOJPEG_SOURCE=%q, supported values are:\n"+
				"- 'vendor' to build the library from the bundled source,\n"+
				"- 'pkg-config' to find the library using pkg-config,\n"+
				"- 'explicit' to use TURBOJPEG_LIB_DIR and TURBOJPEG_INCLUDE_DIR",
				core.ErrUnknownSelector, source)
		}
	}

	if r.caps.Enabled(core.CapVendorBuild) {
		return r.buildVendor(ctx)
	}
	if r.caps.Enabled(core.CapPkgConfig) {
		return r.findPkgConfig(ctx)
	}
	return r.findExplicit()
}

// staticLink reads TURBOJPEG_STATIC, falling back to the strategy's default
// when unset. Vendor builds and explicit directories link statically by
// default; pkg-config results link the way the system copy is installed.
func (r *Resolver) staticLink(def bool) (bool, error) {
	value, ok, err := r.env.Bool("TURBOJPEG_STATIC")
	if err != nil {
		return false, err
	}
	if !ok {
		return def, nil
	}
	return value, nil
}
