// pkg/binding/resolver.go
package binding

import (
	"context"
	"fmt"
	"strings"

	"github.com/turbojpeg-go/tjbuild/pkg/buildenv"
	"github.com/turbojpeg-go/tjbuild/pkg/core"
	"github.com/turbojpeg-go/tjbuild/pkg/directive"
	"github.com/turbojpeg-go/tjbuild/pkg/library"
	"github.com/turbojpeg-go/tjbuild/pkg/platform"
)

// Method selects how the binding file is obtained
type Method string

const (
	// MethodPregenerated copies the checked-in binding file
	MethodPregenerated Method = "pregenerated"
	// MethodBindgen generates the binding from the wrapper header
	MethodBindgen Method = "bindgen"
)

// Resolver produces the binding source file in the build output directory
type Resolver struct {
	env      *buildenv.Accessor
	emitter  *directive.Emitter
	caps     core.Capabilities
	config   *core.Config
	runner   core.Runner
	platform *platform.Platform
}

// NewResolver creates a binding resolver
func NewResolver(env *buildenv.Accessor, emitter *directive.Emitter, caps core.Capabilities, config *core.Config, runner core.Runner, plat *platform.Platform) *Resolver {
	return &Resolver{
		env:      env,
		emitter:  emitter,
		caps:     caps,
		config:   config,
		runner:   runner,
		platform: plat,
	}
}

// Resolve selects a method from TURBOJPEG_BINDING and runs it, returning the
// path of the binding file it wrote. With the variable unset, the generator
// is used when its capability is enabled, else the pregenerated copy.
func (r *Resolver) Resolve(ctx context.Context, lib *library.Library) (string, error) {
	method, ok := r.env.Get("TURBOJPEG_BINDING")
	if ok {
		switch {
		case strings.EqualFold(method, string(MethodPregenerated)):
			return r.copyPregenerated()
		case strings.EqualFold(method, string(MethodBindgen)):
			return r.generate(ctx, lib)
		default:
			return "", fmt.Errorf("%w: TURBOJPEG_BINDING=%q, supported values are:\n"+
				"- 'pregenerated' to use the pregenerated bindings,\n"+
				"- 'bindgen' to generate the bindings with the header-parsing generator",
				core.ErrUnknownSelector, method)
		}
	}

	if r.caps.Enabled(core.CapBindgen) {
		return r.generate(ctx, lib)
	}
	return r.copyPregenerated()
}
