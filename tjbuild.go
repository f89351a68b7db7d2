// tjbuild.go
package tjbuild

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/turbojpeg-go/tjbuild/pkg/binding"
	"github.com/turbojpeg-go/tjbuild/pkg/buildenv"
	"github.com/turbojpeg-go/tjbuild/pkg/core"
	"github.com/turbojpeg-go/tjbuild/pkg/directive"
	"github.com/turbojpeg-go/tjbuild/pkg/library"
	"github.com/turbojpeg-go/tjbuild/pkg/platform"
)

// Re-export core types for convenience
type (
	Config       = core.Config
	Capability   = core.Capability
	Capabilities = core.Capabilities
	Library      = library.Library
	Directive    = directive.Directive
)

// Re-export capability constants
const (
	CapVendorBuild = core.CapVendorBuild
	CapPkgConfig   = core.CapPkgConfig
	CapBindgen     = core.CapBindgen
)

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return core.DefaultConfig()
}

// DefaultCapabilities returns the full capability set
func DefaultCapabilities() Capabilities {
	return core.DefaultCapabilities()
}

// Result is the outcome of a full build-configuration run
type Result struct {
	// Library is the resolved library description
	Library *Library

	// BindingFile is the path of the binding source written into the
	// output directory
	BindingFile string

	// Directives are the build directives emitted along the way
	Directives []Directive
}

// Builder runs the two resolution stages: locate or build libturbojpeg,
// then copy or generate the binding file
type Builder struct {
	config   *core.Config
	caps     core.Capabilities
	provider buildenv.Provider
	runner   core.Runner
	platform *platform.Platform
}

// NewBuilder creates a builder. A nil config, capability set, provider or
// runner falls back to the defaults (process environment, os/exec).
func NewBuilder(config *core.Config, caps core.Capabilities, provider buildenv.Provider, runner core.Runner) (*Builder, error) {
	if config == nil {
		config = core.DefaultConfig()
	}
	if caps == nil {
		caps = core.DefaultCapabilities()
	}
	if provider == nil {
		provider = buildenv.OS()
	}
	if runner == nil {
		runner = &core.ExecRunner{Logger: config.Logger}
	}

	// An explicit TARGET pins the triple; otherwise it is derived from the host
	triple, _ := provider.Lookup("TARGET")
	plat, err := platform.Detect(triple)
	if err != nil {
		return nil, fmt.Errorf("detecting target platform: %w", err)
	}

	return &Builder{
		config:   config,
		caps:     caps,
		provider: provider,
		runner:   runner,
		platform: plat,
	}, nil
}

// Platform returns the target platform the builder resolved
func (b *Builder) Platform() *platform.Platform {
	return b.platform
}

// Run performs library resolution followed by binding resolution. The
// returned result carries the directives emitted up to the point of failure,
// so callers can still surface diagnostics when a stage fails.
func (b *Builder) Run(ctx context.Context) (*Result, error) {
	emitter := directive.NewEmitter()
	env := buildenv.New(b.provider, b.platform, emitter)

	lib, err := b.resolveLibrary(ctx, env, emitter)
	if err != nil {
		return &Result{Directives: emitter.Directives()}, err
	}

	bindingFile, err := b.resolveBinding(ctx, env, emitter, lib)
	if err != nil {
		return &Result{Library: lib, Directives: emitter.Directives()}, err
	}

	if err := b.writeCgoPreamble(emitter); err != nil {
		return &Result{Library: lib, BindingFile: bindingFile, Directives: emitter.Directives()}, err
	}

	return &Result{
		Library:     lib,
		BindingFile: bindingFile,
		Directives:  emitter.Directives(),
	}, nil
}

// ResolveLibrary runs stage one only, returning the library description and
// the directives it emitted
func (b *Builder) ResolveLibrary(ctx context.Context) (*Library, []Directive, error) {
	emitter := directive.NewEmitter()
	env := buildenv.New(b.provider, b.platform, emitter)

	lib, err := b.resolveLibrary(ctx, env, emitter)
	return lib, emitter.Directives(), err
}

func (b *Builder) resolveLibrary(ctx context.Context, env *buildenv.Accessor, emitter *directive.Emitter) (*Library, error) {
	resolver := library.NewResolver(env, emitter, b.caps, b.config, b.runner)
	lib, err := resolver.Resolve(ctx)
	if err != nil {
		return nil, &Error{Op: "resolving library", Err: err}
	}
	return lib, nil
}

func (b *Builder) resolveBinding(ctx context.Context, env *buildenv.Accessor, emitter *directive.Emitter, lib *Library) (string, error) {
	resolver := binding.NewResolver(env, emitter, b.caps, b.config, b.runner, b.platform)
	path, err := resolver.Resolve(ctx, lib)
	if err != nil {
		return "", &Error{Op: "resolving bindings", Err: err}
	}
	return path, nil
}

// writeCgoPreamble writes the link flags as a #cgo snippet next to the
// binding file, for consumers that paste the flags above their cgo import
func (b *Builder) writeCgoPreamble(emitter *directive.Emitter) error {
	preamble := directive.CgoPreamble(emitter.Directives())
	if preamble == "" {
		return nil
	}

	path := filepath.Join(b.config.OutDir, "cgo_preamble.txt")
	if err := os.WriteFile(path, []byte(preamble), 0644); err != nil {
		return &Error{Op: "writing cgo preamble", Err: err}
	}
	return nil
}
