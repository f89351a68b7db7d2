// pkg/binding/generate.go
package binding

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/turbojpeg-go/tjbuild/pkg/core"
	"github.com/turbojpeg-go/tjbuild/pkg/library"
)

// generate invokes the header-parsing generator against the wrapper header,
// feeding it the target triple and the include paths and defines resolved in
// the library stage
func (r *Resolver) generate(ctx context.Context, lib *library.Library) (string, error) {
	r.emitter.Diagnosticf("Generating bindings using %s", r.config.Bindgen)

	if !r.caps.Enabled(core.CapBindgen) {
		return "", fmt.Errorf("%w: trying to generate bindings, but the %q capability is disabled; "+
			"enable it or use TURBOJPEG_BINDING to select another method to obtain the bindings",
			core.ErrCapabilityDisabled, core.CapBindgen)
	}

	if err := os.MkdirAll(r.config.OutDir, 0755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	wrapper := filepath.Join(r.config.ProjectRoot, r.config.WrapperHeader)
	out := filepath.Join(r.config.OutDir, r.config.BindingFile)
	r.emitter.RerunFile(wrapper)

	args := GeneratorArgs(wrapper, out, r.platform.Triple, lib)
	for _, path := range lib.IncludePaths {
		r.emitter.RerunFile(path)
	}

	if err := r.runner.Run(ctx, r.config.Bindgen, args...); err != nil {
		return "", fmt.Errorf("could not generate bindings: %w", err)
	}

	if _, err := os.Stat(out); err != nil {
		return "", fmt.Errorf("generator did not write %s: %w", out, err)
	}

	r.emitter.Diagnosticf("Generated bindings are stored in %s", out)
	return out, nil
}

// GeneratorArgs builds the generator command line: the wrapper header, the
// output path, then the clang-style target, include and define flags.
// Defines are sorted by name so invocations are reproducible.
func GeneratorArgs(wrapper, out, triple string, lib *library.Library) []string {
	args := []string{wrapper, "--output", out, "--", "-target", triple}

	for _, path := range lib.IncludePaths {
		args = append(args, "-I"+path)
	}

	names := make([]string, 0, len(lib.Defines))
	for name := range lib.Defines {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if value := lib.Defines[name]; value != nil {
			args = append(args, fmt.Sprintf("-D%s=%s", name, *value))
		} else {
			args = append(args, "-D"+name)
		}
	}

	return args
}
