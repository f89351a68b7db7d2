// pkg/binding/copy.go
package binding

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// copyPregenerated copies the checked-in binding file into the output
// directory verbatim
func (r *Resolver) copyPregenerated() (string, error) {
	r.emitter.Diagnosticf("Using pregenerated bindings")

	src := filepath.Join(r.config.ProjectRoot, r.config.PregeneratedFile)
	dst := filepath.Join(r.config.OutDir, r.config.BindingFile)

	if err := os.MkdirAll(r.config.OutDir, 0755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	in, err := os.Open(src)
	if err != nil {
		return "", fmt.Errorf("opening pregenerated bindings: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return "", fmt.Errorf("copying bindings to %s: %w", dst, err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("writing %s: %w", dst, err)
	}

	r.emitter.RerunFile(src)
	return dst, nil
}
