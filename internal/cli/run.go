// internal/cli/run.go
package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/turbojpeg-go/tjbuild"
	"github.com/turbojpeg-go/tjbuild/pkg/buildenv"
	"github.com/turbojpeg-go/tjbuild/pkg/directive"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Resolve the library and produce the binding file",
	Long: `Run both resolution stages: locate or build libturbojpeg, then copy
or generate the binding source file into the output directory.

Examples:
  tjbuild run
  tjbuild run --out build --project-root .
  TURBOJPEG_SOURCE=explicit TURBOJPEG_LIB_DIR=/opt/tj/lib TURBOJPEG_INCLUDE_DIR=/opt/tj/include tjbuild run
  tjbuild run --disable=vendor-build,bindgen`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	builder, err := newBuilder()
	if err != nil {
		return err
	}

	result, runErr := builder.Run(context.Background())
	if result != nil {
		if err := directive.Render(os.Stdout, result.Directives); err != nil {
			return err
		}
	}
	if runErr != nil {
		return runErr
	}

	fmt.Printf("Binding file: %s\n", result.BindingFile)
	return nil
}

// newBuilder wires flags and config into a builder
func newBuilder() (*tjbuild.Builder, error) {
	caps, err := capabilities()
	if err != nil {
		return nil, err
	}

	if config.Debug && config.Logger == nil {
		config.Logger = log.New(os.Stderr, "tjbuild: ", 0)
	}

	provider := buildenv.OS()
	if target != "" {
		provider = buildenv.Overlay(provider, buildenv.Map{"TARGET": target})
	}

	return tjbuild.NewBuilder(config, caps, provider, nil)
}
