// internal/cli/probe.go
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/turbojpeg-go/tjbuild/pkg/directive"
)

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Resolve the library without producing bindings",
	Long: `Run the library resolution stage only and print the resolved
include paths, defines and build directives.`,
	Args: cobra.NoArgs,
	RunE: runProbe,
}

func runProbe(cmd *cobra.Command, args []string) error {
	builder, err := newBuilder()
	if err != nil {
		return err
	}

	lib, directives, resolveErr := builder.ResolveLibrary(context.Background())
	if err := directive.Render(os.Stdout, directives); err != nil {
		return err
	}
	if resolveErr != nil {
		return resolveErr
	}

	fmt.Printf("Target: %s\n", builder.Platform())
	for _, path := range lib.IncludePaths {
		fmt.Printf("Include path: %s\n", path)
	}
	for name, value := range lib.Defines {
		if value != nil {
			fmt.Printf("Define: %s=%s\n", name, *value)
		} else {
			fmt.Printf("Define: %s\n", name)
		}
	}

	return nil
}
