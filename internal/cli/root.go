// internal/cli/root.go
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/turbojpeg-go/tjbuild/pkg/core"
)

var (
	cfgFile     string
	outDir      string
	projectRoot string
	target      string
	disabled    []string
	debug       bool
	config      *core.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "tjbuild",
	Short: "turbojpeg build configuration",
	Long: `tjbuild - build configuration for libturbojpeg bindings

Locates or builds libturbojpeg, then copies or generates the binding
source file into the build output directory. Strategy selection follows
TURBOJPEG_SOURCE and TURBOJPEG_BINDING, checked with a target-prefixed
variant first.`,
	Version: "0.1.0",
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/tjbuild/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&outDir, "out", "", "build output directory")
	rootCmd.PersistentFlags().StringVar(&projectRoot, "project-root", "", "directory holding wrapper.h, bindings and bundled source")
	rootCmd.PersistentFlags().StringVar(&target, "target", "", "target triple (overrides the TARGET variable)")
	rootCmd.PersistentFlags().StringSliceVar(&disabled, "disable", nil, "capabilities to disable (vendor-build, pkg-config, bindgen)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Add commands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(probeCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	var err error
	config, err = core.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		config = core.DefaultConfig()
	}

	// Override config with flags
	if outDir != "" {
		config.OutDir = outDir
	}
	if projectRoot != "" {
		config.ProjectRoot = projectRoot
	}
	if debug {
		config.Debug = true
	}
}

// capabilities applies the --disable flags to the default set
func capabilities() (core.Capabilities, error) {
	caps := core.DefaultCapabilities()
	for _, name := range disabled {
		c := core.Capability(name)
		if _, ok := caps[c]; !ok {
			return nil, fmt.Errorf("unknown capability %q, valid capabilities are: vendor-build, pkg-config, bindgen", name)
		}
		caps[c] = false
	}
	return caps, nil
}
