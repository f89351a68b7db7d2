// pkg/library/cmake.go
package library

import (
	"context"
	"fmt"
	"os"

	"github.com/turbojpeg-go/tjbuild/pkg/core"
)

// cmakeBuild drives a configure/build/install lifecycle for a CMake source
// tree, installing into a prefix under the build output directory
type cmakeBuild struct {
	runner     core.Runner
	sourceDir  string
	buildDir   string
	installDir string
}

func newCMakeBuild(runner core.Runner, sourceDir, buildDir, installDir string) *cmakeBuild {
	return &cmakeBuild{
		runner:     runner,
		sourceDir:  sourceDir,
		buildDir:   buildDir,
		installDir: installDir,
	}
}

func (c *cmakeBuild) Configure(ctx context.Context) error {
	if err := os.MkdirAll(c.buildDir, 0755); err != nil {
		return fmt.Errorf("creating build directory: %w", err)
	}

	args := []string{
		"-S", c.sourceDir,
		"-B", c.buildDir,
		"-DCMAKE_BUILD_TYPE=Release",
		"-DCMAKE_INSTALL_PREFIX=" + c.installDir,
		// libjpeg-turbo installs into lib64 on some distros; pin it
		"-DCMAKE_INSTALL_LIBDIR=lib",
		"-DENABLE_SHARED=OFF",
		"-DENABLE_STATIC=ON",
	}
	if err := c.runner.Run(ctx, "cmake", args...); err != nil {
		return fmt.Errorf("configuring %s: %w", c.sourceDir, err)
	}
	return nil
}

func (c *cmakeBuild) Build(ctx context.Context) error {
	if err := c.runner.Run(ctx, "cmake", "--build", c.buildDir, "--config", "Release"); err != nil {
		return fmt.Errorf("building %s: %w", c.sourceDir, err)
	}
	return nil
}

func (c *cmakeBuild) Install(ctx context.Context) error {
	if err := c.runner.Run(ctx, "cmake", "--install", c.buildDir); err != nil {
		return fmt.Errorf("installing to %s: %w", c.installDir, err)
	}
	return nil
}

// OutputDir is where artifacts land after Install
func (c *cmakeBuild) OutputDir() string {
	return c.installDir
}
