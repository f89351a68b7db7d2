// pkg/library/vendor.go
package library

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/turbojpeg-go/tjbuild/pkg/core"
)

// buildVendor compiles libjpeg-turbo from the bundled source tree and links
// the produced static library. When the source tree is absent, the bundled
// .tar.xz archive is verified and unpacked first.
func (r *Resolver) buildVendor(ctx context.Context) (*Library, error) {
	r.emitter.Diagnosticf("Building turbojpeg from source")

	if !r.caps.Enabled(core.CapVendorBuild) {
		return nil, fmt.Errorf("%w: trying to build turbojpeg from source, but the %q capability is disabled; "+
			"enable it or use TURBOJPEG_SOURCE to select another source for the library",
			core.ErrCapabilityDisabled, core.CapVendorBuild)
	}

	sourceDir, err := r.vendorSource()
	if err != nil {
		return nil, err
	}

	installDir := filepath.Join(r.config.OutDir, "libjpeg-turbo")
	cm := newCMakeBuild(r.runner, sourceDir, filepath.Join(r.config.OutDir, "libjpeg-turbo-build"), installDir)

	if err := cm.Configure(ctx); err != nil {
		return nil, err
	}
	if err := cm.Build(ctx); err != nil {
		return nil, err
	}
	if err := cm.Install(ctx); err != nil {
		return nil, err
	}

	static, err := r.staticLink(true)
	if err != nil {
		return nil, err
	}

	libDir := filepath.Join(cm.OutputDir(), "lib")
	r.emitter.LinkSearch(libDir)
	r.emitter.LinkLib("turbojpeg", static)

	return &Library{
		IncludePaths: []string{filepath.Join(cm.OutputDir(), "include")},
		Defines:      make(map[string]*string),
	}, nil
}

// vendorSource returns the bundled source tree, unpacking the bundled
// archive when the tree is not checked out
func (r *Resolver) vendorSource() (string, error) {
	sourceDir := filepath.Join(r.config.ProjectRoot, r.config.VendorSourceDir)
	if info, err := os.Stat(sourceDir); err == nil && info.IsDir() {
		r.emitter.RerunFile(sourceDir)
		return sourceDir, nil
	}

	archive := filepath.Join(r.config.ProjectRoot, r.config.VendorArchive)
	if _, err := os.Stat(archive); err != nil {
		return "", fmt.Errorf("vendor source not found: neither %s nor %s exists", sourceDir, archive)
	}
	r.emitter.RerunFile(archive)

	if r.config.VendorArchiveSHA256 != "" {
		if err := verifyArchive(archive, r.config.VendorArchiveSHA256); err != nil {
			return "", err
		}
	}

	extractDir := filepath.Join(r.config.OutDir, "libjpeg-turbo-src")
	r.emitter.Diagnosticf("Extracting %s to %s", archive, extractDir)
	if err := extractTarXz(archive, extractDir); err != nil {
		return "", fmt.Errorf("extracting vendor source: %w", err)
	}

	return extractDir, nil
}
