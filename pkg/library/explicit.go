// pkg/library/explicit.go
package library

import (
	"fmt"

	"github.com/turbojpeg-go/tjbuild/pkg/core"
)

// findExplicit reads the library and include directories from the
// environment. TURBOJPEG_LIB_PATH and TURBOJPEG_INCLUDE_PATH are legacy
// aliases kept for compatibility.
func (r *Resolver) findExplicit() (*Library, error) {
	r.emitter.Diagnosticf("Using TURBOJPEG_LIB_DIR and TURBOJPEG_INCLUDE_DIR to find turbojpeg")

	libDir, ok := r.env.Get("TURBOJPEG_LIB_DIR")
	if !ok {
		libDir, ok = r.env.Get("TURBOJPEG_LIB_PATH")
	}
	if !ok {
		return nil, fmt.Errorf("%w: TURBOJPEG_SOURCE is set to 'explicit', but TURBOJPEG_LIB_DIR is not set",
			core.ErrMissingVariable)
	}

	includeDir, ok := r.env.Get("TURBOJPEG_INCLUDE_DIR")
	if !ok {
		includeDir, ok = r.env.Get("TURBOJPEG_INCLUDE_PATH")
	}
	if !ok {
		return nil, fmt.Errorf("%w: TURBOJPEG_SOURCE is set to 'explicit', but TURBOJPEG_INCLUDE_DIR is not set",
			core.ErrMissingVariable)
	}

	static, err := r.staticLink(true)
	if err != nil {
		return nil, err
	}

	r.emitter.LinkSearch(libDir)
	r.emitter.LinkLib("turbojpeg", static)

	if static {
		if lib := FindStaticLibrary(libDir, "turbojpeg"); lib == nil {
			r.emitter.Diagnosticf("warning: no static turbojpeg library found in %s", libDir)
		}
	}

	return &Library{
		IncludePaths: []string{includeDir},
		Defines:      make(map[string]*string),
	}, nil
}
