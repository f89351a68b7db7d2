// pkg/library/types.go
package library

// Source selects where the library comes from
type Source string

const (
	// SourceVendor builds libjpeg-turbo from the bundled source
	SourceVendor Source = "vendor"
	// SourcePkgConfig finds an installed library through pkg-config
	SourcePkgConfig Source = "pkg-config"
	// SourceExplicit uses TURBOJPEG_LIB_DIR and TURBOJPEG_INCLUDE_DIR
	SourceExplicit Source = "explicit"
)

// Library describes a located or freshly built copy of libturbojpeg: the
// include paths the binding generator needs and the preprocessor defines the
// library was configured with. A define with a nil value is a bare -DNAME.
//
// The description is built by exactly one resolution strategy and consumed
// once by the binding resolver.
type Library struct {
	IncludePaths []string
	Defines      map[string]*string
}
