// pkg/core/capabilities.go
package core

// Capability names a strategy that may or may not be compiled into / enabled
// for a given invocation. The original feature-flag gating is replaced by a
// runtime capability set, so a disabled strategy is ordinary validation
// rather than a build-time hole.
type Capability string

const (
	// CapVendorBuild enables building libjpeg-turbo from the bundled source
	CapVendorBuild Capability = "vendor-build"
	// CapPkgConfig enables probing the system pkg-config registry
	CapPkgConfig Capability = "pkg-config"
	// CapBindgen enables the header-parsing binding generator
	CapBindgen Capability = "bindgen"
)

// Capabilities is the set of enabled strategies
type Capabilities map[Capability]bool

// DefaultCapabilities returns the full capability set
func DefaultCapabilities() Capabilities {
	return Capabilities{
		CapVendorBuild: true,
		CapPkgConfig:   true,
		CapBindgen:     true,
	}
}

// Enabled reports whether the capability is in the set
func (c Capabilities) Enabled(cap Capability) bool {
	return c[cap]
}
