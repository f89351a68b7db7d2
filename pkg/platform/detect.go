// pkg/platform/detect.go
package platform

import (
	"fmt"
	"runtime"
	"strings"
)

// Platform represents the build target platform
type Platform struct {
	OS     string // linux, darwin, windows
	Arch   string // amd64, arm64, 386, arm
	Triple string // e.g. x86_64-unknown-linux-gnu
}

// Detect detects the platform the build targets. An explicit triple (from a
// TARGET variable or a flag) takes precedence over the host platform.
func Detect(triple string) (*Platform, error) {
	if triple != "" {
		return FromTriple(triple), nil
	}
	return FromGo(runtime.GOOS, runtime.GOARCH)
}

// FromGo maps a GOOS/GOARCH pair to a target triple
func FromGo(goos, goarch string) (*Platform, error) {
	arch, ok := tripleArch[goarch]
	if !ok {
		return nil, fmt.Errorf("unsupported architecture: %s", goarch)
	}

	var triple string
	switch goos {
	case "linux":
		suffix := "gnu"
		if goarch == "arm" {
			suffix = "gnueabihf"
		}
		triple = fmt.Sprintf("%s-unknown-linux-%s", arch, suffix)
	case "darwin":
		triple = fmt.Sprintf("%s-apple-darwin", arch)
	case "windows":
		triple = fmt.Sprintf("%s-pc-windows-gnu", arch)
	default:
		return nil, fmt.Errorf("unsupported operating system: %s", goos)
	}

	return &Platform{OS: goos, Arch: goarch, Triple: triple}, nil
}

// FromTriple builds a Platform from an explicit target triple. The triple is
// trusted as-is; OS and Arch are best-effort decompositions for display.
func FromTriple(triple string) *Platform {
	p := &Platform{Triple: triple}

	parts := strings.Split(triple, "-")
	if len(parts) > 0 {
		p.Arch = parts[0]
	}
	for _, part := range parts[1:] {
		switch part {
		case "linux", "darwin", "windows":
			p.OS = part
		}
	}

	return p
}

// EnvPrefix returns the triple uppercased with dashes replaced by
// underscores, used to namespace environment variables per target
func (p *Platform) EnvPrefix() string {
	return strings.ToUpper(strings.ReplaceAll(p.Triple, "-", "_"))
}

// String returns a string representation of the platform
func (p *Platform) String() string {
	return p.Triple
}

var tripleArch = map[string]string{
	"amd64": "x86_64",
	"arm64": "aarch64",
	"386":   "i686",
	"arm":   "armv7",
}
