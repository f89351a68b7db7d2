// pkg/buildenv/buildenv.go
package buildenv

import (
	"fmt"
	"os"
	"strings"

	"github.com/turbojpeg-go/tjbuild/pkg/directive"
	"github.com/turbojpeg-go/tjbuild/pkg/platform"
)

// Provider supplies named configuration values. The process environment is
// the usual provider; tests inject a Map instead.
type Provider interface {
	Lookup(name string) (string, bool)
}

// Map is a Provider backed by a plain map
type Map map[string]string

// Lookup returns the value for name
func (m Map) Lookup(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

// Overlay returns a Provider that consults overrides before base, letting
// command-line flags shadow the process environment
func Overlay(base Provider, overrides Map) Provider {
	return overlayProvider{base: base, overrides: overrides}
}

type overlayProvider struct {
	base      Provider
	overrides Map
}

func (o overlayProvider) Lookup(name string) (string, bool) {
	if v, ok := o.overrides.Lookup(name); ok {
		return v, true
	}
	return o.base.Lookup(name)
}

type osProvider struct{}

func (osProvider) Lookup(name string) (string, bool) {
	return os.LookupEnv(name)
}

// OS returns a Provider backed by the process environment
func OS() Provider {
	return osProvider{}
}

// Accessor reads configuration values the target-aware way: the
// target-prefixed variant of a name is checked before the bare name, and
// every checked name is registered as a rebuild trigger with a diagnostic
// line recording whether it was set.
type Accessor struct {
	provider Provider
	platform *platform.Platform
	emitter  *directive.Emitter
}

// New creates an accessor for the given provider and target platform
func New(provider Provider, plat *platform.Platform, emitter *directive.Emitter) *Accessor {
	return &Accessor{
		provider: provider,
		platform: plat,
		emitter:  emitter,
	}
}

// Get reads name, preferring the target-prefixed variant
// (e.g. X86_64_UNKNOWN_LINUX_GNU_TURBOJPEG_SOURCE over TURBOJPEG_SOURCE)
func (a *Accessor) Get(name string) (string, bool) {
	prefixed := a.platform.EnvPrefix() + "_" + name
	if v, ok := a.lookup(prefixed); ok {
		return v, true
	}
	return a.lookup(name)
}

// Bool reads name as a boolean. Truthy: "", 1, yes, true, on.
// Falsy: 0, no, false, off. Case-insensitive. The second return is false
// when the variable is unset.
func (a *Accessor) Bool(name string) (bool, bool, error) {
	value, ok := a.Get(name)
	if !ok {
		return false, false, nil
	}

	for _, v := range []string{"", "1", "yes", "true", "on"} {
		if strings.EqualFold(value, v) {
			return true, true, nil
		}
	}
	for _, v := range []string{"0", "no", "false", "off"} {
		if strings.EqualFold(value, v) {
			return false, true, nil
		}
	}

	return false, false, fmt.Errorf(
		"variable %s has value %q, expected empty or boolean (one of: \"\", 1, yes, true, on, 0, no, false, off)",
		name, value)
}

func (a *Accessor) lookup(name string) (string, bool) {
	value, ok := a.provider.Lookup(name)
	a.emitter.RerunEnv(name)

	if ok {
		a.emitter.Diagnosticf("%s = %s", name, value)
	} else {
		a.emitter.Diagnosticf("%s unset", name)
	}

	return value, ok
}
