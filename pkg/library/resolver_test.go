// pkg/library/resolver_test.go
package library

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turbojpeg-go/tjbuild/pkg/buildenv"
	"github.com/turbojpeg-go/tjbuild/pkg/core"
	"github.com/turbojpeg-go/tjbuild/pkg/directive"
	"github.com/turbojpeg-go/tjbuild/pkg/platform"
)

const linuxTriple = "x86_64-unknown-linux-gnu"

// fakeRunner records commands and serves canned stdout keyed by the full
// command line
type fakeRunner struct {
	calls   [][]string
	outputs map[string]string
	errs    map[string]error
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) error {
	_, err := f.Output(ctx, name, args...)
	return err
}

func (f *fakeRunner) Output(ctx context.Context, name string, args ...string) (string, error) {
	call := append([]string{name}, args...)
	f.calls = append(f.calls, call)

	key := strings.Join(call, " ")
	if err, ok := f.errs[key]; ok {
		return "", err
	}
	return f.outputs[key], nil
}

func (f *fakeRunner) commands() []string {
	var out []string
	for _, call := range f.calls {
		out = append(out, strings.Join(call, " "))
	}
	return out
}

type fixture struct {
	resolver *Resolver
	emitter  *directive.Emitter
	runner   *fakeRunner
	config   *core.Config
}

func newFixture(t *testing.T, env buildenv.Map, caps core.Capabilities) *fixture {
	t.Helper()

	emitter := directive.NewEmitter()
	accessor := buildenv.New(env, platform.FromTriple(linuxTriple), emitter)
	runner := &fakeRunner{outputs: map[string]string{}, errs: map[string]error{}}

	config := core.DefaultConfig()
	config.ProjectRoot = t.TempDir()
	config.OutDir = t.TempDir()

	return &fixture{
		resolver: NewResolver(accessor, emitter, caps, config, runner),
		emitter:  emitter,
		runner:   runner,
		config:   config,
	}
}

func allCaps() core.Capabilities {
	return core.DefaultCapabilities()
}

func onlyCaps(caps ...core.Capability) core.Capabilities {
	set := core.Capabilities{}
	for _, c := range caps {
		set[c] = true
	}
	return set
}

func TestResolveUnknownSelector(t *testing.T) {
	f := newFixture(t, buildenv.Map{"TURBOJPEG_SOURCE": "homebrew"}, allCaps())

	_, err := f.resolver.Resolve(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrUnknownSelector))
	assert.Contains(t, err.Error(), "'vendor'")
	assert.Contains(t, err.Error(), "'pkg-config'")
	assert.Contains(t, err.Error(), "'explicit'")
}

func TestResolveExplicit(t *testing.T) {
	f := newFixture(t, buildenv.Map{
		"TURBOJPEG_SOURCE":      "explicit",
		"TURBOJPEG_LIB_DIR":     "/x",
		"TURBOJPEG_INCLUDE_DIR": "/y",
	}, allCaps())

	lib, err := f.resolver.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"/y"}, lib.IncludePaths)
	assert.Empty(t, lib.Defines)

	searches := f.emitter.Filter(directive.KindLinkSearch)
	require.Len(t, searches, 1)
	assert.Equal(t, "native=/x", searches[0].Payload)

	links := f.emitter.Filter(directive.KindLinkLib)
	require.Len(t, links, 1)
	assert.Equal(t, "static=turbojpeg", links[0].Payload)
}

func TestResolveExplicitLegacyAliases(t *testing.T) {
	f := newFixture(t, buildenv.Map{
		"TURBOJPEG_SOURCE":       "explicit",
		"TURBOJPEG_LIB_PATH":     "/legacy/lib",
		"TURBOJPEG_INCLUDE_PATH": "/legacy/include",
	}, allCaps())

	lib, err := f.resolver.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"/legacy/include"}, lib.IncludePaths)

	searches := f.emitter.Filter(directive.KindLinkSearch)
	require.Len(t, searches, 1)
	assert.Equal(t, "native=/legacy/lib", searches[0].Payload)
}

func TestResolveExplicitMissingLibDir(t *testing.T) {
	f := newFixture(t, buildenv.Map{
		"TURBOJPEG_SOURCE":      "explicit",
		"TURBOJPEG_INCLUDE_DIR": "/y",
	}, allCaps())

	_, err := f.resolver.Resolve(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrMissingVariable))
	assert.Contains(t, err.Error(), "TURBOJPEG_LIB_DIR")
}

func TestResolveExplicitMissingIncludeDir(t *testing.T) {
	f := newFixture(t, buildenv.Map{
		"TURBOJPEG_SOURCE":  "explicit",
		"TURBOJPEG_LIB_DIR": "/x",
	}, allCaps())

	_, err := f.resolver.Resolve(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrMissingVariable))
	assert.Contains(t, err.Error(), "TURBOJPEG_INCLUDE_DIR")
}

func TestResolveExplicitDynamicLink(t *testing.T) {
	f := newFixture(t, buildenv.Map{
		"TURBOJPEG_SOURCE":      "explicit",
		"TURBOJPEG_LIB_DIR":     "/x",
		"TURBOJPEG_INCLUDE_DIR": "/y",
		"TURBOJPEG_STATIC":      "0",
	}, allCaps())

	_, err := f.resolver.Resolve(context.Background())
	require.NoError(t, err)

	links := f.emitter.Filter(directive.KindLinkLib)
	require.Len(t, links, 1)
	assert.Equal(t, "dylib=turbojpeg", links[0].Payload)
}

func TestResolveExplicitBadStaticValue(t *testing.T) {
	f := newFixture(t, buildenv.Map{
		"TURBOJPEG_SOURCE":      "explicit",
		"TURBOJPEG_LIB_DIR":     "/x",
		"TURBOJPEG_INCLUDE_DIR": "/y",
		"TURBOJPEG_STATIC":      "maybe",
	}, allCaps())

	_, err := f.resolver.Resolve(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TURBOJPEG_STATIC")
}

func TestResolvePrefixedSelectorWins(t *testing.T) {
	f := newFixture(t, buildenv.Map{
		"TURBOJPEG_SOURCE":                          "vendor",
		"X86_64_UNKNOWN_LINUX_GNU_TURBOJPEG_SOURCE": "explicit",
		"TURBOJPEG_LIB_DIR":                         "/x",
		"TURBOJPEG_INCLUDE_DIR":                     "/y",
	}, allCaps())

	lib, err := f.resolver.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"/y"}, lib.IncludePaths)
	assert.Empty(t, f.runner.calls) // no cmake ran
}

func TestResolveSelectorCaseInsensitive(t *testing.T) {
	for _, selector := range []string{"EXPLICIT", "Explicit"} {
		f := newFixture(t, buildenv.Map{
			"TURBOJPEG_SOURCE":      selector,
			"TURBOJPEG_LIB_DIR":     "/x",
			"TURBOJPEG_INCLUDE_DIR": "/y",
		}, allCaps())

		_, err := f.resolver.Resolve(context.Background())
		require.NoError(t, err, selector)
	}
}

func TestResolvePkgConfigAliases(t *testing.T) {
	for _, selector := range []string{"pkg-config", "pkgconfig", "pkgconf", "PKGCONF"} {
		f := newFixture(t, buildenv.Map{"TURBOJPEG_SOURCE": selector}, allCaps())
		f.runner.outputs["pkg-config --cflags libturbojpeg"] = "-I/usr/include/turbojpeg"
		f.runner.outputs["pkg-config --libs libturbojpeg"] = "-lturbojpeg"

		lib, err := f.resolver.Resolve(context.Background())
		require.NoError(t, err, selector)
		assert.Equal(t, []string{"/usr/include/turbojpeg"}, lib.IncludePaths)
	}
}

func TestResolvePkgConfigParsesFlags(t *testing.T) {
	f := newFixture(t, buildenv.Map{"TURBOJPEG_SOURCE": "pkg-config"}, allCaps())
	f.runner.outputs["pkg-config --cflags libturbojpeg"] = "-I/usr/include/turbojpeg -I/opt/include -DTJ_STATIC -DPIC=1"
	f.runner.outputs["pkg-config --libs libturbojpeg"] = "-L/usr/lib/x86_64-linux-gnu -lturbojpeg"

	lib, err := f.resolver.Resolve(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"/usr/include/turbojpeg", "/opt/include"}, lib.IncludePaths)
	require.Contains(t, lib.Defines, "TJ_STATIC")
	assert.Nil(t, lib.Defines["TJ_STATIC"])
	require.Contains(t, lib.Defines, "PIC")
	require.NotNil(t, lib.Defines["PIC"])
	assert.Equal(t, "1", *lib.Defines["PIC"])

	searches := f.emitter.Filter(directive.KindLinkSearch)
	require.Len(t, searches, 1)
	assert.Equal(t, "native=/usr/lib/x86_64-linux-gnu", searches[0].Payload)

	links := f.emitter.Filter(directive.KindLinkLib)
	require.Len(t, links, 1)
	assert.Equal(t, "dylib=turbojpeg", links[0].Payload)
}

func TestResolvePkgConfigVersionProbe(t *testing.T) {
	f := newFixture(t, buildenv.Map{"TURBOJPEG_SOURCE": "pkg-config"}, allCaps())
	f.runner.errs["pkg-config --atleast-version=2.0 libturbojpeg"] = errors.New("exit status 1")

	_, err := f.resolver.Resolve(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrProbeFailed))
	assert.Contains(t, err.Error(), "libturbojpeg")
	assert.Contains(t, err.Error(), "2.0")
}

func TestResolvePkgConfigDisabled(t *testing.T) {
	f := newFixture(t, buildenv.Map{"TURBOJPEG_SOURCE": "pkg-config"}, onlyCaps(core.CapVendorBuild))

	_, err := f.resolver.Resolve(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrCapabilityDisabled))
	assert.Contains(t, err.Error(), "TURBOJPEG_SOURCE")
}

func TestResolveVendorDisabled(t *testing.T) {
	f := newFixture(t, buildenv.Map{"TURBOJPEG_SOURCE": "vendor"}, onlyCaps(core.CapPkgConfig))

	_, err := f.resolver.Resolve(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrCapabilityDisabled))
}

func TestResolveVendorBuild(t *testing.T) {
	f := newFixture(t, buildenv.Map{"TURBOJPEG_SOURCE": "vendor"}, allCaps())
	sourceDir := filepath.Join(f.config.ProjectRoot, f.config.VendorSourceDir)
	require.NoError(t, os.MkdirAll(sourceDir, 0755))

	lib, err := f.resolver.Resolve(context.Background())
	require.NoError(t, err)

	installDir := filepath.Join(f.config.OutDir, "libjpeg-turbo")
	assert.Equal(t, []string{filepath.Join(installDir, "include")}, lib.IncludePaths)

	commands := f.runner.commands()
	require.Len(t, commands, 3)
	assert.Contains(t, commands[0], "cmake -S "+sourceDir)
	assert.Contains(t, commands[0], "-DCMAKE_INSTALL_PREFIX="+installDir)
	assert.Contains(t, commands[1], "cmake --build")
	assert.Contains(t, commands[2], "cmake --install")

	searches := f.emitter.Filter(directive.KindLinkSearch)
	require.Len(t, searches, 1)
	assert.Equal(t, "native="+filepath.Join(installDir, "lib"), searches[0].Payload)

	links := f.emitter.Filter(directive.KindLinkLib)
	require.Len(t, links, 1)
	assert.Equal(t, "static=turbojpeg", links[0].Payload)
}

func TestResolveVendorMissingSource(t *testing.T) {
	f := newFixture(t, buildenv.Map{"TURBOJPEG_SOURCE": "vendor"}, allCaps())

	_, err := f.resolver.Resolve(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vendor source not found")
}

func TestResolveDefaultPrecedence(t *testing.T) {
	// vendor-build > pkg-config > explicit when the selector is unset
	t.Run("vendor wins", func(t *testing.T) {
		f := newFixture(t, buildenv.Map{}, allCaps())
		require.NoError(t, os.MkdirAll(filepath.Join(f.config.ProjectRoot, f.config.VendorSourceDir), 0755))

		_, err := f.resolver.Resolve(context.Background())
		require.NoError(t, err)
		require.NotEmpty(t, f.runner.calls)
		assert.Equal(t, "cmake", f.runner.calls[0][0])
	})

	t.Run("pkg-config next", func(t *testing.T) {
		f := newFixture(t, buildenv.Map{}, onlyCaps(core.CapPkgConfig, core.CapBindgen))
		f.runner.outputs["pkg-config --cflags libturbojpeg"] = "-I/usr/include"
		f.runner.outputs["pkg-config --libs libturbojpeg"] = "-lturbojpeg"

		_, err := f.resolver.Resolve(context.Background())
		require.NoError(t, err)
		require.NotEmpty(t, f.runner.calls)
		assert.Equal(t, "pkg-config", f.runner.calls[0][0])
	})

	t.Run("explicit last", func(t *testing.T) {
		f := newFixture(t, buildenv.Map{
			"TURBOJPEG_LIB_DIR":     "/x",
			"TURBOJPEG_INCLUDE_DIR": "/y",
		}, onlyCaps(core.CapBindgen))

		lib, err := f.resolver.Resolve(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"/y"}, lib.IncludePaths)
		assert.Empty(t, f.runner.calls)
	})
}
