// pkg/platform/detect_test.go
package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromGo(t *testing.T) {
	tests := []struct {
		goos, goarch string
		want         string
	}{
		{"linux", "amd64", "x86_64-unknown-linux-gnu"},
		{"linux", "arm64", "aarch64-unknown-linux-gnu"},
		{"linux", "386", "i686-unknown-linux-gnu"},
		{"linux", "arm", "armv7-unknown-linux-gnueabihf"},
		{"darwin", "amd64", "x86_64-apple-darwin"},
		{"darwin", "arm64", "aarch64-apple-darwin"},
		{"windows", "amd64", "x86_64-pc-windows-gnu"},
		{"windows", "386", "i686-pc-windows-gnu"},
	}

	for _, tt := range tests {
		t.Run(tt.goos+"/"+tt.goarch, func(t *testing.T) {
			p, err := FromGo(tt.goos, tt.goarch)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Triple)
			assert.Equal(t, tt.goos, p.OS)
			assert.Equal(t, tt.goarch, p.Arch)
		})
	}
}

func TestFromGoUnsupported(t *testing.T) {
	_, err := FromGo("plan9", "amd64")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "plan9")

	_, err = FromGo("linux", "mips")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mips")
}

func TestFromTriple(t *testing.T) {
	p := FromTriple("aarch64-unknown-linux-musl")
	assert.Equal(t, "aarch64-unknown-linux-musl", p.Triple)
	assert.Equal(t, "aarch64", p.Arch)
	assert.Equal(t, "linux", p.OS)
}

func TestDetectExplicitTriple(t *testing.T) {
	p, err := Detect("x86_64-pc-windows-gnu")
	require.NoError(t, err)
	assert.Equal(t, "x86_64-pc-windows-gnu", p.Triple)
	assert.Equal(t, "windows", p.OS)
}

func TestDetectHost(t *testing.T) {
	p, err := Detect("")
	require.NoError(t, err)
	assert.NotEmpty(t, p.Triple)
}

func TestEnvPrefix(t *testing.T) {
	p := FromTriple("x86_64-unknown-linux-gnu")
	assert.Equal(t, "X86_64_UNKNOWN_LINUX_GNU", p.EnvPrefix())
}
