// pkg/library/locate.go
package library

import (
	"os"
	"path/filepath"
	"runtime"
)

// FoundLibrary is a library file located on disk
type FoundLibrary struct {
	Name     string
	Path     string
	Type     string // file extension
	IsStatic bool
}

// FindStaticLibrary searches dir for a static library with the given name
// (e.g. libturbojpeg.a, or turbojpeg.lib on Windows)
func FindStaticLibrary(dir, name string) *FoundLibrary {
	for _, candidate := range staticCandidates(name) {
		fullPath := filepath.Join(dir, candidate)
		if fileExists(fullPath) {
			return &FoundLibrary{
				Name:     name,
				Path:     fullPath,
				Type:     filepath.Ext(candidate),
				IsStatic: true,
			}
		}
	}
	return nil
}

func staticCandidates(name string) []string {
	if runtime.GOOS == "windows" {
		return []string{name + ".lib", "lib" + name + ".a"}
	}
	return []string{"lib" + name + ".a"}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
