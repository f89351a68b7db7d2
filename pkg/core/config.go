// pkg/core/config.go
package core

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds tjbuild configuration
type Config struct {
	// OutDir is where the binding file and build artifacts are written
	OutDir string `yaml:"out_dir"`

	// ProjectRoot is the directory holding wrapper.h, the pregenerated
	// binding file and the bundled library source
	ProjectRoot string `yaml:"project_root"`

	// PkgConfigName is the package name probed in the pkg-config registry
	PkgConfigName string `yaml:"pkg_config_name"`

	// MinVersion is the minimum library version accepted by the probe
	MinVersion string `yaml:"min_version"`

	// Bindgen is the header-parsing generator command
	Bindgen string `yaml:"bindgen"`

	// WrapperHeader is the header handed to the generator, relative to
	// ProjectRoot
	WrapperHeader string `yaml:"wrapper_header"`

	// PregeneratedFile is the checked-in binding file, relative to ProjectRoot
	PregeneratedFile string `yaml:"pregenerated_file"`

	// BindingFile is the name of the binding file written into OutDir
	BindingFile string `yaml:"binding_file"`

	// VendorSourceDir is the bundled library source tree, relative to
	// ProjectRoot
	VendorSourceDir string `yaml:"vendor_source_dir"`

	// VendorArchive is the bundled source archive, relative to ProjectRoot,
	// extracted when VendorSourceDir does not exist
	VendorArchive string `yaml:"vendor_archive"`

	// VendorArchiveSHA256 is the archive's sha256 digest in nix base32;
	// empty skips verification
	VendorArchiveSHA256 string `yaml:"vendor_archive_sha256"`

	// Debug enables debug logging
	Debug bool `yaml:"debug"`

	// Logger for custom logging
	Logger *log.Logger `yaml:"-"`
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		OutDir:           "build",
		ProjectRoot:      ".",
		PkgConfigName:    "libturbojpeg",
		MinVersion:       "2.0",
		Bindgen:          "bindgen",
		WrapperHeader:    "wrapper.h",
		PregeneratedFile: filepath.Join("bindings", "turbojpeg.go"),
		BindingFile:      "turbojpeg.go",
		VendorSourceDir:  "libjpeg-turbo",
		VendorArchive:    filepath.Join("third_party", "libjpeg-turbo.tar.xz"),
	}
}

// LoadConfig loads configuration from file
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = filepath.Join(home, ".config", "tjbuild", "config.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to file
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		path = filepath.Join(home, ".config", "tjbuild", "config.yaml")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}
