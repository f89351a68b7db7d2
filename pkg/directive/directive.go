// pkg/directive/directive.go
package directive

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// Kind identifies the type of a build directive
type Kind string

const (
	// KindLinkSearch adds a directory to the linker search path
	KindLinkSearch Kind = "link-search"
	// KindLinkLib requests linking a library
	KindLinkLib Kind = "link-lib"
	// KindRerunEnv registers an environment variable as a rebuild trigger
	KindRerunEnv Kind = "rerun-if-env-changed"
	// KindRerunFile registers a file as a rebuild trigger
	KindRerunFile Kind = "rerun-if-changed"
	// KindDiagnostic is a human-readable diagnostic line
	KindDiagnostic Kind = "diagnostic"
)

// Directive is a single build-system directive record
type Directive struct {
	Kind    Kind
	Payload string
}

// Emitter collects directives produced during resolution
type Emitter struct {
	directives []Directive
}

// NewEmitter creates an empty emitter
func NewEmitter() *Emitter {
	return &Emitter{}
}

// Emit appends a directive
func (e *Emitter) Emit(kind Kind, payload string) {
	e.directives = append(e.directives, Directive{Kind: kind, Payload: payload})
}

// LinkSearch emits a linker search-path directive for dir
func (e *Emitter) LinkSearch(dir string) {
	e.Emit(KindLinkSearch, "native="+dir)
}

// LinkLib emits a link directive for lib. Static selects static linking.
func (e *Emitter) LinkLib(lib string, static bool) {
	if static {
		e.Emit(KindLinkLib, "static="+lib)
	} else {
		e.Emit(KindLinkLib, "dylib="+lib)
	}
}

// RerunEnv registers an environment variable as a rebuild trigger
func (e *Emitter) RerunEnv(name string) {
	e.Emit(KindRerunEnv, name)
}

// RerunFile registers a file path as a rebuild trigger
func (e *Emitter) RerunFile(path string) {
	e.Emit(KindRerunFile, path)
}

// Diagnosticf emits a formatted diagnostic line
func (e *Emitter) Diagnosticf(format string, args ...interface{}) {
	e.Emit(KindDiagnostic, fmt.Sprintf(format, args...))
}

// Directives returns the collected directives in emission order
func (e *Emitter) Directives() []Directive {
	return e.directives
}

// Filter returns the directives of the given kind, in emission order
func (e *Emitter) Filter(kind Kind) []Directive {
	var out []Directive
	for _, d := range e.directives {
		if d.Kind == kind {
			out = append(out, d)
		}
	}
	return out
}

// Render writes the directives as text lines, one per directive.
// Diagnostics render bare; everything else renders as kind=payload.
func Render(w io.Writer, directives []Directive) error {
	for _, d := range directives {
		var line string
		if d.Kind == KindDiagnostic {
			line = d.Payload
		} else {
			line = fmt.Sprintf("tjbuild:%s=%s", d.Kind, d.Payload)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("writing directive: %w", err)
		}
	}
	return nil
}

// CgoPreamble renders the link directives as a #cgo comment block that a
// consumer can paste above its cgo import. Search paths and libraries are
// deduplicated, preserving first-seen order of flags.
func CgoPreamble(directives []Directive) string {
	var flags []string
	seen := make(map[string]bool)

	add := func(flag string) {
		if !seen[flag] {
			seen[flag] = true
			flags = append(flags, flag)
		}
	}

	for _, d := range directives {
		switch d.Kind {
		case KindLinkSearch:
			add("-L" + strings.TrimPrefix(d.Payload, "native="))
		case KindLinkLib:
			payload := d.Payload
			payload = strings.TrimPrefix(payload, "static=")
			payload = strings.TrimPrefix(payload, "dylib=")
			add("-l" + payload)
		}
	}

	if len(flags) == 0 {
		return ""
	}
	return "// #cgo LDFLAGS: " + strings.Join(flags, " ") + "\n"
}

// EnvNames returns the sorted set of environment variables registered as
// rebuild triggers
func EnvNames(directives []Directive) []string {
	set := make(map[string]bool)
	for _, d := range directives {
		if d.Kind == KindRerunEnv {
			set[d.Payload] = true
		}
	}
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
