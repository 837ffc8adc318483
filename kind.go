package lodestar

import (
	"fmt"
	"os"
	"strings"
)

// Kind selects how much discovery the environment performs: full workspace
// discovery, standalone-only, or none at all.
type Kind int

const (
	// KindWorkspace is a multi-package workspace; discovery locates the
	// workspace root and expects a [workspace] table.
	KindWorkspace Kind = iota
	// KindStandalone is a single detached package; discovery runs but no
	// workspace table is expected.
	KindStandalone
	// KindLibrary disables filesystem discovery entirely. Used when imported
	// as a dependency; only caller-supplied values apply.
	KindLibrary
)

// DetectKind derives the kind from build-provided environment variables:
// CARGO_WORKSPACE_DIR present means Workspace, otherwise CARGO_MANIFEST_DIR
// present means Standalone, otherwise Library.
func DetectKind() Kind {
	if os.Getenv("CARGO_WORKSPACE_DIR") != "" {
		return KindWorkspace
	}
	if os.Getenv("CARGO_MANIFEST_DIR") != "" {
		return KindStandalone
	}
	return KindLibrary
}

// ParseKind converts a string to a Kind, case-insensitively. Accepts the
// aliases "binary"/"bin" for standalone and "lib" for library.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "workspace":
		return KindWorkspace, nil
	case "standalone", "binary", "bin":
		return KindStandalone, nil
	case "library", "lib":
		return KindLibrary, nil
	default:
		return KindLibrary, fmt.Errorf("invalid environment kind %q: expected workspace, standalone, or library", s)
	}
}

func (k Kind) String() string {
	switch k {
	case KindWorkspace:
		return "workspace"
	case KindStandalone:
		return "standalone"
	default:
		return "library"
	}
}

// IsWorkspace reports whether this is workspace mode.
func (k Kind) IsWorkspace() bool { return k == KindWorkspace }

// IsStandalone reports whether this is standalone mode.
func (k Kind) IsStandalone() bool { return k == KindStandalone }

// IsLibrary reports whether this is library mode.
func (k Kind) IsLibrary() bool { return k == KindLibrary }

// ShouldDiscover reports whether filesystem discovery runs for this kind.
// Only library mode opts out.
func (k Kind) ShouldDiscover() bool { return k != KindLibrary }
