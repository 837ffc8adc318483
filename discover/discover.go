// Package discover locates the workspace root directory for the running
// process.
//
// Discovery is a fold over an ordered chain of strategies; each strategy
// either produces a root or silently yields to the next. Unreadable or
// malformed manifests along the search path are treated as "not a workspace",
// never as failures — the chain always terminates and the final fallback
// always names a directory.
package discover

import (
	"os"
	"path/filepath"

	"github.com/finchley/lodestar/manifest"
)

// maxHops caps the upward walks. Without it a misconfigured environment can
// drive infinite ascent through symlink loops.
const maxHops = 10

// overrideVars are checked in order; the first one naming an existing
// directory wins and bypasses all other discovery.
var overrideVars = []string{
	"PROJECT_ROOT",
	"WORKSPACE_ROOT",
	"CARGO_WORKSPACE_DIR",
}

// FindRoot returns the workspace root directory. It never fails: when every
// strategy comes up empty it falls back to CARGO_MANIFEST_DIR, then to the
// current working directory, then to ".".
//
// Strategy order:
//  1. Explicit override via PROJECT_ROOT, WORKSPACE_ROOT, or
//     CARGO_WORKSPACE_DIR.
//  2. Walk up from CARGO_MANIFEST_DIR looking for a workspace manifest.
//  3. Walk up from the current directory, also accepting a manifest paired
//     with a crates/ child directory.
//  4. Cargo metadata probe (only with the cargoprobe build tag; spawns the
//     build tool, correct but slow).
//  5. CARGO_MANIFEST_DIR, else the current directory.
func FindRoot() string {
	for _, name := range overrideVars {
		if dir := os.Getenv(name); dir != "" {
			if info, err := os.Stat(dir); err == nil && info.IsDir() {
				return dir
			}
		}
	}

	if root, ok := walkFromManifestDir(); ok {
		return root
	}
	if root, ok := walkFromCurrentDir(); ok {
		return root
	}
	if root, ok := probeRoot(); ok {
		return root
	}

	if dir := os.Getenv("CARGO_MANIFEST_DIR"); dir != "" {
		return dir
	}
	if dir, err := os.Getwd(); err == nil {
		return dir
	}
	return "."
}

// walkFromManifestDir walks up from CARGO_MANIFEST_DIR, at most maxHops
// parents, looking for a directory whose manifest declares a workspace.
func walkFromManifestDir() (string, bool) {
	start := os.Getenv("CARGO_MANIFEST_DIR")
	if start == "" {
		return "", false
	}

	current := start
	for i := 0; i < maxHops; i++ {
		if manifest.IsWorkspace(manifest.Path(current)) {
			return current, true
		}
		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}
	return "", false
}

// walkFromCurrentDir walks up from the working directory. In addition to a
// workspace manifest it accepts a manifest alongside a crates/ child
// directory, a heuristic for workspaces that don't advertise cleanly.
func walkFromCurrentDir() (string, bool) {
	current, err := os.Getwd()
	if err != nil {
		return "", false
	}

	for i := 0; i < maxHops; i++ {
		cargoToml := manifest.Path(current)
		if _, err := os.Stat(cargoToml); err == nil {
			if manifest.IsWorkspace(cargoToml) {
				return current, true
			}
			if info, err := os.Stat(filepath.Join(current, "crates")); err == nil && info.IsDir() {
				return current, true
			}
		}
		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}
	return "", false
}
