//go:build cargoprobe

package discover

import (
	"encoding/json"
	"os/exec"
)

// probeRoot asks the build tool for the workspace root. Correct but slow
// (50-100ms): it spawns `cargo metadata` and waits for it synchronously,
// consuming stdout fully before returning.
func probeRoot() (string, bool) {
	out, err := exec.Command(
		"cargo", "metadata",
		"--no-deps",
		"--format-version", "1",
	).Output()
	if err != nil {
		return "", false
	}

	var meta struct {
		WorkspaceRoot string `json:"workspace_root"`
	}
	if err := json.Unmarshal(out, &meta); err != nil {
		return "", false
	}
	return meta.WorkspaceRoot, meta.WorkspaceRoot != ""
}
