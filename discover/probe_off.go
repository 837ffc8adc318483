//go:build !cargoprobe

package discover

// probeRoot is disabled without the cargoprobe build tag; the subprocess
// probe is opt-in because it spawns the build tool.
func probeRoot() (string, bool) {
	return "", false
}
