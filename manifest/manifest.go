// Package manifest reads and writes workspace manifests (Cargo.toml).
//
// Manifests are handled as generic node trees: tables are map[string]any,
// arrays are []any, and leaves are the scalar types produced by TOML
// decoding. This keeps the package agnostic to manifest sections it does not
// understand — unknown keys survive a read/modify/write cycle untouched.
package manifest

import (
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/finchley/lodestar/errdefs"
)

// FileName is the conventional manifest file name.
const FileName = "Cargo.toml"

// workspaceMinSize is the fast-reject threshold for IsWorkspace: no plausible
// workspace manifest is smaller than this.
const workspaceMinSize = 50

// Table is a manifest node tree rooted at a table.
type Table map[string]any

// Metadata is the name/version/description triple extracted from a manifest.
// All fields are always present; missing manifest entries become empty
// strings.
type Metadata struct {
	Name        string
	Version     string
	Description string
}

// IsWorkspace reports whether the file at path is a workspace-root manifest.
//
// This runs on every candidate directory during root location, so it is a
// string scan rather than a full parse: the file must contain the literal
// token "[workspace]" and at least one of "members" or "resolver". Files
// smaller than 50 bytes are rejected without reading the content. Any I/O
// failure is reported as "not a workspace".
func IsWorkspace(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.Size() < workspaceMinSize {
		return false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}

	contents := string(data)
	if !strings.Contains(contents, "[workspace]") {
		return false
	}
	return strings.Contains(contents, "members") || strings.Contains(contents, "resolver")
}

// Read parses the manifest at path into a node tree.
func Read(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errdefs.ConfigNotFound(path, "create a manifest or point discovery at a workspace root")
		}
		return nil, errdefs.IO(path, err)
	}

	var tree Table
	if err := toml.Unmarshal(data, &tree); err != nil {
		return nil, errdefs.InvalidManifest(path, err)
	}
	return tree, nil
}

// ReadMetadata reads the manifest at path and extracts metadata from the
// appropriate section: [workspace.package] for workspace roots, [package]
// otherwise. Missing fields become empty strings. The boolean is false when
// the file cannot be read or parsed; discovery callers substitute defaults.
func ReadMetadata(path string) (Metadata, bool) {
	tree, err := Read(path)
	if err != nil {
		return Metadata{}, false
	}

	section := tree.Table("workspace").Table("package")
	if section == nil {
		section = tree.Table("package")
	}
	if section == nil {
		// A workspace root without [workspace.package] still counts as
		// present; every field falls back to empty.
		if tree.Table("workspace") != nil {
			return Metadata{}, true
		}
		return Metadata{}, false
	}

	return Metadata{
		Name:        section.String("name"),
		Version:     section.String("version"),
		Description: section.String("description"),
	}, true
}

// WriteTable serializes a node tree and writes it to path atomically
// (temp file + rename).
func WriteTable(path string, tree Table) error {
	data, err := toml.Marshal(tree)
	if err != nil {
		return errdefs.InvalidManifest(path, err)
	}
	if len(data) > 0 && data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return errdefs.IO(tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return errdefs.IO(path, err)
	}
	return nil
}

// Table returns the sub-table at key, or nil when absent or not a table.
func (t Table) Table(key string) Table {
	if t == nil {
		return nil
	}
	switch v := t[key].(type) {
	case map[string]any:
		return Table(v)
	case Table:
		return v
	default:
		return nil
	}
}

// String returns the string value at key, or "" when absent or not a string.
func (t Table) String(key string) string {
	if t == nil {
		return ""
	}
	s, _ := t[key].(string)
	return s
}

// Strings returns the array of strings at key. Non-string elements are
// skipped.
func (t Table) Strings(key string) []string {
	if t == nil {
		return nil
	}
	arr, ok := t[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(arr))
	for _, v := range arr {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Path returns the manifest path for a directory.
func Path(dir string) string {
	return filepath.Join(dir, FileName)
}
