package scaffold

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/finchley/lodestar/errdefs"
	"github.com/finchley/lodestar/manifest"
)

// Manager edits the membership of an existing workspace. It holds no state
// beyond the root path; every operation is a full read/modify/write of the
// workspace manifest.
type Manager struct {
	root string
}

// NewManager creates a manager for the workspace rooted at root.
func NewManager(root string) *Manager {
	return &Manager{root: root}
}

// Root returns the workspace root directory.
func (m *Manager) Root() string {
	return m.root
}

// CreateWorkspace creates parentDir/name with an empty workspace manifest
// ([workspace] with an empty members array and resolver "2") and returns the
// new workspace path.
func CreateWorkspace(name, parentDir string) (string, error) {
	wsDir := filepath.Join(parentDir, name)
	if err := os.MkdirAll(wsDir, 0o755); err != nil {
		return "", errdefs.IO(wsDir, err)
	}

	tree := manifest.Table{
		"workspace": map[string]any{
			"members":  []any{},
			"resolver": "2",
		},
	}
	if err := manifest.WriteTable(manifest.Path(wsDir), tree); err != nil {
		return "", err
	}

	slog.Info("created workspace", "name", name, "dir", wsDir)
	return wsDir, nil
}

// AddMember inserts relPath into workspace.members unless it is already
// present, then rewrites the manifest. Idempotent.
func (m *Manager) AddMember(relPath string) error {
	tree, members, err := m.readMembers()
	if err != nil {
		return err
	}

	for _, existing := range members {
		if existing == relPath {
			return nil
		}
	}

	raw := tree.Table("workspace")["members"].([]any)
	tree.Table("workspace")["members"] = append(raw, relPath)

	if err := manifest.WriteTable(manifest.Path(m.root), tree); err != nil {
		return err
	}
	slog.Info("added workspace member", "member", relPath, "root", m.root)
	return nil
}

// RemoveMember removes relPath from workspace.members and rewrites the
// manifest. Removing an absent member is a silent no-op.
func (m *Manager) RemoveMember(relPath string) error {
	tree, members, err := m.readMembers()
	if err != nil {
		return err
	}

	kept := make([]any, 0, len(members))
	found := false
	for _, existing := range members {
		if existing == relPath {
			found = true
			continue
		}
		kept = append(kept, existing)
	}
	if !found {
		return nil
	}
	tree.Table("workspace")["members"] = kept

	if err := manifest.WriteTable(manifest.Path(m.root), tree); err != nil {
		return err
	}
	slog.Info("removed workspace member", "member", relPath, "root", m.root)
	return nil
}

// readMembers loads the workspace manifest and returns the tree together
// with the current members list. The workspace table and members array are
// created when missing so a bare [workspace] manifest can still gain
// members; a manifest without any workspace table is rejected.
func (m *Manager) readMembers() (manifest.Table, []string, error) {
	path := manifest.Path(m.root)
	tree, err := manifest.Read(path)
	if err != nil {
		return nil, nil, err
	}

	ws := tree.Table("workspace")
	if ws == nil {
		return nil, nil, errdefs.InvalidWorkspace(path, "missing [workspace] table")
	}
	if _, ok := ws["members"]; !ok {
		ws["members"] = []any{}
	}
	if _, ok := ws["members"].([]any); !ok {
		return nil, nil, errdefs.InvalidWorkspace(path, "workspace.members is not an array")
	}
	return tree, ws.Strings("members"), nil
}
