package lodestar

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/finchley/lodestar/manifest"
)

func writeMemberManifest(t *testing.T, root, rel, contents string) {
	t.Helper()
	dir := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, manifest.FileName), []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadWorkspace(t *testing.T) {
	root := t.TempDir()
	writeMemberManifest(t, root, "crates/api", "[package]\nname = \"api\"\nversion = \"1.0.0\"\n")
	writeMemberManifest(t, root, "crates/cli", "[package]\nname = \"cli\"\nversion = \"0.2.0\"\n")

	tree := manifest.Table{
		"workspace": map[string]any{
			"members": []any{"crates/api", "crates/cli"},
			"package": map[string]any{
				"name":    "demo",
				"version": "0.1.0",
			},
		},
	}

	ws := loadWorkspace(root, tree)
	if ws.Metadata.Name != "demo" || ws.Metadata.Version != "0.1.0" {
		t.Errorf("metadata = %+v", ws.Metadata)
	}
	if ws.PackageCount() != 2 {
		t.Fatalf("PackageCount() = %d, want 2", ws.PackageCount())
	}
	if p := ws.FindPackage("api"); p == nil || p.Metadata.Version != "1.0.0" {
		t.Errorf("api package = %+v", p)
	}
	if !ws.HasPackage("cli") {
		t.Error("cli member missing")
	}
}

func TestLoadWorkspaceGlobMembers(t *testing.T) {
	root := t.TempDir()
	writeMemberManifest(t, root, "crates/api", "[package]\nname = \"api\"\n")
	writeMemberManifest(t, root, "crates/cli", "[package]\nname = \"cli\"\n")

	tree := manifest.Table{
		"workspace": map[string]any{
			"members": []any{"crates/*"},
		},
	}

	ws := loadWorkspace(root, tree)
	if ws.PackageCount() != 2 {
		t.Fatalf("PackageCount() = %d, want 2", ws.PackageCount())
	}
	if !ws.HasPackage("api") || !ws.HasPackage("cli") {
		t.Errorf("packages = %v", ws.PackageNames())
	}
}

func TestLoadWorkspaceMemberWithoutManifest(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "tools", "gen"), 0o755); err != nil {
		t.Fatal(err)
	}

	tree := manifest.Table{
		"workspace": map[string]any{
			"members": []any{"tools/gen"},
		},
	}

	// No manifest in the member directory: the directory name stands in so
	// enumeration still mirrors the members array.
	ws := loadWorkspace(root, tree)
	if !ws.HasPackage("gen") {
		t.Errorf("packages = %v, want directory-name fallback", ws.PackageNames())
	}
}

func TestLoadWorkspaceEmptyTree(t *testing.T) {
	ws := loadWorkspace(t.TempDir(), manifest.Table{})
	if !ws.Metadata.IsEmpty() || ws.PackageCount() != 0 {
		t.Errorf("workspace = %+v, want empty", ws)
	}
}

func TestMetadataFromTable(t *testing.T) {
	tests := []struct {
		name string
		tree manifest.Table
		want Metadata
	}{
		{
			"workspace package preferred",
			manifest.Table{
				"workspace": map[string]any{
					"package": map[string]any{"name": "ws", "version": "1.0.0"},
				},
				"package": map[string]any{"name": "pkg"},
			},
			Metadata{Name: "ws", Version: "1.0.0"},
		},
		{
			"package fallback",
			manifest.Table{
				"package": map[string]any{"name": "pkg", "description": "a tool"},
			},
			Metadata{Name: "pkg", Description: "a tool"},
		},
		{
			"empty tree",
			manifest.Table{},
			Metadata{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := metadataFromTable(tt.tree); got != tt.want {
				t.Errorf("metadataFromTable() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLibraryEnvDatabaseFallback(t *testing.T) {
	clearConfigEnv(t)

	env, err := LibraryEnv()
	if err != nil {
		t.Fatalf("LibraryEnv() error = %v", err)
	}
	if env.Kind != KindLibrary {
		t.Fatalf("Kind = %v, want library", env.Kind)
	}

	// No discovery, but the default layout still anchors at the working
	// directory so the db fallback has a real path.
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if env.Paths.Project != wd {
		t.Errorf("Paths.Project = %q, want %q", env.Paths.Project, wd)
	}
	if env.Paths.Database != filepath.Join(wd, "assets", "db") {
		t.Errorf("Paths.Database = %q", env.Paths.Database)
	}
	if env.Config.DB == "" {
		t.Fatal("Config.DB should never be empty after construction")
	}
	if env.Config.DB != env.Paths.Database {
		t.Errorf("DB = %q, want fallback to %q", env.Config.DB, env.Paths.Database)
	}
}

func TestEnvironmentBuilders(t *testing.T) {
	env := Environment{}.
		WithName("api").
		WithVersion("1.0.0").
		WithDescription("http front end").
		WithDB("sqlite://app.db").
		WithIP("0.0.0.0").
		WithPort(8080).
		WithRustLog("info").
		WithWorkspaceName("demo").
		WithWorkspacePackageName("api").
		WithWorkspacePackageName("cli")

	if env.Package.Metadata.Name != "api" || env.Package.Metadata.Version != "1.0.0" {
		t.Errorf("package = %+v", env.Package)
	}
	if env.Config.DB != "sqlite://app.db" || env.Config.Port != 8080 {
		t.Errorf("config = %+v", env.Config)
	}
	if env.Workspace.Metadata.Name != "demo" || env.Workspace.PackageCount() != 2 {
		t.Errorf("workspace = %+v", env.Workspace)
	}
}

func TestEnvironmentSummary(t *testing.T) {
	tests := []struct {
		name string
		env  Environment
		want string
	}{
		{
			"workspace",
			Environment{
				Kind:      KindWorkspace,
				Workspace: NewWorkspace().WithName("demo").WithVersion("0.1.0").WithPackageName("api").WithPackageName("cli"),
				Package:   NewPackage().WithName("api").WithVersion("1.0.0"),
			},
			"demo v0.1.0 (2 packages, running api v1.0.0)",
		},
		{
			"standalone",
			Environment{
				Kind:    KindStandalone,
				Package: NewPackage().WithName("tool").WithVersion("2.0.0"),
			},
			"tool v2.0.0",
		},
		{
			"library",
			Environment{
				Kind:    KindLibrary,
				Package: NewPackage().WithName("sdk"),
			},
			"Library: sdk",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.env.Summary(); got != tt.want {
				t.Errorf("Summary() = %q, want %q", got, tt.want)
			}
		})
	}
}
