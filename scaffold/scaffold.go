// Package scaffold generates new package directories and manages workspace
// membership. A Scaffold value describes a package to be generated; the
// workspace Manager edits the members array of an existing workspace
// manifest.
//
// Manager operations assume exclusive access to the manifest: one writer at
// a time per workspace. Nothing here takes cross-process locks.
package scaffold

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/finchley/lodestar/errdefs"
	"github.com/finchley/lodestar/manifest"
)

// Scaffold describes a package to be generated. Builder methods mutate and
// return the value for chaining; terminal operations render it to a manifest
// or a full directory tree.
type Scaffold struct {
	Name         string
	Version      string
	Description  string
	Edition      string
	Authors      []string
	Dependencies [][2]string
	IsBinary     bool
}

// New creates a scaffold with the conventional defaults: version 0.1.0,
// edition 2024, library target.
func New(name string) Scaffold {
	return Scaffold{
		Name:    name,
		Version: "0.1.0",
		Edition: "2024",
	}
}

// WithVersion sets the package version.
func (s Scaffold) WithVersion(version string) Scaffold {
	s.Version = version
	return s
}

// WithDescription sets the package description.
func (s Scaffold) WithDescription(desc string) Scaffold {
	s.Description = desc
	return s
}

// WithEdition sets the language edition.
func (s Scaffold) WithEdition(edition string) Scaffold {
	s.Edition = edition
	return s
}

// WithAuthor appends an author.
func (s Scaffold) WithAuthor(author string) Scaffold {
	s.Authors = append(s.Authors, author)
	return s
}

// WithDependency appends a dependency as a name/version pair. Only the plain
// version-string dependency grammar is authored; richer forms are out of
// scope for scaffolding.
func (s Scaffold) WithDependency(name, version string) Scaffold {
	s.Dependencies = append(s.Dependencies, [2]string{name, version})
	return s
}

// Binary marks the scaffold as a binary target (main source stub).
func (s Scaffold) Binary() Scaffold {
	s.IsBinary = true
	return s
}

// Library marks the scaffold as a library target (lib source stub).
func (s Scaffold) Library() Scaffold {
	s.IsBinary = false
	return s
}

// ToTable renders the scaffold as a manifest node tree with a [package]
// table and, when dependencies are present, a [dependencies] table.
func (s Scaffold) ToTable() manifest.Table {
	pkg := map[string]any{
		"name":    s.Name,
		"version": s.Version,
		"edition": s.Edition,
	}
	if s.Description != "" {
		pkg["description"] = s.Description
	}
	if len(s.Authors) > 0 {
		authors := make([]any, len(s.Authors))
		for i, a := range s.Authors {
			authors[i] = a
		}
		pkg["authors"] = authors
	}

	tree := manifest.Table{"package": pkg}

	if len(s.Dependencies) > 0 {
		deps := map[string]any{}
		for _, d := range s.Dependencies {
			deps[d[0]] = d[1]
		}
		tree["dependencies"] = deps
	}
	return tree
}

// WriteManifest serializes the scaffold's manifest to path.
func (s Scaffold) WriteManifest(path string) error {
	return manifest.WriteTable(path, s.ToTable())
}

// Create generates the package directory under baseDir: the manifest, a src/
// directory, and a source stub (main for binaries, lib with a trivial
// passing test otherwise). Returns the package directory.
func (s Scaffold) Create(baseDir string) (string, error) {
	if s.Name == "" {
		return "", errdefs.Custom("scaffold requires a non-empty package name")
	}

	pkgDir := filepath.Join(baseDir, s.Name)
	srcDir := filepath.Join(pkgDir, "src")
	if err := os.MkdirAll(srcDir, 0o755); err != nil {
		return "", errdefs.IO(srcDir, err)
	}

	if err := s.WriteManifest(manifest.Path(pkgDir)); err != nil {
		return "", err
	}

	stubName := "lib.rs"
	stub := s.libStub()
	if s.IsBinary {
		stubName = "main.rs"
		stub = s.mainStub()
	}
	stubPath := filepath.Join(srcDir, stubName)
	if err := os.WriteFile(stubPath, []byte(stub), 0o644); err != nil {
		return "", errdefs.IO(stubPath, err)
	}

	slog.Info("scaffolded package", "name", s.Name, "dir", pkgDir, "binary", s.IsBinary)
	return pkgDir, nil
}

func (s Scaffold) mainStub() string {
	return fmt.Sprintf(
		"//! %s\n\nfn main() {\n    println!(\"Hello from %s!\");\n}\n",
		s.Description, s.Name,
	)
}

func (s Scaffold) libStub() string {
	return fmt.Sprintf(
		"//! %s\n\n#[cfg(test)]\nmod tests {\n    #[test]\n    fn it_works() {\n        assert_eq!(2 + 2, 4);\n    }\n}\n",
		s.Description,
	)
}
