package lodestar

import "path/filepath"

// Paths is the standard directory layout derived from the workspace root.
// No path is validated for existence; derivation is pure.
//
//	{project}/
//	├── Cargo.toml
//	└── assets/
//	    └── db/
//
// Fields are exported for direct adjustment before the Environment is
// sealed; after sealing the value is frozen with the rest of the
// Environment.
type Paths struct {
	// Project is the workspace root directory.
	Project string
	// Package is the current package directory. Defaults to Project; differs
	// in monorepos where the running package is not the root.
	Package string
	// Assets is {project}/assets.
	Assets string
	// Database is {project}/assets/db, the fallback location when
	// DATABASE_URL is unset.
	Database string
}

// DefaultPaths derives the standard layout from a root directory.
func DefaultPaths(root string) Paths {
	assets := filepath.Join(root, "assets")
	return Paths{
		Project:  root,
		Package:  root,
		Assets:   assets,
		Database: filepath.Join(assets, "db"),
	}
}
