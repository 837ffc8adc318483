package lodestar

import (
	"github.com/finchley/lodestar/discover"
	"github.com/finchley/lodestar/manifest"
)

// manifestCell caches the parsed workspace manifest tree for the process
// lifetime. The tree is cached rather than the extracted metadata so callers
// can derive other sections (members, resolver) from the same parse.
var manifestCell onceCell[manifest.Table]

// CachedManifest returns the process-wide parsed workspace manifest. On
// first call it locates the workspace root and parses its manifest; read or
// parse failures are demoted to an empty tree so discovery never fails hard.
func CachedManifest() manifest.Table {
	return *manifestCell.getOrInit(loadRootManifest)
}

// SeedManifest stores the given tree before any reader touches the cache.
// If the cache is already filled the existing tree is returned and the
// argument is discarded (first writer wins).
func SeedManifest(tree manifest.Table) manifest.Table {
	return *manifestCell.getOrInit(func() manifest.Table { return tree })
}

// TryManifest returns the cached tree without triggering discovery.
func TryManifest() (manifest.Table, bool) {
	if t := manifestCell.tryGet(); t != nil {
		return *t, true
	}
	return nil, false
}

func loadRootManifest() manifest.Table {
	root := discover.FindRoot()
	tree, err := manifest.Read(manifest.Path(root))
	if err != nil {
		return manifest.Table{}
	}
	return tree
}

// metadataFromTable extracts the metadata triple from a manifest tree,
// preferring [workspace.package] over [package]. Every missing field falls
// back to the empty string.
func metadataFromTable(tree manifest.Table) Metadata {
	section := tree.Table("workspace").Table("package")
	if section == nil {
		section = tree.Table("package")
	}
	return Metadata{
		Name:        section.String("name"),
		Version:     section.String("version"),
		Description: section.String("description"),
	}
}
