package lodestar

import (
	"fmt"

	"github.com/finchley/lodestar/errdefs"
)

// Workspace is the domain model for a multi-package workspace: metadata plus
// an ordered sequence of packages. Insertion order is preserved and matches
// the enumeration order of the manifest's members array. A workspace may be
// empty.
type Workspace struct {
	Metadata Metadata
	Packages []Package
}

// NewWorkspace creates an empty workspace.
func NewWorkspace() Workspace {
	return Workspace{}
}

// WithName returns a copy with the workspace name set.
func (w Workspace) WithName(name string) Workspace {
	w.Metadata = w.Metadata.WithName(name)
	return w
}

// WithVersion returns a copy with the workspace version set.
func (w Workspace) WithVersion(version string) Workspace {
	w.Metadata = w.Metadata.WithVersion(version)
	return w
}

// WithDescription returns a copy with the workspace description set.
func (w Workspace) WithDescription(description string) Workspace {
	w.Metadata = w.Metadata.WithDescription(description)
	return w
}

// WithMetadata returns a copy with all metadata replaced.
func (w Workspace) WithMetadata(m Metadata) Workspace {
	w.Metadata = m
	return w
}

// WithPackages returns a copy with the package list replaced.
func (w Workspace) WithPackages(packages []Package) Workspace {
	w.Packages = append([]Package(nil), packages...)
	return w
}

// WithPackage returns a copy with the package appended.
func (w Workspace) WithPackage(p Package) Workspace {
	w.Packages = append(w.Packages, p)
	return w
}

// WithPackageName returns a copy with a name-only package appended.
func (w Workspace) WithPackageName(name string) Workspace {
	return w.WithPackage(NewPackage().WithName(name))
}

// FindPackage returns the first package whose metadata name equals name, or
// nil. Duplicate names are not prevented; the first registration wins.
func (w *Workspace) FindPackage(name string) *Package {
	for i := range w.Packages {
		if w.Packages[i].Metadata.Name == name {
			return &w.Packages[i]
		}
	}
	return nil
}

// GetPackage is like FindPackage but returns a structured error carrying the
// available package names when the lookup misses.
func (w *Workspace) GetPackage(name string) (*Package, error) {
	if p := w.FindPackage(name); p != nil {
		return p, nil
	}
	return nil, errdefs.PackageNotFound(name, w.PackageNames())
}

// HasPackage reports whether a package with the given name is registered.
func (w *Workspace) HasPackage(name string) bool {
	return w.FindPackage(name) != nil
}

// PackageCount returns the number of registered packages.
func (w *Workspace) PackageCount() int {
	return len(w.Packages)
}

// PackageNames returns the package names in insertion order.
func (w *Workspace) PackageNames() []string {
	names := make([]string, len(w.Packages))
	for i, p := range w.Packages {
		names[i] = p.Metadata.Name
	}
	return names
}

func (w Workspace) String() string {
	return fmt.Sprintf("%s (%d packages)", w.Metadata.DisplayName(), w.PackageCount())
}
