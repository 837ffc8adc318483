package lodestar

// Package is a unit that contains source code and its own manifest. It may
// live detached or be one of many inside a Workspace; its identity is its
// metadata name.
type Package struct {
	Metadata Metadata
}

// NewPackage creates a package with empty metadata.
func NewPackage() Package {
	return Package{}
}

// WithName returns a copy with the package name set.
func (p Package) WithName(name string) Package {
	p.Metadata = p.Metadata.WithName(name)
	return p
}

// WithVersion returns a copy with the package version set.
func (p Package) WithVersion(version string) Package {
	p.Metadata = p.Metadata.WithVersion(version)
	return p
}

// WithDescription returns a copy with the package description set.
func (p Package) WithDescription(description string) Package {
	p.Metadata = p.Metadata.WithDescription(description)
	return p
}

// WithMetadata returns a copy with all metadata replaced.
func (p Package) WithMetadata(m Metadata) Package {
	p.Metadata = m
	return p
}

func (p Package) String() string {
	return p.Metadata.DisplayName()
}
