package lodestar

import "fmt"

// Metadata is the name/version/description triple shared by workspaces and
// packages. All three fields are always present as strings, possibly empty;
// none is optional.
type Metadata struct {
	Name        string
	Version     string
	Description string
}

// NewMetadata creates empty metadata.
func NewMetadata() Metadata {
	return Metadata{}
}

// MetadataFrom creates metadata with all fields set.
func MetadataFrom(name, version, description string) Metadata {
	return Metadata{Name: name, Version: version, Description: description}
}

// WithName returns a copy with the name set.
func (m Metadata) WithName(name string) Metadata {
	m.Name = name
	return m
}

// WithVersion returns a copy with the version set.
func (m Metadata) WithVersion(version string) Metadata {
	m.Version = version
	return m
}

// WithDescription returns a copy with the description set.
func (m Metadata) WithDescription(description string) Metadata {
	m.Description = description
	return m
}

// IsEmpty reports whether all three fields are empty.
func (m Metadata) IsEmpty() bool {
	return m.Name == "" && m.Version == "" && m.Description == ""
}

// HasName reports whether the name field is set.
func (m Metadata) HasName() bool {
	return m.Name != ""
}

// DisplayName renders "name vVERSION", omitting the version when empty.
func (m Metadata) DisplayName() string {
	if m.Version == "" {
		return m.Name
	}
	return fmt.Sprintf("%s v%s", m.Name, m.Version)
}

func (m Metadata) String() string {
	return m.DisplayName()
}
