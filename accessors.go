package lodestar

// Field shortcuts over the sealed environment. Each accessor triggers
// initialization on first use, exactly like Get. Names mirror the
// conventional field set: workspace metadata, package metadata, runtime
// configuration, and filesystem paths.

// WSName returns the workspace name.
func WSName() string { return Get().Workspace.Metadata.Name }

// WSVersion returns the workspace version.
func WSVersion() string { return Get().Workspace.Metadata.Version }

// WSDesc returns the workspace description.
func WSDesc() string { return Get().Workspace.Metadata.Description }

// PkgName returns the current package name.
func PkgName() string { return Get().Package.Metadata.Name }

// PkgVersion returns the current package version.
func PkgVersion() string { return Get().Package.Metadata.Version }

// PkgDesc returns the current package description.
func PkgDesc() string { return Get().Package.Metadata.Description }

// DB returns the database URL/path.
func DB() string { return Get().Config.DB }

// IP returns the bind address.
func IP() string { return Get().Config.IP }

// Port returns the bind port.
func Port() uint16 { return Get().Config.Port }

// RustLog returns the log filter directive.
func RustLog() string { return Get().Config.RustLog }

// PrjPath returns the workspace root directory.
func PrjPath() string { return Get().Paths.Project }

// PkgPath returns the current package directory.
func PkgPath() string { return Get().Paths.Package }

// AssetsPath returns the assets directory.
func AssetsPath() string { return Get().Paths.Assets }

// DBPath returns the database directory.
func DBPath() string { return Get().Paths.Database }

// CurrentWorkspace returns the complete workspace model.
func CurrentWorkspace() *Workspace { return &Get().Workspace }

// CurrentPackage returns the complete package model.
func CurrentPackage() *Package { return &Get().Package }
