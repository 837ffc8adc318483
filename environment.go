package lodestar

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/joho/godotenv"

	"github.com/finchley/lodestar/discover"
	"github.com/finchley/lodestar/manifest"
)

// Environment is the sealed composition of everything the process knows
// about its surroundings: operation kind, workspace and package domain
// models, runtime configuration, and the filesystem layout. Exactly one
// instance exists per process, owned by the one-shot cell behind Get and
// Set.
type Environment struct {
	Kind      Kind
	Workspace Workspace
	Package   Package
	Config    Configuration
	Paths     Paths
}

var envCell onceCell[Environment]

// Get returns the process-wide environment, constructing a default one on
// first call. The result is shared by reference across threads for the
// remainder of the process.
//
// Initialization is fail-fast only for an invalid PORT value, which panics;
// every other shortfall degrades to empty metadata and default paths.
func Get() *Environment {
	godotenv.Load()
	return envCell.getOrInit(func() Environment {
		env, err := NewEnvironment()
		if err != nil {
			panic(err)
		}
		return env
	})
}

// Set stores the caller-provided environment if the cell is uninitialized;
// otherwise the already-stored environment is returned and the argument is
// discarded without side effects. Set-once: the first writer wins, even
// under racing callers.
func Set(env Environment) *Environment {
	godotenv.Load()
	return envCell.getOrInit(func() Environment { return env })
}

// TryGet returns the sealed environment without initializing, or false when
// no environment has been sealed yet.
func TryGet() (*Environment, bool) {
	if e := envCell.tryGet(); e != nil {
		return e, true
	}
	return nil, false
}

// Init seals the environment from caller-supplied build-time strings,
// conventionally injected with -ldflags -X. It is the programmatic
// equivalent of passing the build tool's package name, version, and
// description to Set. Panics on an invalid PORT value.
func Init(name, version, description string) *Environment {
	env, err := NewEnvironment()
	if err != nil {
		panic(err)
	}
	return Set(env.
		WithPkgName(name).
		WithPkgVersion(version).
		WithPkgDescription(description))
}

// NewEnvironment composes a default environment:
//
//  1. Detect the kind from build-provided environment variables.
//  2. Unless the kind is library, locate the workspace root and initialize
//     the workspace model from disk. Paths derive from the root either way;
//     for library kind the working directory stands in.
//  3. Initialize the current package; its metadata defaults clone from the
//     workspace metadata.
//  4. Initialize configuration; an empty db resolves to paths.Database.
//
// The only fatal condition is an unparseable PORT.
func NewEnvironment() (Environment, error) {
	return newEnvironment(DetectKind())
}

// WorkspaceEnv creates an environment with the kind forced to workspace.
func WorkspaceEnv() (Environment, error) {
	return newEnvironment(KindWorkspace)
}

// StandaloneEnv creates an environment with the kind forced to standalone.
func StandaloneEnv() (Environment, error) {
	return newEnvironment(KindStandalone)
}

// LibraryEnv creates an environment with the kind forced to library: no
// filesystem discovery, default workspace and paths.
func LibraryEnv() (Environment, error) {
	return newEnvironment(KindLibrary)
}

func newEnvironment(kind Kind) (Environment, error) {
	var workspace Workspace

	// Library kind skips discovery but still anchors the default layout at
	// the working directory, so path-derived fallbacks stay usable.
	root := "."
	if kind.ShouldDiscover() {
		root = discover.FindRoot()
		workspace = loadWorkspace(root, CachedManifest())
	} else if wd, err := os.Getwd(); err == nil {
		root = wd
	}
	paths := DefaultPaths(root)

	// The running package defaults to the workspace identity; callers
	// normally override with build-time values via Init or the builders.
	pkg := NewPackage().WithMetadata(workspace.Metadata)

	config, err := NewConfiguration()
	if err != nil {
		return Environment{}, err
	}
	if config.DB == "" {
		config.DB = paths.Database
	}

	return Environment{
		Kind:      kind,
		Workspace: workspace,
		Package:   pkg,
		Config:    config,
		Paths:     paths,
	}, nil
}

// loadWorkspace builds the workspace model from a parsed root manifest:
// metadata from [workspace.package], packages from the members array in
// declaration order. Member entries may be glob patterns ("crates/*"); each
// match with a readable manifest becomes a package. Unreadable members are
// registered by directory name so enumeration still mirrors the members
// array.
func loadWorkspace(root string, tree manifest.Table) Workspace {
	ws := NewWorkspace().WithMetadata(metadataFromTable(tree))

	for _, member := range tree.Table("workspace").Strings("members") {
		if strings.ContainsAny(member, "*?[") {
			matches, err := doublestar.FilepathGlob(filepath.Join(root, filepath.FromSlash(member)))
			if err != nil {
				continue
			}
			for _, dir := range matches {
				ws = ws.WithPackage(memberPackage(dir))
			}
			continue
		}
		ws = ws.WithPackage(memberPackage(filepath.Join(root, filepath.FromSlash(member))))
	}
	return ws
}

func memberPackage(dir string) Package {
	meta, ok := manifest.ReadMetadata(manifest.Path(dir))
	if !ok || meta.Name == "" {
		meta.Name = filepath.Base(dir)
	}
	return NewPackage().WithMetadata(MetadataFrom(meta.Name, meta.Version, meta.Description))
}

// WithName sets the package name (shortcut for WithPkgName).
func (e Environment) WithName(name string) Environment {
	return e.WithPkgName(name)
}

// WithVersion sets the package version (shortcut for WithPkgVersion).
func (e Environment) WithVersion(version string) Environment {
	return e.WithPkgVersion(version)
}

// WithDescription sets the package description (shortcut for
// WithPkgDescription).
func (e Environment) WithDescription(description string) Environment {
	return e.WithPkgDescription(description)
}

// WithDB sets the database URL/path.
func (e Environment) WithDB(db string) Environment {
	e.Config = e.Config.WithDB(db)
	return e
}

// WithIP sets the bind address.
func (e Environment) WithIP(ip string) Environment {
	e.Config = e.Config.WithIP(ip)
	return e
}

// WithPort sets the bind port. Panics on values outside 0-65535.
func (e Environment) WithPort(port int) Environment {
	e.Config = e.Config.WithPort(port)
	return e
}

// WithRustLog sets the log filter directive.
func (e Environment) WithRustLog(filter string) Environment {
	e.Config = e.Config.WithRustLog(filter)
	return e
}

// WithWorkspaceName sets the workspace name.
func (e Environment) WithWorkspaceName(name string) Environment {
	e.Workspace = e.Workspace.WithName(name)
	return e
}

// WithWorkspaceVersion sets the workspace version.
func (e Environment) WithWorkspaceVersion(version string) Environment {
	e.Workspace = e.Workspace.WithVersion(version)
	return e
}

// WithWorkspaceDescription sets the workspace description.
func (e Environment) WithWorkspaceDescription(description string) Environment {
	e.Workspace = e.Workspace.WithDescription(description)
	return e
}

// WithWorkspacePackage adds a package to the workspace.
func (e Environment) WithWorkspacePackage(p Package) Environment {
	e.Workspace = e.Workspace.WithPackage(p)
	return e
}

// WithWorkspacePackageName adds a name-only package to the workspace.
func (e Environment) WithWorkspacePackageName(name string) Environment {
	e.Workspace = e.Workspace.WithPackageName(name)
	return e
}

// WithPkgName sets the name of the currently running package.
func (e Environment) WithPkgName(name string) Environment {
	e.Package = e.Package.WithName(name)
	return e
}

// WithPkgVersion sets the version of the currently running package.
func (e Environment) WithPkgVersion(version string) Environment {
	e.Package = e.Package.WithVersion(version)
	return e
}

// WithPkgDescription sets the description of the currently running package.
func (e Environment) WithPkgDescription(description string) Environment {
	e.Package = e.Package.WithDescription(description)
	return e
}

// Summary renders a one-line description of the environment whose shape
// depends on the kind.
func (e *Environment) Summary() string {
	switch e.Kind {
	case KindWorkspace:
		return fmt.Sprintf(
			"%s (%d packages, running %s)",
			e.Workspace.Metadata.DisplayName(),
			e.Workspace.PackageCount(),
			e.Package.Metadata.DisplayName(),
		)
	case KindStandalone:
		return e.Package.Metadata.DisplayName()
	default:
		return fmt.Sprintf("Library: %s", e.Package.Metadata.DisplayName())
	}
}
