// Package errdefs defines the structured error taxonomy shared by the
// lodestar packages. Every error carries a stable machine-readable code, a
// human message, and (where useful) a suggestion string suitable for CLI
// output. Callers classify errors with IsCode or errors.As rather than
// string matching.
package errdefs

import (
	"fmt"
	"strings"
)

// Code identifies an error category. Codes are stable and safe to match on.
type Code string

const (
	CodeConfigNotFound    Code = "config_not_found"
	CodeInvalidPort       Code = "invalid_port"
	CodeInvalidManifest   Code = "invalid_manifest"
	CodeWorkspaceNotFound Code = "workspace_not_found"
	CodeInvalidWorkspace  Code = "invalid_workspace"
	CodePackageNotFound   Code = "package_not_found"
	CodeMetadataNotFound  Code = "metadata_not_found"
	CodeInvalidMetadata   Code = "invalid_metadata"
	CodeEnvVar            Code = "env_var"
	CodeCustom            Code = "custom"
	CodeIO                Code = "io_error"
)

// Error is the structured error value for lodestar operations.
type Error struct {
	Code       Code
	Message    string
	Suggestion string
	// Path is the file or directory the operation touched, when relevant.
	Path string
	// Fields holds additional structured context (offending value,
	// requested name, available names).
	Fields map[string]string
	// Err is the wrapped source error, if any.
	Err error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if e.Path != "" {
		fmt.Fprintf(&b, ": %s", e.Path)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// IsCode reports whether err (or anything it wraps) is an *Error with the
// given code.
func IsCode(err error, code Code) bool {
	for err != nil {
		if e, ok := err.(*Error); ok {
			return e.Code == code
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

// ConfigNotFound reports a missing manifest at path.
func ConfigNotFound(path, suggestion string) *Error {
	return &Error{
		Code:       CodeConfigNotFound,
		Message:    "configuration file not found",
		Path:       path,
		Suggestion: suggestion,
	}
}

// InvalidPort reports a PORT value that does not parse as a 16-bit unsigned
// integer. The offending text is preserved in Fields["value"].
func InvalidPort(value string) *Error {
	return &Error{
		Code:       CodeInvalidPort,
		Message:    fmt.Sprintf("invalid port: %q", value),
		Suggestion: "PORT must be a number between 0 and 65535",
		Fields:     map[string]string{"value": value},
	}
}

// InvalidManifest wraps a TOML parse failure for the file at path.
func InvalidManifest(path string, err error) *Error {
	return &Error{
		Code:       CodeInvalidManifest,
		Message:    "failed to parse manifest",
		Path:       path,
		Suggestion: "check TOML syntax",
		Err:        err,
	}
}

// WorkspaceNotFound reports that no discovery strategy produced a root.
func WorkspaceNotFound() *Error {
	return &Error{
		Code:       CodeWorkspaceNotFound,
		Message:    "workspace root not found",
		Suggestion: "run from within a workspace, or set WORKSPACE_ROOT",
	}
}

// InvalidWorkspace reports a manifest that exists but lacks the required
// workspace structure.
func InvalidWorkspace(path, reason string) *Error {
	return &Error{
		Code:       CodeInvalidWorkspace,
		Message:    fmt.Sprintf("invalid workspace structure: %s", reason),
		Path:       path,
		Suggestion: "ensure the manifest has a [workspace] section with members or resolver",
	}
}

// PackageNotFound reports a query-time miss. The available package names are
// retained for help text.
func PackageNotFound(name string, available []string) *Error {
	return &Error{
		Code:       CodePackageNotFound,
		Message:    fmt.Sprintf("package %q not found in workspace", name),
		Suggestion: fmt.Sprintf("available packages: %s", strings.Join(available, ", ")),
		Fields: map[string]string{
			"name":      name,
			"available": strings.Join(available, ","),
		},
	}
}

// MetadataNotFound reports a required metadata field that is absent.
func MetadataNotFound(field string) *Error {
	return &Error{
		Code:    CodeMetadataNotFound,
		Message: fmt.Sprintf("metadata field %q not found", field),
		Fields:  map[string]string{"field": field},
	}
}

// InvalidMetadata reports a metadata field that is present but malformed.
func InvalidMetadata(field, reason, suggestion string) *Error {
	return &Error{
		Code:       CodeInvalidMetadata,
		Message:    fmt.Sprintf("invalid metadata field %q: %s", field, reason),
		Suggestion: suggestion,
		Fields:     map[string]string{"field": field, "reason": reason},
	}
}

// EnvVar reports a missing or malformed environment variable other than PORT.
func EnvVar(name, reason, suggestion string) *Error {
	return &Error{
		Code:       CodeEnvVar,
		Message:    fmt.Sprintf("environment variable %s: %s", name, reason),
		Suggestion: suggestion,
		Fields:     map[string]string{"name": name},
	}
}

// Custom is the free-form escape hatch.
func Custom(msg string) *Error {
	return &Error{Code: CodeCustom, Message: msg}
}

// IO wraps a filesystem error with path context.
func IO(path string, err error) *Error {
	return &Error{
		Code:    CodeIO,
		Message: "i/o error",
		Path:    path,
		Err:     err,
	}
}
