package lodestar

import (
	"errors"
	"reflect"
	"testing"

	"github.com/finchley/lodestar/errdefs"
)

func TestWorkspaceBuilders(t *testing.T) {
	ws := NewWorkspace().
		WithName("acme").
		WithVersion("1.2.3").
		WithDescription("tools").
		WithPackageName("api").
		WithPackage(NewPackage().WithName("cli").WithVersion("0.3.0"))

	if ws.Metadata.Name != "acme" || ws.Metadata.Version != "1.2.3" || ws.Metadata.Description != "tools" {
		t.Errorf("metadata = %+v", ws.Metadata)
	}
	if ws.PackageCount() != 2 {
		t.Fatalf("PackageCount() = %d, want 2", ws.PackageCount())
	}

	replaced := ws.WithPackages([]Package{NewPackage().WithName("web")})
	if replaced.PackageCount() != 1 || replaced.Packages[0].Metadata.Name != "web" {
		t.Errorf("WithPackages should replace, got %v", replaced.PackageNames())
	}
	// The original is unchanged by the replacement.
	if ws.PackageCount() != 2 {
		t.Error("WithPackages mutated its receiver")
	}

	meta := MetadataFrom("other", "2.0.0", "")
	if got := ws.WithMetadata(meta).Metadata; got != meta {
		t.Errorf("WithMetadata = %+v, want %+v", got, meta)
	}
}

func TestWorkspaceQueries(t *testing.T) {
	ws := NewWorkspace().WithPackageName("api").WithPackageName("cli")

	if p := ws.FindPackage("api"); p == nil || p.Metadata.Name != "api" {
		t.Errorf("FindPackage(api) = %v", p)
	}
	if p := ws.FindPackage("web"); p != nil {
		t.Errorf("FindPackage(web) = %v, want nil", p)
	}
	if !ws.HasPackage("cli") || ws.HasPackage("web") {
		t.Error("HasPackage wrong")
	}

	names := ws.PackageNames()
	if !reflect.DeepEqual(names, []string{"api", "cli"}) {
		t.Errorf("PackageNames() = %v, want [api cli]", names)
	}
	if len(names) != ws.PackageCount() {
		t.Error("PackageNames length disagrees with PackageCount")
	}
}

func TestWorkspaceGetPackageError(t *testing.T) {
	ws := NewWorkspace().WithPackageName("api").WithPackageName("cli")

	_, err := ws.GetPackage("web")
	if !errdefs.IsCode(err, errdefs.CodePackageNotFound) {
		t.Fatalf("GetPackage(web) error = %v, want package_not_found", err)
	}
	var e *errdefs.Error
	if errors.As(err, &e) && e.Fields["available"] != "api,cli" {
		t.Errorf("available = %q, want api,cli", e.Fields["available"])
	}
}

func TestWorkspaceDuplicateNamesFirstWins(t *testing.T) {
	ws := NewWorkspace().
		WithPackage(NewPackage().WithName("api").WithVersion("1")).
		WithPackage(NewPackage().WithName("api").WithVersion("2"))

	if p := ws.FindPackage("api"); p.Metadata.Version != "1" {
		t.Errorf("FindPackage returned version %q, want first registration", p.Metadata.Version)
	}
}

func TestMetadataDisplayName(t *testing.T) {
	tests := []struct {
		meta Metadata
		want string
	}{
		{MetadataFrom("api", "1.0.0", ""), "api v1.0.0"},
		{MetadataFrom("api", "", ""), "api"},
		{Metadata{}, ""},
	}
	for _, tt := range tests {
		if got := tt.meta.DisplayName(); got != tt.want {
			t.Errorf("DisplayName() = %q, want %q", got, tt.want)
		}
	}

	if !(Metadata{}).IsEmpty() {
		t.Error("empty metadata should report IsEmpty")
	}
	if (Metadata{Name: "x"}).IsEmpty() {
		t.Error("named metadata should not report IsEmpty")
	}
	if !(Metadata{Name: "x"}).HasName() {
		t.Error("HasName wrong")
	}
}
