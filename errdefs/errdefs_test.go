package errdefs

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestIsCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"direct match", InvalidPort("abc"), CodeInvalidPort, true},
		{"direct mismatch", InvalidPort("abc"), CodeInvalidManifest, false},
		{"wrapped match", fmt.Errorf("loading config: %w", InvalidPort("abc")), CodeInvalidPort, true},
		{"plain error", errors.New("boom"), CodeInvalidPort, false},
		{"nil", nil, CodeInvalidPort, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCode(tt.err, tt.code); got != tt.want {
				t.Errorf("IsCode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestErrorsAs(t *testing.T) {
	wrapped := fmt.Errorf("reading workspace: %w", InvalidManifest("/ws/Cargo.toml", errors.New("unexpected token")))

	var e *Error
	if !errors.As(wrapped, &e) {
		t.Fatal("errors.As failed to find *Error")
	}
	if e.Code != CodeInvalidManifest {
		t.Errorf("Code = %q, want %q", e.Code, CodeInvalidManifest)
	}
	if e.Path != "/ws/Cargo.toml" {
		t.Errorf("Path = %q, want /ws/Cargo.toml", e.Path)
	}
}

func TestInvalidPortCarriesValue(t *testing.T) {
	err := InvalidPort("99999")
	if err.Fields["value"] != "99999" {
		t.Errorf("Fields[value] = %q, want 99999", err.Fields["value"])
	}
	if !strings.Contains(err.Error(), "99999") {
		t.Errorf("Error() = %q, want it to mention the offending value", err.Error())
	}
}

func TestPackageNotFoundListsAvailable(t *testing.T) {
	err := PackageNotFound("web", []string{"api", "cli"})
	if !strings.Contains(err.Suggestion, "api, cli") {
		t.Errorf("Suggestion = %q, want available names listed", err.Suggestion)
	}
}

func TestIOUnwrap(t *testing.T) {
	src := errors.New("permission denied")
	err := IO("/tmp/x", src)
	if !errors.Is(err, src) {
		t.Error("IO error should wrap its source")
	}
}
