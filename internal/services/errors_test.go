package services_test

import (
	"errors"
	"strings"
	"testing"

	"oggify/internal/services"
)

func TestWrapIncludesContext(t *testing.T) {
	base := errors.New("boom")
	err := services.Wrap(services.ErrExternalTool, "ffmpeg", "convert", "failed", base)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, services.ErrExternalTool) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to contain base error, got %v", err)
	}
	msg := err.Error()
	for _, fragment := range []string{"ffmpeg", "convert", "failed"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in error string %q", fragment, msg)
		}
	}
}

func TestWrapDefaultsToTransient(t *testing.T) {
	err := services.Wrap(nil, "", "", "", nil)
	if !errors.Is(err, services.ErrTransient) {
		t.Fatalf("expected transient marker, got %v", err)
	}
	if !strings.Contains(err.Error(), "service failure") {
		t.Fatalf("expected fallback detail, got %q", err.Error())
	}
}

func TestFailureKindMapping(t *testing.T) {
	toolErr := services.Wrap(services.ErrExternalTool, "ffmpeg", "convert", "exit status 1", nil)
	if kind := services.FailureKind(toolErr); kind != services.KindConversionFailure {
		t.Fatalf("expected conversion failure for tool error, got %s", kind)
	}

	verifyErr := services.Wrap(services.ErrValidation, "batch", "verify output", "not vorbis", nil)
	if kind := services.FailureKind(verifyErr); kind != services.KindConversionFailure {
		t.Fatalf("expected conversion failure for validation error, got %s", kind)
	}

	ioErr := services.Wrap(services.ErrTransient, "batch", "finalize", "rename failed", errors.New("io"))
	if kind := services.FailureKind(ioErr); kind != services.KindUnexpectedFailure {
		t.Fatalf("expected unexpected failure for transient error, got %s", kind)
	}

	if kind := services.FailureKind(errors.New("plain")); kind != services.KindUnexpectedFailure {
		t.Fatalf("expected unexpected failure for unmarked error, got %s", kind)
	}
}
