package errors

import (
	"errors"
	"fmt"
	"testing"
)

var errSentinel = errors.New("sentinel")

func TestClassifiedError(t *testing.T) {
	t.Run("Basic error creation", func(t *testing.T) {
		err := NewError(CategoryConfig, "invalid configuration").
			WithSeverity(SeverityFatal).
			WithContext("file", "stack.yaml").
			Build()

		if err.Category() != CategoryConfig {
			t.Errorf("expected category %s, got %s", CategoryConfig, err.Category())
		}
		if err.Severity() != SeverityFatal {
			t.Errorf("expected severity %s, got %s", SeverityFatal, err.Severity())
		}
		if err.Message() != "invalid configuration" {
			t.Errorf("expected message 'invalid configuration', got %s", err.Message())
		}

		file, exists := err.Context().GetString("file")
		if !exists || file != "stack.yaml" {
			t.Errorf("expected context file=stack.yaml, got %v", file)
		}
	})

	t.Run("Error detection", func(t *testing.T) {
		err := ConfigError("test error").Build()

		if !IsClassified(err) {
			t.Error("expected error to be classified")
		}
		if !HasCategory(err, CategoryConfig) {
			t.Error("expected error to have config category")
		}
		if !err.IsFatal() {
			t.Error("expected config error to be fatal")
		}
	})

	t.Run("Detection through fmt wrapping", func(t *testing.T) {
		inner := FileSystemError("write document").Build()
		wrapped := fmt.Errorf("emit README.md: %w", inner)

		if !IsClassified(wrapped) {
			t.Fatal("expected wrapped error to be classified")
		}
		if GetCategory(wrapped) != CategoryFileSystem {
			t.Errorf("expected filesystem category, got %s", GetCategory(wrapped))
		}
		if IsFatal(wrapped) {
			t.Error("filesystem errors default to non-fatal")
		}
	})

	t.Run("WithContext does not mutate the original", func(t *testing.T) {
		base := RenderError("render").Build()
		derived := base.WithContext("document", "readme")

		if _, ok := base.Context().Get("document"); ok {
			t.Error("expected original context to stay untouched")
		}
		if v, _ := derived.Context().GetString("document"); v != "readme" {
			t.Errorf("expected derived context document=readme, got %q", v)
		}
	})
}

func TestErrorBuilder(t *testing.T) {
	t.Run("Wrapped sentinel stays reachable", func(t *testing.T) {
		err := WrapError(errSentinel, CategoryFileSystem, "write failed").
			Warning().
			WithContext("path", "docs/README.md").
			Build()

		if err.Severity() != SeverityWarning {
			t.Errorf("expected severity %s, got %s", SeverityWarning, err.Severity())
		}
		if !errors.Is(err, errSentinel) {
			t.Error("expected error to wrap sentinel")
		}
	})

	t.Run("Convenience constructors", func(t *testing.T) {
		tests := []struct {
			name     string
			builder  *ErrorBuilder
			category ErrorCategory
			severity ErrorSeverity
		}{
			{"ConfigError", ConfigError("test"), CategoryConfig, SeverityFatal},
			{"ValidationError", ValidationError("test"), CategoryValidation, SeverityFatal},
			{"FileSystemError", FileSystemError("test"), CategoryFileSystem, SeverityError},
			{"RenderError", RenderError("test"), CategoryRender, SeverityError},
			{"RuntimeError", RuntimeError("test"), CategoryRuntime, SeverityFatal},
			{"InternalError", InternalError("test"), CategoryInternal, SeverityFatal},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				err := tt.builder.Build()
				if err.Category() != tt.category {
					t.Errorf("expected category %s, got %s", tt.category, err.Category())
				}
				if err.Severity() != tt.severity {
					t.Errorf("expected severity %s, got %s", tt.severity, err.Severity())
				}
			})
		}
	})
}

func TestErrorContext(t *testing.T) {
	ctx1 := make(ErrorContext)
	ctx1 = ctx1.Set("key1", "value1")
	ctx1 = ctx1.Set("shared", "original")

	ctx2 := make(ErrorContext)
	ctx2 = ctx2.Set("key2", 42)
	ctx2 = ctx2.Set("shared", "overridden")

	merged := ctx1.Merge(ctx2)

	value1, _ := merged.GetString("key1")
	shared, _ := merged.GetString("shared")
	value2, ok := merged.Get("key2")

	if value1 != "value1" {
		t.Errorf("expected key1=value1, got %s", value1)
	}
	if !ok || value2 != 42 {
		t.Errorf("expected key2=42, got %v", value2)
	}
	if shared != "overridden" {
		t.Errorf("expected shared=overridden, got %s", shared)
	}
	if _, exists := merged.Get("nonexistent"); exists {
		t.Error("expected nonexistent key to not exist")
	}
}
