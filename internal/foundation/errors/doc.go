// Package errors provides foundational, type-safe error primitives used across stackdocs.
//
// This package contains classified error types and helpers for robust error handling,
// including a fluent builder API for constructing ClassifiedError values with context.
//
// Key features:
//   - ErrorCategory: Broad error classification (config, filesystem, render, etc.)
//   - ErrorSeverity: Impact level (fatal, error, warning, info)
//   - ClassifiedError: Structured error with category, severity, and context
//   - ErrorBuilder: Fluent API for creating classified errors
//   - CLI adapter for exit codes and error presentation
//
// Example usage:
//
//	err := errors.WrapError(ErrWrite, errors.CategoryFileSystem, "write document").
//		WithContext("path", relPath).
//		Build()
//
// Wrapped sentinels stay reachable through the standard errors.Is.
package errors
