// Package fstest provides a conformance test suite for validating filesystem
// backends against the operational contracts of the treetrim facade.
//
// This package contains test functions that can be imported and executed by
// backend packages to verify that classification, recursive copy, recursive
// delete, recursive enumeration, text IO, and read-only attribute handling
// all behave the same over their implementation of core.FS.
//
// Example usage:
//
//	func TestMyBackend(t *testing.T) {
//	    fstest.TestSuite(t, func() core.FS {
//	        return mybackend.New()
//	    })
//	}
package fstest

import (
	"testing"

	"github.com/igitur/treetrim/fs/core"
)

// Config configures the test suite to match backend behavior characteristics.
type Config struct {
	// SupportsAttributes indicates the backend implements core.AttributeFS.
	// When false, attribute and read-only protection tests are skipped.
	SupportsAttributes bool

	// SkipTests lists specific test names to skip (for edge cases).
	// Format: "Group/SubTest" (e.g., "Deleter/ReadOnlyFile").
	SkipTests []string
}

// DefaultConfig returns the configuration for fully featured backends.
func DefaultConfig() Config {
	return Config{SupportsAttributes: true}
}

// TestSuite runs all applicable conformance tests against a backend.
// The newFS function should return a fresh, empty filesystem for each group.
// Tests create and modify files, so each invocation should start clean.
// Uses DefaultConfig().
func TestSuite(t *testing.T, newFS func() core.FS) {
	TestSuiteWithConfig(t, newFS, DefaultConfig())
}

// TestSuiteWithConfig runs all applicable conformance tests with behavior
// configuration.
func TestSuiteWithConfig(t *testing.T, newFS func() core.FS, config Config) {
	t.Run("Classify", func(t *testing.T) {
		TestClassify(t, newFS(), config)
	})
	t.Run("Copier", func(t *testing.T) {
		TestCopier(t, newFS(), config)
	})
	t.Run("Deleter", func(t *testing.T) {
		TestDeleter(t, newFS(), config)
	})
	t.Run("Enumerator", func(t *testing.T) {
		TestEnumerator(t, newFS(), config)
	})
	t.Run("TextIO", func(t *testing.T) {
		TestTextIO(t, newFS(), config)
	})
	t.Run("Attributes", func(t *testing.T) {
		TestAttributes(t, newFS(), config)
	})
}

// skipIfConfigured skips the current test when its name appears in
// config.SkipTests.
func skipIfConfigured(t *testing.T, config Config, name string) {
	for _, skip := range config.SkipTests {
		if skip == name {
			t.Skipf("Skipping %s - configured in SkipTests", name)
		}
	}
}
