package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_PrintsDefinition(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	defs := `
		op "matmul" {
			specialize {
				T      = f32
				TACCUM = f32
			}
			specialize {
				T      = i8
				TACCUM = i32
			}
		}
	`
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "main.hcl")
	require.NoError(t, os.WriteFile(filePath, []byte(defs), 0600), "failed to set up test file")

	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}

	// --- Act ---
	err := run(out, logs, []string{filePath})

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, "OpDef<matmul>:\n  {T: f32, TACCUM: f32}\n  {T: i8, TACCUM: i32}\n", out.String())
}

func TestRun_InvalidDefinitionFile(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	invalidHCL := `
		op "matmul" {
			specialize {
		// Missing closing braces here
	`
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "main.hcl")
	require.NoError(t, os.WriteFile(filePath, []byte(invalidHCL), 0600), "failed to set up test file")

	// --- Act ---
	runErr := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{filePath})

	// --- Assert ---
	require.Error(t, runErr)
	require.Contains(t, runErr.Error(), "failed to load definitions")
	require.Contains(t, runErr.Error(), "failed to parse HCL file")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, &bytes.Buffer{}, []string{"-h"})

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Act ---
	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})

	// --- Assert ---
	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}
