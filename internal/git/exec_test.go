package git

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsukasa-au/repoclone/internal/domain"
)

func TestCloneArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		opts     domain.CloneOptions
		expected []string
	}{
		{
			name:     "plain clone",
			opts:     domain.CloneOptions{},
			expected: []string{"clone", "--", "https://example.com/a/b.git", "a/b"},
		},
		{
			name:     "mirror clone",
			opts:     domain.CloneOptions{Mirror: true},
			expected: []string{"clone", "--mirror", "--", "https://example.com/a/b.git", "a/b"},
		},
		{
			name:     "shallow clone",
			opts:     domain.CloneOptions{Shallow: true},
			expected: []string{"clone", "--depth", "1", "--", "https://example.com/a/b.git", "a/b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cloneArgs("https://example.com/a/b.git", "a/b", tt.opts))
		})
	}
}

func TestExecCloner_ConflictingOptions(t *testing.T) {
	t.Parallel()

	c := NewExecCloner("git", nil)
	err := c.Clone(context.Background(), t.TempDir(), "https://example.com/a/b.git", "a/b",
		domain.CloneOptions{Mirror: true, Shallow: true})
	assert.ErrorIs(t, err, domain.ErrConflictingOptions)
}

func TestExecCloner_ExitCodePropagation(t *testing.T) {
	t.Parallel()
	if runtime.GOOS == "windows" {
		t.Skip("relies on a POSIX shell")
	}

	// A fake git that exits 3: the status must come back untranslated
	// through the CloneError.
	dir := t.TempDir()
	fakeGit := filepath.Join(dir, "fake-git")
	require.NoError(t, os.WriteFile(fakeGit, []byte("#!/bin/sh\nexit 3\n"), 0755))

	c := NewExecCloner(fakeGit, nil)
	err := c.Clone(context.Background(), dir, "https://example.com/a/b.git", "a/b",
		domain.CloneOptions{})
	require.Error(t, err)

	var cloneErr *domain.CloneError
	require.ErrorAs(t, err, &cloneErr)
	assert.Equal(t, 3, cloneErr.ExitCode)
	assert.Equal(t, 3, domain.ExitCode(err))
}

func TestExecCloner_SpawnFailure(t *testing.T) {
	t.Parallel()

	c := NewExecCloner("definitely-not-a-real-binary-54321", nil)
	err := c.Clone(context.Background(), t.TempDir(), "https://example.com/a/b.git", "a/b",
		domain.CloneOptions{})
	require.Error(t, err)

	var cloneErr *domain.CloneError
	require.ErrorAs(t, err, &cloneErr)
	assert.Equal(t, 0, cloneErr.ExitCode)
	assert.Equal(t, 1, domain.ExitCode(err))
}
