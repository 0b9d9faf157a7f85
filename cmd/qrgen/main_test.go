package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kubesail/pibox-badge/bitmatrix"
)

func TestRunStdout(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, run([]string{"-pkg", "badgeqr"}, &b))

	assert.True(t, strings.HasPrefix(b.String(), "// Code generated by qrgen. DO NOT EDIT.\n\npackage badgeqr\n"))

	m, err := bitmatrix.Parse(&b)
	require.NoError(t, err)
	want, err := bitmatrix.Generate(bitmatrix.DefaultData)
	require.NoError(t, err)
	assert.Equal(t, want, m)
}

func TestRunOutputFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "data.txt")
	out := filepath.Join(dir, "bit_matrix.go")
	require.NoError(t, os.WriteFile(in, []byte("https://example.org/jane\n"), 0o644))

	require.NoError(t, run([]string{"-o", out, "-f", in}, nil))

	m, err := bitmatrix.ParseFile(out)
	require.NoError(t, err)
	want, err := bitmatrix.Generate("https://example.org/jane")
	require.NoError(t, err)
	assert.Equal(t, want, m)
}

func TestRunErrors(t *testing.T) {
	var b bytes.Buffer
	assert.ErrorIs(t, run([]string{""}, &b), bitmatrix.ErrEmptyData)
	assert.Error(t, run([]string{strings.Repeat("x", 64)}, &b))
	assert.Error(t, run([]string{"-f", filepath.Join(t.TempDir(), "missing")}, &b))
	assert.Empty(t, b.String())
}
