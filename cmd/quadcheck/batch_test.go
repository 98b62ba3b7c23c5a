package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const batchYAML = `- name: unit square
  vertices: [[0, 0], [1, 0], [1, 1], [0, 1]]
- name: bowtie
  vertices: [[0, 0], [1, 1], [1, 0], [0, 1]]
- name: duplicate corner
  vertices: [[0, 0], [0, 0], [1, 1], [0, 1]]
`

func writeBatchFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "quads.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadBatch(t *testing.T) {
	entries, err := loadBatch(writeBatchFile(t, batchYAML))
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "unit square", entries[0].Name)
	assert.Equal(t, [2]float64{1, 1}, entries[1].Vertices[1])
}

func TestLoadBatch_Invalid(t *testing.T) {
	_, err := loadBatch(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = loadBatch(writeBatchFile(t, "not: [valid: batch"))
	assert.Error(t, err)

	_, err = loadBatch(writeBatchFile(t, "- name: short\n  vertices: [[0, 0], [1, 0]]\n"))
	assert.Error(t, err)
}

func TestClassifyCommand_Batch(t *testing.T) {
	path := writeBatchFile(t, batchYAML)

	out, err := runCommand(t, "classify", "--file", path)
	require.NoError(t, err)

	assert.Contains(t, out, "unit square: square")
	assert.Contains(t, out, "bowtie: crossed")
	// Malformed entries report inline without aborting the batch.
	assert.Contains(t, out, "duplicate corner: error:")
}
