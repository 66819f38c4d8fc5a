package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadScenario(t *testing.T) {
	s, err := LoadScenario(filepath.Join("..", "..", "testdata", "scenarios", "kels_insertion_order.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "kels_insertion_order", s.Name)
	assert.Equal(t, "kels.", s.SubStore)
	assert.Equal(t, "insertion", s.Mode)
	assert.Equal(t, []string{"z", "a", "m"}, s.Puts)
	assert.Equal(t, 3, s.ExpectCount)
}

func TestLoadScenario_RejectsUnknownFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: x\nsub_store: evts.\nmode: lexical\nputs: [a]\nexpect_orde: [a]\n"), 0o600))

	_, err := LoadScenario(path)
	assert.Error(t, err)
}

func TestLoadScenario_RejectsMissingSubStore(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: x\nmode: lexical\nputs: [a]\n"), 0o600))

	_, err := LoadScenario(path)
	assert.Error(t, err)
}
