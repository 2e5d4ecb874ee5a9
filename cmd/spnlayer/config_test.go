package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseYAMLConfigSuccess(t *testing.T) {
	path := writeTempConfig(t, `
bits: 2
sboxes: 3
table: [2, 0, 3, 1]
permutation: [5, 4, 3, 2, 1, 0]
seed: hunter2
group: 2
decrypt: true
logLevel: debug
`)

	config := defaultConfig()
	require.NoError(t, parseYAMLConfig(&config, path))

	assert.Equal(t, Config{
		Bits:        2,
		SBoxes:      3,
		Table:       []int{2, 0, 3, 1},
		Permutation: []int{5, 4, 3, 2, 1, 0},
		Seed:        "hunter2",
		Group:       2,
		Decrypt:     true,
		LogLevel:    "debug",
	}, config)
}

func TestParseYAMLConfigKeepsDefaults(t *testing.T) {
	path := writeTempConfig(t, "sboxes: 2\n")

	config := defaultConfig()
	require.NoError(t, parseYAMLConfig(&config, path))

	assert.Equal(t, 4, config.Bits)
	assert.Equal(t, 2, config.SBoxes)
	assert.Equal(t, 4, config.Group)
	assert.Equal(t, "info", config.LogLevel)
}

func TestParseYAMLConfigErrors(t *testing.T) {
	var config Config
	missing := filepath.Join(t.TempDir(), "missing.yml")
	assert.Error(t, parseYAMLConfig(&config, missing))

	path := writeTempConfig(t, "bits: [not, a, number]\n")
	assert.Error(t, parseYAMLConfig(&config, path))
}

func TestMergeFlagsOverridesNonZero(t *testing.T) {
	config := defaultConfig()
	config.Table = []int{1, 0}
	config.Bits = 1
	config.Seed = "from-file"

	err := mergeFlags(&config, Config{
		Bits:        4,
		Permutation: []int{1, 0, 3, 2},
		Decrypt:     true,
	})
	require.NoError(t, err)

	assert.Equal(t, 4, config.Bits)
	assert.Equal(t, []int{1, 0}, config.Table, "unset flag must keep the file value")
	assert.Equal(t, []int{1, 0, 3, 2}, config.Permutation)
	assert.Equal(t, "from-file", config.Seed)
	assert.True(t, config.Decrypt)
	assert.Equal(t, "info", config.LogLevel)
}

func TestMergeFlagsKeepsFileOnZeroFlags(t *testing.T) {
	config := defaultConfig()
	config.Decrypt = true
	config.SBoxes = 2
	config.Group = 8

	require.NoError(t, mergeFlags(&config, Config{}))

	assert.True(t, config.Decrypt)
	assert.Equal(t, 2, config.SBoxes)
	assert.Equal(t, 8, config.Group)
}

func TestParseIntList(t *testing.T) {
	got, err := parseIntList("3, 1,2 ,0")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 2, 0}, got)

	got, err = parseIntList("  ")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = parseIntList("1,,2")
	assert.Error(t, err)

	_, err = parseIntList("1,x")
	assert.Error(t, err)
}

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}
