package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, vault, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(io.Discard)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--vault", vault}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func addedID(t *testing.T, out string) string {
	t.Helper()
	fields := strings.Fields(out)
	require.GreaterOrEqual(t, len(fields), 2, out)
	require.Equal(t, "added", fields[0])
	return fields[1]
}

func TestEntryCommands(t *testing.T) {
	vault := t.TempDir()

	out, err := run(t, vault, "", "entry", "add", "--mood", "peaceful", "--tags", "walk", "Felt", "calm", "after", "a", "walk.")
	require.NoError(t, err)
	id := addedID(t, out)
	assert.Contains(t, out, filepath.Join(vault, "entries"))

	out, err = run(t, vault, "Stressed about the deadline.\n", "entry", "add")
	require.NoError(t, err)
	second := addedID(t, out)

	out, err = run(t, vault, "", "entry", "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "Felt calm after a walk.")
	assert.Contains(t, lines[1], "Peaceful")

	out, err = run(t, vault, "", "entry", "show", "--id", id)
	require.NoError(t, err)
	assert.Contains(t, out, "mood: Peaceful")
	assert.Contains(t, out, "tags: walk")
	assert.True(t, strings.HasSuffix(out, "Felt calm after a walk.\n"))

	_, err = run(t, vault, "", "entry", "edit", "--id", id, "--content", "Calm walk, then dinner.")
	require.NoError(t, err)
	out, err = run(t, vault, "", "entry", "show", "--id", id)
	require.NoError(t, err)
	assert.Contains(t, out, "Calm walk, then dinner.")

	_, err = run(t, vault, "", "entry", "edit", "--id", id)
	assert.ErrorContains(t, err, "nothing to change")

	_, err = run(t, vault, "", "entry", "delete", "--id", second)
	require.NoError(t, err)
	_, err = run(t, vault, "", "entry", "show", "--id", second)
	assert.Error(t, err)

	_, err = run(t, vault, "", "entry", "clear")
	assert.ErrorContains(t, err, "--yes")

	out, err = run(t, vault, "", "entry", "clear", "--yes")
	require.NoError(t, err)
	assert.Equal(t, "cleared 1 entries\n", out)

	out, err = run(t, vault, "", "entry", "list")
	require.NoError(t, err)
	assert.Equal(t, "no entries\n", out)
}

func TestRequiredFlags(t *testing.T) {
	vault := t.TempDir()
	for _, args := range [][]string{
		{"entry", "show"},
		{"entry", "edit", "--content", "x"},
		{"entry", "delete"},
		{"insights", "clarity"},
	} {
		_, err := run(t, vault, "", args...)
		assert.ErrorContains(t, err, "--id is required", strings.Join(args, " "))
	}
}

func TestInsightsCommands(t *testing.T) {
	vault := t.TempDir()

	out, err := run(t, vault, "", "insights", "sentiment", "calm", "and", "grateful")
	require.NoError(t, err)
	assert.Contains(t, out, "+1.00 (positive)")

	out, err = run(t, vault, "", "insights", "weekly")
	require.NoError(t, err)
	assert.Equal(t, "No entries yet for a weekly reflection.\n", out)

	out, err = run(t, vault, "", "demo", "seed")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "seeded "))

	out, err = run(t, vault, "", "insights", "weekly")
	require.NoError(t, err)
	assert.Contains(t, out, "Overall, your writing")

	out, err = run(t, vault, "", "insights", "prompts")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 3)

	out, err = run(t, vault, "", "insights", "themes")
	require.NoError(t, err)
	assert.NotEqual(t, "no themes yet\n", out)

	out, err = run(t, vault, "", "insights", "overview")
	require.NoError(t, err)
	assert.Contains(t, out, `"entry_count"`)

	_, err = run(t, vault, "", "reindex")
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(vault, ".mdjournal", "mdjournal.db"))
	assert.NoError(t, err)
}

func TestConfigCommands(t *testing.T) {
	vault := t.TempDir()

	out, err := run(t, vault, "", "config", "init")
	require.NoError(t, err)
	path := filepath.Join(vault, ".mdjournal", "config.toml")
	assert.Equal(t, "wrote "+path+"\n", out)
	assert.FileExists(t, path)

	_, err = run(t, vault, "", "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = run(t, vault, "", "config", "init", "--force")
	require.NoError(t, err)

	out, err = run(t, vault, "", "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "series.limit: 14\n")
	assert.Contains(t, out, "file: "+path+"\n")
}
