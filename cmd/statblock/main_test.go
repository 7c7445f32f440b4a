package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/statblock-importer/internal/entities/schema"
	"github.com/KirkDiggler/statblock-importer/internal/errors"
	"github.com/KirkDiggler/statblock-importer/internal/testutils"
)

func writeStatBlock(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "statblock.md")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(append(args, "--log-level", "error"))
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestParseCommand_Actor(t *testing.T) {
	out, err := execute(t, "parse", writeStatBlock(t, testutils.GoblinStatBlock), "--schema", "actor")
	require.NoError(t, err)

	var got schema.Actor
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "Goblin", got.Name)
	assert.Equal(t, 15, got.Data.Attributes.AC.Value)
}

func TestParseCommand_Malformed(t *testing.T) {
	_, err := execute(t, "parse", writeStatBlock(t, testutils.MalformedStatBlock), "--schema", "import")
	require.Error(t, err)
	assert.Equal(t, 65, errors.GetCode(err).ExitCode())
}

func TestImportCommand_DryRun(t *testing.T) {
	out, err := execute(t, "import", writeStatBlock(t, testutils.GoblinStatBlock), "--dry-run")
	require.NoError(t, err)

	var got actorReport
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "actor_1", got.ActorID)
	assert.Len(t, got.Items, 3)
	assert.Empty(t, got.Failures)
}

func TestRender(t *testing.T) {
	report := &actorReport{ActorID: "actor_1", Actor: &schema.Actor{Name: "Goblin"}}

	var buf bytes.Buffer
	require.NoError(t, render(&buf, formatYAML, report))
	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "actor_1", decoded["actorId"])

	buf.Reset()
	require.NoError(t, render(&buf, formatJSON, report))
	assert.True(t, strings.HasPrefix(buf.String(), "{\n  "))

	err := render(&buf, "toml", report)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestReadInput(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetIn(strings.NewReader("> ## Goblin"))

	text, err := readInput(cmd, nil)
	require.NoError(t, err)
	assert.Equal(t, "> ## Goblin", text)

	text, err = readInput(cmd, []string{writeStatBlock(t, "> ## Orc")})
	require.NoError(t, err)
	assert.Equal(t, "> ## Orc", text)

	_, err = readInput(cmd, []string{filepath.Join(t.TempDir(), "missing.md")})
	assert.True(t, errors.IsNotFound(err))
}
