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
	"pkt.systems/pslog"
)

const sampleJSON = `{"id":"REQUEST","code":400,"attached":[{"id":"PARSE","description":"bad input"},{"id":"AUTH"}]}`

func executeRootCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCommand(pslog.NewStructured(context.Background(), io.Discard))
	var out bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRenderFromStdin(t *testing.T) {
	out, err := executeRootCommand(t, sampleJSON, "render")
	require.NoError(t, err)
	assert.Equal(t, "REQUEST [400]\n> PARSE (bad input)\n> AUTH\n", out)
}

func TestRenderFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "failure.yaml")
	require.NoError(t, os.WriteFile(path, []byte("id: DISK\ninformation: sda1\n"), 0o600))

	out, err := executeRootCommand(t, "", "render", "--format", "yaml", path)
	require.NoError(t, err)
	assert.Equal(t, "DISK sda1\n", out)
}

func TestRenderFormatFromEnv(t *testing.T) {
	t.Setenv("FAILURECTL_FORMAT", "toml")
	out, err := executeRootCommand(t, "id = \"FROM_TOML\"\ncode = 3\n", "render", "-")
	require.NoError(t, err)
	assert.Equal(t, "FROM_TOML [3]\n", out)
}

func TestRenderMissingID(t *testing.T) {
	_, err := executeRootCommand(t, `{"code":1}`, "render")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `missing required field "id"`)
}

func TestRenderUnsupportedFormat(t *testing.T) {
	_, err := executeRootCommand(t, sampleJSON, "render", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported --format")
}

func TestConvertJSONToYAML(t *testing.T) {
	out, err := executeRootCommand(t, `{"id":"EXAMPLE","code":100,"description":"DESCRIPTION","information":"INFO"}`, "convert")
	require.NoError(t, err)
	assert.Equal(t, "id: EXAMPLE\ncode: 100\ndescription: DESCRIPTION\ninformation: INFO\n", out)
}

func TestConvertYAMLToJSON(t *testing.T) {
	out, err := executeRootCommand(t, "information: INFO\nid: EXAMPLE\n", "convert", "--from", "yaml", "--to", "json")
	require.NoError(t, err)
	assert.Equal(t, `{"id":"EXAMPLE","information":"INFO"}`+"\n", out)
}

func TestConvertRoundTripThroughTOML(t *testing.T) {
	tomlOut, err := executeRootCommand(t, sampleJSON, "convert", "--to", "toml")
	require.NoError(t, err)

	out, err := executeRootCommand(t, tomlOut, "convert", "--from", "toml", "--to", "json")
	require.NoError(t, err)
	assert.Equal(t, sampleJSON+"\n", out)
}

func TestConvertEnvOverridesDefaults(t *testing.T) {
	t.Setenv("FAILURECTL_FROM", "yaml")
	t.Setenv("FAILURECTL_TO", "json")
	out, err := executeRootCommand(t, "id: ENV\n", "convert")
	require.NoError(t, err)
	assert.Equal(t, `{"id":"ENV"}`+"\n", out)
}

func TestConvertMissingFile(t *testing.T) {
	_, err := executeRootCommand(t, "", "convert", filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read input")
}
