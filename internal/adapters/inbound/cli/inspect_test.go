package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/witcheck/witcheck/internal/adapters/inbound/cli"
)

// coreModule is a minimal valid core wasm module padded past the
// minimum-size threshold with a custom section.
func coreModule() []byte {
	header := []byte("\x00asm\x01\x00\x00\x00")
	section := append([]byte{0x00, 0x62, 0x07}, []byte("padding")...)
	section = append(section, make([]byte, 90)...)
	return append(header, section...)
}

func writeArtifact(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestInspectCommand_ValidCoreModule(t *testing.T) {
	dir := t.TempDir()
	artifact := writeArtifact(t, dir, "module.wasm", coreModule())
	// Core modules carry no component WIT; the stub tool rejects them the
	// way wasm-tools would, which must not fail the inspection.
	tool := writeStubTool(t, `echo "not a component" >&2; exit 1`)

	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"inspect", artifact, "--wasm-tools", tool})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "1/1 components valid")
}

func TestInspectCommand_InvalidArtifactFails(t *testing.T) {
	dir := t.TempDir()
	artifact := writeArtifact(t, dir, "tiny.wasm", []byte("too small"))

	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"inspect", artifact})

	require.Error(t, cmd.Execute())
	assert.Contains(t, buf.String(), "0/1 components valid")
}

func TestInspectCommand_JSON(t *testing.T) {
	dir := t.TempDir()
	artifact := writeArtifact(t, dir, "module.wasm", coreModule())
	tool := writeStubTool(t, `exit 1`)

	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"inspect", artifact, "--wasm-tools", tool, "--json"})

	require.NoError(t, cmd.Execute())

	var summary map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &summary), "output should be valid JSON")
	assert.Equal(t, true, summary["all_valid"])
	assert.Contains(t, summary, "reports")
}

func TestInspectCommand_RequiresArgs(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"inspect"})

	assert.Error(t, cmd.Execute())
}

func TestVersionCommand(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "witcheck")
}
