package application_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/witcheck/witcheck/internal/application"
	"github.com/witcheck/witcheck/internal/domain"
)

// stubExtractor returns canned WIT text or a canned error.
type stubExtractor struct {
	text string
	err  error
}

func (s *stubExtractor) Extract(_ context.Context, _ string) (string, error) {
	return s.text, s.err
}

// stubGit reports a fixed commit.
type stubGit struct {
	repo   bool
	commit string
}

func (s *stubGit) IsGitRepo(string) bool { return s.repo }
func (s *stubGit) CommitHash(string) (string, error) {
	return s.commit, nil
}

const actualWIT = `interface data-structures
{
  create-hash-table: func(name: string) -> bool;
  get: func(table: string, key: string) -> option<string>;
}
`

const expectedWIT = `interface data-structures
{
  create-hash-table: func(name: string) -> bool;
  get: func(table: string, key: string) -> option<string>;
}

world data-world {
  export example:data-structures/data-structures@1.0.0;
}
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newService(ex domain.InterfaceExtractor) *application.ValidateService {
	return application.NewValidateService(ex, &stubGit{}, zap.NewNop())
}

func TestValidate_Pass(t *testing.T) {
	dir := t.TempDir()
	component := writeFile(t, dir, "app.wasm", "fake binary")
	witFile := writeFile(t, dir, "app.wit", expectedWIT)
	svc := newService(&stubExtractor{text: actualWIT})

	result, err := svc.Validate(context.Background(), component, witFile, "data-world", false)

	require.NoError(t, err)
	assert.True(t, result.Passed)
	assert.Equal(t, "data-world", result.World)
	assert.Equal(t, component, result.Component)
}

func TestValidate_MissingFunctionFails(t *testing.T) {
	dir := t.TempDir()
	component := writeFile(t, dir, "app.wasm", "fake binary")
	witFile := writeFile(t, dir, "app.wit", expectedWIT)
	partial := "interface data-structures\n{\n  get: func(table: string, key: string) -> option<string>;\n}\n"
	svc := newService(&stubExtractor{text: partial})

	result, err := svc.Validate(context.Background(), component, witFile, "data-world", false)

	require.NoError(t, err)
	assert.False(t, result.Passed)
	require.Len(t, result.Interfaces, 1)
	assert.Equal(t, []string{"create-hash-table"}, result.Interfaces[0].Missing)
}

func TestValidate_ComponentMissingOnDisk(t *testing.T) {
	dir := t.TempDir()
	witFile := writeFile(t, dir, "app.wit", expectedWIT)
	svc := newService(&stubExtractor{text: actualWIT})

	_, err := svc.Validate(context.Background(), filepath.Join(dir, "nope.wasm"), witFile, "w", false)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "component file not found")
}

func TestValidate_WitFileMissingOnDisk(t *testing.T) {
	dir := t.TempDir()
	component := writeFile(t, dir, "app.wasm", "fake binary")
	svc := newService(&stubExtractor{text: actualWIT})

	_, err := svc.Validate(context.Background(), component, filepath.Join(dir, "nope.wit"), "w", false)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "WIT file not found")
}

func TestValidate_ExtractionFailureIsFatal(t *testing.T) {
	dir := t.TempDir()
	component := writeFile(t, dir, "app.wasm", "fake binary")
	witFile := writeFile(t, dir, "app.wit", expectedWIT)
	svc := newService(&stubExtractor{err: domain.ErrToolNotFound})

	_, err := svc.Validate(context.Background(), component, witFile, "w", false)

	assert.ErrorIs(t, err, domain.ErrToolNotFound)
}

func TestValidate_FailOnExtra(t *testing.T) {
	dir := t.TempDir()
	component := writeFile(t, dir, "app.wasm", "fake binary")
	witFile := writeFile(t, dir, "app.wit", "interface data-structures\n{\n  get: func() -> bool;\n}\n")
	extra := "interface data-structures\n{\n  get: func() -> bool;\n  debug-dump: func() -> string;\n}\n"
	svc := newService(&stubExtractor{text: extra})

	relaxed, err := svc.Validate(context.Background(), component, witFile, "w", false)
	require.NoError(t, err)
	assert.True(t, relaxed.Passed)

	strict, err := svc.Validate(context.Background(), component, witFile, "w", true)
	require.NoError(t, err)
	assert.False(t, strict.Passed)
}

func TestValidate_NamingWarningsFromSpec(t *testing.T) {
	dir := t.TempDir()
	component := writeFile(t, dir, "app.wasm", "fake binary")
	witFile := writeFile(t, dir, "app.wit", "interface api\n{\n  createHashTable: func() -> bool;\n}\n")
	svc := newService(&stubExtractor{text: "interface api\n{\n  createHashTable: func() -> bool;\n}\n"})

	result, err := svc.Validate(context.Background(), component, witFile, "w", false)

	require.NoError(t, err)
	assert.True(t, result.Passed, "naming warnings must not affect the verdict")
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, "create-hash-table", result.Warnings[0].Suggestion)
}

func TestValidate_CommitStamp(t *testing.T) {
	dir := t.TempDir()
	component := writeFile(t, dir, "app.wasm", "fake binary")
	witFile := writeFile(t, dir, "app.wit", expectedWIT)
	svc := application.NewValidateService(
		&stubExtractor{text: actualWIT},
		&stubGit{repo: true, commit: "abc1234def"},
		zap.NewNop(),
	)

	result, err := svc.Validate(context.Background(), component, witFile, "w", false)

	require.NoError(t, err)
	assert.Equal(t, "abc1234def", result.Commit)
}
