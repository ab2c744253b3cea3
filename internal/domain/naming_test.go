package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/witcheck/witcheck/internal/domain"
)

func TestLintExportNames_KebabCaseClean(t *testing.T) {
	expected := exportMap(map[string][]string{"data-structures": {"create-hash-table", "get"}})

	assert.Empty(t, domain.LintExportNames(expected))
}

func TestLintExportNames_CamelCaseFlagged(t *testing.T) {
	expected := exportMap(map[string][]string{"data-structures": {"createHashTable"}})

	warnings := domain.LintExportNames(expected)

	require.Len(t, warnings, 1)
	assert.Equal(t, "data-structures", warnings[0].Interface)
	assert.Equal(t, "createHashTable", warnings[0].Function)
	assert.Equal(t, "create-hash-table", warnings[0].Suggestion)
}

func TestLintExportNames_SnakeCaseFlagged(t *testing.T) {
	expected := exportMap(map[string][]string{"math": {"add_numbers"}})

	warnings := domain.LintExportNames(expected)

	require.Len(t, warnings, 1)
	assert.Equal(t, "add-numbers", warnings[0].Suggestion)
}

func TestLintExportNames_MixedCaseSuggestions(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"add_numbers", "add-numbers"},
		{"fetchUser_data", "fetch-user-data"},
		{"parse_WIT_text", "parse-wit-text"},
		{"__trailing_", "trailing"},
	}

	for _, tt := range tests {
		expected := exportMap(map[string][]string{"api": {tt.name}})

		warnings := domain.LintExportNames(expected)

		require.Len(t, warnings, 1, tt.name)
		assert.Equal(t, tt.want, warnings[0].Suggestion, tt.name)
	}
}

func TestLintExportNames_DeterministicOrder(t *testing.T) {
	expected := exportMap(map[string][]string{
		"b-iface": {"zNine", "aOne"},
		"a-iface": {"midWord"},
	})

	warnings := domain.LintExportNames(expected)

	require.Len(t, warnings, 3)
	assert.Equal(t, "a-iface", warnings[0].Interface)
	assert.Equal(t, "aOne", warnings[1].Function)
	assert.Equal(t, "zNine", warnings[2].Function)
}
