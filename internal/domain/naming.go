package domain

import (
	"strings"
	"unicode"

	"github.com/fatih/camelcase"
	"github.com/witcheck/witcheck/internal/domain/wit"
)

// NamingWarning flags an expected export whose name is not kebab-case. WIT
// function names are kebab-case by convention; a camelCase name in a
// specification usually means it was transcribed from source code and will
// never match what the toolchain emits.
type NamingWarning struct {
	Interface  string `json:"interface"`
	Function   string `json:"function"`
	Suggestion string `json:"suggestion"`
}

// LintExportNames scans an expected export map and returns warnings for
// non-kebab-case function names, each with a suggested spelling. Warnings
// never affect the validation verdict.
func LintExportNames(expected wit.ExportMap) []NamingWarning {
	var warnings []NamingWarning
	for _, iface := range expected.Interfaces() {
		for _, fn := range expected.Functions(iface) {
			if isKebabCase(fn) {
				continue
			}
			warnings = append(warnings, NamingWarning{
				Interface:  iface,
				Function:   fn,
				Suggestion: kebabCase(fn),
			})
		}
	}
	return warnings
}

func isKebabCase(name string) bool {
	for _, r := range name {
		if unicode.IsUpper(r) || r == '_' {
			return false
		}
	}
	return true
}

// kebabCase rewrites camelCase or snake_case into kebab-case:
// "createHashTable" -> "create-hash-table", "add_numbers" -> "add-numbers".
func kebabCase(name string) string {
	var words []string
	for _, segment := range strings.Split(name, "_") {
		if segment == "" {
			continue
		}
		for _, w := range camelcase.Split(segment) {
			words = append(words, strings.ToLower(w))
		}
	}
	return strings.Join(words, "-")
}
