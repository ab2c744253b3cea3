package domain

import (
	"sort"
	"strings"

	"github.com/witcheck/witcheck/internal/domain/wit"
)

// ValidationResult is the outcome of checking a component's actual export
// surface against an expected WIT specification. It is a single-run value:
// computed fresh per invocation, never persisted.
type ValidationResult struct {
	Component  string          `json:"component,omitempty"`
	WitFile    string          `json:"wit_file,omitempty"`
	World      string          `json:"world,omitempty"`
	Commit     string          `json:"commit,omitempty"`
	Passed     bool            `json:"passed"`
	Interfaces []InterfaceDiff `json:"interfaces"`
	Warnings   []NamingWarning `json:"warnings,omitempty"`
}

// InterfaceDiff is the per-interface comparison for one expected interface.
// Missing functions fail the run; extra functions are informational.
type InterfaceDiff struct {
	Name     string   `json:"name"`
	Found    bool     `json:"found"`
	Expected int      `json:"expected_functions"`
	Missing  []string `json:"missing_functions,omitempty"`
	Extra    []string `json:"extra_functions,omitempty"`
}

// Failed reports whether this interface fails validation: either no actual
// interface matched it, or expected functions are absent.
func (d InterfaceDiff) Failed() bool {
	return !d.Found || len(d.Missing) > 0
}

// CompareExports diffs a component's actual exports against an expected
// specification. The comparison is expected-centric: interfaces present only
// in actual are never reported, and an expected interface with no enumerated
// functions carries no checkable contract and is skipped.
//
// Interface identity is bidirectional substring containment, so a bare name
// like "data-structures" matches a fully qualified
// "example:data-structures/data-structures@1.0.0" and vice versa.
func CompareExports(actual, expected wit.ExportMap) *ValidationResult {
	result := &ValidationResult{Passed: true}

	for _, name := range expected.Interfaces() {
		expectedFns := expected[name]
		if len(expectedFns) == 0 {
			continue
		}

		// Union the functions of every actual interface that matches.
		actualFns := map[string]bool{}
		for _, compIface := range actual.Interfaces() {
			if interfacesMatch(name, compIface) {
				for fn := range actual[compIface] {
					actualFns[fn] = true
				}
			}
		}

		diff := InterfaceDiff{
			Name:     name,
			Found:    len(actualFns) > 0,
			Expected: len(expectedFns),
		}

		if diff.Found {
			diff.Missing = difference(expectedFns, actualFns)
			diff.Extra = difference(actualFns, expectedFns)
		}

		if diff.Failed() {
			result.Passed = false
		}
		result.Interfaces = append(result.Interfaces, diff)
	}

	return result
}

// EnforceNoExtra escalates extra functions from warnings to failures.
// Opt-in via the fail_on_extra config; the default leaves extras
// informational.
func (r *ValidationResult) EnforceNoExtra() {
	for _, d := range r.Interfaces {
		if len(d.Extra) > 0 {
			r.Passed = false
			return
		}
	}
}

// interfacesMatch tolerates versioned and qualified identifiers on either
// side by testing substring containment in both directions.
func interfacesMatch(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// difference returns the sorted elements of a not present in b.
func difference(a, b map[string]bool) []string {
	var out []string
	for k := range a {
		if !b[k] {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}
