// Package wit extracts export surfaces from WIT (WebAssembly Interface Type)
// text. It is not a WIT grammar: it recognizes just enough of the surface
// syntax to answer "which interfaces and functions does this text export",
// and silently skips everything else. Toolchains disagree on formatting, so
// the scanner favors tolerance over completeness.
package wit

import (
	"sort"
	"strings"
)

// ExportMap maps an interface identifier to the set of function names it
// exports. Keys may be bare interface names ("data-structures") or fully
// qualified versioned identifiers
// ("example:data-structures/data-structures@1.0.0"), depending on which
// toolchain emitted the text. A key with an empty set is an interface that
// was declared (e.g. a world-level export line) but whose functions were not
// enumerated.
type ExportMap map[string]map[string]bool

// Add registers an interface with an empty function set if absent.
func (m ExportMap) Add(iface string) {
	if _, ok := m[iface]; !ok {
		m[iface] = map[string]bool{}
	}
}

// AddFunction registers a function under an interface, creating the
// interface entry if needed. Duplicates collapse.
func (m ExportMap) AddFunction(iface, fn string) {
	m.Add(iface)
	m[iface][fn] = true
}

// Interfaces returns the interface identifiers in sorted order.
func (m ExportMap) Interfaces() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Functions returns the sorted function names of an interface, or nil if the
// interface is unknown or empty.
func (m ExportMap) Functions(iface string) []string {
	set := m[iface]
	if len(set) == 0 {
		return nil
	}
	fns := make([]string, 0, len(set))
	for fn := range set {
		fns = append(fns, fn)
	}
	sort.Strings(fns)
	return fns
}

// ParseExports scans WIT text and returns its export surface. It never
// fails: unparseable lines are skipped. The scanner is a single forward pass
// holding one piece of state, the interface block it is currently inside.
//
// Known limitation: a lone "}" line always ends the current interface block,
// so a multi-line type body closing on its own line would end the block
// early. Emitted WIT from current toolchains does not produce that shape.
func ParseExports(text string) ExportMap {
	exports := ExportMap{}
	current := ""

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)

		switch {
		// World-level export by reference: "export example:app/app@1.0.0;"
		case strings.HasPrefix(line, "export ") && strings.Contains(line, "@"):
			name := strings.TrimPrefix(line, "export ")
			if i := strings.Index(name, ";"); i >= 0 {
				name = name[:i]
			}
			if name = strings.TrimSpace(name); name != "" {
				exports.Add(name)
			}

		// Interface block opener. The brace, when present, sits on a later
		// line in the shapes this scanner accepts.
		case strings.HasPrefix(line, "interface ") && !strings.Contains(line, "{"):
			if name := strings.TrimSpace(strings.TrimPrefix(line, "interface ")); name != "" {
				current = name
				exports.Add(current)
			}

		// Function signature inside the current interface:
		// "create-hash-table: func(name: string) -> bool;"
		case current != "" && strings.Contains(line, ": func(") && !strings.HasPrefix(line, "//"):
			if i := strings.Index(line, ":"); i > 0 {
				if fn := strings.TrimSpace(line[:i]); fn != "" {
					exports.AddFunction(current, fn)
				}
			}

		case line == "}" && current != "":
			current = ""
		}
	}

	return exports
}
