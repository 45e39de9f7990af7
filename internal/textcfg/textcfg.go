// Package textcfg implements the line based configuration formats used by the
// portfolio backend: plain key=value files for singleton settings and
// [section] bracketed files for portfolio content.
package textcfg

import (
	"sort"
	"strings"
)

// ParseKV parses key=value lines into a map.
// Blank lines, lines starting with # and lines without a = are ignored.
// Only the first = separates key from value, both sides are trimmed.
// A later duplicate key overwrites an earlier one.
func ParseKV(text string) map[string]string {
	out := make(map[string]string)

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}

		out[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	return out
}

// RenderKV renders a map as key=value lines, one per line, keys sorted for a
// stable file layout. Values containing = or newlines are written as-is, the
// format does no escaping.
func RenderKV(kv map[string]string) string {
	keys := make([]string, 0, len(kv))
	for k := range kv {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k)
		b.WriteString("=")
		b.WriteString(kv[k])
		b.WriteString("\n")
	}

	return b.String()
}

// ParseSections parses [name] bracketed text into a map of sections.
// A header line opens a new section keyed by the lowercased name, overwriting
// any previous section of the same name. key=value lines attach to the open
// section. Lines before any header are dropped.
func ParseSections(text string) map[string]map[string]string {
	sections := make(map[string]map[string]string)

	var current map[string]string

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			name := strings.ToLower(line[1 : len(line)-1])
			current = make(map[string]string)
			sections[name] = current

			continue
		}

		if current == nil {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}

		current[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	return sections
}
