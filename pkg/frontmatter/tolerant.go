package frontmatter

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v2"
)

// tolerant recovers fields from a block that does not parse as a yaml mapping.
//
// The block is cut into top-level entries: a "key:" line and the indented or list
// lines that follow it. Each entry is decoded on its own, so block scalars, lists
// and nested mappings keep their values. Entries are assigned in order: a repeated
// field ends up with its last value, at the position of its first occurrence.
// An entry which is not valid yaml falls back to its raw "key: value" text.
func tolerant(block []byte) (*Header, bool) {
	h := NewHeader()
	for _, entry := range entries(block) {
		var items yaml.MapSlice
		if err := yaml.Unmarshal([]byte(strings.Join(entry, "\n")), &items); err == nil && len(items) > 0 {
			for _, item := range items {
				h.Set(fmt.Sprint(item.Key), item.Value)
			}
			continue
		}
		if key, value, ok := lineValue(entry); ok {
			h.Set(key, value)
		}
	}
	return h, h.Len() > 0
}

// entries groups the lines of a block by top-level field
func entries(block []byte) [][]string {
	var (
		groups  [][]string
		current []string
	)
	for _, raw := range strings.Split(string(block), "\n") {
		line := strings.TrimRight(raw, "\r")
		if isTopLevel(line) {
			if current != nil {
				groups = append(groups, current)
			}
			current = []string{line}
			continue
		}
		if current != nil {
			current = append(current, line)
		}
	}
	if current != nil {
		groups = append(groups, current)
	}
	return groups
}

// isTopLevel is true for lines starting a new field: not indented, not a comment
// and not an item of a list declared at the same indentation as its key
func isTopLevel(line string) bool {
	if line == "" {
		return false
	}
	switch line[0] {
	case ' ', '\t', '#', '-':
		return false
	}
	return true
}

// lineValue reads an entry which is not valid yaml as plain text: the value of
// the first line, or the "- item" lines following an empty value.
func lineValue(entry []string) (string, interface{}, bool) {
	line := entry[0]
	idx := strings.Index(line, ":")
	if idx <= 0 {
		return "", nil, false
	}
	key := unquote(strings.TrimSpace(line[:idx]))
	if key == "" {
		return "", nil, false
	}
	value := strings.TrimSpace(line[idx+1:])
	if value != "" {
		return key, scalarOrFlow(value), true
	}

	var items []interface{}
	for _, next := range entry[1:] {
		trimmed := strings.TrimSpace(next)
		if trimmed == "-" || strings.HasPrefix(trimmed, "- ") {
			items = append(items, unquote(strings.TrimSpace(strings.TrimPrefix(trimmed, "-"))))
		}
	}
	if items == nil {
		return key, nil, true
	}
	return key, items, true
}

// scalarOrFlow keeps a value as a string, unless it is a well-formed flow sequence
// such as [a, b].
func scalarOrFlow(value string) interface{} {
	if strings.HasPrefix(value, "[") && strings.HasSuffix(value, "]") {
		var items []interface{}
		if err := yaml.Unmarshal([]byte(value), &items); err == nil {
			return items
		}
	}
	return unquote(value)
}

func unquote(s string) string {
	if len(s) < 2 {
		return s
	}
	first, last := s[0], s[len(s)-1]
	if (first == '"' || first == '\'') && first == last {
		return s[1 : len(s)-1]
	}
	return s
}
