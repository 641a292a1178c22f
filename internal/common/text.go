package common

import "strings"

// Lines splits input into trimmed, non-empty lines.
func Lines(input string) []string {
	raw := strings.Split(input, "\n")
	lines := make([]string, 0, len(raw))

	for _, line := range raw {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}

	return lines
}

// After returns the text following the first sep in s, trimmed. When sep is
// absent it returns s trimmed.
func After(s, sep string) string {
	if _, rest, ok := strings.Cut(s, sep); ok {
		return strings.TrimSpace(rest)
	}

	return strings.TrimSpace(s)
}
