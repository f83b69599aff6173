package compose

import "strings"

// WrapText greedily breaks text into lines that each fit within maxWidth
// pixels at the given family and size. A single word wider than maxWidth is
// placed alone on its own line and allowed to overflow horizontally; words
// are never split. Empty input yields no lines.
func WrapText(m Metrics, text, family string, size, maxWidth int) ([]string, error) {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil, nil
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		width, _, err := m.Measure(candidate, family, size)
		if err != nil {
			return nil, err
		}
		if width > maxWidth {
			lines = append(lines, current)
			current = word
			continue
		}
		current = candidate
	}
	lines = append(lines, current)

	return lines, nil
}
