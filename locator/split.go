package locator

import "strings"

// SeparateScriptCommands splits raw script text into individual command
// texts. A line whose trimmed content equals separator (case-insensitive)
// ends the current command; the separator line itself is discarded. Every
// command is trimmed and blank commands are dropped.
//
// With an empty separator the whole text becomes a single command; empty
// text yields no commands either way.
func SeparateScriptCommands(text, separator string) []string {
	if separator == "" {
		trimmed := strings.TrimSpace(text)
		if trimmed == "" {
			return nil
		}
		return []string{trimmed}
	}

	var (
		commands []string
		current  strings.Builder
	)
	flush := func() {
		segment := strings.TrimSpace(current.String())
		if segment != "" {
			commands = append(commands, segment)
		}
		current.Reset()
	}

	for _, line := range strings.Split(text, "\n") {
		if strings.EqualFold(strings.TrimSpace(line), separator) {
			flush()
			continue
		}
		current.WriteString(line)
		current.WriteString("\n")
	}
	flush()

	return commands
}
