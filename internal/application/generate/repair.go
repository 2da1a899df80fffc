package generate

import "strings"

// CleanResponse strips markdown code fences and any prose the model wrapped
// around the JSON object, keeping the substring between the first '{' and the
// last '}'.
func CleanResponse(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```json") {
		content = strings.ReplaceAll(content, "```json", "")
		content = strings.ReplaceAll(content, "```", "")
		content = strings.TrimSpace(content)
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimSpace(strings.ReplaceAll(content, "```", ""))
	}

	if start := strings.Index(content, "{"); start > 0 {
		content = content[start:]
	}
	if end := strings.LastIndex(content, "}"); end != -1 {
		content = content[:end+1]
	}

	return content
}

// RepairJSON attempts a best-effort fix of a truncated JSON payload. It scans
// the text tracking string state and the stack of open '{'/'[' delimiters,
// then closes a dangling string and appends the missing closers in nesting
// order. The second return value reports whether a repair was produced; the
// result still has to survive parsing and validation at the call site.
func RepairJSON(content string) (string, bool) {
	var stack []byte
	inString := false
	escaped := false

	for i := 0; i < len(content); i++ {
		ch := content[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			stack = append(stack, '}')
		case '[':
			stack = append(stack, ']')
		case '}', ']':
			if len(stack) > 0 && stack[len(stack)-1] == ch {
				stack = stack[:len(stack)-1]
			}
		}
	}

	if len(stack) == 0 {
		return "", false
	}

	var repaired strings.Builder
	if inString {
		repaired.WriteString(content)
		repaired.WriteByte('"')
	} else {
		// A truncation right after a comma would leave the closers
		// unparseable, so drop it.
		trimmed := strings.TrimRight(content, " \t\r\n")
		trimmed = strings.TrimSuffix(trimmed, ",")
		repaired.WriteString(trimmed)
	}
	for i := len(stack) - 1; i >= 0; i-- {
		repaired.WriteByte(stack[i])
	}

	return repaired.String(), true
}
