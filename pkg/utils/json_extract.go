package utils

import "strings"

// ExtractJSONObject strips markdown fences and pulls the first balanced {...}
// substring out of a model reply. LLMs routinely wrap JSON in prose even when
// told not to.
func ExtractJSONObject(response string) (string, error) {
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```JSON", "")
	response = strings.ReplaceAll(response, "```", "")
	response = strings.TrimSpace(response)

	start := strings.Index(response, "{")
	if start == -1 {
		return "", ErrNoJSONObjectInReply
	}
	end := findMatchingBrace(response, start)
	if end == -1 {
		return "", ErrNoJSONObjectInReply
	}
	return response[start : end+1], nil
}

// findMatchingBrace finds the matching closing brace for an opening brace,
// skipping braces inside string literals.
func findMatchingBrace(s string, start int) int {
	if start >= len(s) || s[start] != '{' {
		return -1
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		char := s[i]

		if escaped {
			escaped = false
			continue
		}

		if char == '\\' && inString {
			escaped = true
			continue
		}

		if char == '"' {
			inString = !inString
			continue
		}

		if inString {
			continue
		}

		switch char {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}
