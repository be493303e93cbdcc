package analysis

import "strings"

// extractJSON pulls the JSON payload out of free-form model output. Models
// usually wrap their JSON in a fenced block, sometimes tagged, sometimes
// not; failing both, the raw text is handed to the decoder as-is. A fence
// left unterminated (token-capped responses get cut off) yields everything
// after the opening marker. This is a tolerant heuristic, not a grammar: it
// must always produce a candidate, never an error.
func extractJSON(content string) string {
	if idx := strings.Index(content, "```json"); idx >= 0 {
		return trimFenced(content[idx+len("```json"):])
	}
	if idx := strings.Index(content, "```"); idx >= 0 {
		return trimFenced(content[idx+len("```"):])
	}
	return strings.TrimSpace(content)
}

func trimFenced(rest string) string {
	if end := strings.Index(rest, "```"); end >= 0 {
		rest = rest[:end]
	}
	return strings.TrimSpace(rest)
}
