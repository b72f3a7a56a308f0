package analysis

import (
	"encoding/json"
	"strings"
	"unicode/utf8"
)

// parseStructured interprets a raw model response as JSON conforming to out's
// shape. It strips markdown code fences and repairs common JSON defects
// before unmarshaling; anything beyond that is the caller's error to report.
func parseStructured(raw string, out any) error {
	text := strings.TrimSpace(raw)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)
	text = repairJSON(text)
	return json.Unmarshal([]byte(text), out)
}

// truncate returns a deterministic prefix of at most max bytes, backing up to
// the nearest rune boundary so the cut never splits a UTF-8 sequence. The cut
// may still land mid-sentence; callers tolerate that.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
