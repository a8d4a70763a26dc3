package gemini

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/custodia-labs/resumebuddy/internal/core/domain"
)

// rawPreviewLength is how many characters of unparseable text an error carries.
const rawPreviewLength = 200

var (
	jsonFence  = regexp.MustCompile("```json\n?")
	plainFence = regexp.MustCompile("```\n?")
)

// CleanJSON strips markdown code fences the model sometimes wraps JSON in.
// Every "```json" is removed first, then every remaining "```", each with
// one optional trailing newline, and the result is trimmed.
func CleanJSON(text string) string {
	text = jsonFence.ReplaceAllString(text, "")
	text = plainFence.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// Decode cleans text and unmarshals it into out.
// Failures return *domain.MalformedResponseError carrying a prefix of the
// original, uncleaned text.
func Decode(text string, out any) error {
	if err := json.Unmarshal([]byte(CleanJSON(text)), out); err != nil {
		return &domain.MalformedResponseError{Raw: preview(text), Err: err}
	}
	return nil
}

func preview(text string) string {
	runes := []rune(text)
	if len(runes) <= rawPreviewLength {
		return text
	}
	return string(runes[:rawPreviewLength])
}
