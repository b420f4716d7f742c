package domain

import (
	"strings"
	"unicode"
)

// ThemePlaceholder marks where a submission prompt wants the game theme.
const ThemePlaceholder = "【テーマ】"

// RenderPrompt substitutes theme for every ThemePlaceholder in prompt.
func RenderPrompt(prompt, theme string) string {
	return strings.ReplaceAll(prompt, ThemePlaceholder, theme)
}

// NormalizeTheme prepares a theme for storage:
//   - trims leading/trailing whitespace, ideographic space included
//   - compresses runs of whitespace into a single ASCII space
//
// Case and width are preserved.
func NormalizeTheme(theme string) string {
	var b strings.Builder
	b.Grow(len(theme))
	pendingSpace := false
	for _, r := range theme {
		if unicode.IsSpace(r) {
			pendingSpace = b.Len() > 0
			continue
		}
		if pendingSpace {
			b.WriteByte(' ')
			pendingSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
