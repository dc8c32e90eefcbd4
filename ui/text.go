package ui

import (
	"strings"
	"unicode"
)

// TextWrapMode specifies how text is broken into lines.
type TextWrapMode int

const (
	// WrapModeWord wraps at word boundaries (default for Latin text).
	WrapModeWord TextWrapMode = iota
	// WrapModeChar wraps at character boundaries (for CJK or dense text).
	WrapModeChar
	// WrapModeAuto picks WrapModeChar for text containing CJK runes,
	// WrapModeWord otherwise.
	WrapModeAuto
)

// WrapText breaks text into lines no wider than maxWidth, measured with
// the context's active font. Explicit newlines always break; maxWidth <= 0
// disables width wrapping. TextWrapped and Tooltip render through this.
func WrapText(ctx *Context, text string, maxWidth float32, mode TextWrapMode) []string {
	if mode == WrapModeAuto {
		mode = WrapModeWord
		if containsCJK(text) {
			mode = WrapModeChar
		}
	}

	var lines []string
	for _, para := range strings.Split(text, "\n") {
		if maxWidth <= 0 || para == "" {
			lines = append(lines, para)
			continue
		}
		if mode == WrapModeChar {
			lines = append(lines, wrapRunes(ctx, para, maxWidth)...)
		} else {
			lines = append(lines, wrapWords(ctx, para, maxWidth)...)
		}
	}
	return lines
}

// wrapWords greedily fills each line with whole words; a word that alone
// exceeds maxWidth gets its own line rather than being split.
func wrapWords(ctx *Context, text string, maxWidth float32) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		candidate := line + " " + word
		if ctx.MeasureText(candidate).X > maxWidth {
			lines = append(lines, line)
			line = word
		} else {
			line = candidate
		}
	}
	return append(lines, line)
}

// wrapRunes breaks after whichever rune would push the line past
// maxWidth; at least one rune always lands on each line.
func wrapRunes(ctx *Context, text string, maxWidth float32) []string {
	var lines []string
	var line []rune
	for _, r := range text {
		if len(line) > 0 && ctx.MeasureText(string(append(line, r))).X > maxWidth {
			lines = append(lines, string(line))
			line = line[:0]
		}
		line = append(line, r)
	}
	if len(line) > 0 {
		lines = append(lines, string(line))
	}
	return lines
}

// containsCJK reports whether any rune in text belongs to a CJK script.
func containsCJK(text string) bool {
	for _, r := range text {
		if isCJKRune(r) {
			return true
		}
	}
	return false
}

func isCJKRune(r rune) bool {
	return unicode.Is(unicode.Han, r) ||
		unicode.Is(unicode.Hiragana, r) ||
		unicode.Is(unicode.Katakana, r) ||
		unicode.Is(unicode.Hangul, r) ||
		unicode.In(r, unicode.Bopomofo) ||
		unicode.In(r, unicode.Yi)
}

// TruncateText shortens text to fit maxWidth, appending ".." when it had
// to cut.
func TruncateText(ctx *Context, text string, maxWidth float32) string {
	return truncateWithSuffix(ctx, text, maxWidth, "..")
}

func truncateWithSuffix(ctx *Context, text string, maxWidth float32, suffix string) string {
	if ctx.MeasureText(text).X <= maxWidth {
		return text
	}

	target := maxWidth - ctx.MeasureText(suffix).X
	runes := []rune(text)
	for len(runes) > 0 {
		if ctx.MeasureText(string(runes)).X <= target {
			return string(runes) + suffix
		}
		runes = runes[:len(runes)-1]
	}
	return suffix
}

// TextWidthEllipsis returns text shortened to fit maxWidth, degrading
// the ellipsis to a single dot (or nothing) when even the suffix won't
// fit. The window title bar uses this for long titles.
func TextWidthEllipsis(ctx *Context, text string, maxWidth float32) string {
	if maxWidth <= 0 {
		return ""
	}
	if ctx.MeasureText(text).X <= maxWidth {
		return text
	}

	for _, suffix := range []string{"..", "."} {
		result := truncateWithSuffix(ctx, text, maxWidth, suffix)
		if ctx.MeasureText(result).X <= maxWidth {
			return result
		}
	}
	return ""
}

// MeasureWrappedText returns the bounding size of text after wrapping to
// maxWidth.
func MeasureWrappedText(ctx *Context, text string, maxWidth float32, mode TextWrapMode) Vec2 {
	lines := WrapText(ctx, text, maxWidth, mode)
	if len(lines) == 0 {
		return Vec2{}
	}

	var widest float32
	for _, line := range lines {
		if w := ctx.MeasureText(line).X; w > widest {
			widest = w
		}
	}
	return Vec2{X: widest, Y: float32(len(lines)) * ctx.lineHeight()}
}
