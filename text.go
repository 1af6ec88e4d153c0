package gui

import (
	"strings"
	"unicode"
)

// TextWrapMode selects where wrapped text may break.
type TextWrapMode int

const (
	// WrapModeWord breaks at spaces.
	WrapModeWord TextWrapMode = iota
	// WrapModeChar breaks anywhere, for scripts without word spacing.
	WrapModeChar
	// WrapModeAuto picks char wrapping when the text contains CJK runes.
	WrapModeAuto
)

// WrapText breaks text into lines no wider than maxWidth.
func WrapText(ctx *Context, text string, maxWidth float32, mode TextWrapMode) []string {
	if maxWidth <= 0 {
		return []string{text}
	}

	if mode == WrapModeAuto {
		mode = WrapModeWord
		if containsCJK(text) {
			mode = WrapModeChar
		}
	}

	if mode == WrapModeChar {
		return wrapByChar(ctx, text, maxWidth)
	}
	return wrapByWord(ctx, text, maxWidth)
}

func wrapByWord(ctx *Context, text string, maxWidth float32) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	var line string
	for _, word := range words {
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		// A single overlong word still gets its own line; breaking inside
		// words is WrapModeChar's job.
		if ctx.MeasureText(candidate).X > maxWidth && line != "" {
			lines = append(lines, line)
			line = word
		} else {
			line = candidate
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

func wrapByChar(ctx *Context, text string, maxWidth float32) []string {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}

	var lines []string
	var line []rune
	for _, r := range runes {
		candidate := append(line, r)
		if ctx.MeasureText(string(candidate)).X > maxWidth && len(line) > 0 {
			lines = append(lines, string(line))
			line = []rune{r}
		} else {
			line = candidate
		}
	}
	if len(line) > 0 {
		lines = append(lines, string(line))
	}
	return lines
}

// containsCJK returns true if the string contains any CJK runes.
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

// TruncateTextWithSuffix shortens text to fit maxWidth, appending suffix
// when anything was cut.
func TruncateTextWithSuffix(ctx *Context, text string, maxWidth float32, suffix string) string {
	if ctx.MeasureText(text).X <= maxWidth {
		return text
	}

	runes := []rune(text)
	target := maxWidth - ctx.MeasureText(suffix).X
	for len(runes) > 0 {
		if ctx.MeasureText(string(runes)).X <= target {
			return string(runes) + suffix
		}
		runes = runes[:len(runes)-1]
	}
	return suffix
}

// TextWidthEllipsis returns text shortened to fit maxWidth with an
// ellipsis, degrading to a single dot and then to nothing as the width
// shrinks below what even the ellipsis needs.
func TextWidthEllipsis(ctx *Context, text string, maxWidth float32) string {
	if maxWidth <= 0 {
		return ""
	}
	if ctx.MeasureText(text).X <= maxWidth {
		return text
	}

	result := TruncateTextWithSuffix(ctx, text, maxWidth, "..")
	if ctx.MeasureText(result).X <= maxWidth {
		return result
	}
	result = TruncateTextWithSuffix(ctx, text, maxWidth, ".")
	if ctx.MeasureText(result).X <= maxWidth {
		return result
	}
	return ""
}

// MeasureWrappedText returns the bounding size of text wrapped to maxWidth.
func MeasureWrappedText(ctx *Context, text string, maxWidth float32, mode TextWrapMode) Vec2 {
	lines := WrapText(ctx, text, maxWidth, mode)
	if len(lines) == 0 {
		return Vec2{}
	}

	var widest float32
	for _, line := range lines {
		widest = maxf(widest, ctx.MeasureText(line).X)
	}
	return Vec2{X: widest, Y: float32(len(lines)) * ctx.lineHeight()}
}
