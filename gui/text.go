package gui

import "strings"

// TextWrapMode specifies how text should be wrapped.
type TextWrapMode int

const (
	// WrapModeWord wraps at word boundaries. Words wider than the line
	// are broken at character boundaries.
	WrapModeWord TextWrapMode = iota
	// WrapModeChar wraps at character boundaries.
	WrapModeChar
)

// WrapText wraps text to fit within maxWidth using the specified mode.
// Returns a slice of lines.
func WrapText(ctx *Context, text string, maxWidth float32, mode TextWrapMode) []string {
	if maxWidth <= 0 {
		return []string{text}
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
	var currentLine string

	for _, word := range words {
		if ctx.MeasureText(word).X > maxWidth {
			if currentLine != "" {
				lines = append(lines, currentLine)
			}
			parts := wrapByChar(ctx, word, maxWidth)
			lines = append(lines, parts[:len(parts)-1]...)
			currentLine = parts[len(parts)-1]
			continue
		}

		testLine := currentLine
		if testLine != "" {
			testLine += " "
		}
		testLine += word

		if ctx.MeasureText(testLine).X > maxWidth && currentLine != "" {
			lines = append(lines, currentLine)
			currentLine = word
		} else {
			currentLine = testLine
		}
	}

	if currentLine != "" {
		lines = append(lines, currentLine)
	}
	return lines
}

func wrapByChar(ctx *Context, text string, maxWidth float32) []string {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}

	var lines []string
	var currentLine []rune

	for _, r := range runes {
		testLine := append(currentLine, r)
		if ctx.MeasureText(string(testLine)).X > maxWidth && len(currentLine) > 0 {
			lines = append(lines, string(currentLine))
			currentLine = []rune{r}
		} else {
			currentLine = testLine
		}
	}

	if len(currentLine) > 0 {
		lines = append(lines, string(currentLine))
	}
	return lines
}

// TruncateText truncates text to fit within maxWidth, adding ellipsis if needed.
func TruncateText(ctx *Context, text string, maxWidth float32) string {
	return TruncateTextWithSuffix(ctx, text, maxWidth, "..")
}

// TruncateTextWithSuffix truncates text and adds a custom suffix.
func TruncateTextWithSuffix(ctx *Context, text string, maxWidth float32, suffix string) string {
	if ctx.MeasureText(text).X <= maxWidth {
		return text
	}

	runes := []rune(text)
	targetWidth := maxWidth - ctx.MeasureText(suffix).X

	for len(runes) > 0 {
		if ctx.MeasureText(string(runes)).X <= targetWidth {
			return string(runes) + suffix
		}
		runes = runes[:len(runes)-1]
	}
	return suffix
}

// TextWidthEllipsis returns text that fits within maxWidth, with ellipsis.
// Unlike TruncateText, this also works with very small widths.
func TextWidthEllipsis(ctx *Context, text string, maxWidth float32) string {
	if maxWidth <= 0 {
		return ""
	}
	if ctx.MeasureText(text).X <= maxWidth {
		return text
	}

	for _, suffix := range []string{"..", "."} {
		result := TruncateTextWithSuffix(ctx, text, maxWidth, suffix)
		if ctx.MeasureText(result).X <= maxWidth {
			return result
		}
	}
	return ""
}

// MeasureWrappedText returns the size of text when wrapped to maxWidth.
func MeasureWrappedText(ctx *Context, text string, maxWidth float32, mode TextWrapMode) Vec2 {
	lines := WrapText(ctx, text, maxWidth, mode)
	if len(lines) == 0 {
		return Vec2{}
	}

	maxLineWidth := float32(0)
	for _, line := range lines {
		maxLineWidth = maxf(maxLineWidth, ctx.MeasureText(line).X)
	}
	return Vec2{X: maxLineWidth, Y: float32(len(lines)) * ctx.lineHeight()}
}
