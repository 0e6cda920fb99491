// Package chroma2tcell turns chroma token streams into tview colour tags.
package chroma2tcell

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/rivo/tview"
)

const DefaultStyle = "dracula"

var getStyle = styles.Get

var getFallbackStyle = func() *chroma.Style {
	return styles.Fallback
}

var matchLexer = lexers.Match

func Colorize(text, styleName string, lexer chroma.Lexer) (string, error) {
	iterator, err := lexer.Tokenise(nil, text)
	if err != nil {
		return "", err
	}

	style := getStyle(styleName)
	if style == nil {
		style = getFallbackStyle()
	}

	tokens := iterator.Tokens()
	// Lexers with EnsureNL append a newline the text did not have.
	if n := len(tokens); n > 0 && !strings.HasSuffix(text, "\n") {
		tokens[n-1].Value = strings.TrimSuffix(tokens[n-1].Value, "\n")
	}

	var sb strings.Builder
	for _, token := range tokens {
		value := tview.Escape(token.Value)
		entry := style.Get(token.Type)
		if entry.IsZero() || !entry.Colour.IsSet() {
			sb.WriteString(value)
			continue
		}
		sb.WriteString("[" + entry.Colour.String() + "]")
		sb.WriteString(value)
		sb.WriteString("[-]")
	}

	return sb.String(), nil
}

// ColorizeFile picks a lexer by file name. Without a lexer the text is only escaped
// and ok is false.
func ColorizeFile(fileName, text, styleName string) (colorized string, ok bool) {
	lexer := matchLexer(fileName)
	if lexer == nil {
		return tview.Escape(text), false
	}
	colorized, err := Colorize(text, styleName, lexer)
	if err != nil {
		return tview.Escape(text), false
	}
	return colorized, true
}
