package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/glamour"
)

// RenderMarkdown renders md for the terminal. On renderer errors the raw
// markdown is returned.
func RenderMarkdown(md string, width int) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return out
}

// Highlight colors source code for the terminal, falling back to the plain
// text when the lexer or style is unknown.
func Highlight(code, lexer string) string {
	var b strings.Builder
	if lexer == "" {
		lexer = "text"
	}
	if err := quick.Highlight(&b, code, lexer, "terminal256", "dracula"); err != nil {
		return code
	}
	return b.String()
}

// Preview writes the rendered README followed by the highlighted entry point.
func Preview(w io.Writer, readme, entryName, entry string) {
	fmt.Fprint(w, RenderMarkdown(readme, 80))
	fmt.Fprintln(w, subtleStyle.Render("── "+entryName+" "+strings.Repeat("─", 40)))
	fmt.Fprint(w, Highlight(entry, "javascript"))
	fmt.Fprintln(w)
}
