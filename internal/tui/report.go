package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/phravins/projectgen/internal/catalog"
)

// Status glyphs. Cosmetic only.
const (
	glyphStep    = "›"
	glyphSuccess = "✔"
	glyphError   = "✖"
	glyphInfo    = "•"
)

// Reporter writes the status lines a run produces. It is the only place that
// decides how progress and failures look on the terminal.
type Reporter struct {
	w io.Writer
}

func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

func (r *Reporter) Step(msg string) {
	fmt.Fprintln(r.w, stepStyle.Render(glyphStep+" "+msg))
}

func (r *Reporter) Success(msg string) {
	fmt.Fprintln(r.w, successStyle.Render(glyphSuccess+" "+msg))
}

func (r *Reporter) Error(msg string) {
	fmt.Fprintln(r.w, errorStyle.Render(glyphError+" "+msg))
}

func (r *Reporter) Info(msg string) {
	fmt.Fprintln(r.w, infoStyle.Render(glyphInfo+" "+msg))
}

// Title prints a heading followed by a horizontal rule.
func (r *Reporter) Title(msg string) {
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, titleStyle.Render(msg))
	fmt.Fprintln(r.w, ruleStyle.Render(strings.Repeat("═", 50)))
}

// Heading prints a section label without a rule.
func (r *Reporter) Heading(msg string) {
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, titleStyle.Render(msg))
}

// Line prints msg unstyled.
func (r *Reporter) Line(msg string) {
	fmt.Fprintln(r.w, msg)
}

// Entries prints a numbered catalog menu, one "id. name - description" row
// per entry. describe localizes the description.
func (r *Reporter) Entries(entries []catalog.Entry, describe func(string) string) {
	for _, e := range entries {
		fmt.Fprintf(r.w, "%s %s - %s\n",
			idStyle.Render(fmt.Sprintf("%d.", e.ID)),
			nameStyle.Render(fmt.Sprintf("%-15s", e.Name)),
			describe(e.Description))
	}
}
