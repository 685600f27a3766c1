package project

import (
	"fmt"
	"io"

	"github.com/phravins/projectgen/internal/catalog"
	"github.com/phravins/projectgen/internal/prompt"
	"github.com/phravins/projectgen/internal/tui"
	"golang.org/x/text/message"
)

// Picker selects one catalog entry and returns its ID. question is the
// prompt text for pickers that read a typed answer.
type Picker interface {
	Pick(title, question string, entries []catalog.Entry) (int, error)
}

// LinePicker prints the numbered catalog and reads the ID on the prompter.
type LinePicker struct {
	prompter *prompt.Prompter
	report   *tui.Reporter
	printer  *message.Printer
}

func NewLinePicker(pr *prompt.Prompter, out io.Writer, p *message.Printer) *LinePicker {
	return &LinePicker{prompter: pr, report: tui.NewReporter(out), printer: p}
}

func (l *LinePicker) Pick(title, question string, entries []catalog.Entry) (int, error) {
	l.report.Heading(title)
	l.report.Entries(entries, func(s string) string { return l.printer.Sprintf(s) })
	return l.prompter.AskBoundedInt(question, 1, len(entries))
}

type menuItem struct {
	category Category
	name     string
	desc     string
}

var categoryMenu = []menuItem{
	{CategoryWeb, "Web", "Modern web applications and websites"},
	{CategoryDesktop, "Desktop Application", "Native applications for Windows/Mac/Linux"},
	{CategoryAPI, "API", "Web services and RESTful APIs"},
	{CategoryLibrary, "Library", "Reusable packages and libraries"},
	{CategoryOther, "Other", "Other kinds of projects"},
}

// Builder collects a ProjectConfig through the prompter.
type Builder struct {
	prompter *prompt.Prompter
	report   *tui.Reporter
	printer  *message.Printer
	picker   Picker
}

// NewBuilder returns a builder that picks styles and frameworks on the line
// prompter. Use WithPicker to swap the picker.
func NewBuilder(pr *prompt.Prompter, out io.Writer, p *message.Printer) *Builder {
	return &Builder{
		prompter: pr,
		report:   tui.NewReporter(out),
		printer:  p,
		picker:   NewLinePicker(pr, out, p),
	}
}

func (b *Builder) WithPicker(pk Picker) *Builder {
	b.picker = pk
	return b
}

// Build runs the question sequence. The prompter is closed whether or not it
// succeeds; on failure the error is reported before it is returned.
func (b *Builder) Build() (ProjectConfig, error) {
	cfg, err := b.collect()
	if err != nil {
		b.report.Error(b.printer.Sprintf("Configuration error: %v", err))
		b.prompter.Close()
		return ProjectConfig{}, err
	}

	if err := b.prompter.Close(); err != nil {
		b.report.Error(b.printer.Sprintf("Configuration error: %v", err))
		return ProjectConfig{}, fmt.Errorf("closing input: %w", err)
	}
	b.report.Success(b.printer.Sprintf("Configuration complete!"))
	return cfg, nil
}

func (b *Builder) collect() (ProjectConfig, error) {
	p := b.printer
	b.report.Title(p.Sprintf("Project setup"))

	name, err := b.prompter.AskRequiredText(p.Sprintf("Project name: "), p.Sprintf("Project name"))
	if err != nil {
		return ProjectConfig{}, err
	}
	description, err := b.prompter.AskText(p.Sprintf("Description: "))
	if err != nil {
		return ProjectConfig{}, err
	}
	author, err := b.prompter.AskText(p.Sprintf("Author: "))
	if err != nil {
		return ProjectConfig{}, err
	}

	b.report.Heading(p.Sprintf("Available categories:"))
	for _, m := range categoryMenu {
		b.report.Line(fmt.Sprintf("%d. %-20s - %s", m.category, p.Sprintf(m.name), p.Sprintf(m.desc)))
	}
	n, err := b.prompter.AskBoundedInt(p.Sprintf("Choose a category (1-%d): ", len(categoryMenu)), 1, len(categoryMenu))
	if err != nil {
		return ProjectConfig{}, err
	}
	category := Category(n)

	var styleID, frameworkID int
	if category == CategoryWeb {
		styles := catalog.Styles()
		styleID, err = b.picker.Pick(p.Sprintf("Available styles:"), p.Sprintf("Choose a style (1-%d): ", len(styles)), styles)
		if err != nil {
			return ProjectConfig{}, err
		}
		style, _ := catalog.Style(styleID)
		b.report.Info(p.Sprintf("Selected style: %s", style.Name))

		frameworks := catalog.Frameworks()
		frameworkID, err = b.picker.Pick(p.Sprintf("Available CSS frameworks:"), p.Sprintf("Choose a CSS framework (1-%d): ", len(frameworks)), frameworks)
		if err != nil {
			return ProjectConfig{}, err
		}
		framework, _ := catalog.Framework(frameworkID)
		b.report.Info(p.Sprintf("Selected framework: %s", framework.Name))
	}

	kind, err := NewKind(category, styleID, frameworkID)
	if err != nil {
		return ProjectConfig{}, err
	}
	return ProjectConfig{
		Name:        name,
		Description: description,
		Author:      author,
		Kind:        kind,
	}, nil
}
