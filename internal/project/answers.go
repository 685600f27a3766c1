package project

import (
	"fmt"
	"io"

	"github.com/phravins/projectgen/internal/tui"
	"github.com/phravins/projectgen/pkg/utils"
	"github.com/spf13/afero"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v2"
)

// answers mirrors the interactive questions. Style and Framework are only
// meaningful for category 1.
type answers struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Author      string `yaml:"author"`
	Category    int    `yaml:"category"`
	Style       int    `yaml:"style"`
	Framework   int    `yaml:"framework"`
}

// ParseAnswers decodes a YAML answers document into a validated config.
// Unknown keys are rejected.
func ParseAnswers(data []byte) (ProjectConfig, error) {
	var a answers
	if err := yaml.UnmarshalStrict(data, &a); err != nil {
		return ProjectConfig{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	category := Category(a.Category)
	if category != CategoryWeb && (a.Style != 0 || a.Framework != 0) {
		return ProjectConfig{}, fmt.Errorf("%w: style and framework only apply to web projects (category 1)", ErrInvalidConfig)
	}
	kind, err := NewKind(category, a.Style, a.Framework)
	if err != nil {
		return ProjectConfig{}, err
	}

	cfg := ProjectConfig{
		Name:        a.Name,
		Description: a.Description,
		Author:      a.Author,
		Kind:        kind,
	}
	if err := cfg.Validate(); err != nil {
		return ProjectConfig{}, err
	}
	return cfg, nil
}

// LoadAnswers reads and parses an answers file.
func LoadAnswers(fs afero.Fs, path string) (ProjectConfig, error) {
	if !utils.FileExists(fs, path) {
		return ProjectConfig{}, fmt.Errorf("answers file not found: %s", path)
	}
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return ProjectConfig{}, fmt.Errorf("reading answers file %s: %w", path, err)
	}
	cfg, err := ParseAnswers(data)
	if err != nil {
		return ProjectConfig{}, fmt.Errorf("answers file %s: %w", path, err)
	}
	return cfg, nil
}

// AnswersFile is a Source that reads the configuration from YAML instead of
// prompting.
type AnswersFile struct {
	fs      afero.Fs
	path    string
	report  *tui.Reporter
	printer *message.Printer
}

func NewAnswersFile(fs afero.Fs, path string, out io.Writer, p *message.Printer) *AnswersFile {
	return &AnswersFile{fs: fs, path: path, report: tui.NewReporter(out), printer: p}
}

func (a *AnswersFile) Build() (ProjectConfig, error) {
	cfg, err := LoadAnswers(a.fs, a.path)
	if err != nil {
		a.report.Error(a.printer.Sprintf("Configuration error: %v", err))
		return ProjectConfig{}, err
	}
	a.report.Success(a.printer.Sprintf("Configuration loaded from %s", a.path))
	return cfg, nil
}
