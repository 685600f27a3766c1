package project

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/phravins/projectgen/internal/tui"
	"github.com/phravins/projectgen/pkg/utils"
	"github.com/spf13/afero"
	"golang.org/x/text/message"
)

// Stage names the step of Execute that failed.
type Stage string

const (
	StageRoot        Stage = "root"
	StageDirectories Stage = "directories"
	StageEntryPoint  Stage = "entry point"
	StageReadme      Stage = "readme"
)

// failure messages, also translation keys
var stageMessages = map[Stage]string{
	StageRoot:        "Failed to create the project folder",
	StageDirectories: "Failed to create the folders",
	StageEntryPoint:  "Failed to create the main file",
	StageReadme:      "Failed to create the README",
}

// StageError wraps a filesystem failure with the stage and path involved.
type StageError struct {
	Stage Stage
	Path  string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Stage, e.Path, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// Generator turns a ProjectConfig into files on FS.
type Generator struct {
	FS      afero.Fs
	Printer *message.Printer
	// Now supplies the generation date. Defaults to time.Now.
	Now func() time.Time
	// DryRun prints the plan instead of writing it.
	DryRun bool

	report *tui.Reporter
}

func NewGenerator(fs afero.Fs, out io.Writer, p *message.Printer) *Generator {
	return &Generator{
		FS:      fs,
		Printer: p,
		Now:     time.Now,
		report:  tui.NewReporter(out),
	}
}

// Date is the generation date embedded in the generated files.
func (g *Generator) Date() string {
	return g.Now().Format(DateLayout)
}

// Plan computes what Execute would create for cfg under root.
func (g *Generator) Plan(cfg ProjectConfig, root string) Plan {
	return NewPlan(cfg, root, g.Date(), g.Printer)
}

// Execute creates root, the planned directories and the generated files, in
// that order. The first failure is reported and returned as a *StageError;
// nothing after it is attempted.
func (g *Generator) Execute(cfg ProjectConfig, root string) error {
	plan := g.Plan(cfg, root)
	if g.DryRun {
		g.report.Info(g.Printer.Sprintf("Dry run, nothing will be written:"))
		g.report.Line(plan.String())
		return nil
	}
	return g.Apply(plan)
}

// Apply realizes a plan on FS.
func (g *Generator) Apply(plan Plan) error {
	p := g.Printer

	if err := utils.EnsureDir(g.FS, plan.Root); err != nil {
		return g.fail(StageRoot, plan.Root, err)
	}
	for _, d := range plan.Directories {
		dir := filepath.Join(plan.Root, filepath.FromSlash(d))
		if err := utils.EnsureDir(g.FS, dir); err != nil {
			return g.fail(StageDirectories, dir, err)
		}
	}
	g.report.Success(p.Sprintf("Folder structure created"))

	for _, f := range plan.Files {
		stage := StageEntryPoint
		if f.Path == ReadmeFile {
			stage = StageReadme
		}

		path := filepath.Join(plan.Root, filepath.FromSlash(f.Path))
		if err := afero.WriteFile(g.FS, path, []byte(f.Content), 0644); err != nil {
			return g.fail(stage, path, err)
		}
		g.report.Success(p.Sprintf("%s created", f.Path))
	}
	return nil
}

func (g *Generator) fail(stage Stage, path string, err error) error {
	g.report.Error(g.Printer.Sprintf("%s: %v", g.Printer.Sprintf(stageMessages[stage]), err))
	return &StageError{Stage: stage, Path: path, Err: err}
}
