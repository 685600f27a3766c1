package project

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/message"
)

// Files written inside the project root, slash-separated.
const (
	EntryPointFile = "src/index.js"
	ReadmeFile     = "README.md"
)

// DateLayout formats the generation date embedded in generated files.
const DateLayout = "2006-01-02"

var baseDirectories = []string{"src", "docs", "tests", "config"}

var webDirectories = []string{
	"src/assets",
	"src/assets/images",
	"src/assets/styles",
	"src/assets/scripts",
	"src/components",
	"src/layouts",
}

// File is one generated file, path relative to the project root.
type File struct {
	Path    string
	Content string
}

// Plan is everything a run will create, computed before touching disk.
type Plan struct {
	Root        string
	Directories []string
	Files       []File
}

// PlanDirectories lists the directories to create, relative to the root.
func PlanDirectories(cfg ProjectConfig) []string {
	dirs := append([]string(nil), baseDirectories...)
	if cfg.Category() == CategoryWeb {
		dirs = append(dirs, webDirectories...)
	}
	return dirs
}

// NewPlan computes the full plan for cfg rooted at root.
func NewPlan(cfg ProjectConfig, root, date string, p *message.Printer) Plan {
	return Plan{
		Root:        root,
		Directories: PlanDirectories(cfg),
		Files: []File{
			{Path: EntryPointFile, Content: RenderEntryPoint(cfg, date, p)},
			{Path: ReadmeFile, Content: RenderReadme(cfg, date, p)},
		},
	}
}

// String renders the plan as a tree-ish listing for --dry-run.
func (pl Plan) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s/\n", pl.Root)
	for _, d := range pl.Directories {
		fmt.Fprintf(&b, "  %s/\n", d)
	}
	for _, f := range pl.Files {
		fmt.Fprintf(&b, "  %s (%d bytes)\n", f.Path, len(f.Content))
	}
	return b.String()
}

// RenderEntryPoint returns the starter source file.
func RenderEntryPoint(cfg ProjectConfig, date string, p *message.Printer) string {
	var b strings.Builder
	fmt.Fprintf(&b, "// %s\n", p.Sprintf("Main file generated on %s", date))
	fmt.Fprintf(&b, "// %s\n", p.Sprintf("Project: %s", cfg.Name))
	fmt.Fprintf(&b, "// %s\n", p.Sprintf("Author: %s", cfg.Author))
	b.WriteString("\n")
	fmt.Fprintf(&b, "console.log(%s);\n", strconv.Quote(p.Sprintf("Starting project %s", cfg.Name)))
	return b.String()
}
