package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/phravins/projectgen/internal/config"
	"github.com/phravins/projectgen/internal/locale"
	"github.com/phravins/projectgen/internal/project"
	"github.com/phravins/projectgen/internal/prompt"
	"github.com/phravins/projectgen/internal/tui"
	"github.com/phravins/projectgen/pkg/utils"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/text/message"
)

// errRunFailed marks failures the run already reported to the user.
var errRunFailed = errors.New("project generation failed")

var (
	selfTest    bool
	answersPath string
	parentDir   string
	dryRun      bool
	openAfter   bool
)

var rootCmd = &cobra.Command{
	Use:     "projectgen",
	Version: config.Version,
	Short:   "Scaffold a new project interactively",
	Long: `projectgen asks for a project's name, description, author and category
(plus a visual style and CSS framework for web projects), then creates:
- a folder named after the project
- src/index.js with a short header
- a README.md describing the project`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGenerate,
}

func init() {
	rootCmd.PersistentFlags().String("locale", "en", "Language for prompts and generated files (en, fr)")

	f := rootCmd.Flags()
	f.BoolVar(&selfTest, "test", false, "Generate a fixed sample project without prompting")
	f.StringVar(&answersPath, "answers", "", "Read answers from a YAML file instead of prompting")
	f.StringVar(&parentDir, "dir", "", "Parent directory for the project (default: current directory)")
	f.BoolVar(&dryRun, "dry-run", false, "Show what would be created without writing anything")
	f.BoolVar(&openAfter, "open", false, "Open the project folder when done")
	f.Bool("tui", false, "Pick the style and CSS framework from a full-screen list")
	f.Bool("preview", false, "Show the generated README and main file when done")

	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(configCmd)
}

func loadSettings(cmd *cobra.Command) (*config.Config, *message.Printer, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	tag, err := locale.Parse(cfg.Locale)
	if err != nil {
		return nil, nil, err
	}
	return cfg, locale.NewPrinter(tag), nil
}

// capture remembers the configuration a source produced.
type capture struct {
	project.Source
	cfg project.ProjectConfig
}

func (c *capture) Build() (project.ProjectConfig, error) {
	cfg, err := c.Source.Build()
	c.cfg = cfg
	return cfg, err
}

func runGenerate(cmd *cobra.Command, args []string) error {
	settings, p, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fs := afero.NewOsFs()
	mgr := project.NewManager("", fs)
	if parentDir != "" {
		dir, err := mgr.ValidateParentDir(parentDir)
		if err != nil {
			return err
		}
		mgr.Workspace = dir
	}

	gen := project.NewGenerator(fs, out, p)
	gen.DryRun = dryRun

	if selfTest {
		if _, err := mgr.SelfTest(settings.TestOutputDir, gen); err != nil {
			return errRunFailed
		}
		return nil
	}

	var src project.Source
	if answersPath != "" {
		src = project.NewAnswersFile(fs, utils.ExpandPath(answersPath), out, p)
	} else {
		in := cmd.InOrStdin()
		builder := project.NewBuilder(prompt.New(in, out, p), out, p)
		if settings.TUI {
			builder.WithPicker(tui.NewPicker(in, out, func(s string) string { return p.Sprintf(s) }))
		}
		src = builder
	}

	run := &capture{Source: src}
	if _, err := mgr.Run(run, gen); err != nil {
		return errRunFailed
	}
	if dryRun {
		return nil
	}

	root := mgr.RootPath(run.cfg.Name)
	if settings.Preview {
		plan := gen.Plan(run.cfg, root)
		var readme, entry string
		for _, f := range plan.Files {
			switch f.Path {
			case project.ReadmeFile:
				readme = f.Content
			case project.EntryPointFile:
				entry = f.Content
			}
		}
		tui.Preview(out, readme, project.EntryPointFile, entry)
	}
	if openAfter {
		if err := utils.OpenPath(root); err != nil {
			tui.NewReporter(out).Error(p.Sprintf("Could not open %s: %v", root, err))
		}
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errRunFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
