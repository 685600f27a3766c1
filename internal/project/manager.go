package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/phravins/projectgen/pkg/utils"
	"github.com/spf13/afero"
)

// State is where a run currently is. Runs only move forward.
type State int

const (
	StateIdle State = iota
	StatePrompting
	StateScaffolding
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePrompting:
		return "prompting"
	case StateScaffolding:
		return "scaffolding"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Source produces the configuration for a run: the interactive Builder or
// an answers file.
type Source interface {
	Build() (ProjectConfig, error)
}

// Manager resolves where projects go and drives a generation run.
type Manager struct {
	Workspace string
	FS        afero.Fs
	// OnTransition, when set, observes every state change.
	OnTransition func(from, to State)
}

// NewManager returns a manager rooted at workspace, or at the current
// directory when workspace is empty.
func NewManager(workspace string, fs afero.Fs) *Manager {
	if workspace == "" {
		workspace, _ = os.Getwd()
	}
	return &Manager{Workspace: utils.ExpandPath(workspace), FS: fs}
}

// RootPath is where a project called name is generated.
func (m *Manager) RootPath(name string) string {
	return filepath.Join(m.Workspace, utils.SanitizeName(name))
}

// ValidateParentDir checks if the path exists and is a directory
func (m *Manager) ValidateParentDir(path string) (string, error) {
	expanded := utils.ExpandPath(path)
	info, err := m.FS.Stat(expanded)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("directory does not exist: %s", expanded)
	}
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", fmt.Errorf("path is not a directory: %s", expanded)
	}
	return expanded, nil
}

// Run builds a configuration from src and scaffolds it under the workspace.
// It returns the final state, StateDone or StateFailed, and the error that
// caused a failure. Failures have already been reported when Run returns.
func (m *Manager) Run(src Source, g *Generator) (State, error) {
	state := StateIdle
	move := func(to State) {
		if m.OnTransition != nil {
			m.OnTransition(state, to)
		}
		state = to
	}

	move(StatePrompting)
	cfg, err := src.Build()
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		move(StateFailed)
		return state, err
	}

	move(StateScaffolding)
	if err := m.scaffold(cfg, m.RootPath(cfg.Name), g); err != nil {
		move(StateFailed)
		return state, err
	}
	move(StateDone)
	return state, nil
}

// SelfTest scaffolds the fixed self-test configuration into dir under the
// workspace without prompting.
func (m *Manager) SelfTest(dir string, g *Generator) (State, error) {
	state := StateIdle
	move := func(to State) {
		if m.OnTransition != nil {
			m.OnTransition(state, to)
		}
		state = to
	}

	move(StateScaffolding)
	if err := m.scaffold(SelfTestConfig(), filepath.Join(m.Workspace, dir), g); err != nil {
		move(StateFailed)
		return state, err
	}
	g.report.Success(g.Printer.Sprintf("Self-test passed"))
	move(StateDone)
	return state, nil
}

func (m *Manager) scaffold(cfg ProjectConfig, root string, g *Generator) error {
	p := g.Printer
	g.report.Step(p.Sprintf("Creating project in: %s", root))

	if err := g.Execute(cfg, root); err != nil {
		g.report.Error(p.Sprintf("Project creation failed: %v", err))
		return err
	}
	if !g.DryRun {
		g.report.Success(p.Sprintf("Project created successfully!"))
		g.report.Info(p.Sprintf("Location: %s", root))
	}
	return nil
}
