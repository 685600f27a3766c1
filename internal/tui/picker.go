package tui

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/phravins/projectgen/internal/catalog"
)

// ErrCanceled is returned when the user leaves the picker without choosing.
var ErrCanceled = errors.New("selection canceled")

type entryItem struct {
	entry catalog.Entry
	desc  string
}

func (i entryItem) Title() string       { return fmt.Sprintf("%d. %s", i.entry.ID, i.entry.Name) }
func (i entryItem) Description() string { return i.desc }
func (i entryItem) FilterValue() string { return i.entry.Name }

// PickerModel is a single-choice list over catalog entries.
type PickerModel struct {
	list     list.Model
	chosen   int
	canceled bool
}

func NewPickerModel(title string, entries []catalog.Entry, describe func(string) string) PickerModel {
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = entryItem{entry: e, desc: describe(e.Description)}
	}

	l := list.New(items, list.NewDefaultDelegate(), 80, 24)
	l.Title = title
	l.Styles.Title = pickerTitleStyle
	l.SetShowHelp(false)

	return PickerModel{list: l}
}

// Choice is the chosen entry ID, or 0 while nothing has been chosen.
func (m PickerModel) Choice() int     { return m.chosen }
func (m PickerModel) Canceled() bool { return m.canceled }

func (m PickerModel) Init() tea.Cmd { return nil }

func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		// Let the filter input have every key while it is open.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "enter":
			if it, ok := m.list.SelectedItem().(entryItem); ok {
				m.chosen = it.entry.ID
				return m, tea.Quit
			}
		case "ctrl+c", "q":
			m.canceled = true
			return m, tea.Quit
		case "esc":
			if m.list.FilterState() == list.Unfiltered {
				m.canceled = true
				return m, tea.Quit
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m PickerModel) View() string {
	return m.list.View()
}

// Picker runs PickerModel as a full-screen program for each selection.
type Picker struct {
	in       io.Reader
	out      io.Writer
	describe func(string) string
}

// NewPicker returns a picker bound to the given terminal streams. describe
// localizes entry descriptions.
func NewPicker(in io.Reader, out io.Writer, describe func(string) string) *Picker {
	return &Picker{in: in, out: out, describe: describe}
}

// Pick shows entries under title and returns the chosen ID. question is
// unused; the list itself is the prompt.
func (p *Picker) Pick(title, question string, entries []catalog.Entry) (int, error) {
	prog := tea.NewProgram(
		NewPickerModel(title, entries, p.describe),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
		tea.WithAltScreen(),
	)
	final, err := prog.Run()
	if err != nil {
		return 0, fmt.Errorf("running picker: %w", err)
	}

	m, ok := final.(PickerModel)
	if !ok || m.canceled || m.chosen == 0 {
		return 0, ErrCanceled
	}
	return m.chosen, nil
}
