package tui

import (
	"fmt"
	"strings"

	"scaffolder/internal/setup"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// setupModel drives setup.Wizard: one text input per step for name and
// description, then a checklist of technologies.
type setupModel struct {
	wiz *setup.Wizard

	name textinput.Model
	desc textinput.Model

	techCursor int

	errMsg  string
	done    bool
	project setup.Project

	width  int
	height int
}

func newSetupModel() setupModel {
	name := textinput.New()
	name.Placeholder = "my-project"
	name.CharLimit = 100
	name.Prompt = "> "
	name.Focus()

	desc := textinput.New()
	desc.Placeholder = "What does it do?"
	desc.CharLimit = 500
	desc.Prompt = "> "

	return setupModel{
		wiz:    setup.NewWizard(),
		name:   name,
		desc:   desc,
		width:  defaultWidth,
		height: defaultHeight,
	}
}

func (m setupModel) Init() tea.Cmd { return textinput.Blink }

func (m setupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m.updateInputs(msg)
}

func (m setupModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		if m.wiz.Step() == setup.StepName {
			return m, tea.Quit
		}
		m.wiz.Back()
		m.errMsg = ""
		return m, m.focusStep()
	case "enter":
		return m.advance()
	}

	if m.wiz.Step() == setup.StepTechnologies {
		switch msg.String() {
		case "up", "k":
			if m.techCursor > 0 {
				m.techCursor--
			}
		case "down", "j":
			if m.techCursor < len(setup.Technologies)-1 {
				m.techCursor++
			}
		case " ", "x":
			_ = m.wiz.ToggleTech(setup.Technologies[m.techCursor])
			m.errMsg = ""
		}
		return m, nil
	}
	return m.updateInputs(msg)
}

func (m setupModel) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.wiz.Step() {
	case setup.StepName:
		m.name, cmd = m.name.Update(msg)
		m.wiz.Name = m.name.Value()
	case setup.StepDescription:
		m.desc, cmd = m.desc.Update(msg)
		m.wiz.Description = m.desc.Value()
	}
	if _, ok := msg.(tea.KeyMsg); ok {
		m.errMsg = ""
	}
	return m, cmd
}

func (m setupModel) advance() (tea.Model, tea.Cmd) {
	if m.wiz.Step() == setup.StepTechnologies {
		p, err := m.wiz.Submit()
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.project = p
		m.done = true
		return m, tea.Quit
	}
	if err := m.wiz.Next(); err != nil {
		m.errMsg = err.Error()
		return m, nil
	}
	return m, m.focusStep()
}

func (m *setupModel) focusStep() tea.Cmd {
	m.name.Blur()
	m.desc.Blur()
	switch m.wiz.Step() {
	case setup.StepName:
		return m.name.Focus()
	case setup.StepDescription:
		return m.desc.Focus()
	}
	return nil
}

func (m setupModel) View() string {
	step := m.wiz.Step()
	lines := []string{
		styleTitle().Render("New Project"),
		styleMuted().Render(fmt.Sprintf("Step %d of 3: %s", int(step), step.Title())),
		"",
	}

	switch step {
	case setup.StepName:
		lines = append(lines, "Project name", m.name.View())
	case setup.StepDescription:
		lines = append(lines, "Describe the project", m.desc.View())
	case setup.StepTechnologies:
		lines = append(lines, "Pick the technologies to start with")
		for i, tech := range setup.Technologies {
			box := "[ ]"
			if m.wiz.IsSelected(tech) {
				box = "[x]"
			}
			line := box + " " + tech
			if i == m.techCursor {
				line = lipgloss.NewStyle().Foreground(colorSelectedFg).Background(colorSelectedBg).Render(line)
			}
			lines = append(lines, line)
		}
	}

	lines = append(lines, "")
	if m.errMsg != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(colorDestructive).Render(m.errMsg))
	}

	help := "enter: next   esc: cancel"
	switch step {
	case setup.StepDescription:
		help = "enter: next   esc: back"
	case setup.StepTechnologies:
		help = "space: toggle   enter: create project   esc: back"
	}
	lines = append(lines, styleMuted().Render(help))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(1, 2).
		Width(60).
		Render(strings.Join(lines, "\n"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
