// Package setup implements the new-project wizard and turns its answers into
// a starter project tree.
package setup

import (
	"errors"
	"strings"
)

type Step int

const (
	StepName Step = iota + 1
	StepDescription
	StepTechnologies
)

func (s Step) Title() string {
	switch s {
	case StepName:
		return "Project Name"
	case StepDescription:
		return "Project Description"
	case StepTechnologies:
		return "Technology Selection"
	default:
		return ""
	}
}

// Technologies offered in the selection step, in display order.
var Technologies = []string{
	"Java",
	"Python",
	"JavaScript",
	"HTML",
	"C++",
	"C#",
	"Docker",
	"Maven",
	"Make",
	"CMake",
}

var (
	ErrNameRequired        = errors.New("project name is required")
	ErrDescriptionRequired = errors.New("project description is required")
	ErrTechRequired        = errors.New("select at least one technology")
	ErrUnknownTech         = errors.New("unknown technology")
)

type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
}

// Wizard walks through the three steps. Selected technologies keep the order
// they were picked in.
type Wizard struct {
	step        Step
	Name        string
	Description string
	selected    []string
}

func NewWizard() *Wizard {
	return &Wizard{step: StepName}
}

func (w *Wizard) Step() Step { return w.step }

func (w *Wizard) Selected() []string {
	return append([]string(nil), w.selected...)
}

func (w *Wizard) IsSelected(tech string) bool {
	for _, t := range w.selected {
		if t == tech {
			return true
		}
	}
	return false
}

// CanAdvance reports whether Next (or Submit on the last step) would succeed.
func (w *Wizard) CanAdvance() bool {
	return w.validate() == nil
}

func (w *Wizard) validate() error {
	switch w.step {
	case StepName:
		if strings.TrimSpace(w.Name) == "" {
			return ErrNameRequired
		}
	case StepDescription:
		if strings.TrimSpace(w.Description) == "" {
			return ErrDescriptionRequired
		}
	case StepTechnologies:
		if len(w.selected) == 0 {
			return ErrTechRequired
		}
	}
	return nil
}

func (w *Wizard) Next() error {
	if err := w.validate(); err != nil {
		return err
	}
	if w.step < StepTechnologies {
		w.step++
	}
	return nil
}

func (w *Wizard) Back() {
	if w.step > StepName {
		w.step--
	}
}

// ToggleTech flips tech in the selection.
func (w *Wizard) ToggleTech(tech string) error {
	known := false
	for _, t := range Technologies {
		if t == tech {
			known = true
			break
		}
	}
	if !known {
		return ErrUnknownTech
	}
	for i, t := range w.selected {
		if t == tech {
			w.selected = append(w.selected[:i], w.selected[i+1:]...)
			return nil
		}
	}
	w.selected = append(w.selected, tech)
	return nil
}

// Submit validates the final step and returns the project.
func (w *Wizard) Submit() (Project, error) {
	if w.step != StepTechnologies {
		return Project{}, errors.New("wizard is not on the last step")
	}
	if err := w.validate(); err != nil {
		return Project{}, err
	}
	return Project{
		Name:         strings.TrimSpace(w.Name),
		Description:  strings.TrimSpace(w.Description),
		Technologies: w.Selected(),
	}, nil
}
