package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const modalWidth = 56

func renderConfirmModal(title, body, confirmLabel, cancelLabel string, focus confirmModalFocus) string {
	// Buttons stay borderless; nested borders inside a bordered modal leave
	// background artifacts on some terminals.
	btnBase := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(colorSurfaceFg).
		Background(colorControlBg)
	btnActive := btnBase.
		Foreground(colorSelectedFg).
		Background(colorSelectedBg).
		Bold(true)

	confirm := btnBase.Foreground(colorDestructive).Render(confirmLabel)
	cancel := btnBase.Render(cancelLabel)
	if focus == confirmFocusConfirm {
		confirm = btnActive.Foreground(colorDestructive).Render(confirmLabel)
	}
	if focus == confirmFocusCancel {
		cancel = btnActive.Render(cancelLabel)
	}
	controls := lipgloss.JoinHorizontal(lipgloss.Top, cancel, " ", confirm)

	bodyW := modalWidth - 4
	content := strings.Join([]string{
		lipgloss.NewStyle().Bold(true).Foreground(colorModalTitleFg).Render(title),
		"",
		lipgloss.NewStyle().Width(bodyW).Render(body),
		"",
		controls,
		"",
		styleMuted().Width(bodyW).Render("tab: focus   enter: select   esc: cancel"),
	}, "\n")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorModalBorder).
		Padding(0, 1).
		Width(modalWidth).
		Render(content)
}

func (m appModel) viewConfirmModal() string {
	return renderConfirmModal(
		"Unsaved Changes",
		"This file has unsaved changes. Do you want to close it anyway?",
		"Close without saving",
		"Cancel",
		m.confirmFocus,
	)
}
