package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/paulmach/orb/encoding/wkt"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.pasteMode {
			return m.updatePaste(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

// updatePaste routes keys to the textarea until the paste is committed
// with enter or dropped with esc.
func (m Model) updatePaste(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.pasteMode = false
		m.ta.Blur()
		m.status = "paste cancelled"
		return m, nil

	case "enter":
		text := strings.TrimSpace(m.ta.Value())
		m.pasteMode = false
		m.ta.Blur()
		if text == "" {
			m.status = "nothing pasted"
			return m, nil
		}
		g, err := wkt.Unmarshal(text)
		if err != nil {
			m.status = "bad WKT: " + err.Error()
			return m, nil
		}
		m.setSubject(g)
		return m, nil
	}

	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return m, cmd
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "p":
		m.pasteMode = true
		m.ta.Reset()
		m.status = "paste WKT, enter clips, esc cancels"
		return m, m.ta.Focus()

	case "o":
		m.showSubject = !m.showSubject

	case "h", "?":
		m.helpVisible = !m.helpVisible

	case "r":
		if m.subject != nil {
			m.win = fitWindow(m.subject.Bound())
			m.reclip()
		}

	case "left":
		m.moveWindow(-0.05, 0)
	case "right":
		m.moveWindow(0.05, 0)
	case "up":
		m.moveWindow(0, 0.05)
	case "down":
		m.moveWindow(0, -0.05)

	case "+", "=":
		m.scaleWindow(1.1)
	case "-", "_":
		m.scaleWindow(1 / 1.1)
	}
	return m, nil
}
