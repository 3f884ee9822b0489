package tui

import "github.com/charmbracelet/lipgloss"

const helpLine = "arrows move window · +/- resize · p paste WKT · o subject · r refit · q quit"

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	header := titleStyle.Render(" klippa ") + dimStyle.Render("rectangle clip viewer")

	bodyHeight := m.height - 3
	if bodyHeight < 4 {
		bodyHeight = 4
	}

	var body string
	if m.pasteMode {
		m.ta.SetWidth(min(m.width-4, 78))
		body = pasteStyle.Render(m.ta.View())
	} else {
		body = canvasStyle.Render(m.renderCanvas(m.width, bodyHeight))
	}
	body = lipgloss.NewStyle().Height(bodyHeight).Render(body)

	footer := statusStyle.Render(" " + m.status)
	if m.helpVisible {
		footer += "\n" + dimStyle.Render(" "+helpLine)
	} else {
		footer += "\n" + dimStyle.Render(" h for help")
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
