package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// viewportRect returns the 3D view's origin and size in terminal cells.
// It must agree with the layout drawn by View.
func (m Model) viewportRect() (x, y, w, h int) {
	contentHeight := max(4, m.height-headerHeight-footerHeight)
	contentWidth := max(10, m.width)
	if m.showPanel {
		x = panelWidth + 1
	}
	return x, headerHeight, max(10, contentWidth-x), contentHeight
}

func (m Model) inViewport(cx, cy int) bool {
	x, y, w, h := m.viewportRect()
	return cx >= x && cx < x+w && cy >= y && cy < y+h
}

// layout sizes the widgets and the renderer after a resize or panel toggle.
func (m *Model) layout() {
	if m.width == 0 || m.height == 0 {
		return
	}
	_, _, w, h := m.viewportRect()
	m.view.Resize(w, h)
	m.l.SetSize(panelWidth, len(m.l.Items())+3)
	m.help.Width = m.width
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	_, _, vw, vh := m.viewportRect()
	contentWidth := max(10, m.width)

	header := titleStyle.Render(" pointview ─ point cloud viewer ")
	header = lipgloss.NewStyle().Width(contentWidth).Render(header)

	var canvas string
	if m.store.Session().Loading {
		box := overlayStyle.Render(m.spin.View() + " Processing…")
		canvas = lipgloss.Place(vw, vh, lipgloss.Center, lipgloss.Center, box)
	} else {
		canvas = m.frame
	}
	canvas = canvasStyle.Width(vw).Height(vh).MaxHeight(vh).Render(canvas)

	body := canvas
	if m.showPanel {
		panel := lipgloss.NewStyle().Width(panelWidth).Height(vh).MaxHeight(vh).Render(m.renderPanel())
		body = lipgloss.JoinHorizontal(lipgloss.Top, panel, " ", canvas)
	}

	status := dimStyle.Render(" " + m.status + " ")
	var help string
	if m.helpVisible {
		help = m.help.View(m.keys)
	}
	footer := lipgloss.NewStyle().Width(contentWidth).Render(lipgloss.JoinVertical(lipgloss.Left, status, help))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(contentWidth).Height(m.height).MaxHeight(m.height).Render(ui)
}

func (m Model) renderPanel() string {
	sess := m.store.Session()
	parts := []string{m.l.View()}

	sel := "selected: " + string(sess.Selected)
	parts = append(parts, dimStyle.Render(sel))

	if sess.Stats != nil {
		parts = append(parts, titleStyle.Render("Statistics"), boxStyle.Width(panelWidth-2).Render(m.tbl.View()))
	} else {
		parts = append(parts, dimStyle.Render("no statistics yet"))
	}
	if msg := m.errorText(); msg != "" {
		parts = append(parts, errorStyle.Width(panelWidth-2).Render(msg))
	}
	return strings.Join(parts, "\n")
}
