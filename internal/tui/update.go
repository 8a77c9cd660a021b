package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"pointview/internal/source"
	"pointview/internal/store"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
	case frameMsg:
		if m.view.Renderer.Closed() {
			return m, nil
		}
		m.frame = m.view.Frame()
		return m, m.nextFrame()
	case loadMsg:
		return m, m.load(msg.name)
	case loadedMsg:
		return m, m.applyLoad(store.Result(msg))
	case spinner.TickMsg:
		if !m.store.Session().Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	}
	return m, nil
}

func (m *Model) applyLoad(res store.Result) tea.Cmd {
	if !m.store.Complete(res) {
		return nil
	}
	sess := m.store.Session()
	m.keys.Reload.SetEnabled(!sess.Loading)
	if sess.Err != nil {
		m.status = "load failed: " + string(res.Shape)
		return nil
	}
	m.refreshStats()
	m.status = fmt.Sprintf("loaded %s  points=%d", res.Shape, len(res.Snapshot.Points))
	return nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	step := m.cfg.KeyStep
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	case key.Matches(msg, m.keys.Load):
		name := m.shapeForKey(msg.String())
		return m, m.load(name)
	case key.Matches(msg, m.keys.Reload):
		if m.store.Session().Loading {
			return m, nil
		}
		return m, m.load(m.store.Session().Selected)
	case key.Matches(msg, m.keys.OrbitL):
		m.orbit.Rotate(step, 0)
	case key.Matches(msg, m.keys.OrbitR):
		m.orbit.Rotate(-step, 0)
	case key.Matches(msg, m.keys.OrbitU):
		m.orbit.Rotate(0, -step)
	case key.Matches(msg, m.keys.OrbitD):
		m.orbit.Rotate(0, step)
	case key.Matches(msg, m.keys.ZoomIn):
		m.orbit.Wheel(-wheelDelta)
		m.status = fmt.Sprintf("radius: %.2f", m.orbit.Radius())
	case key.Matches(msg, m.keys.ZoomOut):
		m.orbit.Wheel(wheelDelta)
		m.status = fmt.Sprintf("radius: %.2f", m.orbit.Radius())
	case key.Matches(msg, m.keys.Panel):
		m.showPanel = !m.showPanel
		m.layout()
	case key.Matches(msg, m.keys.Help):
		m.helpVisible = !m.helpVisible
	}
	return m, nil
}

// handleMouse drives the orbit controller. A drag must start inside the
// viewport but may end anywhere.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		if m.inViewport(msg.X, msg.Y) {
			m.orbit.Wheel(-wheelDelta)
		}
	case msg.Button == tea.MouseButtonWheelDown:
		if m.inViewport(msg.X, msg.Y) {
			m.orbit.Wheel(wheelDelta)
		}
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if m.inViewport(msg.X, msg.Y) {
			m.orbit.Press(msg.X, msg.Y)
		}
	case msg.Action == tea.MouseActionMotion:
		m.orbit.Move(msg.X, msg.Y)
	case msg.Action == tea.MouseActionRelease:
		m.orbit.Release()
	}
}

// errorText is the panel's error region content, empty when there is none.
func (m Model) errorText() string {
	if m.store.Session().Err == nil {
		return ""
	}
	return source.UserMessage
}
