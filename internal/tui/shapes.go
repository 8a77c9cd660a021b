package tui

import (
	list "github.com/charmbracelet/bubbles/list"

	"pointview/internal/cloud"
)

type shapeItem struct {
	name cloud.ShapeName
	key  int
}

func (s shapeItem) Title() string       { return string(s.name) }
func (s shapeItem) Description() string { return cloud.Color(s.name) }
func (s shapeItem) FilterValue() string { return string(s.name) }

func newShapeList() list.Model {
	var items []list.Item
	for i, n := range cloud.Shapes() {
		items = append(items, shapeItem{name: n, key: i + 1})
	}
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	d.SetSpacing(0)
	l := list.New(items, d, 0, 0)
	l.Title = "Shapes"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	return l
}

// selectShape moves the list cursor to name.
func (m *Model) selectShape(name cloud.ShapeName) {
	for i, it := range m.l.Items() {
		if it.(shapeItem).name == name {
			m.l.Select(i)
			return
		}
	}
}

// shapeForKey maps "1".."7" to a shape; anything else to the list cursor.
func (m *Model) shapeForKey(k string) cloud.ShapeName {
	if len(k) == 1 && k[0] >= '1' && k[0] <= '9' {
		n := int(k[0] - '0')
		for _, it := range m.l.Items() {
			if si := it.(shapeItem); si.key == n {
				m.selectShape(si.name)
				return si.name
			}
		}
	}
	if it, ok := m.l.SelectedItem().(shapeItem); ok {
		return it.name
	}
	return m.store.Session().Selected
}
