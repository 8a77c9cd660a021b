package tui

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	list "github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	table "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/golang/geo/r3"

	"pointview/internal/cloud"
	"pointview/internal/config"
	"pointview/internal/orbit"
	"pointview/internal/scene"
	"pointview/internal/source"
	"pointview/internal/store"
)

const (
	panelWidth   = 40
	headerHeight = 1
	footerHeight = 2
	// wheelDelta is the scroll amount of one wheel notch.
	wheelDelta = 100
)

type frameMsg time.Time

type loadedMsg store.Result

// loadMsg asks Update to start loading a shape.
type loadMsg struct{ name cloud.ShapeName }

type Model struct {
	ctx    context.Context
	cancel context.CancelFunc
	cfg    config.Config
	log    *slog.Logger

	width  int
	height int

	showPanel   bool
	helpVisible bool

	// viewer context shared by input handlers and the frame loop
	view  *scene.Viewport
	orbit *orbit.Controller
	store *store.Store
	frame string

	status string

	l    list.Model
	tbl  table.Model
	spin spinner.Model
	help help.Model
	keys keyMap
}

func New(ctx context.Context, cfg config.Config, src source.Source, log *slog.Logger) Model {
	if log == nil {
		log = slog.Default()
	}
	ctx, cancel := context.WithCancel(ctx)
	start := r3.Vector{X: cfg.Camera.Start[0], Y: cfg.Camera.Start[1], Z: cfg.Camera.Start[2]}
	view := scene.NewViewport(80, 20, start)
	m := Model{
		ctx:         ctx,
		cancel:      cancel,
		cfg:         cfg,
		log:         log,
		showPanel:   true,
		helpVisible: true,
		view:        view,
		orbit:       orbit.New(view.Camera, cfg.Orbit()),
		store:       store.New(view.Scene, src, log),
		status:      "pointview ready",
		l:           newShapeList(),
		tbl:         newStatsTable(),
		spin:        spinner.New(spinner.WithSpinner(spinner.Dot)),
		help:        help.New(),
		keys:        newKeyMap(),
	}
	m.selectShape(m.defaultShape())
	return m
}

// Init auto-loads the default shape and starts the frame loop.
func (m Model) Init() tea.Cmd {
	name := m.defaultShape()
	return tea.Batch(func() tea.Msg { return loadMsg{name} }, m.nextFrame())
}

func (m Model) defaultShape() cloud.ShapeName {
	name, err := cloud.ParseShape(m.cfg.DefaultShape)
	if err != nil {
		return cloud.Sphere
	}
	return name
}

// load starts loading name. The fetch runs as a command; its result comes
// back to Update as a loadedMsg.
func (m *Model) load(name cloud.ShapeName) tea.Cmd {
	req := m.store.Begin(name)
	m.keys.Reload.SetEnabled(false)
	m.status = "loading " + string(name)
	st, ctx := m.store, m.ctx
	fetch := func() tea.Msg { return loadedMsg(st.Fetch(ctx, req)) }
	return tea.Batch(fetch, m.spin.Tick)
}

// nextFrame schedules the next render frame.
func (m Model) nextFrame() tea.Cmd {
	return tea.Tick(m.cfg.FrameInterval(), func(t time.Time) tea.Msg { return frameMsg(t) })
}

// Close stops the frame loop, releases the renderer and cancels fetches.
func (m Model) Close() {
	if !m.view.Renderer.Closed() {
		m.log.Debug("viewer closed", "frames", m.view.Frames())
	}
	m.view.Close()
	m.cancel()
}

// Session exposes the store's view of the current load.
func (m Model) Session() store.Session { return m.store.Session() }
