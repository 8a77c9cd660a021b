package scene

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/golang/geo/r3"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// maxPointRadius caps how large a near point may be drawn, in micro-pixels.
const maxPointRadius = 3

// Renderer rasterizes a scene into w x h terminal cells.
type Renderer struct {
	w, h   int
	cv     *canvas
	styles map[string]lipgloss.Style
	closed bool
}

func NewRenderer(w, h int) *Renderer {
	r := &Renderer{styles: map[string]lipgloss.Style{}}
	r.SetSize(w, h)
	return r
}

func (r *Renderer) Size() (w, h int) { return r.w, r.h }

// SetSize reallocates the frame buffer; non-positive sizes are ignored.
func (r *Renderer) SetSize(w, h int) {
	if w <= 0 || h <= 0 || r.closed {
		return
	}
	if w == r.w && h == r.h && r.cv != nil {
		return
	}
	r.w, r.h = w, h
	r.cv = newCanvas(w, h)
}

// Close releases the frame buffer. A closed renderer draws nothing.
func (r *Renderer) Close() {
	r.closed = true
	r.cv = nil
	r.styles = nil
}

func (r *Renderer) Closed() bool { return r.closed }

func (r *Renderer) Render(s *Scene, cam *Camera) string {
	if r.closed || r.cv == nil {
		return ""
	}
	r.cv.clear()
	r.drawGrid(s.Grid, cam)
	r.drawAxes(s.Axes, cam)
	if pc := s.Cloud(); pc != nil {
		r.drawPoints(pc, s.Background, cam)
	}
	return strings.Join(r.cv.lines(r.styles), "\n")
}

// toMicro maps NDC to micro-pixel coordinates.
func (r *Renderer) toMicro(x, y float64) (int, int) {
	wm, hm := float64(r.w*2-1), float64(r.h*4-1)
	return int(math.Round((x + 1) / 2 * wm)), int(math.Round((1 - y) / 2 * hm))
}

// segment draws a world-space line, split so pieces behind the camera drop out.
func (r *Renderer) segment(a, b r3.Vector, cam *Camera, color string, pieces int) {
	prev := a
	for i := 1; i <= pieces; i++ {
		next := a.Add(b.Sub(a).Mul(float64(i) / float64(pieces)))
		x0, y0, d0, ok0 := cam.Project(prev)
		x1, y1, d1, ok1 := cam.Project(next)
		if ok0 && ok1 {
			mx0, my0 := r.toMicro(x0, y0)
			mx1, my1 := r.toMicro(x1, y1)
			r.cv.line(mx0, my0, d0, mx1, my1, d1, color)
		}
		prev = next
	}
}

func (r *Renderer) drawGrid(g Grid, cam *Camera) {
	if g.Divisions <= 0 {
		return
	}
	half := g.Size / 2
	step := g.Size / float64(g.Divisions)
	for i := 0; i <= g.Divisions; i++ {
		k := -half + float64(i)*step
		color := g.LineColor
		if i*2 == g.Divisions {
			color = g.CenterColor
		}
		r.segment(r3.Vector{X: k, Z: -half}, r3.Vector{X: k, Z: half}, cam, color, g.Divisions)
		r.segment(r3.Vector{X: -half, Z: k}, r3.Vector{X: half, Z: k}, cam, color, g.Divisions)
	}
}

func (r *Renderer) drawAxes(a Axes, cam *Camera) {
	if a.Length <= 0 {
		return
	}
	dirs := [3]r3.Vector{{X: a.Length}, {Y: a.Length}, {Z: a.Length}}
	for i, d := range dirs {
		r.segment(r3.Vector{}, d, cam, axisColors[i], 4)
	}
}

func (r *Renderer) drawPoints(pc *PointCloud, background string, cam *Camera) {
	m, g := pc.Material, pc.Geometry
	if m.Disposed() || g.Disposed() {
		return
	}
	color := pointColor(m, background)
	tanHalf := math.Tan(cam.FOV * math.Pi / 360)
	hm := float64(r.h * 4)
	pos := g.Positions
	for i := 0; i+2 < len(pos); i += 3 {
		p := r3.Vector{X: float64(pos[i]), Y: float64(pos[i+1]), Z: float64(pos[i+2])}
		x, y, d, ok := cam.Project(p)
		if !ok || x < -1.1 || x > 1.1 || y < -1.1 || y > 1.1 {
			continue
		}
		mx, my := r.toMicro(x, y)
		// size attenuates with distance, as a perspective point sprite would
		rad := int(m.Size / (d * tanHalf) * hm / 4)
		r.cv.disc(mx, my, min(rad, maxPointRadius), d, color)
	}
}

// pointColor pre-blends a transparent material toward the background.
func pointColor(m *Material, background string) string {
	if !m.Transparent {
		return m.Color
	}
	c, err := colorful.Hex(m.Color)
	if err != nil {
		return m.Color
	}
	bg, err := colorful.Hex(background)
	if err != nil {
		return m.Color
	}
	return c.BlendRgb(bg, 1-m.Opacity).Clamped().Hex()
}
