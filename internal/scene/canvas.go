package scene

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// canvas is a braille buffer: each cell holds 2x4 micro-pixels, one color
// and the depth of the nearest pixel drawn into it.
type canvas struct {
	w, h  int // in cells
	mask  [][]uint8
	color [][]string
	depth [][]float64
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: w, h: h}
	c.mask = make([][]uint8, h)
	c.color = make([][]string, h)
	c.depth = make([][]float64, h)
	for i := 0; i < h; i++ {
		c.mask[i] = make([]uint8, w)
		c.color[i] = make([]string, w)
		c.depth[i] = make([]float64, w)
	}
	c.clear()
	return c
}

func (c *canvas) clear() {
	for y := 0; y < c.h; y++ {
		for x := 0; x < c.w; x++ {
			c.mask[y][x] = 0
			c.color[y][x] = ""
			c.depth[y][x] = math.Inf(1)
		}
	}
}

var brailleBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// setPixel sets a micro-pixel; the cell takes the color of its nearest pixel.
func (c *canvas) setPixel(mx, my int, depth float64, color string) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= c.h || cx >= c.w {
		return
	}
	c.mask[cy][cx] |= brailleBits[rx][ry]
	if depth <= c.depth[cy][cx] {
		c.depth[cy][cx] = depth
		c.color[cy][cx] = color
	}
}

// line draws with Bresenham, interpolating depth between the endpoints.
func (c *canvas) line(x0, y0 int, d0 float64, x1, y1 int, d1 float64, color string) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	steps := max(dx, -dy)
	if steps > 4*(c.w+c.h)*4 {
		// endpoints far off screen; not worth walking
		return
	}
	err := dx + dy
	for i := 0; ; i++ {
		t := 0.0
		if steps > 0 {
			t = float64(i) / float64(steps)
		}
		c.setPixel(x0, y0, d0+(d1-d0)*t, color)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// disc fills a micro-pixel disc of radius r around (mx, my).
func (c *canvas) disc(mx, my, r int, depth float64, color string) {
	if r <= 0 {
		c.setPixel(mx, my, depth, color)
		return
	}
	for y := -r; y <= r; y++ {
		for x := -r; x <= r; x++ {
			if x*x+y*y <= r*r {
				c.setPixel(mx+x, my+y, depth, color)
			}
		}
	}
}

func (c *canvas) lines(styles map[string]lipgloss.Style) []string {
	out := make([]string, c.h)
	var sb, run strings.Builder
	for y := 0; y < c.h; y++ {
		sb.Reset()
		cur := ""
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if cur == "" {
				sb.WriteString(run.String())
			} else {
				st, ok := styles[cur]
				if !ok {
					st = lipgloss.NewStyle().Foreground(lipgloss.Color(cur))
					styles[cur] = st
				}
				sb.WriteString(st.Render(run.String()))
			}
			run.Reset()
		}
		for x := 0; x < c.w; x++ {
			mask := c.mask[y][x]
			col := c.color[y][x]
			if mask == 0 {
				col = ""
			}
			if col != cur {
				flush()
				cur = col
			}
			if mask == 0 {
				run.WriteRune(' ')
			} else {
				run.WriteRune(rune(0x2800 + int(mask)))
			}
		}
		flush()
		out[y] = sb.String()
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
