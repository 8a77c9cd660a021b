package scene

import "github.com/golang/geo/r3"

// Viewport owns the scene, its camera and the renderer bound to one
// rectangle of the terminal. Input handlers and the frame loop share it.
type Viewport struct {
	Scene    *Scene
	Camera   *Camera
	Renderer *Renderer

	frames uint64
}

// NewViewport builds a scene viewed from start, aimed at the origin.
func NewViewport(w, h int, start r3.Vector) *Viewport {
	cam := NewCamera(75, 1, 0.1, 1000)
	cam.SetPosition(start)
	cam.LookAt(r3.Vector{})
	v := &Viewport{
		Scene:    New(),
		Camera:   cam,
		Renderer: NewRenderer(w, h),
	}
	v.Resize(w, h)
	return v
}

// Resize keeps the camera aspect in step with the output size. A braille
// micro-pixel is roughly square, a cell is 2x4 of them.
func (v *Viewport) Resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	v.Camera.SetAspect(float64(w*2) / float64(h*4))
	v.Renderer.SetSize(w, h)
}

// Frame draws one frame.
func (v *Viewport) Frame() string {
	if v.Renderer.Closed() {
		return ""
	}
	v.frames++
	return v.Renderer.Render(v.Scene, v.Camera)
}

func (v *Viewport) Frames() uint64 { return v.frames }

// Close tears down the renderer and releases the attached point cloud.
func (v *Viewport) Close() {
	v.Renderer.Close()
	v.Scene.Replace(nil)
}
