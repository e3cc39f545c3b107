// Package debugui provides a Dear ImGui overlay for inspecting a running
// backdrop: particle field state and per-system frame timings.
package debugui

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
)

// Window is anything that renders ImGui widgets once per overlay frame.
type Window interface {
	Render(deltaTime float32)
}

// WindowFunc adapts a plain function to a Window.
type WindowFunc func(deltaTime float32)

func (f WindowFunc) Render(deltaTime float32) {
	f(deltaTime)
}

// InputState tracks whether Dear ImGui is consuming mouse or keyboard input.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Overlay owns the ImGui backend and the windows drawn on top of the game.
type Overlay struct {
	backend *ebitenbackend.EbitenBackend
	windows []Window
	timer   *FrameTimer
	input   InputState
}

// NewOverlay creates the ImGui backend and its ebiten window. It must be
// called before ebiten.RunGame.
func NewOverlay(title string, width, height int) *Overlay {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")

	return &Overlay{
		backend: backend,
		timer:   NewFrameTimer(),
	}
}

// Add appends a window. Windows render in the order they were added.
func (o *Overlay) Add(w Window) {
	o.windows = append(o.windows, w)
}

// Update builds this frame's ImGui draw lists. Call it from Game.Update.
func (o *Overlay) Update() {
	o.backend.BeginFrame()

	io := imgui.CurrentIO()
	o.input.WantCaptureMouse = io.WantCaptureMouse()
	o.input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	dt := o.timer.GetDeltaTime()
	for _, w := range o.windows {
		w.Render(dt)
	}

	o.backend.EndFrame()
}

// Draw renders the overlay on top of screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	o.backend.Draw(screen)
}

// Layout forwards the outside size to the backend.
func (o *Overlay) Layout(width, height int) {
	o.backend.Layout(width, height)
}

// Input returns the capture state observed during the last Update.
func (o *Overlay) Input() InputState {
	return o.input
}

// WantCaptureMouse reports whether ImGui used the mouse during the last
// Update.
func (o *Overlay) WantCaptureMouse() bool {
	return o.input.WantCaptureMouse
}
