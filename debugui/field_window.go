package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/backdrop/field"
)

// FieldWindow shows the state of a particle field.
type FieldWindow struct {
	Field       *field.Field
	connections *FrameHistory
}

// NewFieldWindow creates a window plotting the connection count of the last
// historyFrames frames.
func NewFieldWindow(f *field.Field, historyFrames int) *FieldWindow {
	return &FieldWindow{
		Field:       f,
		connections: NewFrameHistory(historyFrames),
	}
}

func (w *FieldWindow) Render(_ float32) {
	if !imgui.BeginV("Particle Field", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	w.connections.Push(float32(w.Field.LastConnections))

	width, height := w.Field.Size()
	particles := w.Field.Particles()

	imgui.Text(fmt.Sprintf("Particles: %d", len(particles)))
	imgui.Text(fmt.Sprintf("Surface: %.0f x %.0f", width, height))
	if p, ok := w.Field.Pointer(); ok {
		imgui.Text(fmt.Sprintf("Pointer: %.0f, %.0f", p.X, p.Y))
	} else {
		imgui.Text("Pointer: none")
	}
	imgui.Text(fmt.Sprintf("Connections: %d (avg %.1f)", w.Field.LastConnections, w.connections.Average()))

	var speed float64
	for _, p := range particles {
		speed += p.Speed()
	}
	if len(particles) > 0 {
		imgui.Text(fmt.Sprintf("Mean speed: %.3f px/frame", speed/float64(len(particles))))
	}

	imgui.Separator()
	imgui.Text("Connections per frame")
	values := w.connections.Values()
	imgui.PlotLinesFloatPtr("##connections", &values[0], int32(len(values)))

	if imgui.TreeNodeStr("Config") {
		cfg := w.Field.Config()
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("FieldConfigTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Setting")
			imgui.TableSetupColumn("Value")
			imgui.TableHeadersRow()

			rows := []struct {
				name  string
				value string
			}{
				{"Particle count", fmt.Sprintf("%d", cfg.ParticleCount)},
				{"Connection distance", fmt.Sprintf("%.0f", cfg.ConnectionDistance)},
				{"Pointer radius", fmt.Sprintf("%.0f", cfg.PointerRadius)},
				{"Friction", fmt.Sprintf("%.3f", cfg.Friction)},
				{"Repulsion", fmt.Sprintf("%.2f", cfg.RepulsionStrength)},
				{"Line opacity", fmt.Sprintf("%.2f", cfg.ConnectionOpacity)},
				{"Glow", fmt.Sprintf("%.0f", cfg.Glow)},
			}
			for _, row := range rows {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(row.name)
				imgui.TableNextColumn()
				imgui.Text(row.value)
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Palette") {
		counts := make(map[field.Color]int)
		for _, p := range particles {
			counts[p.Color]++
		}
		for _, c := range field.Palette {
			imgui.BulletText(fmt.Sprintf("%s: %d", c, counts[c]))
		}
		imgui.TreePop()
	}

	imgui.End()
}
