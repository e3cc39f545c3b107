package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/backdrop/frame"
)

// FrameHistory is a ring buffer of recent values for ImGui plots.
type FrameHistory struct {
	values []float32
	index  int
	filled int
}

// NewFrameHistory creates a history holding size values.
func NewFrameHistory(size int) *FrameHistory {
	if size < 1 {
		size = 1
	}
	return &FrameHistory{values: make([]float32, size)}
}

// Push records v, overwriting the oldest value once full.
func (h *FrameHistory) Push(v float32) {
	h.values[h.index] = v
	h.index = (h.index + 1) % len(h.values)
	if h.filled < len(h.values) {
		h.filled++
	}
}

// Average returns the mean of the recorded values.
func (h *FrameHistory) Average() float32 {
	if h.filled == 0 {
		return 0
	}
	var sum float32
	for _, v := range h.values[:h.filled] {
		sum += v
	}
	return sum / float32(h.filled)
}

// Values returns the underlying buffer for plotting.
func (h *FrameHistory) Values() []float32 {
	return h.values
}

// LoopWindow shows frame times and the per-system stats of a frame.Loop.
type LoopWindow struct {
	Loop    *frame.Loop
	history *FrameHistory
}

// NewLoopWindow creates a window plotting the last historyFrames frames.
func NewLoopWindow(loop *frame.Loop, historyFrames int) *LoopWindow {
	return &LoopWindow{
		Loop:    loop,
		history: NewFrameHistory(historyFrames),
	}
}

func (w *LoopWindow) Render(deltaTime float32) {
	if !imgui.BeginV("Frame Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	w.history.Push(deltaTime * 1000.0)
	stats := w.Loop.Stats()

	imgui.Text(fmt.Sprintf("Frames: %d", stats.Frames))
	imgui.Text(fmt.Sprintf("Running: %t", w.Loop.Running()))

	avg := w.history.Average()
	if avg > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, 1000.0/avg))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	values := w.history.Values()
	imgui.PlotLinesFloatPtr("##frametime", &values[0], int32(len(values)))

	if imgui.TreeNodeStr("Systems") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableSetupColumn("Last")
			imgui.TableHeadersRow()

			for _, system := range stats.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(system.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", system.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(system.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(system.MaxDuration.String())
				imgui.TableNextColumn()
				imgui.Text(system.LastDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
