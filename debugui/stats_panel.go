package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/pong/ecs"
)

// FrameHistory is a fixed-size ring of frame durations in milliseconds.
type FrameHistory struct {
	samples []float32
	next    int
	filled  bool
	last    time.Time
}

func NewFrameHistory(size int) *FrameHistory {
	return &FrameHistory{samples: make([]float32, size)}
}

// Mark records the time since the previous Mark.
func (h *FrameHistory) Mark(now time.Time) {
	if !h.last.IsZero() {
		h.Add(now.Sub(h.last))
	}
	h.last = now
}

// Add records one frame duration.
func (h *FrameHistory) Add(d time.Duration) {
	h.samples[h.next] = float32(d.Seconds() * 1000)
	h.next = (h.next + 1) % len(h.samples)
	if h.next == 0 {
		h.filled = true
	}
}

// Average returns the mean of the recorded samples in milliseconds.
func (h *FrameHistory) Average() float32 {
	n := h.next
	if h.filled {
		n = len(h.samples)
	}
	if n == 0 {
		return 0
	}
	var sum float32
	for _, s := range h.samples[:n] {
		sum += s
	}
	return sum / float32(n)
}

// SchedulerPanel shows frame timing and per-system durations.
type SchedulerPanel struct {
	scheduler *ecs.Scheduler
	history   *FrameHistory
}

func (sp *SchedulerPanel) Render() {
	sp.history.Mark(time.Now())

	imgui.SetNextWindowPosV(imgui.NewVec2(380, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(400, 260), imgui.CondOnce)
	if !imgui.BeginV("Systems", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	avg := sp.history.Average()
	if avg > 0 {
		imgui.Text(fmt.Sprintf("Avg frame: %.2f ms (%.0f FPS)", avg, 1000/avg))
	}
	imgui.PlotLinesFloatPtr("##frametime", &sp.history.samples[0], int32(len(sp.history.samples)))

	stats := sp.scheduler.Stats()
	imgui.Text(fmt.Sprintf("Frames: %d", stats.Frames))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("SystemTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("System")
		imgui.TableSetupColumn("Last")
		imgui.TableSetupColumn("Avg")
		imgui.TableSetupColumn("Max")
		imgui.TableHeadersRow()

		for _, st := range stats.Systems {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(st.Name)
			imgui.TableNextColumn()
			imgui.Text(st.LastDuration.String())
			imgui.TableNextColumn()
			imgui.Text(st.AvgDuration.String())
			imgui.TableNextColumn()
			imgui.Text(st.MaxDuration.String())
		}

		imgui.EndTable()
	}

	imgui.End()
}
