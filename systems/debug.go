package systems

import (
	"fmt"
	"image/color"
	"os"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/nnarke/scrolly/components"
	"github.com/nnarke/scrolly/fonts"
	"github.com/shirou/gopsutil/v3/process"
	"github.com/yohamta/donburi/ecs"
)

const (
	debugMargin      = 8
	debugLineHeight  = 14
	debugPanelWidth  = 260
	debugSampleEvery = time.Second
)

var (
	debugPanelColor = color.RGBA{0, 0, 0, 170}
	debugTextColor  = color.RGBA{0, 255, 128, 255}
	selfProcess     *process.Process
)

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	lines := []string{
		fmt.Sprintf("FPS %.1f  TPS %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()),
		fmt.Sprintf("progress %.3f", ScrollProgress(ecs)),
	}

	if seq := GetSequence(ecs); seq != nil {
		p := seq.Player
		frames := p.Frames()
		w, h := p.Size()
		lines = append(lines,
			fmt.Sprintf("frame %d  effective %d  drawn %d", p.FrameIndex(), p.EffectiveIndex(), p.DrawnIndex()),
			fmt.Sprintf("loaded %d/%d  failed %d  ready %t", frames.Completed(), frames.Expected(), frames.Failed(), p.Ready()),
			fmt.Sprintf("canvas %dx%d", w, h),
		)
	}

	if entry, ok := components.DebugStats.First(ecs.World); ok {
		stats := components.DebugStats.Get(entry)
		sampleProcessStats(stats)
		lines = append(lines, fmt.Sprintf("rss %.1f MiB", float64(stats.RSS)/(1<<20)))
	}

	vector.FillRect(screen,
		debugMargin, debugMargin,
		debugPanelWidth, float32(len(lines)*debugLineHeight+debugMargin),
		debugPanelColor, false)

	face := fonts.Mono.Get()
	for i, l := range lines {
		text.Draw(screen, l, face, debugMargin*2, debugMargin+(i+1)*debugLineHeight, debugTextColor)
	}
}

// sampleProcessStats refreshes the resident set size at most once per
// debugSampleEvery.
func sampleProcessStats(stats *components.DebugStatsData) {
	now := time.Now()
	if now.Sub(stats.SampledAt) < debugSampleEvery {
		return
	}
	stats.SampledAt = now

	if selfProcess == nil {
		p, err := process.NewProcess(int32(os.Getpid()))
		if err != nil {
			return
		}
		selfProcess = p
	}
	mem, err := selfProcess.MemoryInfo()
	if err != nil {
		return
	}
	stats.RSS = mem.RSS
}

// DebugSummary is a one-line version of the HUD for logs.
func DebugSummary(ecs *ecs.ECS) string {
	var b strings.Builder
	fmt.Fprintf(&b, "progress=%.3f", ScrollProgress(ecs))
	if seq := GetSequence(ecs); seq != nil {
		frames := seq.Player.Frames()
		fmt.Fprintf(&b, " loaded=%d/%d failed=%d", frames.Completed(), frames.Expected(), frames.Failed())
	}
	return b.String()
}
