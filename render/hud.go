package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/crunch-time/core"
	"github.com/lixenwraith/crunch-time/engine"
	"github.com/lixenwraith/crunch-time/parameter"
	"github.com/lixenwraith/crunch-time/progression"
	"github.com/lixenwraith/crunch-time/puzzle"
)

// HUD draws session snapshots onto a tcell screen
// Layout: two bars and a status line on top, the scene below, the task ledger on the right,
// the prompt under the scene and the puzzle panel centered over the scene
type HUD struct {
	screen tcell.Screen
	width  int
	height int
}

// NewHUD creates a HUD bound to screen
func NewHUD(screen tcell.Screen) *HUD {
	w, h := screen.Size()
	return &HUD{screen: screen, width: w, height: h}
}

// Resize updates the cached terminal size
func (h *HUD) Resize() {
	h.width, h.height = h.screen.Size()
}

// Render draws a full frame
func (h *HUD) Render(snap engine.Snapshot) {
	h.screen.Clear()
	base := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText)
	h.fill(base)

	h.drawBar(0, "TIME", snap.Depletion, base)
	h.drawBar(1, "WORK", snap.Completion, base)
	h.drawStatus(2, snap, base)

	h.drawScene(snap, base)
	h.drawLedger(snap, base)
	h.drawPrompt(snap, base)

	if snap.Puzzle != nil {
		h.drawPuzzle(snap, base)
	}

	h.screen.Show()
}

// RenderFailure draws the end screen with optional result lines
func (h *HUD) RenderFailure(snap engine.Snapshot, results []string) {
	h.screen.Clear()
	base := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText)
	h.fill(base)

	banner := base.Foreground(tcell.ColorWhite).Background(RgbFailure).Bold(true)
	title := " YOU'RE FIRED "
	y := h.height/2 - 4
	if y < 0 {
		y = 0
	}
	h.drawText((h.width-len(title))/2, y, title, banner)

	lines := []string{
		"cause: " + lossText(snap.LossCause),
		fmt.Sprintf("games shipped: %d   successes: %d", snap.GameCount, snap.SuccessCount),
		fmt.Sprintf("last completion: %3.0f%%", snap.Completion*100),
	}
	if len(results) > 0 {
		lines = append(lines, "", "best sessions:")
		for i, r := range results {
			if i >= parameter.HUDScoreRows {
				break
			}
			lines = append(lines, r)
		}
	}
	lines = append(lines, "", "press q to quit")

	for i, line := range lines {
		h.drawText((h.width-len(line))/2, y+2+i, line, base)
	}
	h.screen.Show()
}

func lossText(cause string) string {
	switch cause {
	case progression.CauseTimeout:
		return "the deadline passed with the game unfinished"
	case progression.CauseFired:
		return "the game launched and flopped"
	case progression.CauseMissedCalls:
		return "ignored the manager one time too many"
	case "":
		return "unknown"
	default:
		return cause
	}
}

func (h *HUD) fill(style tcell.Style) {
	for y := 0; y < h.height; y++ {
		for x := 0; x < h.width; x++ {
			h.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// drawBar draws a labeled gradient bar with a percentage on the right
func (h *HUD) drawBar(y int, label string, value float64, base tcell.Style) {
	h.drawText(0, y, label, base.Bold(true))

	barStart := parameter.HUDBarLabelWidth
	barWidth := h.width - barStart - 5
	if barWidth < 1 {
		return
	}

	filled := int(value*float64(barWidth) + 0.5)
	if filled > barWidth {
		filled = barWidth
	}
	for x := 0; x < barWidth; x++ {
		if x < filled {
			color := GetBarColor(float64(x+1) / float64(barWidth))
			h.screen.SetContent(barStart+x, y, parameter.HUDBarFilled, nil, base.Foreground(color))
		} else {
			h.screen.SetContent(barStart+x, y, parameter.HUDBarEmpty, nil, base.Foreground(RgbDim))
		}
	}
	h.drawText(barStart+barWidth+1, y, fmt.Sprintf("%3.0f%%", value*100), base)
}

func (h *HUD) drawStatus(y int, snap engine.Snapshot, base tcell.Style) {
	text := fmt.Sprintf("games %d  wins %d  missed %d  %s  %s",
		snap.GameCount, snap.SuccessCount, snap.MissedCalls, snap.Phase, formatElapsed(snap.Elapsed))
	h.drawText(0, y, text, base)

	if snap.Paused {
		badge := " PAUSED "
		h.drawText(h.width-len(badge), y, badge, base.Foreground(tcell.ColorWhite).Background(RgbPaused))
	}
}

func formatElapsed(d time.Duration) string {
	s := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", s/60, s%60)
}

func (h *HUD) blinkOn(snap engine.Snapshot) bool {
	return (snap.Elapsed/parameter.HUDBlinkPeriod)%2 == 0
}

func (h *HUD) drawScene(snap engine.Snapshot, base tcell.Style) {
	oy := parameter.HUDTopRows

	wall := base.Foreground(RgbWall)
	for _, a := range snap.Walls {
		for y := a.Y; y < a.Y+a.Height; y++ {
			for x := a.X; x < a.X+a.Width; x++ {
				h.setCell(x, oy+y, parameter.HUDWallGlyph, wall)
			}
		}
	}

	ringing := false
	for _, t := range snap.Tasks {
		if t.Label == core.TaskManager.Label() && t.Blinking {
			ringing = true
		}
	}

	for _, s := range snap.Slots {
		style := base.Foreground(RgbText)
		switch {
		case s.InRange && s.Highlighted:
			style = base.Foreground(RgbInRange).Bold(true)
		case s.OnCooldown:
			style = base.Foreground(RgbCooldown)
		case s.Highlighted:
			style = base.Foreground(RgbHighlight)
		}
		if ringing && s.Task == core.TaskManager && h.blinkOn(snap) {
			style = base.Foreground(RgbBlink).Bold(true)
		}

		glyph := s.Glyph
		if glyph == 0 {
			glyph = '?'
		}
		for y := s.Area.Y; y < s.Area.Y+s.Area.Height; y++ {
			for x := s.Area.X; x < s.Area.X+s.Area.Width; x++ {
				h.setCell(x, oy+y, glyph, style)
			}
		}
	}

	if c := snap.Cat; c != nil {
		glyph := parameter.HUDCatGlyph
		if c.State == "sitting" || c.State == "lying" {
			glyph = parameter.HUDCatRest
		}
		h.setCell(c.Pos.X, oy+c.Pos.Y, glyph, base.Foreground(RgbCat))
	}

	h.setCell(snap.Player.X, oy+snap.Player.Y, parameter.HUDPlayerChar, base.Foreground(RgbPlayer).Bold(true))
}

// setCell draws inside the scene viewport only
func (h *HUD) setCell(x, y int, r rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= h.width || y >= h.height {
		return
	}
	h.screen.SetContent(x, y, r, nil, style)
}

func (h *HUD) drawLedger(snap engine.Snapshot, base tcell.Style) {
	x := snap.Width + parameter.HUDSidePanelGap
	y := parameter.HUDTopRows
	if x >= h.width {
		return
	}

	h.drawText(x, y, "TASKS", base.Bold(true))
	if len(snap.Tasks) == 0 {
		h.drawText(x, y+1, "(none)", base.Foreground(RgbDim))
		return
	}

	for i, t := range snap.Tasks {
		line := "- " + t.Label
		style := base
		if t.Remaining > 0 {
			line += fmt.Sprintf(" %ds", int((t.Remaining+time.Second-1)/time.Second))
		}
		if t.Blinking {
			if h.blinkOn(snap) {
				style = base.Foreground(RgbBlink).Bold(true)
			} else {
				style = base.Foreground(RgbDim)
			}
		}
		if len(line) > parameter.HUDSidePanelWidth {
			line = line[:parameter.HUDSidePanelWidth]
		}
		h.drawText(x, y+1+i, line, style)
	}
}

func (h *HUD) drawPrompt(snap engine.Snapshot, base tcell.Style) {
	y := parameter.HUDTopRows + snap.Height
	if y >= h.height {
		return
	}

	for _, s := range snap.Slots {
		if s.Prompt != "" {
			h.drawText(0, y, fmt.Sprintf("[%s] %s", s.Label, s.Prompt), base.Foreground(RgbPrompt))
			return
		}
	}
	for _, s := range snap.Slots {
		if s.InRange && s.OnCooldown {
			secs := int((s.CooldownLeft + time.Second - 1) / time.Second)
			h.drawText(0, y, fmt.Sprintf("[%s] cooldown %ds", s.Label, secs), base.Foreground(RgbCooldown))
			return
		}
	}
}

func (h *HUD) drawPuzzle(snap engine.Snapshot, base tcell.Style) {
	lines := snap.Puzzle.Lines
	w := parameter.HUDPuzzlePanelWidth
	for _, l := range lines {
		if len(l)+4 > w {
			w = len(l) + 4
		}
	}
	ht := len(lines) + 3

	x0 := (snap.Width - w) / 2
	if x0 < 0 {
		x0 = 0
	}
	y0 := parameter.HUDTopRows + (snap.Height-ht)/2
	if y0 < parameter.HUDTopRows {
		y0 = parameter.HUDTopRows
	}

	panel := base.Background(RgbPanel)
	for y := y0; y < y0+ht; y++ {
		for x := x0; x < x0+w; x++ {
			r := ' '
			switch {
			case (y == y0 || y == y0+ht-1) && (x == x0 || x == x0+w-1):
				r = '+'
			case y == y0 || y == y0+ht-1:
				r = '-'
			case x == x0 || x == x0+w-1:
				r = '|'
			}
			h.setCell(x, y, r, panel)
		}
	}

	title := " " + strings.ToUpper(snap.Puzzle.Kind.String()) + " "
	h.drawText(x0+2, y0, title, panel.Bold(true))

	for i, line := range lines {
		h.drawText(x0+2, y0+2+i, line, panel)
		if snap.Puzzle.Kind == core.PuzzleColorSequence {
			h.tintColors(x0+2, y0+2+i, line, panel)
		}
	}
}

// tintColors recolors palette names inside a color-sequence line
func (h *HUD) tintColors(x, y int, line string, panel tcell.Style) {
	for i, name := range puzzle.ColorNames {
		at := strings.Index(line, name)
		if at < 0 {
			continue
		}
		style := panel.Foreground(SequenceColors[i])
		if at > 2 && line[at-3] == '*' {
			style = style.Reverse(true)
		}
		h.drawText(x+at, y, name, style)
	}
}

func (h *HUD) drawText(x, y int, text string, style tcell.Style) {
	if y < 0 || y >= h.height {
		return
	}
	for i, r := range []rune(text) {
		if x+i < 0 {
			continue
		}
		if x+i >= h.width {
			break
		}
		h.screen.SetContent(x+i, y, r, nil, style)
	}
}
