package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/skyflap/internal/core"
	"github.com/vovakirdan/skyflap/internal/sim"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Status carries driver-side facts the snapshot does not know about.
type Status struct {
	NewBest bool // The last finished run beat the previous best
	Muted   bool
}

const (
	hudRows   = 1
	starCount = 24
)

var (
	wingGlyphs = []rune{'^', '-', 'v'}
	starGlyph  = '·'
)

// FieldViewport returns the viewport the play field occupies on a screen of
// the given size: everything below the HUD row.
func FieldViewport(width, height int, snap sim.Snapshot) core.Viewport {
	vp := core.NewViewport(width, height-hudRows, snap.Field.Width, snap.Field.Height)
	vp.Origin.Y = hudRows
	return vp
}

// Draw paints a snapshot into the screen buffer.
func Draw(scr *core.Screen, snap sim.Snapshot, st Status) {
	scr.Clear()
	drawHUD(scr, snap, st)

	vp := FieldViewport(scr.Width(), scr.Height(), snap)
	if !vp.Valid() {
		return
	}

	drawStars(scr, vp, snap)
	for _, o := range snap.Obstacles {
		drawPipe(scr, vp, o)
	}
	drawGround(scr, vp, snap)
	for _, p := range snap.Particles {
		glyph := '·'
		if p.Size >= 4 {
			glyph = '*'
		}
		col, row := vp.Col(p.X), vp.Row(p.Y)
		if vp.Visible(col, row) {
			scr.SetColored(col, row, glyph, core.SparkColor(p.Color))
		}
	}
	drawBody(scr, vp, snap.Body)
	drawOverlay(scr, vp, snap, st)
}

func drawHUD(scr *core.Screen, snap sim.Snapshot, st Status) {
	scr.DrawText(1, 0, fmt.Sprintf("SCORE %d", snap.Score), core.ColorBrightWhite)
	scr.DrawText(12, 0, fmt.Sprintf("BEST %d", snap.Best), core.ColorYellow)

	var tags []string
	tags = append(tags, snap.Preset.String())
	if snap.Autopilot {
		tags = append(tags, "AUTO")
	}
	if st.Muted {
		tags = append(tags, "muted")
	}
	right := strings.Join(tags, " | ")
	scr.DrawText(scr.Width()-len(right)-1, 0, right, core.ColorGray)
}

// drawStars scatters a fixed star field that scrolls with the background
// drift at half speed.
func drawStars(scr *core.Screen, vp core.Viewport, snap sim.Snapshot) {
	w := snap.Field.Width
	sky := snap.Field.GroundY() * 0.85
	for i := range starCount {
		_, fx := math.Modf(float64(i+1) * 0.6180339887)
		_, fy := math.Modf(float64(i+1) * 0.7548776662)
		x := math.Mod(fx*w-snap.Drift*0.5, w)
		if x < 0 {
			x += w
		}
		col, row := vp.Col(x), vp.Row(fy*sky)
		if vp.Visible(col, row) {
			scr.SetColored(col, row, starGlyph, core.ColorGray)
		}
	}
}

func drawPipe(scr *core.Screen, vp core.Viewport, o sim.ObstacleView) {
	top := vp.Cells(o.Top.X, o.Top.Y, o.Top.W, o.Top.H)
	bottom := vp.Cells(o.Bottom.X, o.Bottom.Y, o.Bottom.W, o.Bottom.H)
	if !top.Intersects(vp.Origin) && !bottom.Intersects(vp.Origin) {
		return
	}

	scr.DrawRect(top.Intersect(vp.Origin), '█', core.ColorGreen)
	scr.DrawRect(bottom.Intersect(vp.Origin), '█', core.ColorGreen)

	// Lips are one cell wider on each side and face the gap.
	if !top.Empty() {
		lip := core.NewRect(top.X-1, top.Bottom()-1, top.W+2, 1)
		scr.DrawRect(lip.Intersect(vp.Origin), '▀', core.ColorBrightGreen)
	}
	if !bottom.Empty() {
		lip := core.NewRect(bottom.X-1, bottom.Y, bottom.W+2, 1)
		scr.DrawRect(lip.Intersect(vp.Origin), '▄', core.ColorBrightGreen)
	}
}

func drawGround(scr *core.Screen, vp core.Viewport, snap sim.Snapshot) {
	groundRow := vp.Row(snap.Field.GroundY())
	last := vp.Origin.Bottom()
	if groundRow >= last {
		groundRow = last - 1
	}

	// Texture scrolls with the drift so the ground appears to move.
	shift := int(snap.Drift * float64(vp.Origin.W) / snap.Field.Width)
	scr.DrawHLine(vp.Origin.X, groundRow, vp.Origin.W, '═', core.ColorBrightGreen)
	for col := vp.Origin.X; col < vp.Origin.Right(); col++ {
		for row := groundRow + 1; row < last; row++ {
			glyph := '░'
			if (col+shift+row)%4 == 0 {
				glyph = '▒'
			}
			scr.SetColored(col, row, glyph, core.ColorOrange)
		}
	}
}

func drawBody(scr *core.Screen, vp core.Viewport, b sim.Body) {
	col, row := vp.Col(b.X), vp.Row(b.Y)
	if !b.Alive {
		scr.SetColored(col, row, 'x', core.ColorBrightRed)
		return
	}

	scr.SetColored(col, row, wingGlyphs[b.Phase%len(wingGlyphs)], core.ColorBrightYellow)
	scr.SetColored(col+1, row, beakGlyph(b.Angle), core.ColorOrange)
}

// beakGlyph shows the body's tilt.
func beakGlyph(angle float64) rune {
	switch {
	case angle < -0.2:
		return '/'
	case angle > 0.6:
		return '\\'
	default:
		return '>'
	}
}

func drawOverlay(scr *core.Screen, vp core.Viewport, snap sim.Snapshot, st Status) {
	mid := vp.Origin.Y + vp.Origin.H/3

	switch snap.State {
	case sim.StateMenu:
		scr.DrawTextCentered(mid, "S K Y F L A P", core.ColorBrightCyan)
		scr.DrawTextCentered(mid+2, "space to flap  enter to start", core.ColorWhite)
		scr.DrawTextCentered(mid+3, fmt.Sprintf("a autopilot  d difficulty (%s)", snap.NextPreset), core.ColorGray)
	case sim.StatePaused:
		scr.DrawTextCentered(mid, "PAUSED", core.ColorBrightYellow)
		scr.DrawTextCentered(mid+2, "p to resume", core.ColorGray)
	case sim.StateGameOver:
		scr.DrawTextCentered(mid, "GAME OVER", core.ColorBrightRed)
		scr.DrawTextCentered(mid+2, fmt.Sprintf("score %d  best %d", snap.Score, snap.Best), core.ColorWhite)
		if st.NewBest {
			scr.DrawTextCentered(mid+3, "NEW BEST!", core.ColorBrightYellow)
		}
		scr.DrawTextCentered(mid+5, fmt.Sprintf("r to restart  d difficulty (%s)  q to quit", snap.NextPreset), core.ColorGray)
	}
}
