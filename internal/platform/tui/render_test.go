package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/skyflap/internal/config"
	"github.com/vovakirdan/skyflap/internal/core"
	"github.com/vovakirdan/skyflap/internal/sim"
)

func menuSnapshot() sim.Snapshot {
	return sim.New(config.Default(), sim.WithSeed(1)).Snapshot()
}

func screenText(scr *core.Screen) string {
	return scr.String()
}

func TestDrawMenu(t *testing.T) {
	scr := core.NewScreen(80, 24)
	snap := menuSnapshot()
	Draw(scr, snap, Status{})

	if !strings.Contains(scr.Row(0), "SCORE 0") || !strings.Contains(scr.Row(0), "normal") {
		t.Errorf("HUD row = %q", scr.Row(0))
	}
	if !strings.Contains(screenText(scr), "S K Y F L A P") {
		t.Error("menu title missing")
	}
	if !strings.Contains(screenText(scr), "d difficulty (normal)") {
		t.Error("menu should name the next difficulty")
	}

	vp := FieldViewport(scr.Width(), scr.Height(), snap)
	col, row := vp.Col(snap.Body.X), vp.Row(snap.Body.Y)
	if got := scr.Get(col, row); got != '^' {
		t.Errorf("body glyph = %q, expected '^'", got)
	}
	if got := scr.Get(col+1, row); got != '>' {
		t.Errorf("beak glyph = %q, expected '>'", got)
	}

	ground := vp.Row(snap.Field.GroundY())
	if !strings.Contains(scr.Row(ground), "═") {
		t.Errorf("ground row %d = %q", ground, scr.Row(ground))
	}
	if !strings.ContainsAny(scr.Row(scr.Height()-1), "░▒") {
		t.Errorf("bottom row should be ground fill, got %q", scr.Row(scr.Height()-1))
	}
}

func TestDrawObstacle(t *testing.T) {
	scr := core.NewScreen(80, 24)
	snap := menuSnapshot()
	snap.State = sim.StatePlaying
	snap.Obstacles = []sim.ObstacleView{{
		Top:    sim.Rect{X: 200, Y: 0, W: 70, H: 225},
		Bottom: sim.Rect{X: 200, Y: 375, W: 70, H: 185},
	}}
	Draw(scr, snap, Status{})

	vp := FieldViewport(scr.Width(), scr.Height(), snap)
	col := vp.Col(235)
	if got := scr.Get(col, vp.Row(50)); got != '█' {
		t.Errorf("top pipe cell = %q, expected '█'", got)
	}
	if got := scr.Get(col, vp.Row(450)); got != '█' {
		t.Errorf("bottom pipe cell = %q, expected '█'", got)
	}
	if got := scr.Get(col, vp.Row(300)); got == '█' {
		t.Error("gap should be open")
	}

	top := vp.Cells(200, 0, 70, 225)
	if got := scr.Get(top.X-1, top.Bottom()-1); got != '▀' {
		t.Errorf("top lip = %q, expected '▀'", got)
	}
	if row0 := scr.Row(0); strings.ContainsRune(row0, '█') {
		t.Errorf("pipes must not draw over the HUD: %q", row0)
	}
}

func TestDrawGameOver(t *testing.T) {
	scr := core.NewScreen(80, 24)
	snap := menuSnapshot()
	snap.State = sim.StateGameOver
	snap.Body.Alive = false
	snap.Score, snap.Best = 7, 7
	snap.NextPreset = config.PresetEasy

	Draw(scr, snap, Status{NewBest: true, Muted: true})
	text := screenText(scr)
	for _, want := range []string{"GAME OVER", "score 7  best 7", "NEW BEST!", "muted", "d difficulty (easy)"} {
		if !strings.Contains(text, want) {
			t.Errorf("screen missing %q", want)
		}
	}

	vp := FieldViewport(scr.Width(), scr.Height(), snap)
	if got := scr.Get(vp.Col(snap.Body.X), vp.Row(snap.Body.Y)); got != 'x' {
		t.Errorf("dead body glyph = %q, expected 'x'", got)
	}

	Draw(scr, snap, Status{})
	if strings.Contains(screenText(scr), "NEW BEST!") {
		t.Error("NEW BEST! shown without a new best")
	}
}

func TestDrawPausedAndAutopilot(t *testing.T) {
	scr := core.NewScreen(80, 24)
	snap := menuSnapshot()
	snap.State = sim.StatePaused
	snap.Autopilot = true
	Draw(scr, snap, Status{})

	if !strings.Contains(screenText(scr), "PAUSED") {
		t.Error("pause overlay missing")
	}
	if !strings.Contains(scr.Row(0), "AUTO") {
		t.Errorf("HUD should flag the autopilot: %q", scr.Row(0))
	}
}

func TestDrawParticles(t *testing.T) {
	scr := core.NewScreen(80, 24)
	snap := menuSnapshot()
	snap.State = sim.StateGameOver
	snap.Particles = []sim.Particle{
		{X: 50, Y: 100, Size: 5, Color: 1},
		{X: 400, Y: 100, Size: 2},
		{X: -100, Y: 100, Size: 5}, // off field
	}
	Draw(scr, snap, Status{})

	vp := FieldViewport(scr.Width(), scr.Height(), snap)
	cell := scr.GetCell(vp.Col(50), vp.Row(100))
	if cell.Rune != '*' || cell.Color != core.SparkColor(1) {
		t.Errorf("large particle cell = %+v", cell)
	}
	if got := scr.Get(vp.Col(400), vp.Row(100)); got != '·' {
		t.Errorf("small particle glyph = %q, expected '·'", got)
	}
}

func TestDrawTinyScreen(t *testing.T) {
	for _, size := range [][2]int{{0, 0}, {1, 1}, {5, 2}} {
		scr := core.NewScreen(size[0], size[1])
		Draw(scr, menuSnapshot(), Status{})
	}
}

func TestBeakGlyph(t *testing.T) {
	tests := []struct {
		angle float64
		want  rune
	}{
		{-0.45, '/'},
		{0, '>'},
		{0.5, '>'},
		{1.2, '\\'},
	}
	for _, tt := range tests {
		if got := beakGlyph(tt.angle); got != tt.want {
			t.Errorf("beakGlyph(%v) = %q, expected %q", tt.angle, got, tt.want)
		}
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	scr := core.NewScreen(4, 2)
	scr.DrawText(0, 0, "ab", core.ColorRed)
	scr.DrawText(2, 0, "cd", core.ColorGreen)

	out := RenderScreen(scr)
	if !strings.Contains(out, "ab") || !strings.Contains(out, "cd") {
		t.Errorf("RenderScreen() = %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 lines, got %q", out)
	}
}
