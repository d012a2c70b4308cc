package kickoff

import (
	"strings"
	"testing"

	"github.com/vovakirdan/space-kickoff/internal/audio"
	"github.com/vovakirdan/space-kickoff/internal/config"
	"github.com/vovakirdan/space-kickoff/internal/core"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     7,
	}
}

func newTestGame(countdown int) *Game {
	cfg := config.DefaultKickoffConfig()
	cfg.Gameplay.CountdownSeconds = countdown
	g := New(cfg, &audio.Recorder{}, nil)
	g.Reset(testRuntime())
	return g
}

func inputWith(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestGameCountdown(t *testing.T) {
	g := newTestGame(3)
	if g.Session().State() != NotStarted {
		t.Fatalf("state = %v", g.Session().State())
	}

	g.Step(inputWith(core.ActionConfirm))
	if g.CountdownSeconds() != 3 {
		t.Errorf("CountdownSeconds = %d, want 3", g.CountdownSeconds())
	}

	// Three seconds at 60 ticks, counting the step that started it.
	for i := 0; i < 178; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.Session().State() != Paused {
		t.Fatalf("resumed early: %v", g.Session().State())
	}
	if g.CountdownSeconds() != 1 {
		t.Errorf("CountdownSeconds = %d, want 1", g.CountdownSeconds())
	}

	g.Step(core.NewInputFrame())
	if g.Session().State() != Playing {
		t.Fatalf("state = %v, want playing", g.Session().State())
	}
	if g.CountdownSeconds() != 0 {
		t.Errorf("CountdownSeconds = %d after resume", g.CountdownSeconds())
	}
}

func TestGamePauseToggle(t *testing.T) {
	g := newTestGame(0)
	g.Step(inputWith(core.ActionConfirm))
	if g.Session().State() != Playing {
		t.Fatalf("state = %v, want playing without countdown", g.Session().State())
	}

	g.Step(inputWith(core.ActionPause))
	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.Session().State() != Paused {
		t.Fatalf("state = %v, want paused", g.Session().State())
	}
	if !g.State().Paused {
		t.Error("GameState should report paused")
	}

	g.Step(inputWith(core.ActionPause))
	if g.Session().State() != Playing {
		t.Errorf("state = %v, want playing after unpause", g.Session().State())
	}
}

func TestGamePauseCancelsCountdown(t *testing.T) {
	g := newTestGame(3)
	g.Step(inputWith(core.ActionConfirm))
	g.Step(inputWith(core.ActionPause))
	if g.CountdownSeconds() != 0 {
		t.Errorf("countdown still running: %d", g.CountdownSeconds())
	}
	for i := 0; i < 400; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.Session().State() != Paused {
		t.Errorf("state = %v, want paused", g.Session().State())
	}
}

func TestGameRestartAfterGameOver(t *testing.T) {
	g := newTestGame(0)
	g.Step(inputWith(core.ActionConfirm))
	for i := 0; i < 2000; i++ {
		if g.Step(core.NewInputFrame()).State.GameOver {
			break
		}
	}
	if !g.State().GameOver {
		t.Fatal("ball should have run out of lives")
	}
	if g.State().Lives != 0 {
		t.Errorf("Lives = %d", g.State().Lives)
	}

	g.Step(inputWith(core.ActionRestart))
	st := g.State()
	if st.GameOver || st.Lives != 3 || st.Score != 0 {
		t.Errorf("state after restart = %+v", st)
	}
}

func TestGameRestartMidGame(t *testing.T) {
	tests := []struct {
		name  string
		pause bool
	}{
		{"while playing", false},
		{"while paused", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(1)
			g.Step(inputWith(core.ActionConfirm))
			for i := 0; i < 70; i++ {
				g.Step(core.NewInputFrame())
			}
			if g.Session().State() != Playing {
				t.Fatalf("state = %v, want playing", g.Session().State())
			}
			g.Session().Ball().Score = 300
			g.Session().Ball().Lives = 1
			if tt.pause {
				g.Step(inputWith(core.ActionPause))
			}

			g.Step(inputWith(core.ActionRestart))
			st := g.State()
			if st.Score != 0 || st.Lives != 3 {
				t.Errorf("state after restart = %+v", st)
			}
			if g.Session().State() != Paused || g.CountdownSeconds() != 1 {
				t.Errorf("state = %v countdown = %d, want paused with countdown",
					g.Session().State(), g.CountdownSeconds())
			}
		})
	}
}

func TestGameCellToCanvas(t *testing.T) {
	g := newTestGame(0)
	tests := []struct {
		name string
		x, y int
		want core.Vec2
		ok   bool
	}{
		{"top-left", 0, 0, core.V(10, 20), true},
		{"middle", 40, 12, core.V(810, 500), true},
		{"bottom-right", 79, 23, core.V(1590, 940), true},
		{"left of screen", -1, 5, core.Vec2{}, false},
		{"below screen", 5, 24, core.Vec2{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := g.cellToCanvas(tt.x, tt.y)
			if ok != tt.ok || got != tt.want {
				t.Errorf("cellToCanvas(%d, %d) = %v, %v; want %v, %v", tt.x, tt.y, got, ok, tt.want, tt.ok)
			}
		})
	}

	g.Session().Viewport().SetTopLeft(0, -1000)
	if got, _ := g.cellToCanvas(0, 0); got != core.V(10, -980) {
		t.Errorf("scrolled cellToCanvas(0, 0) = %v", got)
	}
}

func TestGameGestureDrawsPaddle(t *testing.T) {
	g := newTestGame(0)
	g.Step(inputWith(core.ActionConfirm))

	in := core.NewInputFrame()
	in.AddGesture(core.Gesture{Phase: core.GestureStart, X: 30, Y: 15})
	in.AddGesture(core.Gesture{Phase: core.GestureMove, X: 40, Y: 15})
	in.AddGesture(core.Gesture{Phase: core.GestureMove, X: 200, Y: 15}) // off-screen, dropped
	in.AddGesture(core.Gesture{Phase: core.GestureEnd, X: -1, Y: -1})
	g.Step(in)

	p := g.Session().Paddle()
	if p.Status != Active {
		t.Fatalf("paddle status = %v, want active", p.Status)
	}
	if p.Start != core.V(610, 620) || p.End != core.V(810, 620) {
		t.Errorf("paddle = %v -> %v", p.Start, p.End)
	}
}

func TestGameDebugToggle(t *testing.T) {
	g := newTestGame(0)
	g.Step(inputWith(core.ActionDebug))
	if !g.debug {
		t.Error("debug should be on")
	}
	g.Step(inputWith(core.ActionDebug))
	if g.debug {
		t.Error("debug should be off")
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(3)
	rt := testRuntime()
	screen := core.NewScreen(rt.ScreenW, rt.ScreenH)

	g.Render(screen)
	if !strings.Contains(screen.String(), "SPACE KICKOFF") {
		t.Error("title screen should show the game name")
	}

	g.Step(inputWith(core.ActionConfirm))
	g.Render(screen)

	// Ball centre (800, 250) falls in cell (40, 6).
	if got := screen.Get(40, 6); got != BallGlyph {
		t.Errorf("ball cell = %q, want %q", got, BallGlyph)
	}
	if !strings.Contains(screen.Row(rt.ScreenH-1), "3 lives") {
		t.Errorf("HUD row = %q", screen.Row(rt.ScreenH-1))
	}
	if !strings.Contains(screen.Row(rt.ScreenH-1), "0m") {
		t.Errorf("HUD row = %q, want score", screen.Row(rt.ScreenH-1))
	}
	// The 0 m mark sits 200 units above the canvas bottom: row 19.
	if !strings.Contains(screen.Row(19), "0 m") {
		t.Errorf("ruler row = %q, want 0 m label", screen.Row(19))
	}
	// The spine runs from row 1 down to the 0 m mark.
	for _, tc := range []struct {
		row  int
		want rune
	}{
		{1, MinorMarkGlyph}, // 700 m
		{2, SpineGlyph},
		{5, SpineGlyph},
		{6, MajorMarkGlyph}, // 500 m
		{19, MajorMarkGlyph},
	} {
		if got := screen.Get(0, tc.row); got != tc.want {
			t.Errorf("ruler cell (0, %d) = %q, want %q", tc.row, got, tc.want)
		}
	}
	if screen.Get(0, 0) == SpineGlyph || screen.Get(0, 20) == SpineGlyph {
		t.Error("spine should span rows 1 to 19 only")
	}
	// Countdown box title row.
	if !strings.Contains(screen.Row(10), "3") {
		t.Errorf("countdown row = %q, want 3", screen.Row(10))
	}
}

func TestGameRenderPaddle(t *testing.T) {
	g := newTestGame(0)
	g.Step(inputWith(core.ActionConfirm))
	in := core.NewInputFrame()
	in.AddGesture(core.Gesture{Phase: core.GestureStart, X: 10, Y: 10})
	in.AddGesture(core.Gesture{Phase: core.GestureMove, X: 20, Y: 10})
	in.AddGesture(core.Gesture{Phase: core.GestureEnd})
	g.Step(in)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	for x := 10; x <= 20; x++ {
		if got := screen.GetCell(x, 10); got.Rune != '─' || got.Color != core.ColorBrightYellow {
			t.Errorf("cell (%d, 10) = %+v, want active paddle", x, got)
		}
	}
}

func TestGameRenderTooSmall(t *testing.T) {
	g := newTestGame(0)
	screen := core.NewScreen(20, 4)
	g.Render(screen)
	if !strings.Contains(screen.String(), "small") {
		t.Errorf("small screen should show a warning, got %q", screen.String())
	}
}

func TestGameDeterminism(t *testing.T) {
	// Same inputs, same game: a drag under the ball every 90 ticks.
	inputs := make([]core.InputFrame, 600)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i == 0:
			inputs[i].Set(core.ActionConfirm)
		case i%90 == 30:
			inputs[i].AddGesture(core.Gesture{Phase: core.GestureStart, X: 30, Y: 20})
		case i%90 == 31:
			inputs[i].AddGesture(core.Gesture{Phase: core.GestureMove, X: 50, Y: 20})
			inputs[i].AddGesture(core.Gesture{Phase: core.GestureEnd})
		}
	}

	run := func() Snapshot {
		g := newTestGame(1)
		for _, in := range inputs {
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.Session().Snapshot()
	}

	snap1 := run()
	snap2 := run()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score || snap1.Lives != snap2.Lives {
		t.Errorf("Determinism failed: score/lives differ: %d/%d vs %d/%d",
			snap1.Score, snap1.Lives, snap2.Score, snap2.Lives)
	}
}
