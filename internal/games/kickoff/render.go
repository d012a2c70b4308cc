package kickoff

import (
	"fmt"
	"math"

	"github.com/vovakirdan/space-kickoff/internal/core"
)

// Glyphs used by the renderer.
const (
	BallGlyph      = '█'
	AboveGlyph     = '▲'
	FieldGlyph     = '▒'
	StarGlyph      = '·'
	BrightStar     = '*'
	SpineGlyph     = '│'
	MinorMarkGlyph = '├'
	MajorMarkGlyph = '┝'
	MajorTailGlyph = '━'
	DebugGlyph     = '∙'
)

const (
	minorMarkStep = 100 // units between ruler ticks
	majorMarkStep = 500 // units between labelled ticks
	rulerTopInset = 50  // canvas units between the window top and the spine

	minRenderW = 24
	minRenderH = 8
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minRenderW || dst.Height() < minRenderH {
		dst.DrawTextCentered(dst.Height()/2, "Window too small", core.ColorBrightRed)
		return
	}

	snap := g.session.Snapshot()

	g.renderBackground(dst, snap)
	g.renderRuler(dst, snap)
	if g.debug {
		g.renderDebug(dst, snap)
	}
	g.renderPaddle(dst, snap)
	g.renderBall(dst, snap)
	g.renderHUD(dst, snap)
	g.renderOverlay(dst, snap)
}

// cellOf returns the screen cell containing an absolute canvas point.
func (g *Game) cellOf(snap Snapshot, p core.Vec2) (int, int) {
	local := p.Sub(snap.Offset)
	return int(math.Floor(local.X / g.cfg.Field.CellWidth)),
		int(math.Floor(local.Y / g.cfg.Field.CellHeight))
}

// cellCentre returns the absolute canvas point at the centre of a screen cell.
func (g *Game) cellCentre(snap Snapshot, x, y int) core.Vec2 {
	return snap.Offset.Add(core.V(
		(float64(x)+0.5)*g.cfg.Field.CellWidth,
		(float64(y)+0.5)*g.cfg.Field.CellHeight,
	))
}

// renderBackground draws the starfield and the football field band.
// Stars are keyed on absolute canvas rows so they scroll with the window.
func (g *Game) renderBackground(dst *core.Screen, snap Snapshot) {
	fieldTop := snap.Height - g.cfg.Field.FieldHeight
	for y := 0; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			c := g.cellCentre(snap, x, y)
			if c.Y >= fieldTop && c.Y < snap.Height {
				dst.SetColored(x, y, FieldGlyph, core.ColorGreen)
				continue
			}
			row := int64(math.Floor(c.Y / g.cfg.Field.CellHeight))
			if h := starHash(g.starSeed, x, row); h%61 == 0 {
				if (h/61)%5 == 0 {
					dst.SetColored(x, y, BrightStar, core.ColorWhite)
				} else {
					dst.SetColored(x, y, StarGlyph, core.ColorDarkGray)
				}
			}
		}
	}
}

func starHash(seed uint32, x int, row int64) uint32 {
	h := seed ^ uint32(x)*73856093 ^ uint32(row)*19349663
	h ^= h >> 13
	h *= 0x5bd1e995
	h ^= h >> 15
	return h
}

// renderRuler draws the ruler spine and height markers along the left edge. A
// marker goes on the row whose canvas span contains the marker's height.
func (g *Game) renderRuler(dst *core.Screen, snap Snapshot) {
	ch := g.cfg.Field.CellHeight

	// The spine runs down to the 0 m mark, or to the HUD once that is off screen.
	first := int(math.Floor(rulerTopInset / ch))
	last := int(math.Floor((snap.Height - snap.RulerOffset - snap.Offset.Y) / ch))
	last = min(last, dst.Height()-2)
	if last >= first {
		dst.DrawVLine(0, first, last-first+1, SpineGlyph, core.ColorGray)
	}

	for y := 0; y < dst.Height()-1; y++ {
		top := snap.Offset.Y + float64(y)*ch
		// Heights in this row lie in (WorldHeight(top+ch), WorldHeight(top)].
		hi := snap.WorldHeight(top)
		lo := snap.WorldHeight(top + ch)
		mark := math.Floor(hi/minorMarkStep) * minorMarkStep
		if mark <= lo || mark < 0 {
			continue
		}
		if int(mark)%majorMarkStep == 0 {
			dst.SetColored(0, y, MajorMarkGlyph, core.ColorWhite)
			dst.SetColored(1, y, MajorTailGlyph, core.ColorWhite)
			dst.DrawText(3, y, fmt.Sprintf("%d m", int(mark)), core.ColorGray)
		} else {
			dst.SetColored(0, y, MinorMarkGlyph, core.ColorGray)
		}
	}
}

// renderBall fills every cell whose centre lies inside the ball. When the ball is
// above the window a marker shows its column on the top row.
func (g *Game) renderBall(dst *core.Screen, snap Snapshot) {
	if snap.State == NotStarted {
		return
	}
	r := snap.BallDiameter / 2
	if snap.BallPosition.Y+snap.BallDiameter < snap.Offset.Y {
		x, _ := g.cellOf(snap, snap.BallCentre)
		dst.SetColored(x, 0, AboveGlyph, core.ColorBrightWhite)
		return
	}

	cx, cy := g.cellOf(snap, snap.BallCentre)
	// Small balls may not cover any cell centre; always show the centre cell.
	dst.SetColored(cx, cy, BallGlyph, core.ColorBrightWhite)

	minX, minY := g.cellOf(snap, snap.BallPosition)
	maxX, maxY := g.cellOf(snap, snap.BallPosition.Add(core.V(snap.BallDiameter, snap.BallDiameter)))
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if g.cellCentre(snap, x, y).Distance(snap.BallCentre) <= r {
				dst.SetColored(x, y, BallGlyph, core.ColorBrightWhite)
			}
		}
	}
}

// paddleColor maps the paddle status to its colour.
func paddleColor(s PaddleStatus) core.Color {
	switch s {
	case Active:
		return core.ColorBrightYellow
	case Drawing:
		return core.ColorYellow
	default:
		return core.ColorRed
	}
}

func (g *Game) renderPaddle(dst *core.Screen, snap Snapshot) {
	if !snap.PaddleStatus.Drawable() {
		return
	}
	g.drawSegment(dst, snap, snap.PaddleStart, snap.PaddleEnd, 0, paddleColor(snap.PaddleStatus))
}

// drawSegment plots a canvas-space segment. A zero glyph picks a line character
// matching the segment's on-screen slope.
func (g *Game) drawSegment(dst *core.Screen, snap Snapshot, a, b core.Vec2, glyph rune, c core.Color) {
	if glyph == 0 {
		glyph = slopeGlyph(b.Sub(a), g.cfg.Field.CellWidth, g.cfg.Field.CellHeight)
	}
	step := math.Min(g.cfg.Field.CellWidth, g.cfg.Field.CellHeight) / 2
	n := int(math.Ceil(a.Distance(b)/step)) + 1
	if n > 4096 {
		n = 4096
	}
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		p := a.Add(b.Sub(a).Scale(t))
		x, y := g.cellOf(snap, p)
		dst.SetColored(x, y, glyph, c)
	}
}

// slopeGlyph picks a box-drawing character for a direction given in canvas units.
func slopeGlyph(d core.Vec2, cw, ch float64) rune {
	dx := math.Abs(d.X / cw)
	dy := math.Abs(d.Y / ch)
	switch {
	case dy < 0.4*dx:
		return '─'
	case dx < 0.4*dy:
		return '│'
	case (d.X > 0) == (d.Y > 0):
		return '╲'
	default:
		return '╱'
	}
}

// renderDebug draws the paddle's infinite line and the ball-to-projection line,
// coloured by contact: green when out of reach, orange within the segment's
// rounded ends, red when colliding.
func (g *Game) renderDebug(dst *core.Screen, snap Snapshot) {
	if snap.PaddleStatus.Drawable() && snap.ContactOK {
		dir := snap.PaddleEnd.Sub(snap.PaddleStart).Normalize()
		reach := math.Hypot(snap.Width, snap.Height)
		g.drawSegment(dst, snap,
			snap.PaddleStart.Sub(dir.Scale(reach)),
			snap.PaddleEnd.Add(dir.Scale(reach)),
			DebugGlyph, core.ColorDarkGray)

		c := core.ColorGreen
		switch {
		case snap.Contact.Colliding:
			c = core.ColorRed
		case snap.Contact.CanCollide:
			c = core.ColorOrange
		}
		g.drawSegment(dst, snap, snap.BallCentre, snap.Contact.Projection, DebugGlyph, c)
	}

	info := fmt.Sprintf("%s  off %.0f,%.0f  paddle %s",
		snap.State, snap.Offset.X, snap.Offset.Y, snap.PaddleStatus)
	dst.DrawTextRight(dst.Width()-1, 0, info, core.ColorGray)
}

// renderHUD draws the score and remaining lives on the bottom row.
func (g *Game) renderHUD(dst *core.Screen, snap Snapshot) {
	y := dst.Height() - 1
	dst.DrawHLine(0, y, dst.Width(), ' ', core.ColorDefault)
	dst.DrawText(1, y, fmt.Sprintf("%dm", snap.Score), core.ColorBrightWhite)
	dst.DrawTextRight(dst.Width()-2, y, livesText(snap.Lives), core.ColorBrightWhite)
}

func livesText(n int) string {
	if n == 1 {
		return "1 life"
	}
	return fmt.Sprintf("%d lives", n)
}

// renderOverlay draws state messages.
func (g *Game) renderOverlay(dst *core.Screen, snap Snapshot) {
	switch {
	case snap.State == NotStarted:
		drawCenteredBox(dst, "SPACE KICKOFF", "Drag to draw a paddle  |  ENTER to start", core.ColorBrightYellow)
	case snap.State == GameOver:
		drawCenteredBox(dst, "GAME OVER",
			fmt.Sprintf("Final score: %dm  |  Press R to restart", snap.Score), core.ColorBrightRed)
	case g.CountdownSeconds() > 0:
		drawCenteredBox(dst, fmt.Sprintf("%d", g.CountdownSeconds()), "Get ready", core.ColorBrightGreen)
	case snap.State == Paused && g.userPaused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume", core.ColorBrightWhite)
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string, c core.Color) {
	titleLen := len([]rune(title))
	subLen := len([]rune(subtitle))

	boxW := min(max(titleLen, subLen)+4, dst.Width())
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2
	box := core.NewRect(boxX, boxY, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)
	dst.DrawText(boxX+(boxW-titleLen)/2, boxY+1, title, c)
	dst.DrawText(boxX+(boxW-subLen)/2, boxY+3, subtitle, core.ColorWhite)
}
