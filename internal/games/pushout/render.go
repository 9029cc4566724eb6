package pushout

import (
	"fmt"
	"math"
	"sort"

	"github.com/vovakirdan/pushout/internal/core"
	"github.com/vovakirdan/pushout/internal/game/session"
)

// Visual characters for rendering
const (
	FloorChar    = '·'
	WallChar     = '█'
	DozerChar    = '█'
	ObstacleChar = '▓'
	FallingChar  = '▒'
)

var helpLines = []string{
	"Push the garbage off before you run out of space",
	"Press WASD or ARROW KEYS to MOVE",
	"The left bar is your SPECIAL, activate using SPACE KEY",
	"The right bar is the remaining SPACE, when it is full the GAME ENDS",
}

// Eight heading arrows, starting at screen-right and turning clockwise
// (screen rows grow downwards, towards the open edge).
var arrows = []rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// view maps world X/Z onto screen cells. The back wall is at the top and the
// open edge at the bottom. Terminal cells are about twice as tall as wide,
// so one world unit spans twice as many columns as rows.
type view struct {
	rows   float64 // rows per world unit
	cx     int     // column of x = 0
	top    int     // row of z = -half
	half   float64
	bottom int // last row of the play area
}

func newView(dst *core.Screen, half float64) view {
	const (
		hudRows  = 2
		helpRows = 1
		barCols  = 4
	)
	availRows := float64(dst.Height() - hudRows - helpRows - 1)
	availCols := float64(dst.Width() - 2*barCols - 2)

	// Wall row above, two world units of fall-off below.
	spanZ := 2*half + 2
	spanX := 2*half + 1
	rows := math.Min(availRows/spanZ, availCols/(2*spanX))
	if rows <= 0 {
		rows = 0.1
	}

	return view{
		rows:   rows,
		cx:     dst.Width() / 2,
		top:    hudRows + 1 + int(math.Round(0.5*rows)),
		half:   half,
		bottom: dst.Height() - helpRows - 1,
	}
}

func (v view) col(x float64) int {
	return v.cx + int(math.Round(x*2*v.rows))
}

func (v view) row(z float64) int {
	return v.top + int(math.Round((z+v.half)*v.rows))
}

// fill paints the footprint [x0,x1]×[z0,z1].
func (v view) fill(dst *core.Screen, x0, x1, z0, z1 float64, r rune, c core.Color) {
	c0, c1 := v.col(x0), v.col(x1)
	r0, r1 := v.row(z0), v.row(z1)
	if c1 <= c0 {
		c1 = c0 + 1
	}
	if r1 <= r0 {
		r1 = r0 + 1
	}
	for y := r0; y < r1 && y <= v.bottom; y++ {
		for x := c0; x < c1; x++ {
			dst.SetColor(x, y, r, c)
		}
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}

	h := g.cfg.Platform.Half
	v := newView(dst, h)

	g.drawPlatform(dst, v)
	g.drawObstacles(dst, v)
	g.drawDozer(dst, v)
	g.drawBars(dst, v)
	g.drawHUD(dst)

	switch g.session.State() {
	case session.StateStart:
		lines := append([]string{""}, helpLines...)
		lines = append(lines, "", "Press ENTER or E to start")
		g.drawCenteredMessage(dst, "PUSHOUT", lines)
	case session.StateGameOver:
		st := g.State()
		g.drawCenteredMessage(dst, "GAME OVER", []string{
			"",
			fmt.Sprintf("Score: %d  |  Best: %d  |  Time: %.1fs", st.Score, st.HighScore, st.Elapsed),
			"",
			"Press ENTER or E to play again",
		})
	}
}

func (g *Game) drawPlatform(dst *core.Screen, v view) {
	h := g.cfg.Platform.Half
	v.fill(dst, -h, h, -h, h, FloorChar, core.ColorFloor)

	// Back, left and right walls. The front edge stays open.
	wall := 0.5
	v.fill(dst, -h-wall, h+wall, -h-wall, -h, WallChar, core.ColorWall)
	v.fill(dst, -h-wall, -h, -h, h, WallChar, core.ColorWall)
	v.fill(dst, h, h+wall, -h, h, WallChar, core.ColorWall)
}

func (g *Game) drawObstacles(dst *core.Screen, v view) {
	bodies := g.world.Bodies()
	// Lower boxes first so stacked ones stay visible.
	sort.SliceStable(bodies, func(i, j int) bool {
		return bodies[i].Position().Y < bodies[j].Position().Y
	})

	for _, b := range bodies {
		p := b.Position()
		r, c := ObstacleChar, core.ColorObstacle
		if !g.world.Supported(b) || p.Y < b.Half() {
			r, c = FallingChar, core.ColorFalling
		}
		v.fill(dst, p.X-b.Half(), p.X+b.Half(), p.Z-b.Half(), p.Z+b.Half(), r, c)
	}
}

func (g *Game) drawDozer(dst *core.Screen, v view) {
	d := g.session.Dozer()
	if d == nil {
		return
	}

	p := d.Position()
	s := g.cfg.Player.Half
	c := core.ColorDozer
	if d.IsActive() {
		c = core.ColorSpecial
	}
	v.fill(dst, p.X-s, p.X+s, p.Z-s, p.Z+s, DozerChar, c)

	dst.SetColor(v.col(p.X), v.row(p.Z), headingArrow(d.Heading()), core.ColorTitle)
}

// headingArrow picks the arrow closest to the dozer's facing on screen.
func headingArrow(yaw float64) rune {
	f := core.Forward(yaw)
	// Screen x follows world X, screen y follows world Z.
	angle := math.Atan2(f.Z, f.X)
	sector := int(math.Round(angle/(math.Pi/4))) % 8
	if sector < 0 {
		sector += 8
	}
	return arrows[sector]
}

func (g *Game) drawBars(dst *core.Screen, v view) {
	height := v.bottom - 2
	if height < 1 {
		return
	}

	special := core.ColorSpecial
	if d := g.session.Dozer(); d != nil && !d.IsReady() && !d.IsActive() {
		special = core.ColorHint
	}
	dst.DrawVBar(0, 2, height, g.session.SpecialRatio(), special)
	dst.DrawVBar(1, 2, height, g.session.SpecialRatio(), special)

	x := dst.Width() - 2
	ratio := g.session.SpaceRatio()
	if g.session.State() == session.StateStart {
		ratio = 0
	}
	dst.DrawVBar(x, 2, height, ratio, core.ColorSpace)
	dst.DrawVBar(x+1, 2, height, ratio, core.ColorSpace)
}

func (g *Game) drawHUD(dst *core.Screen) {
	st := g.State()
	dst.DrawText(3, 0, fmt.Sprintf(" Score: %d ", st.Score), core.ColorTitle)
	dst.DrawTextCentered(0, fmt.Sprintf(" Time: %.1fs ", st.Elapsed), core.ColorDefault)

	best := fmt.Sprintf(" Best: %d ", st.HighScore)
	dst.DrawText(dst.Width()-3-len(best), 0, best, core.ColorDefault)

	if g.session.IsPlaying() {
		wave := fmt.Sprintf(" Wave %d ", g.Wave())
		dst.DrawTextCentered(1, wave, core.ColorHint)

		hint := "WASD/arrows move  SPACE special  TAB scores  Q quit"
		dst.DrawTextCentered(dst.Height()-1, hint, core.ColorHint)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title string, lines []string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := len(title)
	for _, l := range lines {
		boxW = core.Max(boxW, len([]rune(l)))
	}
	boxW = core.Clamp(boxW+4, 0, w)
	boxH := len(lines) + 4
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorWall)

	// Draw text
	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorTitle)
	for i, l := range lines {
		dst.DrawText(boxX+(boxW-len([]rune(l)))/2, boxY+2+i, l, core.ColorDefault)
	}
}
