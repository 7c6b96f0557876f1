package nbol

import (
	"fmt"
	"math"

	"github.com/vovakirdan/nbol/internal/core"
	"github.com/vovakirdan/nbol/internal/games/nbol/sim"
)

const (
	hudHeight = 2
	// One tile is drawn as colsPerTile x rowsPerTile terminal cells.
	colsPerTile = 4
	rowsPerTile = 2
	minScreenW  = 40
	minScreenH  = 12
	barWidth    = 12
	plateBar    = 4
)

var playerGlyphs = map[sim.Facing]rune{
	sim.FacingUp:    '▲',
	sim.FacingDown:  '▼',
	sim.FacingLeft:  '◀',
	sim.FacingRight: '▶',
}

// view maps world coordinates to screen cells around a camera position.
type view struct {
	camera  sim.Vec3
	centerX int
	centerY int
}

func newView(dst *core.Screen, camera sim.Vec3) view {
	return view{
		camera:  camera,
		centerX: dst.Width() / 2,
		centerY: hudHeight + (dst.Height()-hudHeight)/2,
	}
}

// cell returns the screen cell for a world position. Y is flipped.
func (v view) cell(p sim.Vec3) (int, int) {
	unitsPerCol := sim.TileSize / colsPerTile
	unitsPerRow := sim.TileSize / rowsPerTile
	x := v.centerX + int(math.Round((p.X-v.camera.X)/unitsPerCol))
	y := v.centerY - int(math.Round((p.Y-v.camera.Y)/unitsPerRow))
	return x, y
}

// Render draws the arena, entities and HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		return
	}
	if g.world == nil {
		return
	}

	v := newView(dst, g.camera)
	g.renderArena(dst, v)
	g.renderDecorations(dst, v)
	g.renderProjectiles(dst, v)
	g.renderEnemies(dst, v)
	g.renderPlayer(dst, v)
	g.renderPopups(dst, v)
	g.renderHUD(dst)
	g.renderOverlays(dst)
}

// renderArena draws the arena walls that fall on screen.
func (g *Game) renderArena(dst *core.Screen, v view) {
	b := g.world.Bounds()
	x0, y0 := v.cell(sim.V(b.MinX, b.MaxY))
	x1, y1 := v.cell(sim.V(b.MaxX, b.MinY))
	x0, y0, x1, y1 = x0-1, y0-1, x1+1, y1+1

	for x := x0 + 1; x < x1; x++ {
		plot(dst, x, y0, '─', core.ColorGray)
		plot(dst, x, y1, '─', core.ColorGray)
	}
	for y := y0 + 1; y < y1; y++ {
		plot(dst, x0, y, '│', core.ColorGray)
		plot(dst, x1, y, '│', core.ColorGray)
	}
	plot(dst, x0, y0, '┌', core.ColorGray)
	plot(dst, x1, y0, '┐', core.ColorGray)
	plot(dst, x0, y1, '└', core.ColorGray)
	plot(dst, x1, y1, '┘', core.ColorGray)
}

// plot sets a cell below the HUD.
func plot(dst *core.Screen, x, y int, r rune, c core.Color) {
	if y < hudHeight {
		return
	}
	dst.SetColored(x, y, r, c)
}

func (g *Game) renderPlayer(dst *core.Screen, v view) {
	p, ok := g.world.Player()
	if !ok {
		return
	}
	x, y := v.cell(p.Position())
	color := core.ColorBrightCyan
	if p.State == sim.StateCasting {
		color = core.ColorBrightMagenta
	}
	plot(dst, x, y, playerGlyphs[p.Facing()], color)
}

func (g *Game) renderEnemies(dst *core.Screen, v view) {
	for _, e := range g.world.Enemies() {
		x, y := v.cell(e.Position())
		color := core.ColorRed
		switch {
		case e.Aggro:
			color = core.ColorBrightRed
		case e.Behavior == sim.BehaviorChasing:
			color = core.ColorYellow
		}
		plot(dst, x, y, 'Ö', color)
	}
}

// renderDecorations draws nameplates and health bars above their owners.
func (g *Game) renderDecorations(dst *core.Screen, v view) {
	for _, d := range g.world.Decorations() {
		e, ok := g.world.Enemy(d.Owner)
		if !ok {
			continue
		}
		x, y := v.cell(e.Position().Add(d.Offset))
		if y < hudHeight {
			continue
		}

		switch d.Kind {
		case sim.DecorationNameplate:
			label := fmt.Sprintf("%s %d", e.Name, e.Level)
			dst.DrawTextColored(x-len([]rune(label))/2, y, label, core.ColorGray)
		case sim.DecorationHealthBar:
			pct := e.Health().Percent()
			dst.DrawBar(x-plateBar/2, y, plateBar, pct, healthColor(pct))
		}
	}
}

func (g *Game) renderProjectiles(dst *core.Screen, v view) {
	for _, pr := range g.world.Projectiles() {
		x, y := v.cell(pr.Position)
		plot(dst, x, y, '•', core.ColorOrange)
	}
}

// renderPopups draws damage numbers drifting upward as they age.
func (g *Game) renderPopups(dst *core.Screen, v view) {
	for _, p := range g.popups {
		rise := (1 - p.ttl/popupTTL) * popupRiseMax
		x, y := v.cell(p.pos.Add(sim.V(0, sim.TileSize/2+rise)))
		if y < hudHeight {
			continue
		}
		color := core.ColorBrightWhite
		if p.crit {
			color = core.ColorOrange
		}
		dst.DrawTextColored(x-len(p.text)/2, y, p.text, color)
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	w := dst.Width()

	if p, ok := g.world.Player(); ok {
		h := p.Health()
		x := 0
		dst.DrawTextColored(x, 0, fmt.Sprintf("Lv %d", p.Level()), core.ColorGold)
		x += 6

		dst.DrawText(x, 0, "HP")
		dst.DrawBar(x+3, 0, barWidth, h.Percent(), healthColor(h.Percent()))
		dst.DrawText(x+4+barWidth, 0, fmt.Sprintf("%.0f/%.0f", h.Clamped(), h.Max()))
		x += 14 + barWidth

		dst.DrawText(x, 0, "EN")
		dst.DrawBar(x+3, 0, barWidth/2, p.Energy/g.cfg.Player.EnergyMax, core.ColorBrightBlue)
		x += 4 + barWidth/2

		if x+barWidth+3 < w {
			dst.DrawText(x, 0, "XP")
			dst.DrawBar(x+3, 0, barWidth, p.Progress.Fraction(), core.ColorBrightGreen)
			dst.DrawText(x+4+barWidth, 0, fmt.Sprintf("%.0f/%.0f", p.Progress.XP, p.Progress.ToNext()))
		}
	}

	wave := fmt.Sprintf("Wave %d", g.world.Wave()+1)
	if g.mode == ModeArena {
		wave = fmt.Sprintf("Wave %d/%d", min(g.world.Wave()+1, g.cfg.Waves.Count), g.cfg.Waves.Count)
	}
	dst.DrawText(0, 1, fmt.Sprintf("%s  Kills %d  Score %d", wave, g.kills, g.score))

	if g.banner != "" {
		dst.DrawTextColored(w-len(g.banner)-1, 1, g.banner, core.ColorBrightYellow)
	}
}

func (g *Game) renderOverlays(dst *core.Screen) {
	switch {
	case g.gameOver:
		g.drawCenteredMessage(dst, "YOU DIED", fmt.Sprintf("Score: %d  |  R restart  |  Tab runs", g.score))
	case g.won:
		g.drawCenteredMessage(dst, "ARENA CLEARED", fmt.Sprintf("Score: %d  |  R play again  |  Tab runs", g.score))
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "P resume  |  Tab runs")
	}
}

// drawCenteredMessage draws a boxed two-line message in the middle of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	width := max(len(title), len(subtitle)) + 4
	box := core.CenteredRect(dst.Width(), dst.Height(), width, 4)

	dst.DrawPanel(box)
	dst.DrawTextColored(box.X+(width-len(title))/2, box.Y+1, title, core.ColorBrightWhite)
	dst.DrawText(box.X+(width-len(subtitle))/2, box.Y+2, subtitle)
}

func healthColor(pct float64) core.Color {
	switch {
	case pct > 0.5:
		return core.ColorGreen
	case pct > 0.25:
		return core.ColorYellow
	default:
		return core.ColorRed
	}
}
