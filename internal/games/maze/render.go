package maze

import (
	"fmt"
	"strings"

	platformcore "github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/games/maze/core"
)

const (
	hudHeight = 2 // Status line and separator
	cellChars = 2 // Terminal columns per maze cell
)

// glyph is the two-column picture of one maze cell.
type glyph struct {
	text  string
	color platformcore.Color
}

var (
	glyphWall       = glyph{"██", platformcore.ColorBrown}
	glyphDamage     = glyph{"▓▓", platformcore.ColorOrange}
	glyphGoal       = glyph{"<>", platformcore.ColorBrightGreen}
	glyphPlayer     = glyph{"()", platformcore.ColorBrightYellow}
	glyphInvincible = glyph{"()", platformcore.ColorBrightCyan}
	glyphWanderer   = glyph{"&&", platformcore.ColorRed}
	glyphTracker    = glyph{"%%", platformcore.ColorMagenta}
)

var itemGlyphs = map[core.ItemKind]glyph{
	core.ItemHeal:          {"++", platformcore.ColorGreen},
	core.ItemScore:         {"$$", platformcore.ColorYellow},
	core.ItemWeapon:        {"!!", platformcore.ColorCyan},
	core.ItemInvincibility: {"**", platformcore.ColorBrightMagenta},
}

// RequiredSize returns the screen size needed to draw the current maze.
func (g *Game) RequiredSize() (w, h int) {
	if g.session == nil {
		return 0, 0
	}
	grid := g.session.Grid()
	return grid.Cols() * cellChars, grid.Rows() + hudHeight
}

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.session == nil {
		msg := "Could not start the maze"
		detail := ""
		if g.err != nil {
			detail = firstLine(g.err.Error())
		}
		g.renderOverlay(dst, msg, detail)
		return
	}

	// Draw HUD
	g.renderHUD(dst)

	// Handle special states
	reqW, reqH := g.RequiredSize()
	if dst.Width() < reqW || dst.Height() < reqH {
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d, resize to continue", reqW, reqH))
		return
	}

	offsetX := (dst.Width() - reqW) / 2
	snap := g.session.Snapshot()

	g.renderGrid(dst, offsetX)
	g.renderEntities(dst, offsetX, snap)

	// Draw overlays
	switch {
	case snap.Status == core.Cleared:
		g.renderOverlay(dst, "Maze cleared!", fmt.Sprintf("Score: %d  Ticks: %d  R restart, B menu", snap.Player.Score, snap.Tick))
	case snap.Status == core.GameOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart, B for menu")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	snap := g.session.Snapshot()
	p := snap.Player

	hud := fmt.Sprintf(" %s  HP: %d/%d  Score: %d", g.variant.Title, p.HP, p.MaxHP, p.Score)
	dst.DrawText(0, 0, hud)

	x := len([]rune(hud)) + 2
	if n := p.Effects.Remaining(core.EffectWeapon); n > 0 {
		label := fmt.Sprintf("Weapon %d", n)
		dst.DrawTextColored(x, 0, label, platformcore.ColorOrange)
		x += len(label) + 2
	}
	if n := p.Effects.Remaining(core.EffectInvincible); n > 0 {
		label := fmt.Sprintf("Invincible %d", n)
		dst.DrawTextColored(x, 0, label, platformcore.ColorBrightCyan)
		x += len(label) + 2
	}
	if p.Effects.Active(core.EffectDamageGuard) {
		dst.DrawTextColored(x, 0, "Ouch!", platformcore.ColorBrightRed)
	}

	// Draw separator
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderGrid draws walls, damage walls and the goal.
func (g *Game) renderGrid(dst *platformcore.Screen, offsetX int) {
	grid := g.session.Grid()
	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Cols(); col++ {
			c := core.Cell{Row: row, Col: col}
			switch {
			case grid.IsDamage(c):
				drawGlyph(dst, offsetX, c, glyphDamage)
			case grid.IsWall(c):
				drawGlyph(dst, offsetX, c, glyphWall)
			case c == grid.Goal():
				drawGlyph(dst, offsetX, c, glyphGoal)
			}
		}
	}
}

// renderEntities draws items, mobs and the player at the cells holding their centers.
func (g *Game) renderEntities(dst *platformcore.Screen, offsetX int, snap core.Snapshot) {
	grid := g.session.Grid()
	cellOf := func(r platformcore.Rect) core.Cell {
		return grid.PixelToCell(r.Center())
	}

	for _, it := range snap.Items {
		drawGlyph(dst, offsetX, cellOf(it.Box), itemGlyphs[it.Kind])
	}
	for _, m := range snap.Mobs {
		gl := glyphWanderer
		if m.Kind == core.Tracker {
			gl = glyphTracker
		}
		drawGlyph(dst, offsetX, cellOf(m.Box), gl)
	}

	gl := glyphPlayer
	// Blink while invincible.
	if snap.Player.Invincible() && snap.Tick%30 < 15 {
		gl = glyphInvincible
	}
	drawGlyph(dst, offsetX, cellOf(snap.Player.Box), gl)
}

func drawGlyph(dst *platformcore.Screen, offsetX int, c core.Cell, gl glyph) {
	dst.DrawTextColored(offsetX+c.Col*cellChars, hudHeight+c.Row, gl.text, gl.color)
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *platformcore.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	boxW := maxLen + 4
	boxH := 5
	box := platformcore.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
