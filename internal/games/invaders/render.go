package invaders

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/formation"
)

// Visual characters for rendering
const (
	PlayerBulletChar = '|'
	EnemyBulletChar  = '!'
	LifeChar         = '♥'
)

// PlayerSprite is drawn centered on the cannon.
const PlayerSprite = "▟███▙"

// Sprites by unit variant.
var Sprites = map[formation.Variant]string{
	formation.VariantA1:        "{@}",
	formation.VariantA2:        "}@{",
	formation.VariantB1:        "/#\\",
	formation.VariantB2:        "\\#/",
	formation.VariantC1:        "<O>",
	formation.VariantC2:        ">O<",
	formation.VariantBoss:      "[W]",
	formation.VariantBonus:     "<==>",
	formation.VariantExplosion: "*x*",
}

// painter draws formation units onto a screen.
type painter struct {
	dst   *core.Screen
	arena Arena
}

// DrawUnit draws the unit's sprite centered over its pixel footprint.
func (p painter) DrawUnit(u *formation.Unit, x, y int) {
	sprite := Sprites[u.Variant()]
	col, row := p.arena.Cell(x, y)
	col += (p.arena.Cells(u.Width()) - len([]rune(sprite))) / 2

	color := u.Tint()
	if u.IsDestroyed() {
		color = core.ColorBrightRed
	}
	p.dst.DrawTextColored(col, row, sprite, color)
}

// Render draws the current game state into the provided screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.state == StateTooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	p := painter{dst: dst, arena: g.arena}

	g.renderHUD(dst)
	if g.formation != nil {
		g.formation.Draw(p)
	}
	if u := g.bonus.Unit(); u != nil {
		p.DrawUnit(u, u.X(), u.Y())
	}
	g.renderBullets(dst)
	g.renderPlayer(dst)
	g.renderOverlay(dst)
}

func (g *Game) renderHUD(dst *core.Screen) {
	// Score on left
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.score))

	// Lives in center
	lives := "Lives: " + strings.Repeat(string(LifeChar), max(g.lives, 0))
	dst.DrawTextCentered(0, lives)

	// Wave on right
	waveText := fmt.Sprintf("Wave %d", g.level)
	if g.wave.Boss {
		waveText = fmt.Sprintf("Boss wave %d", g.level)
	}
	dst.DrawTextColored(dst.Width()-len(waveText)-1, 0, waveText, core.ColorCyan)
}

func (g *Game) renderBullets(dst *core.Screen) {
	for _, b := range g.playerShots.Items() {
		col, row := g.arena.Cell(b.X, b.Y)
		dst.SetColored(col, row, PlayerBulletChar, core.ColorBrightGreen)
	}
	for _, b := range g.enemyShots.Items() {
		col, row := g.arena.Cell(b.X, b.Y)
		dst.SetColored(col, row, EnemyBulletChar, core.ColorBrightRed)
	}
}

func (g *Game) renderPlayer(dst *core.Screen) {
	// Blink while recovering from a hit.
	if g.player.Invulnerable() && (g.tickCount/4)%2 == 0 {
		return
	}
	col, row := g.arena.Cell(g.player.X(), g.player.Y())
	col += (g.arena.Cells(g.player.width) - len([]rune(PlayerSprite))) / 2
	dst.DrawTextColored(col, row, PlayerSprite, core.ColorGreen)
}

func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StateCleared:
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("Wave %d cleared", g.level))

	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.score)
		g.drawCenteredBox(dst, "GAME OVER", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
