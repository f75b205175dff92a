package invaders

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/formation"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     12345,
	}
}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.Reset(testRuntime())
	if g.state != StatePlaying {
		t.Fatalf("state after Reset = %q, expected %q", g.state, StatePlaying)
	}
	return g
}

func idle() core.InputFrame {
	return core.NewInputFrame()
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// gridUnit returns the unit built at grid cell (col, row).
func gridUnit(t *testing.T, g *Game, col, row int) *formation.Unit {
	t.Helper()
	for u := range g.formation.Units() {
		if u.Column() == col && u.Row() == row {
			return u
		}
	}
	t.Fatalf("no unit at (%d, %d)", col, row)
	return nil
}

// shootAt places a stationary player bullet inside u.
func shootAt(g *Game, u *formation.Unit) {
	g.playerShots.add(&Bullet{X: u.X() + u.Width()/2, Y: u.Y() + 4})
}

func TestGamesRegistered(t *testing.T) {
	for _, id := range []string{"invaders", "invaders_boss"} {
		if !registry.Exists(id) {
			t.Errorf("game %q not registered", id)
		}
	}
}

func TestGameReset(t *testing.T) {
	g := newTestGame(t)
	snap := g.Snapshot()

	if snap.Score != 0 || snap.Lives != 3 || snap.Level != 1 {
		t.Errorf("score/lives/level = %d/%d/%d, expected 0/3/1", snap.Score, snap.Lives, snap.Level)
	}
	if snap.Alive != 24 {
		t.Errorf("Alive = %d, expected 24", snap.Alive)
	}
	if snap.Shooters != 6 {
		t.Errorf("Shooters = %d, expected 6", snap.Shooters)
	}
	if snap.PlayerX != 300 {
		t.Errorf("PlayerX = %d, expected 300", snap.PlayerX)
	}
	if g.player.Y() != 352 {
		t.Errorf("player y = %d, expected 352", g.player.Y())
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 900)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i%10 == 0:
			inputs[i].Set(core.ActionFire)
		case i%30 < 12:
			inputs[i].Set(core.ActionLeft)
		case i%30 > 20:
			inputs[i].Set(core.ActionRight)
		}
	}

	run := func() Snapshot {
		g := New()
		g.Reset(testRuntime())
		for _, in := range inputs {
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	if a.Hash() != b.Hash() {
		t.Errorf("hashes differ: %d vs %d", a.Hash(), b.Hash())
	}
	if a.Score != b.Score || a.Tick != b.Tick {
		t.Errorf("runs diverged: score %d vs %d, tick %d vs %d", a.Score, b.Score, a.Tick, b.Tick)
	}
}

func TestPlayerMovementClamped(t *testing.T) {
	g := newTestGame(t)

	for range 200 {
		g.Step(press(core.ActionLeft))
	}
	if g.player.X() != 0 {
		t.Errorf("player x = %d, expected 0", g.player.X())
	}

	for range 200 {
		g.Step(press(core.ActionRight))
	}
	if g.player.X() != 600 {
		t.Errorf("player x = %d, expected 600", g.player.X())
	}
}

func TestPlayerFireCooldown(t *testing.T) {
	g := newTestGame(t)

	g.Step(press(core.ActionFire))
	g.Step(press(core.ActionFire))
	if g.playerShots.Len() != 1 {
		t.Fatalf("player bullets = %d, expected 1", g.playerShots.Len())
	}

	// 600ms at 60 ticks per second.
	for range 36 {
		g.Step(idle())
	}
	g.Step(press(core.ActionFire))
	if g.playerShots.Len() != 2 {
		t.Errorf("player bullets = %d, expected 2", g.playerShots.Len())
	}
}

func TestShootingUnitsScores(t *testing.T) {
	g := newTestGame(t)

	weak := gridUnit(t, g, 0, 3)
	shootAt(g, weak)
	g.Step(idle())

	if !weak.IsDestroyed() {
		t.Fatal("tier 1 unit should die from one hit")
	}
	if g.score != formation.PointsTier1 {
		t.Errorf("score = %d, expected %d", g.score, formation.PointsTier1)
	}
	if g.formation.Alive() != 23 {
		t.Errorf("Alive() = %d, expected 23", g.formation.Alive())
	}
	if g.playerShots.Len() != 0 {
		t.Errorf("bullet should be spent, %d left", g.playerShots.Len())
	}

	strong := gridUnit(t, g, 2, 0)
	shootAt(g, strong)
	g.Step(idle())
	if strong.IsDestroyed() {
		t.Fatal("tier 3 unit should survive the first hit")
	}
	shootAt(g, strong)
	g.Step(idle())
	if !strong.IsDestroyed() {
		t.Fatal("tier 3 unit should die from the second hit")
	}
	if g.score != formation.PointsTier1+formation.PointsTier3 {
		t.Errorf("score = %d, expected %d", g.score, formation.PointsTier1+formation.PointsTier3)
	}
}

func TestEnemyBulletCostsLife(t *testing.T) {
	g := newTestGame(t)
	hit := func() {
		g.enemyShots.add(&Bullet{X: g.player.X() + 20, Y: g.player.Y() + 4})
	}

	hit()
	g.Step(idle())
	if g.lives != 2 {
		t.Fatalf("lives = %d, expected 2", g.lives)
	}

	hit()
	g.Step(idle())
	if g.lives != 2 {
		t.Errorf("lives = %d, expected 2 while invulnerable", g.lives)
	}
	if g.enemyShots.Len() != 0 {
		t.Errorf("enemy bullets = %d, expected 0", g.enemyShots.Len())
	}
}

func TestGameOverAndRestart(t *testing.T) {
	g := newTestGame(t)
	g.lives = 1
	g.enemyShots.add(&Bullet{X: g.player.X() + 20, Y: g.player.Y() + 4})

	res := g.Step(idle())
	if !res.State.GameOver {
		t.Fatal("losing the last life should end the game")
	}

	tick := g.tickCount
	g.Step(idle())
	if g.tickCount != tick {
		t.Error("game over should freeze the simulation")
	}

	res = g.Step(press(core.ActionRestart))
	if res.State.GameOver {
		t.Error("restart should start a new game")
	}
	if g.lives != 3 || g.level != 1 || g.score != 0 {
		t.Errorf("after restart lives/level/score = %d/%d/%d, expected 3/1/0", g.lives, g.level, g.score)
	}
}

func TestWaveClearedAdvancesLevel(t *testing.T) {
	g := newTestGame(t)
	for u := range g.formation.Units() {
		g.formation.Destroy(u)
	}

	g.Step(idle())
	if g.state != StateCleared {
		t.Fatalf("state = %q, expected %q", g.state, StateCleared)
	}

	for range 2 * testRuntime().TickRate {
		g.Step(idle())
	}
	if g.state != StatePlaying {
		t.Fatalf("state = %q, expected %q", g.state, StatePlaying)
	}
	if g.level != 2 {
		t.Errorf("level = %d, expected 2", g.level)
	}
	if g.formation.Alive() != 32 {
		t.Errorf("Alive() = %d, expected 32", g.formation.Alive())
	}
}

func TestBossRushStartsWithBossWave(t *testing.T) {
	g := NewBoss()
	g.Reset(testRuntime())

	cfg := config.DefaultInvadersConfig()
	if g.level != cfg.Gameplay.BossEvery {
		t.Errorf("level = %d, expected %d", g.level, cfg.Gameplay.BossEvery)
	}
	if g.formation.Mode().Name() != "boss" {
		t.Errorf("mode = %q, expected boss", g.formation.Mode().Name())
	}
	for u := range g.formation.Units() {
		if u.Variant() != formation.VariantBoss || u.HitPoints() != cfg.Gameplay.BossHitPoints {
			t.Errorf("unit %v with %d hp, expected boss with %d", u.Variant(), u.HitPoints(), cfg.Gameplay.BossHitPoints)
		}
	}
	if g.ID() != "invaders_boss" {
		t.Errorf("ID() = %q, expected invaders_boss", g.ID())
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(t)

	g.Step(press(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}
	before := g.Snapshot()
	for range 100 {
		g.Step(press(core.ActionLeft))
	}
	after := g.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("paused game changed state")
	}

	g.Step(press(core.ActionPause))
	if g.State().Paused {
		t.Error("second pause should resume")
	}
}

func TestScreenTooSmall(t *testing.T) {
	g := New()
	rt := testRuntime()
	rt.ScreenW = 20
	g.Reset(rt)

	g.Step(press(core.ActionFire))

	dst := core.NewScreen(20, 10)
	g.Render(dst)
	found := false
	for y := range dst.Height() {
		if strings.Contains(dst.Row(y), "too small") {
			found = true
		}
	}
	if !found {
		t.Error("expected a too-small message")
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t)
	dst := core.NewScreen(80, 24)

	g.Render(dst)

	if !strings.Contains(dst.Row(0), "Score: 0") {
		t.Errorf("HUD row = %q, expected the score", dst.Row(0))
	}
	if !strings.Contains(dst.Row(0), "Wave 1") {
		t.Errorf("HUD row = %q, expected the wave", dst.Row(0))
	}
	if !strings.Contains(dst.Row(23), PlayerSprite) {
		t.Errorf("bottom row = %q, expected the cannon", dst.Row(23))
	}

	// Row 0 of the grid sits at y=48, three cells below the HUD.
	if !strings.Contains(dst.Row(hudRows+3), Sprites[formation.VariantC1]) {
		t.Errorf("row %d = %q, expected tier 3 sprites", hudRows+3, dst.Row(hudRows+3))
	}
	col, row := g.arena.Cell(16, 48)
	if cell := dst.GetCell(col, row); cell.Color != core.ColorWhite {
		t.Errorf("tier 3 color = %v, expected %v", cell.Color, core.ColorWhite)
	}
}

func TestBonusSpawner(t *testing.T) {
	clock := core.NewTickClock()
	b := NewBonusSpawner(clock, nil, config.BonusConfig{Y: 16, Speed: 2, IntervalMs: 1000})
	arena := NewArena(80, 24, config.DefaultInvadersConfig().Display)

	b.Update(arena, nopSounds{})
	if b.Unit() != nil {
		t.Fatal("bonus launched before its interval")
	}

	clock.Advance(time.Second)
	b.Update(arena, nopSounds{})
	if !b.Active() {
		t.Fatal("bonus should launch once the interval elapsed")
	}
	if b.Unit().X() != formation.BonusStartX || b.Unit().Y() != 16 {
		t.Errorf("bonus at (%d, %d), expected (%d, 16)", b.Unit().X(), b.Unit().Y(), formation.BonusStartX)
	}

	b.Update(arena, nopSounds{})
	if b.Unit().X() != formation.BonusStartX+2 {
		t.Errorf("bonus x = %d, expected %d", b.Unit().X(), formation.BonusStartX+2)
	}

	b.Destroy()
	if b.Active() || b.Unit() == nil {
		t.Fatal("destroyed bonus should stay on screen as an explosion")
	}
	for range explosionTicks {
		b.Update(arena, nopSounds{})
	}
	if b.Unit() != nil {
		t.Error("explosion should be gone")
	}
}

func TestBulletsLeaveArena(t *testing.T) {
	arena := NewArena(80, 24, config.DefaultInvadersConfig().Display)
	bs := NewBullets()
	bs.add(&Bullet{X: 10, Y: 4, Speed: -8})
	bs.Spawn(formation.Projectile{X: 10, Y: arena.Height() - 2, Speed: 4})
	bs.Spawn(formation.Projectile{X: 10, Y: 100, Speed: 4})

	bs.Update(arena)

	if bs.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2", bs.Len())
	}
	bs.Update(arena)
	if bs.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", bs.Len())
	}
}

type nopSounds struct{}

func (nopSounds) PlayEnemyFire()  {}
func (nopSounds) PlayPlayerFire() {}
func (nopSounds) PlayExplosion()  {}
func (nopSounds) PlayBonus()      {}
