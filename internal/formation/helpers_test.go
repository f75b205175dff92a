package formation

import (
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func testSettings() Settings {
	return Settings{
		Width:            5,
		Height:           5,
		BaseSpeed:        60,
		ShootingInterval: 2500 * time.Millisecond,
		Difficulty:       1,
		Level:            1,
	}
}

func newTestFormation(t *testing.T, s Settings, arena Arena) (*Formation, *core.TickClock) {
	t.Helper()
	clock := core.NewTickClock()
	f, err := New(s, Env{
		Arena: arena,
		Clock: clock,
		Rand:  rand.New(rand.NewSource(1)),
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return f, clock
}

// trigger runs Update so that the movement throttle fires on this call.
func trigger(f *Formation) {
	f.interval = f.mode.Speed(f) - 1
	f.Update()
}

// unitAt returns the unit constructed at grid cell (col, row), or nil.
func unitAt(f *Formation, col, row int) *Unit {
	for u := range f.Units() {
		if u.Column() == col && u.Row() == row {
			return u
		}
	}
	return nil
}

func countUnits(f *Formation) int {
	n := 0
	for range f.Units() {
		n++
	}
	return n
}

func countLive(f *Formation) int {
	n := 0
	for u := range f.Units() {
		if !u.IsDestroyed() {
			n++
		}
	}
	return n
}

type recordingSink struct {
	shots []Projectile
}

func (s *recordingSink) Spawn(p Projectile) {
	s.shots = append(s.shots, p)
}

type countingAudio struct {
	plays int
}

func (a *countingAudio) PlayEnemyFire() {
	a.plays++
}

type recordingRenderer struct {
	calls map[*Unit][2]int
}

func (r *recordingRenderer) DrawUnit(u *Unit, x, y int) {
	if r.calls == nil {
		r.calls = make(map[*Unit][2]int)
	}
	r.calls[u] = [2]int{x, y}
}
