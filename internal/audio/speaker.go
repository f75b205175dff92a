// Package audio plays the game's sound effects through the system speaker.
// Every effect is synthesized on the fly; there are no sample files.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Effect durations.
const (
	enemyFireLength  = 120 * time.Millisecond
	playerFireLength = 80 * time.Millisecond
	explosionLength  = 250 * time.Millisecond
	bonusLength      = 400 * time.Millisecond
)

// Speaker mixes effects onto the default audio device. All methods are safe
// to call before Initialize or after Close; they just do nothing.
type Speaker struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	seed        int64
}

// NewSpeaker creates an uninitialized speaker. The seed drives the noise
// used by explosion effects.
func NewSpeaker(seed int64) *Speaker {
	return &Speaker{
		mixer: &beep.Mixer{},
		seed:  seed,
	}
}

// Initialize opens the audio device. A machine without audio returns an
// error; the caller may fall back to Nop.
func (s *Speaker) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Close silences everything still playing.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	s.initialized = false
}

// PlayEnemyFire plays the short descending zap of an enemy shot.
func (s *Speaker) PlayEnemyFire() {
	s.play(enemyFireLength, NewSweepGenerator(sampleRate, 880, 220, enemyFireLength))
}

// PlayPlayerFire plays the rising chirp of the cannon.
func (s *Speaker) PlayPlayerFire() {
	s.play(playerFireLength, NewSweepGenerator(sampleRate, 440, 1320, playerFireLength))
}

// PlayExplosion plays a burst of decaying noise.
func (s *Speaker) PlayExplosion() {
	s.mu.Lock()
	s.seed++
	seed := s.seed
	s.mu.Unlock()
	s.play(explosionLength, NewNoiseGenerator(sampleRate, seed))
}

// PlayBonus plays the warbling tone of the bonus unit.
func (s *Speaker) PlayBonus() {
	s.play(bonusLength, NewSweepGenerator(sampleRate, 600, 900, bonusLength/4))
}

func (s *Speaker) play(d time.Duration, g beep.Streamer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Add(beep.Take(sampleRate.N(d), g))
	speaker.Unlock()
}

// Nop discards every effect. It is used when sound is disabled or no
// audio device is available.
type Nop struct{}

func (Nop) PlayEnemyFire()  {}
func (Nop) PlayPlayerFire() {}
func (Nop) PlayExplosion()  {}
func (Nop) PlayBonus()      {}
