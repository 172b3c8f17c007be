// Package audio synthesizes brickfall's sound cues with beep. Every cue is
// generated on the fly; there are no sample files.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// SoundManager plays cues on the default output device. Until Initialize
// succeeds every Play method is a silent no-op, so the game runs the same
// with or without a sound card.
type SoundManager struct {
	mu          sync.Mutex
	initialized bool
	played      map[Cue]int
}

// NewSoundManager creates a sound manager with no device attached.
func NewSoundManager() *SoundManager {
	return &SoundManager{played: make(map[Cue]int)}
}

// Initialize opens the speaker.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and releases the device.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}

// Enabled reports whether cues reach a device.
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Played returns how many times a cue reached the device.
func (sm *SoundManager) Played(c Cue) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played[c]
}

// PlayBounce plays the paddle/wall hit cue.
func (sm *SoundManager) PlayBounce() { sm.play(CueBounce) }

// PlayBreak plays the block destroyed cue.
func (sm *SoundManager) PlayBreak() { sm.play(CueBreak) }

// PlayPowerup plays the pickup cue.
func (sm *SoundManager) PlayPowerup() { sm.play(CuePowerup) }

// PlayLevelUp plays the level-up cue.
func (sm *SoundManager) PlayLevelUp() { sm.play(CueLevelUp) }

func (sm *SoundManager) play(c Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	if s := SoundFor(c, sampleRate); s != nil {
		speaker.Play(s)
		sm.played[c]++
	}
}
