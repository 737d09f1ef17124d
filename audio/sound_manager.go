package audio

import (
	"fmt"
	"math"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/crunch-time/core"
	"github.com/lixenwraith/crunch-time/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// Player plays fire-and-forget cues
type Player interface {
	Play(sound core.SoundType)
}

// SoundManager mixes cues onto the speaker
// Every method is safe before Initialize and after Cleanup; sounds are dropped silently
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	master      float64
	muted       bool
	initialized bool
	played      [core.SoundTypeCount]int
	dropped     int
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		master: parameter.AudioMasterVolume,
	}
}

// Initialize sets up the speaker
// Failure is returned for logging; the manager stays usable as a silent sink
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and releases the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// SetMuted toggles output without releasing the speaker
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	sm.muted = muted
	sm.mu.Unlock()
}

// IsMuted reports whether cues are being dropped on request
func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// SetVolume sets the SFX volume for cues played from now on, clamped to 0..1
func (sm *SoundManager) SetVolume(volume float64) float64 {
	if math.IsNaN(volume) {
		volume = 0
	}
	volume = math.Max(0, math.Min(1, volume))

	sm.mu.Lock()
	sm.master = volume
	sm.mu.Unlock()

	logrus.WithField("volume", volume).Debug("audio: volume changed")
	return volume
}

// AdjustVolume moves the volume by delta and returns the new value
// Steps are rounded to whole percent so repeated presses land on clean values
func (sm *SoundManager) AdjustVolume(delta float64) float64 {
	sm.mu.Lock()
	next := math.Round((sm.master+delta)*100) / 100
	sm.mu.Unlock()
	return sm.SetVolume(next)
}

// Volume returns the current SFX volume
func (sm *SoundManager) Volume() float64 {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.master
}

// Initialized reports whether the speaker is open
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Play queues a cue on the mixer
func (sm *SoundManager) Play(sound core.SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sound < 0 || sound >= core.SoundTypeCount {
		logrus.WithField("sound", int(sound)).Warn("audio: unknown sound type")
		return
	}

	if !sm.initialized || sm.muted || sm.master == 0 {
		sm.dropped++
		return
	}

	speaker.Lock()
	voices := sm.mixer.Len()
	speaker.Unlock()
	if voices >= parameter.AudioMaxVoices {
		sm.dropped++
		return
	}

	streamer := Cue(sound, sampleRate, sm.master)
	if streamer == nil {
		sm.dropped++
		return
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	sm.played[sound]++
}

// Played returns how many times a cue reached the mixer
func (sm *SoundManager) Played(sound core.SoundType) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sound < 0 || sound >= core.SoundTypeCount {
		return 0
	}
	return sm.played[sound]
}

// Dropped returns how many requests were discarded
func (sm *SoundManager) Dropped() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.dropped
}
