package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// AudioMasterVolume is the default SFX volume, 0..1
	AudioMasterVolume = 0.6

	// AudioVolumeStep is the change per volume key press
	AudioVolumeStep = 0.1

	// AudioMaxVoices caps concurrently mixed cues; extra requests are dropped
	AudioMaxVoices = 8
)

// Interact Sound
const (
	InteractSoundDuration = 60 * time.Millisecond
	InteractSoundAttack   = 5 * time.Millisecond
	InteractSoundRelease  = 30 * time.Millisecond
)

// Success Sound
const (
	SuccessSoundNote1Duration = 90 * time.Millisecond
	SuccessSoundNote2Duration = 260 * time.Millisecond
	SuccessSoundAttack        = 5 * time.Millisecond
	SuccessSoundNote1Release  = 10 * time.Millisecond
	SuccessSoundNote2Release  = 200 * time.Millisecond
)

// Error Sound
const (
	ErrorSoundDuration = 150 * time.Millisecond
	ErrorSoundAttack   = 5 * time.Millisecond
	ErrorSoundRelease  = 40 * time.Millisecond
)

// Ring Sound
const (
	RingSoundDuration = 600 * time.Millisecond
	RingSoundAttack   = 5 * time.Millisecond
	RingSoundRelease  = 300 * time.Millisecond
)

// Lose Sound
const (
	LoseSoundDuration = 900 * time.Millisecond
	LoseSoundAttack   = 10 * time.Millisecond
	LoseSoundRelease  = 500 * time.Millisecond
)

// Meow Sound
const (
	MeowSoundNote1Duration = 80 * time.Millisecond
	MeowSoundNote2Duration = 220 * time.Millisecond
	MeowSoundAttack        = 10 * time.Millisecond
	MeowSoundNote1Release  = 20 * time.Millisecond
	MeowSoundNote2Release  = 150 * time.Millisecond
)
