// Package audio plays the game's sound effects through the system speaker.
package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/bounce/engine"
	"github.com/lixenwraith/bounce/physics"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// SoundManager owns the speaker and a mixer of one-shot effects
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	master      *effects.Volume
	volume      float64
	initialized bool
}

// NewSoundManager creates a sound manager at the given master volume (0-1)
func NewSoundManager(volume float64) *SoundManager {
	mixer := &beep.Mixer{}
	return &SoundManager{
		mixer:  mixer,
		master: newVolume(mixer, volume),
		volume: volume,
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(sm.master)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
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

// SetVolume changes master volume (0-1), effective immediately
func (sm *SoundManager) SetVolume(volume float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.volume = volume
	if sm.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	setLinearVolume(sm.master, volume)
}

// Volume returns the master volume
func (sm *SoundManager) Volume() float64 {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.volume
}

// PlayBounce plays the wall knock
func (sm *SoundManager) PlayBounce(contact physics.Contact) {
	s, err := CreateBounceSound(sampleRate, contact)
	if err != nil {
		log.Printf("audio: bounce sound: %v", err)
		return
	}
	sm.play(s)
}

// PlayHit plays the score chime
func (sm *SoundManager) PlayHit() {
	s, err := CreateHitSound(sampleRate)
	if err != nil {
		log.Printf("audio: hit sound: %v", err)
		return
	}
	sm.play(s)
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// Handler returns an event handler that voices session bounces and hits
func (sm *SoundManager) Handler() engine.EventHandler {
	return engine.NewHandlerFunc(func(ev engine.Event) {
		switch ev.Type {
		case engine.EventBounce:
			sm.PlayBounce(ev.Contact)
		case engine.EventHit:
			sm.PlayHit()
		}
	}, engine.EventBounce, engine.EventHit)
}
