// internal/system/audio.go
package system

import (
	"dr-fingers/internal/config"
	"dr-fingers/internal/event"
	"dr-fingers/internal/input"
	"dr-fingers/internal/sound"
	"fmt"
	"log"

	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioSystem управляет гулом полёта и звуком прыжка
type AudioSystem struct {
	context *audio.Context
	flying  *audio.Player
	jump    *audio.Player
}

// NewAudioSystem готовит плееры; гул создаётся на паузе
func NewAudioSystem(jumpPCM []byte) (*AudioSystem, error) {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(config.AudioSampleRate)
	}

	stream := sound.NewPCMReader(sound.FlyingSound(beep.SampleRate(config.AudioSampleRate), config.FlyingVolume))
	flying, err := ctx.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to create flying sound player: %w", err)
	}

	return &AudioSystem{
		context: ctx,
		flying:  flying,
		jump:    ctx.NewPlayerFromBytes(jumpPCM),
	}, nil
}

// Update включает гул, пока у игрока есть направление, и глушит без него
func (s *AudioSystem) Update(intent input.Intent) {
	if intent.HasDirection() {
		if !s.flying.IsPlaying() {
			s.flying.Play()
		}
	} else if s.flying.IsPlaying() {
		s.flying.Pause()
	}
}

func (s *AudioSystem) OnEvent(e event.Event) {
	if e.Type != event.PlayerJumped {
		return
	}
	if err := s.jump.Rewind(); err != nil {
		log.Printf("WARNING: failed to rewind jump sound: %v", err)
		return
	}
	s.jump.Play()
}

// Pause глушит все звуки, например при выходе в меню
func (s *AudioSystem) Pause() {
	s.flying.Pause()
	s.jump.Pause()
}

// Close освобождает плееры
func (s *AudioSystem) Close() {
	for _, p := range []*audio.Player{s.flying, s.jump} {
		if err := p.Close(); err != nil {
			log.Printf("WARNING: failed to close audio player: %v", err)
		}
	}
}
