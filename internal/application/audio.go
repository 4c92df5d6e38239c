package application

import (
	"context"
	"fmt"

	"github.com/bashirmanafikhi/islamic-statuses/internal/domain"
)

// AudioKey builds the playback slot key for an ayah.
func AudioKey(surahNumber, ayahNumber int) string {
	return fmt.Sprintf("%d-%d", surahNumber, ayahNumber)
}

// Player is the single-slot recitation playback state machine. It tracks
// which ayah the transport currently holds and toggles or replaces the
// source accordingly. Any transport failure resets the slot to empty.
type Player struct {
	transport domain.AudioTransportPort
	baseURL   string
	reciter   string

	loadedKey string
}

// NewPlayer wires a player to a transport. baseURL and reciter parameterize
// the recitation stream URL template.
func NewPlayer(transport domain.AudioTransportPort, baseURL, reciter string) *Player {
	return &Player{
		transport: transport,
		baseURL:   baseURL,
		reciter:   reciter,
	}
}

// StreamURL builds the recitation URL for an ayah: zero-padded 3-digit
// surah and ayah numbers concatenated, everyayah.com layout.
func (p *Player) StreamURL(surahNumber, ayahNumber int) string {
	return fmt.Sprintf("%s/%s/%03d%03d.mp3", p.baseURL, p.reciter, surahNumber, ayahNumber)
}

// PlayOrToggle plays the given ayah. If it is already the loaded source the
// transport is toggled between play and pause without reloading; otherwise
// the new source replaces whatever was loaded and starts playing.
func (p *Player) PlayOrToggle(ctx context.Context, surahNumber, ayahNumber int) error {
	key := AudioKey(surahNumber, ayahNumber)

	if p.loadedKey == key {
		return p.toggle(ctx)
	}

	if err := p.transport.Load(ctx, p.StreamURL(surahNumber, ayahNumber)); err != nil {
		p.loadedKey = ""
		return fmt.Errorf("load audio: %w", err)
	}

	if err := p.transport.Play(ctx); err != nil {
		p.loadedKey = ""
		return fmt.Errorf("play audio: %w", err)
	}

	p.loadedKey = key
	return nil
}

func (p *Player) toggle(ctx context.Context) error {
	var err error
	if p.transport.Status() == domain.TransportPlaying {
		err = p.transport.Pause(ctx)
	} else {
		err = p.transport.Play(ctx)
	}
	if err != nil {
		p.loadedKey = ""
		return fmt.Errorf("toggle audio: %w", err)
	}
	return nil
}

// IsPlaying reports whether the given ayah is loaded and actively playing.
// A loaded-but-paused source is not playing.
func (p *Player) IsPlaying(surahNumber, ayahNumber int) bool {
	return p.loadedKey == AudioKey(surahNumber, ayahNumber) &&
		p.transport.Status() == domain.TransportPlaying
}

// LoadedKey returns the key of the currently loaded source, or "".
func (p *Player) LoadedKey() string { return p.loadedKey }

// HandleFinished clears the slot when the transport reports end of track,
// so the play affordance reverts on its own.
func (p *Player) HandleFinished() {
	p.loadedKey = ""
}
