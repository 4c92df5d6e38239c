package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bashirmanafikhi/islamic-statuses/internal/domain"
)

type fakeTransport struct {
	status  domain.TransportStatus
	loaded  string
	loadErr error
	playErr error
}

func (f *fakeTransport) Load(_ context.Context, url string) error {
	if f.loadErr != nil {
		return f.loadErr
	}
	f.loaded = url
	f.status = domain.TransportIdle
	return nil
}

func (f *fakeTransport) Play(context.Context) error {
	if f.playErr != nil {
		return f.playErr
	}
	f.status = domain.TransportPlaying
	return nil
}

func (f *fakeTransport) Pause(context.Context) error {
	f.status = domain.TransportPaused
	return nil
}

func (f *fakeTransport) Status() domain.TransportStatus { return f.status }

func TestPlayerStreamURL(t *testing.T) {
	p := NewPlayer(&fakeTransport{}, "https://everyayah.com/data", "Alafasy_128kbps")

	assert.Equal(t, "https://everyayah.com/data/Alafasy_128kbps/001001.mp3", p.StreamURL(1, 1))
	assert.Equal(t, "https://everyayah.com/data/Alafasy_128kbps/002255.mp3", p.StreamURL(2, 255))
	assert.Equal(t, "https://everyayah.com/data/Alafasy_128kbps/114006.mp3", p.StreamURL(114, 6))
}

func TestPlayerPlayOrToggle(t *testing.T) {
	ctx := context.Background()

	t.Run("first play loads and starts", func(t *testing.T) {
		transport := &fakeTransport{}
		p := NewPlayer(transport, "https://everyayah.com/data", "Alafasy_128kbps")

		require.NoError(t, p.PlayOrToggle(ctx, 2, 255))

		assert.Equal(t, "https://everyayah.com/data/Alafasy_128kbps/002255.mp3", transport.loaded)
		assert.True(t, p.IsPlaying(2, 255))
		assert.Equal(t, AudioKey(2, 255), p.LoadedKey())
	})

	t.Run("same ayah toggles pause and resume", func(t *testing.T) {
		transport := &fakeTransport{}
		p := NewPlayer(transport, "https://everyayah.com/data", "Alafasy_128kbps")

		require.NoError(t, p.PlayOrToggle(ctx, 1, 1))
		require.NoError(t, p.PlayOrToggle(ctx, 1, 1))
		assert.Equal(t, domain.TransportPaused, transport.status)
		assert.False(t, p.IsPlaying(1, 1))
		assert.Equal(t, AudioKey(1, 1), p.LoadedKey(), "paused source stays loaded")

		require.NoError(t, p.PlayOrToggle(ctx, 1, 1))
		assert.True(t, p.IsPlaying(1, 1))
	})

	t.Run("different ayah replaces the slot", func(t *testing.T) {
		transport := &fakeTransport{}
		p := NewPlayer(transport, "https://everyayah.com/data", "Alafasy_128kbps")

		require.NoError(t, p.PlayOrToggle(ctx, 1, 1))
		require.NoError(t, p.PlayOrToggle(ctx, 112, 3))

		assert.Equal(t, "https://everyayah.com/data/Alafasy_128kbps/112003.mp3", transport.loaded)
		assert.True(t, p.IsPlaying(112, 3))
		assert.False(t, p.IsPlaying(1, 1))
	})

	t.Run("load failure clears the slot", func(t *testing.T) {
		transport := &fakeTransport{loadErr: errors.New("boom")}
		p := NewPlayer(transport, "https://everyayah.com/data", "Alafasy_128kbps")

		require.Error(t, p.PlayOrToggle(ctx, 1, 1))
		assert.Empty(t, p.LoadedKey())
	})

	t.Run("play failure clears the slot", func(t *testing.T) {
		transport := &fakeTransport{playErr: errors.New("boom")}
		p := NewPlayer(transport, "https://everyayah.com/data", "Alafasy_128kbps")

		require.Error(t, p.PlayOrToggle(ctx, 1, 1))
		assert.Empty(t, p.LoadedKey())
	})
}

func TestPlayerHandleFinished(t *testing.T) {
	transport := &fakeTransport{}
	p := NewPlayer(transport, "https://everyayah.com/data", "Alafasy_128kbps")

	require.NoError(t, p.PlayOrToggle(context.Background(), 1, 1))
	p.HandleFinished()

	assert.Empty(t, p.LoadedKey())
	assert.False(t, p.IsPlaying(1, 1))
}
