// Package audio implements the playback transport against streamed
// recitation URLs. Actual sound output belongs to the surface; the
// transport verifies the stream, tracks play/pause state and hands the URL
// to a delivery callback the first time a source starts playing.
package audio

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/bashirmanafikhi/islamic-statuses/internal/domain"
)

// DeliverFunc pushes a playable stream URL out to the surface.
type DeliverFunc func(ctx context.Context, url string) error

// StreamTransport is a single-slot transport over HTTP audio streams.
type StreamTransport struct {
	httpClient *http.Client
	deliver    DeliverFunc

	url       string
	status    domain.TransportStatus
	delivered bool
}

// NewStreamTransport creates a transport. deliver may be nil when the
// surface only needs the state machine.
func NewStreamTransport(deliver DeliverFunc) *StreamTransport {
	return &StreamTransport{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		deliver:    deliver,
		status:     domain.TransportIdle,
	}
}

// Load replaces the current source after verifying the stream exists.
// The previous source is discarded regardless of its state.
func (t *StreamTransport) Load(ctx context.Context, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		t.reset()
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		t.reset()
		return fmt.Errorf("probe stream: %w", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.reset()
		return fmt.Errorf("stream unavailable (status %d)", resp.StatusCode)
	}

	t.url = url
	t.status = domain.TransportIdle
	t.delivered = false
	return nil
}

// Play starts or resumes the loaded source.
func (t *StreamTransport) Play(ctx context.Context) error {
	if t.url == "" {
		return fmt.Errorf("no source loaded")
	}

	if !t.delivered && t.deliver != nil {
		if err := t.deliver(ctx, t.url); err != nil {
			t.reset()
			return fmt.Errorf("deliver stream: %w", err)
		}
		t.delivered = true
	}

	t.status = domain.TransportPlaying
	return nil
}

// Pause pauses playback, keeping the source loaded.
func (t *StreamTransport) Pause(_ context.Context) error {
	if t.url == "" {
		return fmt.Errorf("no source loaded")
	}
	t.status = domain.TransportPaused
	return nil
}

// Status reports the transport state.
func (t *StreamTransport) Status() domain.TransportStatus {
	return t.status
}

// Finish marks the current source as played to the end.
func (t *StreamTransport) Finish() {
	t.status = domain.TransportFinished
}

func (t *StreamTransport) reset() {
	t.url = ""
	t.status = domain.TransportIdle
	t.delivered = false
}
