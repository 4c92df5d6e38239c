// Package render rasterizes a card into a shareable PNG: background photo,
// dark scrim, content text in the card's font, watermark.
package render

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"

	"github.com/bashirmanafikhi/islamic-statuses/internal/assets"
	"github.com/bashirmanafikhi/islamic-statuses/internal/domain"
)

const (
	canvasWidth  = 1080
	canvasHeight = 1920
	fontPoints   = 64
	smallPoints  = 36
)

// Renderer captures cards into temporary PNG files.
type Renderer struct {
	backgroundsDir string
	fontsDir       string
	watermark      string
}

// NewRenderer points the renderer at the bundled asset directories.
func NewRenderer(backgroundsDir, fontsDir, watermark string) *Renderer {
	return &Renderer{
		backgroundsDir: backgroundsDir,
		fontsDir:       fontsDir,
		watermark:      watermark,
	}
}

// Capture renders the card and writes it to a temp PNG, returning its path.
// The caller owns the file and removes it after sharing.
func (r *Renderer) Capture(card *domain.Card) (string, error) {
	dc := gg.NewContext(canvasWidth, canvasHeight)

	r.drawBackground(dc, card.BackgroundRef)

	// Scrim keeps the text legible over any photo.
	dc.SetRGBA(0, 0, 0, 0.45)
	dc.DrawRectangle(0, 0, canvasWidth, canvasHeight)
	dc.Fill()

	if err := r.loadFont(dc, card.FontID, fontPoints); err != nil {
		return "", err
	}

	dc.SetRGB(1, 1, 1)
	body, footer := cardText(card)
	dc.DrawStringWrapped(body, canvasWidth/2, canvasHeight/2, 0.5, 0.5, canvasWidth-160, 1.6, gg.AlignCenter)

	if err := r.loadFont(dc, card.FontID, smallPoints); err != nil {
		return "", err
	}
	if footer != "" {
		dc.SetRGBA(1, 1, 1, 0.85)
		dc.DrawStringAnchored(footer, canvasWidth/2, canvasHeight-220, 0.5, 0.5)
	}
	if r.watermark != "" {
		dc.SetRGBA(1, 1, 1, 0.5)
		dc.DrawStringAnchored(r.watermark, canvasWidth/2, canvasHeight-80, 0.5, 0.5)
	}

	out, err := os.CreateTemp("", "status-card-*.png")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer out.Close()

	if err := dc.EncodePNG(out); err != nil {
		os.Remove(out.Name())
		return "", fmt.Errorf("encode png: %w", err)
	}

	return out.Name(), nil
}

func (r *Renderer) drawBackground(dc *gg.Context, ref string) {
	img, err := gg.LoadImage(filepath.Join(r.backgroundsDir, ref))
	if err != nil {
		// Missing photo falls back to a flat dark canvas.
		dc.SetRGB(0.08, 0.08, 0.15)
		dc.Clear()
		return
	}

	drawCover(dc, img)
}

// drawCover scales the image to fill the canvas, cropping the overflow.
func drawCover(dc *gg.Context, img image.Image) {
	b := img.Bounds()
	sx := float64(canvasWidth) / float64(b.Dx())
	sy := float64(canvasHeight) / float64(b.Dy())
	scale := sx
	if sy > sx {
		scale = sy
	}

	dc.Push()
	dc.Translate(canvasWidth/2, canvasHeight/2)
	dc.Scale(scale, scale)
	dc.DrawImageAnchored(img, 0, 0, 0.5, 0.5)
	dc.Pop()
}

func (r *Renderer) loadFont(dc *gg.Context, fontID string, points float64) error {
	file, ok := assets.FontFiles[fontID]
	if !ok {
		file = assets.FontFiles["DefaultFont"]
	}

	if err := dc.LoadFontFace(filepath.Join(r.fontsDir, file), points); err != nil {
		return fmt.Errorf("load font %s: %w", fontID, err)
	}
	return nil
}

func cardText(card *domain.Card) (body, footer string) {
	switch card.Type {
	case domain.ContentQuran:
		if card.Quran == nil {
			return "", ""
		}
		body = card.Quran.Verse.Text
		footer = fmt.Sprintf("%s · %s", card.Quran.Surah.NameArabic, card.Quran.Verse.VerseKey)
	case domain.ContentHadith:
		if card.Hadith == nil {
			return "", ""
		}
		body = card.Hadith.ArabicText
		footer = card.Hadith.Title
	}
	return body, footer
}
