package application

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/google/uuid"

	"github.com/bashirmanafikhi/islamic-statuses/internal/assets"
	"github.com/bashirmanafikhi/islamic-statuses/internal/domain"
)

// NoPosition tells NewCard to pick the content type at random under the
// "both" filter instead of alternating by position parity.
const NoPosition = -1

// Generator builds cards from the content store plus the asset registries.
type Generator struct {
	content domain.ContentPort

	mu  sync.Mutex
	rng *rand.Rand
}

// NewGenerator wires a generator to the content store. The random source is
// injected so tests can make generation deterministic.
func NewGenerator(content domain.ContentPort, rng *rand.Rand) *Generator {
	return &Generator{content: content, rng: rng}
}

// NewCard produces one card for the given filter. When the filter is "both"
// a non-negative position alternates the type by parity (even quran, odd
// hadith); NoPosition picks uniformly between the two.
func (g *Generator) NewCard(filter domain.ContentFilter, position int) (domain.Card, error) {
	card := domain.Card{
		ID:     uuid.NewString(),
		FontID: g.randomFont(),
	}
	card.BackgroundRef, card.BackgroundIndex = g.randomBackground()

	if err := g.fillContent(&card, filter, position); err != nil {
		return domain.Card{}, err
	}

	return card, nil
}

// NewContent produces just the content portion of a card, used by the feed
// to re-roll a card's text while keeping its background, font and id.
func (g *Generator) NewContent(filter domain.ContentFilter, position int) (domain.Card, error) {
	var card domain.Card
	if err := g.fillContent(&card, filter, position); err != nil {
		return domain.Card{}, err
	}
	return card, nil
}

func (g *Generator) fillContent(card *domain.Card, filter domain.ContentFilter, position int) error {
	switch g.pickType(filter, position) {
	case domain.ContentQuran:
		vs, err := g.content.RandomVerse()
		if err != nil {
			return fmt.Errorf("random verse: %w", err)
		}
		card.Type = domain.ContentQuran
		card.Quran = vs
		card.Hadith = nil
	case domain.ContentHadith:
		h, err := g.content.RandomHadith()
		if err != nil {
			return fmt.Errorf("random hadith: %w", err)
		}
		card.Type = domain.ContentHadith
		card.Hadith = h
		card.Quran = nil
	}
	return nil
}

func (g *Generator) pickType(filter domain.ContentFilter, position int) domain.ContentType {
	switch filter {
	case domain.FilterQuran:
		return domain.ContentQuran
	case domain.FilterHadith:
		return domain.ContentHadith
	}

	if position != NoPosition {
		if position%2 == 0 {
			return domain.ContentQuran
		}
		return domain.ContentHadith
	}

	g.mu.Lock()
	coin := g.rng.Intn(2)
	g.mu.Unlock()
	if coin == 0 {
		return domain.ContentQuran
	}
	return domain.ContentHadith
}

func (g *Generator) randomBackground() (string, int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return assets.RandomBackground(g.rng)
}

func (g *Generator) randomFont() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return assets.RandomFont(g.rng)
}
