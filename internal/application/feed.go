package application

import (
	"fmt"

	"github.com/bashirmanafikhi/islamic-statuses/internal/assets"
	"github.com/bashirmanafikhi/islamic-statuses/internal/domain"
)

const (
	initialBatchSize    = 10
	paginationBatchSize = 5
)

// Feed owns the ordered card sequence, the current-card pointer and the
// session-wide display toggles. Every mutation replaces the slice with a
// fresh one holding a shallow copy of the touched element, so callers can
// detect change by slice identity.
//
// The feed itself is not goroutine safe; each session serializes access.
type Feed struct {
	gen *Generator

	cards        []domain.Card
	currentIndex int
	filter       domain.ContentFilter

	tafseerMode           domain.TafseerMode
	showHadithTranslation bool
}

// NewFeed creates a feed and populates the initial batch.
func NewFeed(gen *Generator, filter domain.ContentFilter) (*Feed, error) {
	f := &Feed{gen: gen}
	if err := f.Initialize(filter); err != nil {
		return nil, err
	}
	return f, nil
}

// Initialize replaces the whole card sequence with a fresh initial batch and
// resets the current index. Safe to call repeatedly; prior state is dropped
// entirely.
func (f *Feed) Initialize(filter domain.ContentFilter) error {
	cards := make([]domain.Card, 0, initialBatchSize)
	for i := 0; i < initialBatchSize; i++ {
		card, err := f.gen.NewCard(filter, i)
		if err != nil {
			return fmt.Errorf("generate card %d: %w", i, err)
		}
		cards = append(cards, card)
	}

	f.cards = cards
	f.currentIndex = 0
	f.filter = filter
	return nil
}

// Cards returns the current card sequence. The returned slice must be
// treated as read-only.
func (f *Feed) Cards() []domain.Card {
	return f.cards
}

// Len reports the number of cards in the feed.
func (f *Feed) Len() int { return len(f.cards) }

// CurrentIndex returns the index the viewport last reported visible.
func (f *Feed) CurrentIndex() int { return f.currentIndex }

// Current returns the card under the pointer.
func (f *Feed) Current() *domain.Card {
	if len(f.cards) == 0 {
		return nil
	}
	if f.currentIndex >= len(f.cards) {
		return &f.cards[0]
	}
	return &f.cards[f.currentIndex]
}

// Filter returns the active content filter.
func (f *Feed) Filter() domain.ContentFilter { return f.filter }

// VisibleIndexChanged moves the current pointer to the index the viewport
// reports as majority-visible. Out-of-range reports ("none visible") are
// ignored.
func (f *Feed) VisibleIndexChanged(i int) {
	if i < 0 || i >= len(f.cards) {
		return
	}
	f.currentIndex = i
}

// Extend appends one pagination batch, continuing the position-based type
// alternation from the current length. Existing cards are never touched.
func (f *Feed) Extend() error {
	next := make([]domain.Card, len(f.cards), len(f.cards)+paginationBatchSize)
	copy(next, f.cards)

	for i := 0; i < paginationBatchSize; i++ {
		card, err := f.gen.NewCard(f.filter, len(f.cards)+i)
		if err != nil {
			return fmt.Errorf("generate card %d: %w", len(f.cards)+i, err)
		}
		next = append(next, card)
	}

	f.cards = next
	return nil
}

// RegenerateContent re-rolls only the content fields of the card at index,
// using the index as the position hint. Background, font and id survive.
func (f *Feed) RegenerateContent(index int) error {
	if err := f.checkIndex(index); err != nil {
		return err
	}

	fresh, err := f.gen.NewContent(f.filter, index)
	if err != nil {
		return err
	}

	card := f.cards[index]
	card.Type = fresh.Type
	card.Quran = fresh.Quran
	card.Hadith = fresh.Hadith
	f.replace(index, card)
	return nil
}

// SetBackground replaces only the background of the card at index.
func (f *Feed) SetBackground(index, backgroundIndex int) error {
	if err := f.checkIndex(index); err != nil {
		return err
	}
	if !assets.ValidBackgroundIndex(backgroundIndex) {
		return fmt.Errorf("background index %d out of range", backgroundIndex)
	}

	card := f.cards[index]
	card.BackgroundRef = assets.Backgrounds[backgroundIndex]
	card.BackgroundIndex = backgroundIndex
	f.replace(index, card)
	return nil
}

// RandomizeFont replaces only the font of the card at index with a fresh
// uniform pick. The pick may coincide with the current font.
func (f *Feed) RandomizeFont(index int) error {
	if err := f.checkIndex(index); err != nil {
		return err
	}

	card := f.cards[index]
	card.FontID = f.gen.randomFont()
	f.replace(index, card)
	return nil
}

// SetFilter switches the content filter by rebuilding the whole feed.
func (f *Feed) SetFilter(filter domain.ContentFilter) error {
	return f.Initialize(filter)
}

// TafseerMode returns the session-wide commentary display mode.
func (f *Feed) TafseerMode() domain.TafseerMode { return f.tafseerMode }

// CycleTafseerMode advances the commentary mode and returns the new value.
func (f *Feed) CycleTafseerMode() domain.TafseerMode {
	f.tafseerMode = f.tafseerMode.Next()
	return f.tafseerMode
}

// ShowHadithTranslation returns the session-wide translation toggle.
func (f *Feed) ShowHadithTranslation() bool { return f.showHadithTranslation }

// ToggleHadithTranslation flips the translation toggle and returns it.
func (f *Feed) ToggleHadithTranslation() bool {
	f.showHadithTranslation = !f.showHadithTranslation
	return f.showHadithTranslation
}

func (f *Feed) checkIndex(index int) error {
	if index < 0 || index >= len(f.cards) {
		return fmt.Errorf("card index %d out of range", index)
	}
	return nil
}

// replace swaps one element copy-on-write style.
func (f *Feed) replace(index int, card domain.Card) {
	next := make([]domain.Card, len(f.cards))
	copy(next, f.cards)
	next[index] = card
	f.cards = next
}
