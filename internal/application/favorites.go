package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/bashirmanafikhi/islamic-statuses/internal/assets"
	"github.com/bashirmanafikhi/islamic-statuses/internal/domain"
)

// FavoritesFeed projects the favorites store into a display-ready card list
// for the favorites screen. The projection is rebuilt wholesale on every
// Reload; favorites whose content id no longer resolves are skipped.
type FavoritesFeed struct {
	store   domain.FavoritesPort
	content domain.ContentPort

	cards        []domain.Card
	currentIndex int
}

// NewFavoritesFeed wires the projection to its stores.
func NewFavoritesFeed(store domain.FavoritesPort, content domain.ContentPort) *FavoritesFeed {
	return &FavoritesFeed{store: store, content: content}
}

// Reload rebuilds the card list from the store, most-recent-first.
func (f *FavoritesFeed) Reload(ctx context.Context) {
	favorites := f.store.List(ctx)

	cards := make([]domain.Card, 0, len(favorites))
	for _, fav := range favorites {
		card, err := f.project(fav)
		if err != nil {
			if !errors.Is(err, domain.ErrNotFound) {
				log.Warn().Err(err).Str("favorite_id", fav.ID).Msg("skipping favorite")
			}
			continue
		}
		cards = append(cards, card)
	}

	f.cards = cards
	if f.currentIndex >= len(cards) {
		f.currentIndex = 0
	}
}

func (f *FavoritesFeed) project(fav domain.Favorite) (domain.Card, error) {
	card := domain.Card{
		ID:              fav.ID,
		Type:            fav.Type,
		BackgroundRef:   assets.BackgroundByIndex(fav.BackgroundIndex),
		BackgroundIndex: fav.BackgroundIndex,
		FontID:          fav.FontID,
	}

	switch fav.Type {
	case domain.ContentQuran:
		vs, err := f.content.VerseByID(fav.AyahID)
		if err != nil {
			return domain.Card{}, err
		}
		card.Quran = vs
	case domain.ContentHadith:
		h, err := f.content.HadithByID(fav.HadithID)
		if err != nil {
			return domain.Card{}, err
		}
		card.Hadith = h
	default:
		return domain.Card{}, fmt.Errorf("unknown content type %q", fav.Type)
	}

	return card, nil
}

// Cards returns the projected card list.
func (f *FavoritesFeed) Cards() []domain.Card { return f.cards }

// Len reports the number of projected cards.
func (f *FavoritesFeed) Len() int { return len(f.cards) }

// CurrentIndex returns the viewport pointer within the favorites list.
func (f *FavoritesFeed) CurrentIndex() int { return f.currentIndex }

// VisibleIndexChanged moves the pointer, ignoring out-of-range reports.
func (f *FavoritesFeed) VisibleIndexChanged(i int) {
	if i < 0 || i >= len(f.cards) {
		return
	}
	f.currentIndex = i
}

// Card returns the projected card at index.
func (f *FavoritesFeed) Card(index int) (*domain.Card, error) {
	if index < 0 || index >= len(f.cards) {
		return nil, fmt.Errorf("favorite index %d out of range", index)
	}
	return &f.cards[index], nil
}

// Remove deletes the favorite by record id and rebuilds the projection.
func (f *FavoritesFeed) Remove(ctx context.Context, id string) error {
	if err := f.store.Remove(ctx, id); err != nil {
		return fmt.Errorf("remove favorite: %w", err)
	}
	f.Reload(ctx)
	return nil
}
