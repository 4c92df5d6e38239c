package application

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bashirmanafikhi/islamic-statuses/internal/domain"
)

type memFavorites struct {
	items []domain.Favorite
	seq   int
}

func (m *memFavorites) List(context.Context) []domain.Favorite {
	return append([]domain.Favorite(nil), m.items...)
}

func (m *memFavorites) Add(_ context.Context, t domain.ContentType, contentID, backgroundIndex int, fontID string) (*domain.Favorite, error) {
	for _, f := range m.items {
		if f.Matches(t, contentID, backgroundIndex) {
			return &f, nil
		}
	}
	m.seq++
	fav := domain.Favorite{
		ID:              fmt.Sprintf("fav-%d", m.seq),
		Type:            t,
		BackgroundIndex: backgroundIndex,
		FontID:          fontID,
	}
	if t == domain.ContentQuran {
		fav.AyahID = contentID
	} else {
		fav.HadithID = contentID
	}
	m.items = append([]domain.Favorite{fav}, m.items...)
	return &fav, nil
}

func (m *memFavorites) Remove(_ context.Context, id string) error {
	kept := m.items[:0]
	for _, f := range m.items {
		if f.ID != id {
			kept = append(kept, f)
		}
	}
	m.items = kept
	return nil
}

func (m *memFavorites) Exists(_ context.Context, t domain.ContentType, contentID, backgroundIndex int) bool {
	for _, f := range m.items {
		if f.Matches(t, contentID, backgroundIndex) {
			return true
		}
	}
	return false
}

func (m *memFavorites) Toggle(ctx context.Context, t domain.ContentType, contentID, backgroundIndex int, fontID string) (bool, error) {
	for _, f := range m.items {
		if f.Matches(t, contentID, backgroundIndex) {
			return false, m.Remove(ctx, f.ID)
		}
	}
	_, err := m.Add(ctx, t, contentID, backgroundIndex, fontID)
	return true, err
}

func TestFavoritesFeedReload(t *testing.T) {
	ctx := context.Background()
	store := &memFavorites{}
	feed := NewFavoritesFeed(store, newStubContent())

	_, err := store.Add(ctx, domain.ContentQuran, 1, 3, "MeQuran")
	require.NoError(t, err)
	_, err = store.Add(ctx, domain.ContentHadith, 10, 7, "DefaultFont")
	require.NoError(t, err)

	feed.Reload(ctx)

	require.Equal(t, 2, feed.Len())
	// Most recent first.
	assert.Equal(t, domain.ContentHadith, feed.Cards()[0].Type)
	assert.Equal(t, domain.ContentQuran, feed.Cards()[1].Type)

	quran := feed.Cards()[1]
	require.NotNil(t, quran.Quran)
	assert.Equal(t, 1, quran.Quran.Verse.ID)
	assert.Equal(t, 3, quran.BackgroundIndex)
	assert.Equal(t, "MeQuran", quran.FontID)
	assert.NotEmpty(t, quran.BackgroundRef)
}

func TestFavoritesFeedSkipsDanglingIDs(t *testing.T) {
	ctx := context.Background()
	store := &memFavorites{}
	feed := NewFavoritesFeed(store, newStubContent())

	_, err := store.Add(ctx, domain.ContentQuran, 999, 0, "MeQuran")
	require.NoError(t, err)
	_, err = store.Add(ctx, domain.ContentQuran, 1, 0, "MeQuran")
	require.NoError(t, err)

	feed.Reload(ctx)

	require.Equal(t, 1, feed.Len())
	assert.Equal(t, 1, feed.Cards()[0].Quran.Verse.ID)
}

func TestFavoritesFeedRemove(t *testing.T) {
	ctx := context.Background()
	store := &memFavorites{}
	feed := NewFavoritesFeed(store, newStubContent())

	_, err := store.Add(ctx, domain.ContentQuran, 1, 0, "MeQuran")
	require.NoError(t, err)
	fav, err := store.Add(ctx, domain.ContentQuran, 2, 1, "MeQuran")
	require.NoError(t, err)

	feed.Reload(ctx)
	require.Equal(t, 2, feed.Len())

	require.NoError(t, feed.Remove(ctx, fav.ID))
	require.Equal(t, 1, feed.Len())
	assert.Equal(t, 1, feed.Cards()[0].Quran.Verse.ID)
}

func TestFavoritesFeedPointerResetOnShrink(t *testing.T) {
	ctx := context.Background()
	store := &memFavorites{}
	feed := NewFavoritesFeed(store, newStubContent())

	a, err := store.Add(ctx, domain.ContentQuran, 1, 0, "MeQuran")
	require.NoError(t, err)
	b, err := store.Add(ctx, domain.ContentQuran, 2, 1, "MeQuran")
	require.NoError(t, err)

	feed.Reload(ctx)
	feed.VisibleIndexChanged(1)
	require.Equal(t, 1, feed.CurrentIndex())

	require.NoError(t, store.Remove(ctx, a.ID))
	require.NoError(t, store.Remove(ctx, b.ID))
	feed.Reload(ctx)

	assert.Equal(t, 0, feed.Len())
	assert.Equal(t, 0, feed.CurrentIndex())

	_, err = feed.Card(0)
	assert.Error(t, err)
}
