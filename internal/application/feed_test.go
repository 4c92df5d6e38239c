package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bashirmanafikhi/islamic-statuses/internal/assets"
	"github.com/bashirmanafikhi/islamic-statuses/internal/domain"
)

func newTestFeed(t *testing.T, filter domain.ContentFilter) *Feed {
	t.Helper()
	feed, err := NewFeed(newTestGenerator(), filter)
	require.NoError(t, err)
	return feed
}

func TestFeedInitialize(t *testing.T) {
	feed := newTestFeed(t, domain.FilterBoth)

	assert.Equal(t, 10, feed.Len())
	assert.Equal(t, 0, feed.CurrentIndex())
	assert.Equal(t, domain.FilterBoth, feed.Filter())

	for i, card := range feed.Cards() {
		if i%2 == 0 {
			assert.Equal(t, domain.ContentQuran, card.Type, "position %d", i)
		} else {
			assert.Equal(t, domain.ContentHadith, card.Type, "position %d", i)
		}
	}
}

func TestFeedExtend(t *testing.T) {
	feed := newTestFeed(t, domain.FilterBoth)
	before := feed.Cards()

	require.NoError(t, feed.Extend())

	assert.Equal(t, 15, feed.Len())
	for i, card := range feed.Cards() {
		if i < len(before) {
			assert.Equal(t, before[i], card, "existing card %d must survive", i)
		}
		if i%2 == 0 {
			assert.Equal(t, domain.ContentQuran, card.Type, "position %d", i)
		} else {
			assert.Equal(t, domain.ContentHadith, card.Type, "position %d", i)
		}
	}

	require.NoError(t, feed.Extend())
	assert.Equal(t, 20, feed.Len())
}

func TestFeedVisibleIndexChanged(t *testing.T) {
	feed := newTestFeed(t, domain.FilterBoth)

	feed.VisibleIndexChanged(4)
	assert.Equal(t, 4, feed.CurrentIndex())
	assert.Equal(t, feed.Cards()[4].ID, feed.Current().ID)

	t.Run("out of range is ignored", func(t *testing.T) {
		feed.VisibleIndexChanged(-1)
		assert.Equal(t, 4, feed.CurrentIndex())

		feed.VisibleIndexChanged(feed.Len())
		assert.Equal(t, 4, feed.CurrentIndex())
	})
}

func TestFeedRegenerateContent(t *testing.T) {
	feed := newTestFeed(t, domain.FilterBoth)
	before := feed.Cards()
	original := before[2]

	require.NoError(t, feed.RegenerateContent(2))

	after := feed.Cards()[2]
	assert.Equal(t, original.ID, after.ID)
	assert.Equal(t, original.BackgroundRef, after.BackgroundRef)
	assert.Equal(t, original.BackgroundIndex, after.BackgroundIndex)
	assert.Equal(t, original.FontID, after.FontID)
	assert.Equal(t, domain.ContentQuran, after.Type, "even position keeps quran under both")

	t.Run("untouched cards survive", func(t *testing.T) {
		for i, card := range feed.Cards() {
			if i == 2 {
				continue
			}
			assert.Equal(t, before[i], card, "card %d", i)
		}
	})

	t.Run("out of range", func(t *testing.T) {
		assert.Error(t, feed.RegenerateContent(-1))
		assert.Error(t, feed.RegenerateContent(feed.Len()))
	})
}

func TestFeedSetBackground(t *testing.T) {
	feed := newTestFeed(t, domain.FilterQuran)
	original := feed.Cards()[3]

	target := (original.BackgroundIndex + 1) % len(assets.Backgrounds)
	require.NoError(t, feed.SetBackground(3, target))

	after := feed.Cards()[3]
	assert.Equal(t, target, after.BackgroundIndex)
	assert.Equal(t, assets.Backgrounds[target], after.BackgroundRef)
	assert.Equal(t, original.ID, after.ID)
	assert.Equal(t, original.FontID, after.FontID)
	assert.Equal(t, original.Quran, after.Quran)

	t.Run("invalid index", func(t *testing.T) {
		assert.Error(t, feed.SetBackground(3, -1))
		assert.Error(t, feed.SetBackground(3, len(assets.Backgrounds)))
		assert.Error(t, feed.SetBackground(feed.Len(), 0))
	})
}

func TestFeedRandomizeFont(t *testing.T) {
	feed := newTestFeed(t, domain.FilterQuran)
	original := feed.Cards()[0]

	require.NoError(t, feed.RandomizeFont(0))

	after := feed.Cards()[0]
	assert.True(t, assets.ValidFont(after.FontID))
	assert.Equal(t, original.ID, after.ID)
	assert.Equal(t, original.BackgroundRef, after.BackgroundRef)
	assert.Equal(t, original.Quran, after.Quran)
}

func TestFeedMutationIsCopyOnWrite(t *testing.T) {
	feed := newTestFeed(t, domain.FilterQuran)
	before := feed.Cards()
	snapshot := before[1]

	require.NoError(t, feed.RandomizeFont(1))

	// The slice held before the mutation must be untouched.
	assert.Equal(t, snapshot, before[1])
}

func TestFeedSetFilter(t *testing.T) {
	feed := newTestFeed(t, domain.FilterBoth)
	feed.VisibleIndexChanged(7)
	require.NoError(t, feed.Extend())

	require.NoError(t, feed.SetFilter(domain.FilterHadith))

	assert.Equal(t, 10, feed.Len())
	assert.Equal(t, 0, feed.CurrentIndex())
	assert.Equal(t, domain.FilterHadith, feed.Filter())
	for _, card := range feed.Cards() {
		assert.Equal(t, domain.ContentHadith, card.Type)
	}
}

func TestFeedTafseerMode(t *testing.T) {
	feed := newTestFeed(t, domain.FilterQuran)

	assert.Equal(t, domain.TafseerOff, feed.TafseerMode())
	assert.Equal(t, domain.TafseerText, feed.CycleTafseerMode())
	assert.Equal(t, domain.TafseerMeanings, feed.CycleTafseerMode())
	assert.Equal(t, domain.TafseerOff, feed.CycleTafseerMode())
}

func TestFeedHadithTranslation(t *testing.T) {
	feed := newTestFeed(t, domain.FilterHadith)

	assert.False(t, feed.ShowHadithTranslation())
	assert.True(t, feed.ToggleHadithTranslation())
	assert.False(t, feed.ToggleHadithTranslation())
}
