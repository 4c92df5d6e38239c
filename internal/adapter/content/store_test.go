package content

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bashirmanafikhi/islamic-statuses/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	// testdata has no meanings.json on purpose; its absence must be tolerated.
	store, err := NewStore("testdata", rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	return store
}

func TestNewStore(t *testing.T) {
	store := newTestStore(t)

	assert.Equal(t, 3, store.VerseCount())
	assert.Equal(t, 2, store.HadithCount())

	t.Run("missing dir fails", func(t *testing.T) {
		_, err := NewStore("testdata/nope", rand.New(rand.NewSource(7)))
		assert.Error(t, err)
	})
}

func TestStoreVerseByID(t *testing.T) {
	store := newTestStore(t)

	vs, err := store.VerseByID(1)
	require.NoError(t, err)
	assert.Equal(t, "1:1", vs.Verse.VerseKey)
	assert.Equal(t, "Al-Fatihah", vs.Surah.NameSimple)
	assert.Equal(t, "افتتح الله سبحانه كتابه بالبسملة.", vs.Verse.Tafseer)
	assert.Empty(t, vs.Verse.Meanings)

	t.Run("joins surah by number", func(t *testing.T) {
		vs, err := store.VerseByID(3)
		require.NoError(t, err)
		assert.Equal(t, 112, vs.Verse.SurahNumber)
		assert.Equal(t, "Al-Ikhlas", vs.Surah.NameSimple)
	})

	t.Run("miss returns ErrNotFound", func(t *testing.T) {
		_, err := store.VerseByID(999)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestStoreHadithByID(t *testing.T) {
	store := newTestStore(t)

	h, err := store.HadithByID(2)
	require.NoError(t, err)
	assert.Equal(t, "بني الإسلام على خمس", h.ArabicText)
	assert.Equal(t, "Sahih al-Bukhari", h.Title)
	assert.Equal(t, "Imam Bukhari", h.Author)

	_, err = store.HadithByID(999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStoreRandomPicks(t *testing.T) {
	store := newTestStore(t)

	for i := 0; i < 20; i++ {
		vs, err := store.RandomVerse()
		require.NoError(t, err)
		assert.NotZero(t, vs.Verse.ID)
		assert.NotZero(t, vs.Surah.ID, "every verse joins a surah")

		h, err := store.RandomHadith()
		require.NoError(t, err)
		assert.NotZero(t, h.ID)
	}
}

func TestStoreAllSurahs(t *testing.T) {
	store := newTestStore(t)

	surahs := store.AllSurahs()
	require.Len(t, surahs, 2)
	assert.Equal(t, 1, surahs[0].ID)
	assert.Equal(t, 112, surahs[1].ID)
}
