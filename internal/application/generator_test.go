package application

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bashirmanafikhi/islamic-statuses/internal/assets"
	"github.com/bashirmanafikhi/islamic-statuses/internal/domain"
)

// stubContent is an in-memory ContentPort used across the application tests.
type stubContent struct {
	verses  map[int]*domain.VerseWithSurah
	hadiths map[int]*domain.Hadith
	order   []int // verse pick order for RandomVerse, cycled
	next    int
}

func newStubContent() *stubContent {
	return &stubContent{
		verses: map[int]*domain.VerseWithSurah{
			1: {
				Verse: domain.Verse{ID: 1, Text: "بسم الله", AyahNumber: 1, SurahNumber: 1, VerseKey: "1:1"},
				Surah: domain.Surah{ID: 1, NameArabic: "الفاتحة", NameSimple: "Al-Fatihah"},
			},
			2: {
				Verse: domain.Verse{ID: 2, Text: "الحمد لله", AyahNumber: 2, SurahNumber: 1, VerseKey: "1:2"},
				Surah: domain.Surah{ID: 1, NameArabic: "الفاتحة", NameSimple: "Al-Fatihah"},
			},
		},
		hadiths: map[int]*domain.Hadith{
			10: {ID: 10, ArabicText: "إنما الأعمال بالنيات", EnglishText: "Actions are by intentions", Title: "Sahih al-Bukhari"},
		},
		order: []int{1, 2},
	}
}

func (s *stubContent) RandomVerse() (*domain.VerseWithSurah, error) {
	id := s.order[s.next%len(s.order)]
	s.next++
	return s.verses[id], nil
}

func (s *stubContent) VerseByID(id int) (*domain.VerseWithSurah, error) {
	v, ok := s.verses[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return v, nil
}

func (s *stubContent) RandomHadith() (*domain.Hadith, error) {
	return s.hadiths[10], nil
}

func (s *stubContent) HadithByID(id int) (*domain.Hadith, error) {
	h, ok := s.hadiths[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return h, nil
}

func (s *stubContent) AllSurahs() []domain.Surah {
	return []domain.Surah{{ID: 1, NameArabic: "الفاتحة", NameSimple: "Al-Fatihah"}}
}

func testRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func newTestGenerator() *Generator {
	return NewGenerator(newStubContent(), testRand())
}

func TestGeneratorNewCard(t *testing.T) {
	t.Run("quran filter always yields quran", func(t *testing.T) {
		gen := newTestGenerator()
		for i := 0; i < 10; i++ {
			card, err := gen.NewCard(domain.FilterQuran, i)
			require.NoError(t, err)
			assert.Equal(t, domain.ContentQuran, card.Type)
			require.NotNil(t, card.Quran)
			assert.Nil(t, card.Hadith)
		}
	})

	t.Run("hadith filter always yields hadith", func(t *testing.T) {
		gen := newTestGenerator()
		for i := 0; i < 10; i++ {
			card, err := gen.NewCard(domain.FilterHadith, i)
			require.NoError(t, err)
			assert.Equal(t, domain.ContentHadith, card.Type)
			require.NotNil(t, card.Hadith)
			assert.Nil(t, card.Quran)
		}
	})

	t.Run("both filter alternates by position parity", func(t *testing.T) {
		gen := newTestGenerator()
		for i := 0; i < 10; i++ {
			card, err := gen.NewCard(domain.FilterBoth, i)
			require.NoError(t, err)
			if i%2 == 0 {
				assert.Equal(t, domain.ContentQuran, card.Type, "position %d", i)
			} else {
				assert.Equal(t, domain.ContentHadith, card.Type, "position %d", i)
			}
		}
	})

	t.Run("no position picks either type", func(t *testing.T) {
		gen := newTestGenerator()
		seen := map[domain.ContentType]bool{}
		for i := 0; i < 50; i++ {
			card, err := gen.NewCard(domain.FilterBoth, NoPosition)
			require.NoError(t, err)
			seen[card.Type] = true
		}
		assert.True(t, seen[domain.ContentQuran])
		assert.True(t, seen[domain.ContentHadith])
	})

	t.Run("card carries valid styling", func(t *testing.T) {
		gen := newTestGenerator()
		card, err := gen.NewCard(domain.FilterQuran, 0)
		require.NoError(t, err)

		assert.NotEmpty(t, card.ID)
		assert.True(t, assets.ValidBackgroundIndex(card.BackgroundIndex))
		assert.Equal(t, assets.Backgrounds[card.BackgroundIndex], card.BackgroundRef)
		assert.True(t, assets.ValidFont(card.FontID))
	})

	t.Run("distinct cards get distinct ids", func(t *testing.T) {
		gen := newTestGenerator()
		a, err := gen.NewCard(domain.FilterQuran, 0)
		require.NoError(t, err)
		b, err := gen.NewCard(domain.FilterQuran, 0)
		require.NoError(t, err)
		assert.NotEqual(t, a.ID, b.ID)
	})
}

func TestGeneratorNewContent(t *testing.T) {
	gen := newTestGenerator()

	card, err := gen.NewContent(domain.FilterHadith, 3)
	require.NoError(t, err)

	assert.Equal(t, domain.ContentHadith, card.Type)
	require.NotNil(t, card.Hadith)
	assert.Empty(t, card.ID)
	assert.Empty(t, card.BackgroundRef)
	assert.Empty(t, card.FontID)
}
