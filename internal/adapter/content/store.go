// Package content is the read-only store over the bundled JSON tables.
package content

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/bashirmanafikhi/islamic-statuses/internal/domain"
)

const (
	ayahFile     = "ayah.json"
	surahFile    = "surah.json"
	hadithFile   = "hadith.json"
	tafseerFile  = "tafseer.json"
	meaningsFile = "meanings.json"
)

// Store indexes the bundled verse, surah, hadith and commentary tables.
// All data is loaded once in NewStore and treated as immutable afterwards;
// only the random source needs locking.
type Store struct {
	verses    []domain.Verse
	verseByID map[int]int // id -> index into verses
	surahs    map[int]domain.Surah
	surahList []domain.Surah

	hadiths    []domain.Hadith
	hadithByID map[int]int

	mu  sync.Mutex
	rng *rand.Rand
}

type rawAyah struct {
	ID          int    `json:"id"`
	Text        string `json:"text"`
	AyahNumber  int    `json:"ayah_number"`
	SurahNumber int    `json:"surah_number"`
	VerseKey    string `json:"verse_key"`
}

type rawSurah struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	NameArabic string `json:"name_arabic"`
	NameSimple string `json:"name_simple"`
}

type rawHadithBook struct {
	ID       int `json:"id"`
	Metadata struct {
		English struct {
			Title  string `json:"title"`
			Author string `json:"author"`
		} `json:"english"`
	} `json:"metadata"`
	Hadiths []rawHadith `json:"hadiths"`
}

type rawHadith struct {
	ID        int    `json:"id"`
	IDInBook  int    `json:"idInBook"`
	ChapterID int    `json:"chapterId"`
	BookID    int    `json:"bookId"`
	Arabic    string `json:"arabic"`
	English   struct {
		Narrator string `json:"narrator"`
		Text     string `json:"text"`
	} `json:"english"`
}

// NewStore loads every table from dir. Missing commentary tables are
// tolerated; missing core tables are not.
func NewStore(dir string, rng *rand.Rand) (*Store, error) {
	s := &Store{
		verseByID:  make(map[int]int),
		surahs:     make(map[int]domain.Surah),
		hadithByID: make(map[int]int),
		rng:        rng,
	}

	if err := s.loadSurahs(filepath.Join(dir, surahFile)); err != nil {
		return nil, fmt.Errorf("load surahs: %w", err)
	}

	tafseer, err := loadCommentary(filepath.Join(dir, tafseerFile))
	if err != nil {
		return nil, fmt.Errorf("load tafseer: %w", err)
	}

	meanings, err := loadCommentary(filepath.Join(dir, meaningsFile))
	if err != nil {
		return nil, fmt.Errorf("load meanings: %w", err)
	}

	if err := s.loadVerses(filepath.Join(dir, ayahFile), tafseer, meanings); err != nil {
		return nil, fmt.Errorf("load verses: %w", err)
	}

	if err := s.loadHadiths(filepath.Join(dir, hadithFile)); err != nil {
		return nil, fmt.Errorf("load hadiths: %w", err)
	}

	return s, nil
}

func (s *Store) loadSurahs(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var raw map[string]rawSurah
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}

	for _, r := range raw {
		s.surahs[r.ID] = domain.Surah{
			ID:         r.ID,
			Name:       r.Name,
			NameArabic: r.NameArabic,
			NameSimple: r.NameSimple,
		}
	}

	s.surahList = make([]domain.Surah, 0, len(s.surahs))
	for _, surah := range s.surahs {
		s.surahList = append(s.surahList, surah)
	}
	sort.Slice(s.surahList, func(i, j int) bool { return s.surahList[i].ID < s.surahList[j].ID })

	return nil
}

func (s *Store) loadVerses(path string, tafseer, meanings map[string]string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var raw map[string]rawAyah
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}

	s.verses = make([]domain.Verse, 0, len(raw))
	for _, r := range raw {
		s.verses = append(s.verses, domain.Verse{
			ID:          r.ID,
			Text:        r.Text,
			AyahNumber:  r.AyahNumber,
			SurahNumber: r.SurahNumber,
			VerseKey:    r.VerseKey,
			Tafseer:     tafseer[r.VerseKey],
			Meanings:    meanings[r.VerseKey],
		})
	}
	sort.Slice(s.verses, func(i, j int) bool { return s.verses[i].ID < s.verses[j].ID })

	for i, v := range s.verses {
		s.verseByID[v.ID] = i
	}

	return nil
}

func (s *Store) loadHadiths(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var book rawHadithBook
	if err := json.Unmarshal(data, &book); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}

	s.hadiths = make([]domain.Hadith, 0, len(book.Hadiths))
	for _, r := range book.Hadiths {
		s.hadiths = append(s.hadiths, domain.Hadith{
			ID:              r.ID,
			IDInBook:        r.IDInBook,
			ChapterID:       r.ChapterID,
			BookID:          r.BookID,
			ArabicText:      r.Arabic,
			EnglishNarrator: r.English.Narrator,
			EnglishText:     r.English.Text,
			Title:           book.Metadata.English.Title,
			Author:          book.Metadata.English.Author,
		})
	}

	for i, h := range s.hadiths {
		s.hadithByID[h.ID] = i
	}

	return nil
}

// loadCommentary reads a verse-key keyed commentary table. An absent file
// just means no commentary of that kind.
func loadCommentary(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, err
	}

	var table map[string]string
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}

	return table, nil
}

// RandomVerse picks a verse uniformly at random and joins its surah.
func (s *Store) RandomVerse() (*domain.VerseWithSurah, error) {
	if len(s.verses) == 0 {
		return nil, fmt.Errorf("verse table is empty")
	}

	s.mu.Lock()
	i := s.rng.Intn(len(s.verses))
	s.mu.Unlock()

	return s.join(s.verses[i]), nil
}

// VerseByID looks a verse up by id.
func (s *Store) VerseByID(id int) (*domain.VerseWithSurah, error) {
	i, ok := s.verseByID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return s.join(s.verses[i]), nil
}

func (s *Store) join(v domain.Verse) *domain.VerseWithSurah {
	return &domain.VerseWithSurah{
		Verse: v,
		Surah: s.surahs[v.SurahNumber],
	}
}

// RandomHadith picks a hadith uniformly at random.
func (s *Store) RandomHadith() (*domain.Hadith, error) {
	if len(s.hadiths) == 0 {
		return nil, fmt.Errorf("hadith table is empty")
	}

	s.mu.Lock()
	i := s.rng.Intn(len(s.hadiths))
	s.mu.Unlock()

	h := s.hadiths[i]
	return &h, nil
}

// HadithByID looks a hadith up by id.
func (s *Store) HadithByID(id int) (*domain.Hadith, error) {
	i, ok := s.hadithByID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	h := s.hadiths[i]
	return &h, nil
}

// AllSurahs returns every surah ordered by number.
func (s *Store) AllSurahs() []domain.Surah {
	return s.surahList
}

// VerseCount reports how many verses are loaded.
func (s *Store) VerseCount() int { return len(s.verses) }

// HadithCount reports how many hadiths are loaded.
func (s *Store) HadithCount() int { return len(s.hadiths) }
