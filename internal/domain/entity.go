package domain

// ContentType discriminates the two card payload shapes.
type ContentType string

const (
	ContentQuran  ContentType = "quran"
	ContentHadith ContentType = "hadith"
)

// ContentFilter restricts what kind of content the generator produces.
type ContentFilter string

const (
	FilterQuran  ContentFilter = "quran"
	FilterHadith ContentFilter = "hadith"
	FilterBoth   ContentFilter = "both"
)

// ParseContentFilter validates a user-supplied filter string.
func ParseContentFilter(s string) (ContentFilter, bool) {
	switch ContentFilter(s) {
	case FilterQuran, FilterHadith, FilterBoth:
		return ContentFilter(s), true
	}
	return "", false
}

// TafseerMode is the session-wide commentary display state for quran cards.
type TafseerMode int

const (
	TafseerOff      TafseerMode = 0
	TafseerText     TafseerMode = 1
	TafseerMeanings TafseerMode = 2
)

// Next cycles the mode 0 -> 1 -> 2 -> 0.
func (m TafseerMode) Next() TafseerMode {
	return (m + 1) % 3
}

// Verse is a single ayah loaded from the bundled content tables.
type Verse struct {
	ID          int
	Text        string
	AyahNumber  int
	SurahNumber int
	VerseKey    string
	Tafseer     string
	Meanings    string
}

// Surah is a chapter record joined onto verses by surah number.
type Surah struct {
	ID         int
	Name       string
	NameArabic string
	NameSimple string
}

// VerseWithSurah is a verse together with its surah, the unit a quran card carries.
type VerseWithSurah struct {
	Verse Verse
	Surah Surah
}

// Hadith is a single hadith record from the bundled hadith table.
type Hadith struct {
	ID              int
	IDInBook        int
	ChapterID       int
	BookID          int
	ArabicText      string
	EnglishNarrator string
	EnglishText     string
	Title           string
	Author          string
}

// Card is one displayable feed unit. Exactly one of Quran/Hadith is set,
// matching Type. Cards are owned by a feed and mutated only through it.
type Card struct {
	ID              string
	Type            ContentType
	Quran           *VerseWithSurah
	Hadith          *Hadith
	BackgroundRef   string
	BackgroundIndex int
	FontID          string
}

// ContentID returns the id of whichever payload the card carries.
func (c *Card) ContentID() int {
	if c.Type == ContentQuran && c.Quran != nil {
		return c.Quran.Verse.ID
	}
	if c.Hadith != nil {
		return c.Hadith.ID
	}
	return 0
}

// Favorite is a persisted bookmark of a card's content + background + font.
// Identity for toggle purposes is (Type, content id, BackgroundIndex); the
// record id only matters for deletion. JSON tags match the storage format.
type Favorite struct {
	ID              string      `json:"id"`
	Type            ContentType `json:"type"`
	AyahID          int         `json:"ayahId,omitempty"`
	HadithID        int         `json:"hadithId,omitempty"`
	BackgroundIndex int         `json:"backgroundIndex"`
	FontID          string      `json:"fontFamily"`
	CreatedAt       int64       `json:"createdAt"`
}

// ContentID returns the verse or hadith id depending on Type.
func (f Favorite) ContentID() int {
	if f.Type == ContentQuran {
		return f.AyahID
	}
	return f.HadithID
}

// Matches reports whether the favorite has the given identity triple.
func (f Favorite) Matches(t ContentType, contentID, backgroundIndex int) bool {
	return f.Type == t && f.ContentID() == contentID && f.BackgroundIndex == backgroundIndex
}

// Language represents supported interface languages.
type Language string

const (
	LangEnglish Language = "en"
	LangArabic  Language = "ar"
)
