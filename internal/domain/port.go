package domain

import (
	"context"
	"errors"
)

// ErrNotFound is returned by content lookups that miss. Callers filter the
// miss out instead of treating it as fatal.
var ErrNotFound = errors.New("record not found")

// ContentPort exposes read-only access over the bundled content tables.
// Implementations load everything once at startup and never mutate it.
type ContentPort interface {
	// RandomVerse picks a verse uniformly at random and joins its surah.
	RandomVerse() (*VerseWithSurah, error)

	// VerseByID looks a verse up by id. Returns ErrNotFound on a miss.
	VerseByID(id int) (*VerseWithSurah, error)

	// RandomHadith picks a hadith uniformly at random.
	RandomHadith() (*Hadith, error)

	// HadithByID looks a hadith up by id. Returns ErrNotFound on a miss.
	HadithByID(id int) (*Hadith, error)

	// AllSurahs returns every surah ordered by number.
	AllSurahs() []Surah
}

// FavoritesPort is the durable favorites list. List degrades to an empty
// slice on read failure; Add/Remove propagate write failures.
type FavoritesPort interface {
	// List returns favorites most-recent-first.
	List(ctx context.Context) []Favorite

	// Add inserts a favorite unless one with the same identity triple
	// already exists, in which case the existing record is returned.
	Add(ctx context.Context, t ContentType, contentID, backgroundIndex int, fontID string) (*Favorite, error)

	// Remove deletes by record id. Removing an absent id is not an error.
	Remove(ctx context.Context, id string) error

	// Exists reports whether the identity triple is favorited.
	Exists(ctx context.Context, t ContentType, contentID, backgroundIndex int) bool

	// Toggle removes the favorite if present, adds it otherwise.
	// Returns the resulting favorite state.
	Toggle(ctx context.Context, t ContentType, contentID, backgroundIndex int, fontID string) (bool, error)
}

// TransportStatus is the playback transport's reported state.
type TransportStatus int

const (
	TransportIdle TransportStatus = iota
	TransportPlaying
	TransportPaused
	TransportFinished
)

// AudioTransportPort is the single playback slot. Loading a new source
// implicitly discards the previous one; the transport never plays two
// sources at once.
type AudioTransportPort interface {
	// Load replaces the current source with the given URL.
	Load(ctx context.Context, url string) error

	// Play starts or resumes playback of the loaded source.
	Play(ctx context.Context) error

	// Pause pauses playback, keeping the source loaded.
	Pause(ctx context.Context) error

	// Status reports the current transport state.
	Status() TransportStatus
}

// RendererPort captures a card's visual state into a temporary PNG file
// and returns its path.
type RendererPort interface {
	Capture(card *Card) (string, error)
}

// I18nPort resolves localized interface messages.
type I18nPort interface {
	Get(lang Language, key string, args ...interface{}) string
}
