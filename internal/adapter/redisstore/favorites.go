// Package redisstore persists the favorites list in Redis. The whole list
// lives as one JSON array under a single key per owner and every mutation
// is a read-modify-write of that value.
package redisstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/bashirmanafikhi/islamic-statuses/internal/domain"
)

const favoritesKeyPrefix = "favorites:"

// Client wraps the shared Redis connection.
type Client struct {
	rdb *redis.Client
}

// NewClient connects to Redis and verifies the connection.
func NewClient(uri string) (*Client, error) {
	opts, err := redis.ParseURL(uri)
	if err != nil {
		return nil, fmt.Errorf("parse redis URI: %w", err)
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// Close releases the connection.
func (c *Client) Close() error {
	return c.rdb.Close()
}

// Favorites is the durable favorites list for one owner.
type Favorites struct {
	rdb *redis.Client
	key string
}

// NewFavorites returns the favorites store bound to the owner's key.
func (c *Client) NewFavorites(owner string) *Favorites {
	return &Favorites{
		rdb: c.rdb,
		key: favoritesKeyPrefix + owner,
	}
}

// List returns all favorites most-recent-first. Read failures are logged
// and degrade to an empty list so browsing never breaks on storage trouble.
func (f *Favorites) List(ctx context.Context) []domain.Favorite {
	val, err := f.rdb.Get(ctx, f.key).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		log.Error().Err(err).Str("key", f.key).Msg("read favorites")
		return nil
	}

	var favorites []domain.Favorite
	if err := json.Unmarshal([]byte(val), &favorites); err != nil {
		log.Error().Err(err).Str("key", f.key).Msg("decode favorites")
		return nil
	}

	return favorites
}

func (f *Favorites) save(ctx context.Context, favorites []domain.Favorite) error {
	data, err := json.Marshal(favorites)
	if err != nil {
		return fmt.Errorf("encode favorites: %w", err)
	}
	if err := f.rdb.Set(ctx, f.key, data, 0).Err(); err != nil {
		return fmt.Errorf("write favorites: %w", err)
	}
	return nil
}

// Add stores a new favorite, prepending it to the list. If a favorite with
// the same (type, content id, background index) identity already exists it
// is returned unchanged instead of being duplicated.
func (f *Favorites) Add(ctx context.Context, t domain.ContentType, contentID, backgroundIndex int, fontID string) (*domain.Favorite, error) {
	favorites := f.List(ctx)

	for i := range favorites {
		if favorites[i].Matches(t, contentID, backgroundIndex) {
			return &favorites[i], nil
		}
	}

	fav := domain.Favorite{
		ID:              "fav-" + uuid.NewString(),
		Type:            t,
		BackgroundIndex: backgroundIndex,
		FontID:          fontID,
		CreatedAt:       time.Now().UnixMilli(),
	}
	if t == domain.ContentQuran {
		fav.AyahID = contentID
	} else {
		fav.HadithID = contentID
	}

	updated := append([]domain.Favorite{fav}, favorites...)
	if err := f.save(ctx, updated); err != nil {
		return nil, err
	}

	return &fav, nil
}

// Remove deletes by record id. An absent id is a no-op.
func (f *Favorites) Remove(ctx context.Context, id string) error {
	favorites := f.List(ctx)

	updated := favorites[:0]
	for _, fav := range favorites {
		if fav.ID != id {
			updated = append(updated, fav)
		}
	}

	return f.save(ctx, updated)
}

// Exists reports whether the identity triple is favorited.
func (f *Favorites) Exists(ctx context.Context, t domain.ContentType, contentID, backgroundIndex int) bool {
	for _, fav := range f.List(ctx) {
		if fav.Matches(t, contentID, backgroundIndex) {
			return true
		}
	}
	return false
}

// Toggle removes the favorite if present, adds it otherwise, and returns
// whether the triple is favorited afterwards.
func (f *Favorites) Toggle(ctx context.Context, t domain.ContentType, contentID, backgroundIndex int, fontID string) (bool, error) {
	for _, fav := range f.List(ctx) {
		if fav.Matches(t, contentID, backgroundIndex) {
			if err := f.Remove(ctx, fav.ID); err != nil {
				return true, err
			}
			return false, nil
		}
	}

	if _, err := f.Add(ctx, t, contentID, backgroundIndex, fontID); err != nil {
		return false, err
	}
	return true, nil
}
