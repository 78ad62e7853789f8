package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/kozlekmarchewkowy/magazyn/internal/apperror"
	"github.com/kozlekmarchewkowy/magazyn/internal/dto"
	"github.com/kozlekmarchewkowy/magazyn/internal/model"
	"github.com/kozlekmarchewkowy/magazyn/internal/repository"
)

const categoryCacheTTL = 60 * time.Second

// categoryCacheKey names the cache entry for one directory version. Keying by
// version means a bumped directory can never read an entry written before the
// bump, even when dropping the old entry failed.
func categoryCacheKey(version uint64) string {
	return fmt.Sprintf("magazyn:categories:v%d", version)
}

// CategoryCache is the narrow cache surface the directory needs. Get reports
// a miss via the bool, not an error.
type CategoryCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

type redisCache struct{ rdb *redis.Client }

// NewRedisCache wraps a go-redis client as a CategoryCache. A nil client
// returns nil: caching stays optional.
func NewRedisCache(rdb *redis.Client) CategoryCache {
	if rdb == nil {
		return nil
	}
	return &redisCache{rdb: rdb}
}

func (c *redisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return raw, true, nil
}

func (c *redisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.rdb.Set(ctx, key, value, ttl).Err()
}

func (c *redisCache) Del(ctx context.Context, key string) error {
	return c.rdb.Del(ctx, key).Err()
}

// Directory owns the derived name→id category lookup. Lookups are rebuilt on
// every read and tagged with the directory version; creating a category bumps
// the version, so a lookup handed out earlier no longer matches and product
// submissions against it are rejected until the caller rebuilds.
//
// The raw category list is cached for a short TTL under the current version
// and dropped eagerly on Invalidate. The cache is optional (nil) and cache
// errors never surface: a failed read falls through to the store.
type Directory struct {
	repo    repository.CategoryRepository
	cache   CategoryCache
	version atomic.Uint64
}

func NewDirectory(repo repository.CategoryRepository, cache CategoryCache) *Directory {
	d := &Directory{repo: repo, cache: cache}
	d.version.Store(1)
	return d
}

// Version returns the current directory version. Lookups built from an
// earlier version are stale.
func (d *Directory) Version() uint64 { return d.version.Load() }

// Invalidate marks every previously built lookup stale and drops the cached
// category list. Must be called after any successful category creation.
func (d *Directory) Invalidate(ctx context.Context) {
	stale := d.version.Add(1) - 1
	if d.cache == nil {
		return
	}
	if err := d.cache.Del(ctx, categoryCacheKey(stale)); err != nil {
		// The entry is unreachable under the new version and expires by TTL.
		log.Warn().Err(err).Msg("failed to drop category cache")
	}
}

// Categories returns the current category list, served from cache when warm.
func (d *Directory) Categories(ctx context.Context) ([]model.Category, error) {
	key := categoryCacheKey(d.version.Load())
	if cached, ok := d.cacheGet(ctx, key); ok {
		return cached, nil
	}

	list, err := d.repo.List(ctx)
	if err != nil {
		return nil, apperror.Remote("failed to list categories", err)
	}
	d.cacheSet(ctx, key, list)
	return list, nil
}

// BuildLookup fetches the current categories and derives the name→id mapping.
// An empty directory is an expected first-run state, reported as such rather
// than as a transport failure. Duplicate names resolve last-write-wins in
// server return order.
func (d *Directory) BuildLookup(ctx context.Context) (dto.CategoryLookup, error) {
	version := d.version.Load()

	list, err := d.Categories(ctx)
	if err != nil {
		return dto.CategoryLookup{}, err
	}
	if len(list) == 0 {
		return dto.CategoryLookup{}, apperror.EmptyDirectory("no categories yet, add one before entering products")
	}

	lookup := dto.CategoryLookup{
		Version:  version,
		IDByName: make(map[string]uint, len(list)),
		Names:    make([]string, 0, len(list)),
	}
	for _, c := range list {
		if _, seen := lookup.IDByName[c.Name]; !seen {
			lookup.Names = append(lookup.Names, c.Name)
		}
		lookup.IDByName[c.Name] = c.ID
	}
	return lookup, nil
}

func (d *Directory) cacheGet(ctx context.Context, key string) ([]model.Category, bool) {
	if d.cache == nil {
		return nil, false
	}
	raw, hit, err := d.cache.Get(ctx, key)
	if err != nil {
		log.Debug().Err(err).Msg("category cache read failed")
		return nil, false
	}
	if !hit {
		return nil, false
	}
	var list []model.Category
	if err := json.Unmarshal(raw, &list); err != nil {
		log.Debug().Err(err).Msg("category cache entry corrupt, dropping")
		if err := d.cache.Del(ctx, key); err != nil {
			log.Debug().Err(err).Msg("failed to drop corrupt cache entry")
		}
		return nil, false
	}
	return list, true
}

func (d *Directory) cacheSet(ctx context.Context, key string, list []model.Category) {
	if d.cache == nil {
		return
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return
	}
	if err := d.cache.Set(ctx, key, raw, categoryCacheTTL); err != nil {
		log.Debug().Err(err).Msg("category cache write failed")
	}
}
