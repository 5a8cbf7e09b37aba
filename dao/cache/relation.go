package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"Foodgram/models"

	cmap "github.com/orcaman/concurrent-map/v2"
	"github.com/redis/go-redis/v9"
)

// 关系集合过期时间
const relationExpireAt = 30 * time.Minute

// warmMember marks a set that was filled from the database, so an empty
// relation set is told apart from a cold one.
const warmMember = "warm"

// RelationCache mirrors the recipe ids a user holds under one relation
// kind. It is advisory: callers fall back to the database on a cold set or
// on error.
//
// Every Add and Remove bumps a per-set version. Fill is only applied when
// the version still equals the one Members returned, so a database snapshot
// read before a concurrent write never replaces the newer state.
type RelationCache interface {
	// Members returns the cached ids and the set version; warm is false when
	// the set must be loaded from the database first.
	Members(ctx context.Context, userID uint64, kind models.RelationKind) (ids map[uint64]struct{}, version int64, warm bool, err error)
	// Fill stores recipeIDs unless the set changed after version was read.
	Fill(ctx context.Context, userID uint64, kind models.RelationKind, version int64, recipeIDs []uint64) error
	// Add only touches warm sets.
	Add(ctx context.Context, userID uint64, kind models.RelationKind, recipeID uint64) error
	Remove(ctx context.Context, userID uint64, kind models.RelationKind, recipeID uint64) error
}

var (
	_ RelationCache = (*RedisRelationStorage)(nil)
	_ RelationCache = (*MemoryRelationStorage)(nil)
)

type RedisRelationStorage struct {
	redis *redis.Client
}

func NewRedisRelationStorage(rds *redis.Client) *RedisRelationStorage {
	return &RedisRelationStorage{redis: rds}
}

func (s *RedisRelationStorage) Members(ctx context.Context, userID uint64, kind models.RelationKind) (map[uint64]struct{}, int64, bool, error) {
	key := s.name(userID, kind)

	var (
		membersCmd *redis.StringSliceCmd
		versionCmd *redis.StringCmd
	)
	_, err := s.redis.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		versionCmd = pipe.Get(ctx, s.versionName(key))
		membersCmd = pipe.SMembers(ctx, key)
		return nil
	})
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, 0, false, err
	}
	if err := membersCmd.Err(); err != nil {
		return nil, 0, false, err
	}
	version, err := parseVersion(versionCmd)
	if err != nil {
		return nil, 0, false, err
	}

	warm := false
	ids := make(map[uint64]struct{}, len(membersCmd.Val()))
	for _, item := range membersCmd.Val() {
		if item == warmMember {
			warm = true
			continue
		}
		if id, err := strconv.ParseUint(item, 10, 64); err == nil {
			ids[id] = struct{}{}
		}
	}
	if !warm {
		return nil, version, false, nil
	}
	return ids, version, true, nil
}

func (s *RedisRelationStorage) Fill(ctx context.Context, userID uint64, kind models.RelationKind, version int64, recipeIDs []uint64) error {
	key := s.name(userID, kind)
	verKey := s.versionName(key)
	members := make([]any, 0, len(recipeIDs)+1)
	members = append(members, warmMember)
	for _, id := range recipeIDs {
		members = append(members, strconv.FormatUint(id, 10))
	}

	err := s.redis.Watch(ctx, func(tx *redis.Tx) error {
		current, err := parseVersion(tx.Get(ctx, verKey))
		if err != nil {
			return err
		}
		if current != version {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, key)
			pipe.SAdd(ctx, key, members...)
			pipe.Expire(ctx, key, relationExpireAt)
			return nil
		})
		return err
	}, verKey)
	// 版本在 EXEC 前被改动, 放弃本次回填
	if errors.Is(err, redis.TxFailedErr) {
		return nil
	}
	return err
}

func (s *RedisRelationStorage) Add(ctx context.Context, userID uint64, kind models.RelationKind, recipeID uint64) error {
	key := s.name(userID, kind)
	if err := s.bump(ctx, key); err != nil {
		return err
	}
	warm, err := s.redis.SIsMember(ctx, key, warmMember).Result()
	if err != nil || !warm {
		return err
	}
	return s.redis.SAdd(ctx, key, strconv.FormatUint(recipeID, 10)).Err()
}

func (s *RedisRelationStorage) Remove(ctx context.Context, userID uint64, kind models.RelationKind, recipeID uint64) error {
	key := s.name(userID, kind)
	if err := s.bump(ctx, key); err != nil {
		return err
	}
	return s.redis.SRem(ctx, key, strconv.FormatUint(recipeID, 10)).Err()
}

// bump outlives the set so a fill that read an older version is rejected
// even after the set expired.
func (s *RedisRelationStorage) bump(ctx context.Context, key string) error {
	verKey := s.versionName(key)
	_, err := s.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, verKey)
		pipe.Expire(ctx, verKey, 2*relationExpireAt)
		return nil
	})
	return err
}

func (s *RedisRelationStorage) name(userID uint64, kind models.RelationKind) string {
	return fmt.Sprintf("foodgram:relation:%s:%d", kind, userID)
}

func (s *RedisRelationStorage) versionName(key string) string {
	return key + ":version"
}

func parseVersion(cmd *redis.StringCmd) (int64, error) {
	v, err := cmd.Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return v, err
}

// MemoryRelationStorage keeps relation sets in process. Stored sets are
// never mutated, writers swap in a copy under the shard lock.
type MemoryRelationStorage struct {
	sets cmap.ConcurrentMap[string, *memorySet]
	now  func() time.Time
}

// memorySet stays in the map while cold to keep its version.
type memorySet struct {
	ids       map[uint64]struct{} // nil while cold
	expiresAt time.Time
	version   int64
}

func NewMemoryRelationStorage() *MemoryRelationStorage {
	return &MemoryRelationStorage{sets: cmap.New[*memorySet](), now: time.Now}
}

func (s *MemoryRelationStorage) Members(_ context.Context, userID uint64, kind models.RelationKind) (map[uint64]struct{}, int64, bool, error) {
	set, ok := s.sets.Get(s.name(userID, kind))
	if !ok || set == nil {
		return nil, 0, false, nil
	}
	if !s.warm(set) {
		return nil, set.version, false, nil
	}
	return set.ids, set.version, true, nil
}

func (s *MemoryRelationStorage) Fill(_ context.Context, userID uint64, kind models.RelationKind, version int64, recipeIDs []uint64) error {
	ids := make(map[uint64]struct{}, len(recipeIDs))
	for _, id := range recipeIDs {
		ids[id] = struct{}{}
	}
	s.sets.Upsert(s.name(userID, kind), nil, func(exist bool, old, _ *memorySet) *memorySet {
		cur := current(exist, old)
		if cur.version != version {
			return cur
		}
		return &memorySet{ids: ids, expiresAt: s.now().Add(relationExpireAt), version: cur.version}
	})
	return nil
}

func (s *MemoryRelationStorage) Add(_ context.Context, userID uint64, kind models.RelationKind, recipeID uint64) error {
	s.update(s.name(userID, kind), func(ids map[uint64]struct{}) { ids[recipeID] = struct{}{} })
	return nil
}

func (s *MemoryRelationStorage) Remove(_ context.Context, userID uint64, kind models.RelationKind, recipeID uint64) error {
	s.update(s.name(userID, kind), func(ids map[uint64]struct{}) { delete(ids, recipeID) })
	return nil
}

// update bumps the version and applies fn to a copy of a warm set. Cold
// sets stay cold.
func (s *MemoryRelationStorage) update(key string, fn func(map[uint64]struct{})) {
	s.sets.Upsert(key, nil, func(exist bool, old, _ *memorySet) *memorySet {
		cur := current(exist, old)
		if !s.warm(cur) {
			return &memorySet{version: cur.version + 1}
		}
		next := make(map[uint64]struct{}, len(cur.ids)+1)
		for id := range cur.ids {
			next[id] = struct{}{}
		}
		fn(next)
		return &memorySet{ids: next, expiresAt: cur.expiresAt, version: cur.version + 1}
	})
}

func (s *MemoryRelationStorage) warm(set *memorySet) bool {
	return set.ids != nil && s.now().Before(set.expiresAt)
}

func current(exist bool, old *memorySet) *memorySet {
	if !exist || old == nil {
		return &memorySet{}
	}
	return old
}

func (s *MemoryRelationStorage) name(userID uint64, kind models.RelationKind) string {
	return fmt.Sprintf("%s:%d", kind, userID)
}
