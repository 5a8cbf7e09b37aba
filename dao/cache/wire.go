package cache

import (
	"Foodgram/config"
	"Foodgram/pkg/client"
	"Foodgram/pkg/log"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(NewRelationCache)

// NewRelationCache uses redis when it is configured and an in-process map
// otherwise.
func NewRelationCache(conf *config.Config) (RelationCache, func(), error) {
	if !conf.RedisEnabled() {
		log.L.Info("redis not configured, relation cache kept in memory")
		return NewMemoryRelationStorage(), func() {}, nil
	}
	rds, err := client.NewRedisClient(conf)
	if err != nil {
		return nil, nil, err
	}
	return NewRedisRelationStorage(rds), func() { _ = rds.Close() }, nil
}
