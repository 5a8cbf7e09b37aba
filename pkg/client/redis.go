package client

import (
	"Foodgram/config"
	"Foodgram/pkg/log"
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func NewRedisClient(conf *config.Config) (*redis.Client, error) {
	addr := conf.Redis.Address
	if conf.Redis.Port != 0 {
		addr = fmt.Sprintf("%s:%d", conf.Redis.Address, conf.Redis.Port)
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: conf.Redis.Password,
		Username: conf.Redis.Username,
		DB:       conf.Redis.Database,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.L.Error("connect redis error", zap.String("addr", addr), zap.Error(err))
		_ = client.Close()
		return nil, err
	}
	log.L.Info("redis client success", zap.String("addr", addr))
	return client, nil
}
