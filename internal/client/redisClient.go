package client

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

func InitRedisClient(addr string) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatal("failed to connect to redis:", err)
	}

	return rdb
}
