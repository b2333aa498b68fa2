package helpers

import (
	"github.com/redis/go-redis/v9"
)

// NewRedisClient initializes the redis client backing the rate limiter.
// Expense and user data never touch redis; the relational store is the only
// data store in this system.
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}
