package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"
)

const redisNS = "postshareRL"

// hitScript increments the counter and starts its expiry on the first hit.
// A counter left without expiry gets one so it can't block the key forever.
var hitScript = redis.NewScript(1, `
local hits = redis.call('INCR', KEYS[1])
if hits == 1 then
	redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('PTTL', KEYS[1])
if ttl < 0 then
	redis.call('PEXPIRE', KEYS[1], ARGV[1])
	ttl = tonumber(ARGV[1])
end
return {hits, ttl}
`)

type RedisStore struct {
	pool *redis.Pool
	now  func() time.Time
}

// NewRedisPool dials rawURL lazily, e.g. redis://localhost:6379/0.
func NewRedisPool(rawURL string) *redis.Pool {
	return &redis.Pool{
		MaxIdle:     10,
		IdleTimeout: 240 * time.Second,
		Dial: func() (redis.Conn, error) {
			return redis.DialURL(rawURL)
		},
		TestOnBorrow: func(c redis.Conn, t time.Time) error {
			if time.Since(t) < time.Minute {
				return nil
			}
			_, err := c.Do("PING")
			return err
		},
	}
}

func NewRedisStore(pool *redis.Pool) *RedisStore {
	return &RedisStore{pool: pool, now: time.Now}
}

func (s *RedisStore) Hit(ctx context.Context, key string, length time.Duration) (Counter, error) {
	conn, err := s.pool.GetContext(ctx)
	if err != nil {
		return Counter{}, fmt.Errorf("ratelimit/redis: can't get connection: %w", err)
	}
	defer conn.Close()

	vals, err := redis.Int64s(hitScript.Do(conn, redisNS+":"+key, length.Milliseconds()))
	if err != nil {
		return Counter{}, fmt.Errorf("ratelimit/redis: hit script failed: %w", err)
	}
	if len(vals) != 2 {
		return Counter{}, fmt.Errorf("ratelimit/redis: unexpected script reply %v", vals)
	}

	return Counter{
		Hits:    vals[0],
		ResetAt: s.now().Add(time.Duration(vals[1]) * time.Millisecond),
	}, nil
}

// Ping checks that Redis answers.
func (s *RedisStore) Ping(ctx context.Context) error {
	conn, err := s.pool.GetContext(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()
	_, err = conn.Do("PING")
	return err
}

func (s *RedisStore) Close() error {
	return s.pool.Close()
}
