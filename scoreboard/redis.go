package scoreboard

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultTTL bounds how long a single result is kept (30 days)
	DefaultTTL = 30 * 24 * time.Hour
	// KeyPrefix is the prefix for all scoreboard keys
	KeyPrefix = "crunch_time:"

	keyBoard    = KeyPrefix + "board"
	keySessions = KeyPrefix + "sessions"
)

// Options configures the Redis connection
type Options struct {
	Addr     string
	Password string
	DB       int
	// Retries is the number of ping retries after the first attempt
	Retries uint64
}

// RedisStore keeps results in Redis: a JSON value per result and a sorted set for ranking
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore wraps an existing client
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Connect dials Redis and retries the ping with exponential backoff
func Connect(ctx context.Context, opts Options) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Password:     opts.Password,
		DB:           opts.DB,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	b := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), opts.Retries), ctx)
	attempt := 0
	err := backoff.Retry(func() error {
		attempt++
		if _, err := client.Ping(ctx).Result(); err != nil {
			logrus.WithFields(logrus.Fields{"addr": opts.Addr, "attempt": attempt}).
				Warnf("scoreboard: redis ping failed: %v, retrying...", err)
			return err
		}
		return nil
	}, b)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("connect redis %s after %d attempts: %w", opts.Addr, attempt, err)
	}

	logrus.WithField("addr", opts.Addr).Infof("scoreboard: connected to redis (attempt %d)", attempt)
	return NewRedisStore(client), nil
}

func resultKey(id string) string {
	return KeyPrefix + "result:" + id
}

// Save stores the result and ranks it
func (s *RedisStore) Save(ctx context.Context, r Result) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, resultKey(r.ID), data, DefaultTTL)
		pipe.ZAdd(ctx, keyBoard, &redis.Z{Score: r.Score(), Member: r.ID})
		pipe.Incr(ctx, keySessions)
		return nil
	})
	if err != nil {
		return fmt.Errorf("save result %s: %w", r.ID, err)
	}
	return nil
}

// Top returns the n best results; expired entries are skipped and pruned
func (s *RedisStore) Top(ctx context.Context, n int) ([]Result, error) {
	if n <= 0 {
		n = 10
	}
	ids, err := s.client.ZRevRange(ctx, keyBoard, 0, int64(n-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("rank results: %w", err)
	}
	if len(ids) == 0 {
		return nil, ErrNoResults
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = resultKey(id)
	}
	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("load results: %w", err)
	}

	results := make([]Result, 0, len(values))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			// Expired value, drop its rank
			s.client.ZRem(ctx, keyBoard, ids[i])
			continue
		}
		var r Result
		if err := json.Unmarshal([]byte(raw), &r); err != nil {
			logrus.WithField("id", ids[i]).Warnf("scoreboard: corrupt result: %v", err)
			continue
		}
		results = append(results, r)
	}
	if len(results) == 0 {
		return nil, ErrNoResults
	}
	return results, nil
}

// Count returns the number of sessions ever saved
func (s *RedisStore) Count(ctx context.Context) (int64, error) {
	n, err := s.client.Get(ctx, keySessions).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("count sessions: %w", err)
	}
	return n, nil
}

// Close releases the client
func (s *RedisStore) Close() error {
	return s.client.Close()
}
