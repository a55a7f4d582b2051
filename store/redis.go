// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tertty/ROCK-the-Vote-backend/ledger"
)

const (
	fieldRed  = "red"
	fieldBlue = "blue"
)

// RedisStore keeps each tally in a hash rtv:tally:<day> with red and blue
// fields, and today's voters in the hash rtv:responders.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// recordVoteScript applies the voter insert and the increment in one step.
// Returns 1 on success, 0 if the voter exists, -1 if the tally is missing.
var recordVoteScript = redis.NewScript(`
if redis.call("EXISTS", KEYS[1]) == 0 then
	return -1
end
if redis.call("HSETNX", KEYS[2], ARGV[1], ARGV[2]) == 0 then
	return 0
end
redis.call("HINCRBY", KEYS[1], ARGV[3], 1)
return 1
`)

// NewRedisStore uses an existing client. prefix defaults to "rtv".
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "rtv"
	}
	return &RedisStore{client: client, prefix: prefix}
}

// OpenRedis parses a redis:// URL, connects and pings
func OpenRedis(url string) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}
	opts.DialTimeout = 10 * time.Second
	opts.ReadTimeout = 30 * time.Second
	opts.WriteTimeout = 30 * time.Second
	opts.MaxRetries = 3

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewRedisStore(client, ""), nil
}

func (s *RedisStore) tallyKey(day int) string {
	return s.prefix + ":tally:" + strconv.Itoa(day)
}

func (s *RedisStore) respondersKey() string {
	return s.prefix + ":responders"
}

func (s *RedisStore) OpenDay(ctx context.Context, day int) error {
	key := s.tallyKey(day)
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSetNX(ctx, key, fieldRed, 0)
		pipe.HSetNX(ctx, key, fieldBlue, 0)
		pipe.Del(ctx, s.respondersKey())
		return nil
	})
	if err != nil {
		return storageErr("open day", err)
	}
	return nil
}

func (s *RedisStore) HasVoted(ctx context.Context, voterID string) (bool, error) {
	ok, err := s.client.HExists(ctx, s.respondersKey(), voterID).Result()
	if err != nil {
		return false, storageErr("check voter", err)
	}
	return ok, nil
}

func (s *RedisStore) RecordVote(ctx context.Context, day int, voterID string, choice ledger.Choice) error {
	field, response := fieldBlue, "0"
	if choice == ledger.Red {
		field, response = fieldRed, "1"
	}

	keys := []string{s.tallyKey(day), s.respondersKey()}
	res, err := recordVoteScript.Run(ctx, s.client, keys, voterID, response, field).Int()
	if err != nil {
		return storageErr("record vote", err)
	}

	switch res {
	case 1:
		return nil
	case 0:
		return ledger.ErrAlreadyVoted
	default:
		return fmt.Errorf("day %d: %w", day, ledger.ErrNotFound)
	}
}

func (s *RedisStore) Tally(ctx context.Context, day int) (ledger.Tally, error) {
	vals, err := s.client.HMGet(ctx, s.tallyKey(day), fieldRed, fieldBlue).Result()
	if err != nil {
		return ledger.Tally{}, storageErr("query tally", err)
	}
	if len(vals) != 2 || vals[0] == nil || vals[1] == nil {
		return ledger.Tally{}, fmt.Errorf("day %d: %w", day, ledger.ErrNotFound)
	}

	t := ledger.Tally{Day: day}
	if t.Red, err = parseCount(vals[0]); err != nil {
		return ledger.Tally{}, storageErr("parse red count", err)
	}
	if t.Blue, err = parseCount(vals[1]); err != nil {
		return ledger.Tally{}, storageErr("parse blue count", err)
	}
	return t, nil
}

func parseCount(v any) (uint64, error) {
	s, ok := v.(string)
	if !ok {
		return 0, errors.New("unexpected count type")
	}
	return strconv.ParseUint(s, 10, 64)
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
