package storage

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hireflow/backend/models"
)

const (
	maxTranscriptTurns = 200
	transcriptTTL      = 30 * 24 * time.Hour
)

// RedisTranscripts stores chat transcripts as Redis lists keyed by candidate
type RedisTranscripts struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisClient connects to Redis and verifies the connection
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := parseRedisURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse REDIS_URL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

func parseRedisURL(redisURL string) (*redis.Options, error) {
	u, err := url.Parse(redisURL)
	if err != nil {
		return nil, err
	}
	if u.Host == "" {
		return nil, fmt.Errorf("missing host in %q", redisURL)
	}

	opts := &redis.Options{Addr: u.Host}
	if u.User != nil {
		if password, ok := u.User.Password(); ok {
			opts.Password = password
		}
		opts.Username = u.User.Username()
	}
	if u.Path != "" && u.Path != "/" {
		if db, err := strconv.Atoi(u.Path[1:]); err == nil {
			opts.DB = db
		}
	}
	if u.Scheme == "rediss" {
		opts.TLSConfig = &tls.Config{ServerName: u.Hostname()}
	}
	return opts, nil
}

// NewRedisTranscripts creates a transcript store on an open client
func NewRedisTranscripts(client *redis.Client) *RedisTranscripts {
	return &RedisTranscripts{client: client, ttl: transcriptTTL}
}

func transcriptKey(candidateID string) string {
	return fmt.Sprintf("transcript:candidate:%s", candidateID)
}

// Append pushes turns onto the transcript, keeping the newest entries
func (r *RedisTranscripts) Append(ctx context.Context, candidateID string, turns ...models.ChatTurn) error {
	if len(turns) == 0 {
		return nil
	}

	values := make([]interface{}, 0, len(turns))
	for _, turn := range turns {
		data, err := json.Marshal(turn)
		if err != nil {
			return fmt.Errorf("failed to marshal chat turn: %w", err)
		}
		values = append(values, data)
	}

	key := transcriptKey(candidateID)
	pipe := r.client.TxPipeline()
	pipe.RPush(ctx, key, values...)
	pipe.LTrim(ctx, key, -maxTranscriptTurns, -1)
	pipe.Expire(ctx, key, r.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append transcript: %w", err)
	}
	return nil
}

// History returns the stored transcript oldest first
func (r *RedisTranscripts) History(ctx context.Context, candidateID string) ([]models.ChatTurn, error) {
	raw, err := r.client.LRange(ctx, transcriptKey(candidateID), 0, -1).Result()
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to read transcript: %w", err)
	}

	turns := make([]models.ChatTurn, 0, len(raw))
	for _, item := range raw {
		var turn models.ChatTurn
		if err := json.Unmarshal([]byte(item), &turn); err != nil {
			continue
		}
		turns = append(turns, turn)
	}
	return turns, nil
}
