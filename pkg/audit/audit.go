package audit

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"sql-gateway/configs"

	"github.com/go-redis/redis/v8"
)

// Entry is one executed pipeline query. Status is "ok" or "error".
type Entry struct {
	Endpoint   string    `json:"endpoint"`
	User       string    `json:"user,omitempty"`
	Database   string    `json:"database"`
	Query      string    `json:"query"`
	DurationMs int64     `json:"durationMs"`
	Status     string    `json:"status"`
	Error      string    `json:"error,omitempty"`
	At         time.Time `json:"at"`
}

// Recorder appends query-history entries. Recording failures are logged and
// never surfaced to the caller.
type Recorder interface {
	Record(ctx context.Context, entry Entry)
}

// NewRecorder returns a Redis-backed recorder, or a nop one when no Redis
// address is configured.
func NewRecorder(cfg *configs.Config) Recorder {
	if cfg.RedisAddr == "" {
		return nopRecorder{}
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Could not connect to Redis: %v", err)
	}

	return &redisRecorder{
		client: client,
		key:    cfg.AuditKey,
		max:    cfg.AuditMax,
	}
}

type nopRecorder struct{}

func (nopRecorder) Record(context.Context, Entry) {}

type redisRecorder struct {
	client *redis.Client
	key    string
	max    int64
}

func (r *redisRecorder) Record(ctx context.Context, entry Entry) {
	payload, err := json.Marshal(entry)
	if err != nil {
		log.Printf("audit: failed to encode entry: %v", err)
		return
	}

	pipe := r.client.Pipeline()
	pipe.LPush(ctx, r.key, payload)
	pipe.LTrim(ctx, r.key, 0, r.max-1)
	if _, err := pipe.Exec(ctx); err != nil {
		log.Printf("audit: failed to record entry: %v", err)
	}
}
