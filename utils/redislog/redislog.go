// Package redislog is a small audit logger that pushes structured events
// onto a capped Redis LIST. Services use it for business events (logins,
// lockouts, CRUD outcomes); request access logs stay on stdout.
package redislog

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Entry is one structured event, stored in Redis as JSON.
type Entry struct {
	Level string            `json:"level"`
	Msg   string            `json:"msg"`
	Time  string            `json:"time"`
	Meta  map[string]string `json:"meta,omitempty"`
}

// Logger writes entries to a Redis list (e.g. "logs:app") and trims it to
// a maximum length. A nil Logger or nil client is a silent no-op, so
// callers never have to guard their log lines.
type Logger struct {
	rdb       *redis.Client
	key       string
	max       int64
	retention time.Duration // optional TTL on the list key
}

// New builds a Logger over rdb. Pass a nil client to disable logging.
func New(rdb *redis.Client, key string, max int64, retention time.Duration) *Logger {
	return &Logger{rdb: rdb, key: key, max: max, retention: retention}
}

func (l *Logger) push(level, msg string, meta map[string]string) {
	if l == nil || l.rdb == nil {
		return
	}
	b, err := json.Marshal(Entry{
		Level: level,
		Msg:   msg,
		Time:  time.Now().UTC().Format(time.RFC3339),
		Meta:  meta,
	})
	if err != nil {
		return
	}
	// Best effort: a broken log pipeline must never fail a request.
	ctx := context.Background()
	_ = l.rdb.LPush(ctx, l.key, string(b)).Err()
	_ = l.rdb.LTrim(ctx, l.key, 0, l.max-1).Err()
	if l.retention > 0 {
		_ = l.rdb.Expire(ctx, l.key, l.retention).Err()
	}
}

func (l *Logger) Info(msg string, meta map[string]string)  { l.push("info", msg, meta) }
func (l *Logger) Warn(msg string, meta map[string]string)  { l.push("warn", msg, meta) }
func (l *Logger) Error(msg string, meta map[string]string) { l.push("error", msg, meta) }
