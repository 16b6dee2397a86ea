package mocks

import (
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"

	"github.com/MarKarl30/UTS-BackEnd-Prog/utils/redislog"
)

// NewRedisMock returns a real *redis.Client + redismock controller, so
// tests can ExpectLPush/LTrim/Expire and assert expectations.
func NewRedisMock() (*redis.Client, redismock.ClientMock) {
	db, mock := redismock.NewClientMock()
	return db, mock
}

// NewRedisLoggerWithMock builds a real redislog.Logger over a mocked
// client; lets tests check the LPUSH/LTRIM/EXPIRE calls behind
// Info/Warn/Error.
func NewRedisLoggerWithMock() (*redislog.Logger, *redis.Client, redismock.ClientMock) {
	rc, mock := redismock.NewClientMock()
	logger := redislog.New(rc, "logs:app", 100, 24*time.Hour)
	return logger, rc, mock
}
