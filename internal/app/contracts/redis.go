package contracts

import (
	"context"
	"time"
)

// RedisRepository is the narrow key/value surface shared by the session
// store, the locks and the quota counters. Get returns an empty string
// for a missing key.
type RedisRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	Delete(ctx context.Context, key string) error
	Expire(ctx context.Context, key string, exp time.Duration) error
	TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error)
	IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int, error)
}

// LockerService hands out expiring locks identified by an owner token.
// Sessions hold the edit lock of the record they revise; the snapshot
// worker holds the leader lock while it runs.
type LockerService interface {
	// TryLock reports whether key was acquired and, if so, the token that
	// owns it.
	TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error)
	// Unlock releases key only when token still owns it.
	Unlock(ctx context.Context, key, token string) error
	// Refresh extends key's TTL only when token still owns it.
	Refresh(ctx context.Context, key, token string, expiration time.Duration) error
}
