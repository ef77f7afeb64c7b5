package locker

import (
	"cfs-service/internal/app/contracts"
	"cfs-service/internal/pkg/constvars"
	"cfs-service/internal/pkg/exceptions"
	"cfs-service/internal/pkg/utils"
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var errLockNotOwned = errors.New("lock held by another owner")

type lockState int

const (
	lockMissing lockState = iota
	lockOwned
	lockForeign
)

type lockService struct {
	redisRepo contracts.RedisRepository
	Log       *zap.Logger
}

// NewLockService returns locks stored as redis keys with a TTL. The value
// of a key is the token of its owner.
func NewLockService(repo contracts.RedisRepository, logger *zap.Logger) contracts.LockerService {
	return &lockService{redisRepo: repo, Log: logger}
}

func (s *lockService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	token := uuid.NewString()
	acquired, err := s.redisRepo.TrySetNX(ctx, key, token, expiration)
	if err != nil {
		s.logError(ctx, "lockService.TryLock error setting lock", key, err)
		return false, "", err
	}

	s.Log.Debug("lockService.TryLock",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingRedisKey, key),
		zap.Duration(constvars.LoggingLockExpirationTimeKey, expiration),
		zap.Bool("acquired", acquired),
	)
	if !acquired {
		return false, "", nil
	}
	return true, token, nil
}

// Unlock is a no-op for an expired lock.
func (s *lockService) Unlock(ctx context.Context, key, token string) error {
	state, err := s.state(ctx, key, token)
	switch {
	case err != nil:
		return err
	case state == lockMissing:
		return nil
	case state == lockForeign:
		return exceptions.ErrRedisUnlock(errLockNotOwned)
	}

	if err := s.redisRepo.Delete(ctx, key); err != nil {
		s.logError(ctx, "lockService.Unlock error deleting lock", key, err)
		return err
	}
	return nil
}

// Refresh fails for an expired lock as well as a foreign one; the caller
// no longer holds it in either case.
func (s *lockService) Refresh(ctx context.Context, key, token string, expiration time.Duration) error {
	state, err := s.state(ctx, key, token)
	if err != nil {
		return err
	}
	if state != lockOwned {
		return exceptions.ErrRedisUnlock(errLockNotOwned)
	}
	return s.redisRepo.Expire(ctx, key, expiration)
}

func (s *lockService) state(ctx context.Context, key, token string) (lockState, error) {
	stored, err := s.redisRepo.Get(ctx, key)
	if err != nil {
		s.logError(ctx, "lockService error reading lock", key, err)
		return lockMissing, err
	}
	if stored == "" {
		return lockMissing, nil
	}

	// Values go through the repository's JSON encoding.
	if stored != strconv.Quote(token) {
		s.Log.Warn("lockService lock owned by another token",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingRedisKey, key),
			zap.String(constvars.LoggingLockStoredValueKey, stored),
			zap.String(constvars.LoggingLockExpectedValueKey, token),
		)
		return lockForeign, nil
	}
	return lockOwned, nil
}

func (s *lockService) logError(ctx context.Context, msg, key string, err error) {
	s.Log.Error(msg,
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingRedisKey, key),
		zap.Error(err),
	)
}
