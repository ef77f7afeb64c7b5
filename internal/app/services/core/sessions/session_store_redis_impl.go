package sessions

import (
	"cfs-service/internal/app/contracts"
	"cfs-service/internal/app/models"
	"cfs-service/internal/pkg/constvars"
	"cfs-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

type sessionStore struct {
	RedisRepository contracts.RedisRepository
}

func NewSessionStore(redisRepository contracts.RedisRepository) contracts.SessionStore {
	return &sessionStore{RedisRepository: redisRepository}
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf(constvars.RedisKeySessionFormat, sessionID)
}

func (s *sessionStore) Save(ctx context.Context, session *models.Session, ttl time.Duration) error {
	return s.RedisRepository.Set(ctx, sessionKey(session.ID), session, ttl)
}

func (s *sessionStore) Find(ctx context.Context, sessionID string) (*models.Session, error) {
	raw, err := s.RedisRepository.Get(ctx, sessionKey(sessionID))
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, exceptions.ErrSessionNotFound(nil, sessionID)
	}

	var session models.Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return &session, nil
}

func (s *sessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.RedisRepository.Delete(ctx, sessionKey(sessionID))
}
