// Package sessions manages server-side session records: the document
// store is authoritative, Redis fronts it as a read-through cache keyed
// by token hash.
package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"

	"agora/pkg/common"
	"agora/pkg/errs"
	"agora/pkg/logger"
	"agora/pkg/user"
)

//go:generate mockgen -source=manager.go -destination=manager_mock.go -package=sessions

const cacheKeyPrefix = "agoraSessions:"

type (
	ISessionRepo interface {
		Add(context.Context, *Session) error
		GetByTokenHash(context.Context, string) (*Session, error)
		GetByUserId(context.Context, string) ([]*Session, error)
		DeleteByTokenHash(context.Context, string) error
		DeleteByUserId(context.Context, string) error
	}

	IUserRepo interface {
		GetById(context.Context, string) (*user.User, error)
	}

	Manager struct {
		repo  ISessionRepo
		users IUserRepo
		redis *redis.Pool
	}

	CreateSessionRequest struct {
		TokenHash string    `json:"tokenHash" validate:"required"`
		UserId    string    `json:"userId" validate:"required"`
		ExpiresAt time.Time `json:"expiresAt" validate:"required"`
	}
)

func NewSessionManager(repo ISessionRepo, users IUserRepo, redisPool *redis.Pool) *Manager {
	return &Manager{
		repo:  repo,
		users: users,
		redis: redisPool,
	}
}

func (sm *Manager) Create(ctx context.Context, req *CreateSessionRequest) (*Session, error) {
	if req == nil {
		return nil, errs.InvalidArgument("Missing session payload")
	}
	if common.IsBlank(req.TokenHash) {
		return nil, errs.InvalidArgument("Token hash is required")
	}
	if common.IsBlank(req.UserId) {
		return nil, errs.InvalidArgument("User identifier is required")
	}
	if req.ExpiresAt.IsZero() {
		return nil, errs.InvalidArgument("Expiration date is required")
	}

	if _, err := sm.users.GetById(ctx, req.UserId); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, errs.NotFound("User not found")
		}
		return nil, err
	}

	s := &Session{
		Id:        common.NewID(),
		TokenHash: common.NormalizeText(req.TokenHash),
		UserId:    req.UserId,
		CreatedAt: common.Now(),
		ExpiresAt: req.ExpiresAt,
	}
	if err := sm.repo.Add(ctx, s); err != nil {
		return nil, err
	}

	sm.cacheSet(ctx, s)
	return s, nil
}

// Validate resolves a token hash to its user. Expired sessions and
// sessions whose user is gone are removed on sight; all of those look
// identical to the caller: not found.
func (sm *Manager) Validate(ctx context.Context, tokenHash string) (*user.User, error) {
	normalized := common.NormalizeText(tokenHash)
	if normalized == "" {
		return nil, errs.NotFound("Session not found")
	}

	s := sm.cacheGet(ctx, normalized)
	if s == nil {
		stored, err := sm.repo.GetByTokenHash(ctx, normalized)
		if errors.Is(err, ErrNotFound) {
			return nil, errs.NotFound("Session not found")
		}
		if err != nil {
			return nil, err
		}
		s = stored
		sm.cacheSet(ctx, s)
	}

	if !s.ExpiresAt.IsZero() && s.ExpiresAt.Before(common.Now()) {
		if err := sm.Delete(ctx, normalized); err != nil {
			logger.Log(ctx).Errorf("sessions: can't delete expired session: %v", err)
		}
		return nil, errs.NotFound("Session not found")
	}

	u, err := sm.users.GetById(ctx, s.UserId)
	if err != nil {
		if delErr := sm.Delete(ctx, normalized); delErr != nil {
			logger.Log(ctx).Errorf("sessions: can't delete orphaned session: %v", delErr)
		}
		if errors.Is(err, user.ErrNotFound) {
			return nil, errs.NotFound("Session not found")
		}
		return nil, err
	}

	return u, nil
}

// Delete removes a session by token hash. A blank hash is a no-op.
func (sm *Manager) Delete(ctx context.Context, tokenHash string) error {
	normalized := common.NormalizeText(tokenHash)
	if normalized == "" {
		return nil
	}

	sm.cacheDel(ctx, normalized)
	return sm.repo.DeleteByTokenHash(ctx, normalized)
}

func (sm *Manager) DeleteForUser(ctx context.Context, userId string) error {
	normalized := common.NormalizeText(userId)
	if normalized == "" {
		return nil
	}

	// purge the cache first so the store stays authoritative
	userSessions, err := sm.repo.GetByUserId(ctx, normalized)
	if err != nil {
		return err
	}
	for _, s := range userSessions {
		sm.cacheDel(ctx, s.TokenHash)
	}

	return sm.repo.DeleteByUserId(ctx, normalized)
}

// Cache helpers. Cache trouble is never surfaced: a failed read falls
// through to the store, a failed write just loses the cache entry.

func (sm *Manager) cacheSet(ctx context.Context, s *Session) {
	ttl := time.Until(s.ExpiresAt)
	if ttl <= 0 {
		return
	}

	payload, err := json.Marshal(s)
	if err != nil {
		logger.Log(ctx).Errorf("sessions: can't marshal session for cache: %v", err)
		return
	}

	conn := sm.redis.Get()
	defer conn.Close()
	if _, err := conn.Do("SET", cacheKey(s.TokenHash), payload, "EX", int(ttl.Seconds())+1); err != nil {
		logger.Log(ctx).Errorf("sessions: can't cache session: %v", err)
	}
}

func (sm *Manager) cacheGet(ctx context.Context, tokenHash string) *Session {
	conn := sm.redis.Get()
	defer conn.Close()

	payload, err := redis.Bytes(conn.Do("GET", cacheKey(tokenHash)))
	if err != nil {
		if !errors.Is(err, redis.ErrNil) {
			logger.Log(ctx).Errorf("sessions: can't read session cache: %v", err)
		}
		return nil
	}

	s := new(Session)
	if err := json.Unmarshal(payload, s); err != nil {
		logger.Log(ctx).Errorf("sessions: can't unmarshal cached session: %v", err)
		return nil
	}
	return s
}

func (sm *Manager) cacheDel(ctx context.Context, tokenHash string) {
	conn := sm.redis.Get()
	defer conn.Close()
	if _, err := conn.Do("DEL", cacheKey(tokenHash)); err != nil {
		logger.Log(ctx).Errorf("sessions: can't drop cached session: %v", err)
	}
}

func cacheKey(tokenHash string) string {
	return fmt.Sprintf("%s%s", cacheKeyPrefix, tokenHash)
}
