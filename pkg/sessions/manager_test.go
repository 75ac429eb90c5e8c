package sessions

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	gomock "github.com/golang/mock/gomock"
	"github.com/gomodule/redigo/redis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agora/pkg/errs"
	"agora/pkg/user"
)

// fakeRedis is an in-memory stand-in shared by every connection the
// pool hands out.
type fakeRedis struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string][]byte{}}
}

func (f *fakeRedis) pool() *redis.Pool {
	return &redis.Pool{
		Dial: func() (redis.Conn, error) {
			return &fakeRedisConn{store: f}, nil
		},
	}
}

func (f *fakeRedis) put(key string, value []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = value
}

func (f *fakeRedis) has(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.data[key]
	return ok
}

type fakeRedisConn struct {
	store *fakeRedis
}

func (c *fakeRedisConn) Close() error { return nil }
func (c *fakeRedisConn) Err() error   { return nil }

func (c *fakeRedisConn) Do(cmd string, args ...interface{}) (interface{}, error) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	switch cmd {
	case "GET":
		key := args[0].(string)
		if v, ok := c.store.data[key]; ok {
			return v, nil
		}
		return nil, redis.ErrNil
	case "SET":
		key := args[0].(string)
		c.store.data[key] = args[1].([]byte)
		return "OK", nil
	case "DEL":
		key := args[0].(string)
		delete(c.store.data, key)
		return int64(1), nil
	}
	return nil, fmt.Errorf("fake redis: unknown command %s", cmd)
}

func (c *fakeRedisConn) Send(string, ...interface{}) error { return nil }
func (c *fakeRedisConn) Flush() error                      { return nil }
func (c *fakeRedisConn) Receive() (interface{}, error)     { return nil, nil }

func apiErrStatus(t *testing.T, err error) int {
	t.Helper()
	apiErr := new(errs.Error)
	require.ErrorAs(t, err, &apiErr)
	return apiErr.Status
}

func storedSession(expiresAt time.Time) *Session {
	return &Session{
		Id:        "s1",
		TokenHash: "abc123",
		UserId:    "u1",
		CreatedAt: time.Date(2023, 4, 1, 10, 0, 0, 0, time.UTC),
		ExpiresAt: expiresAt,
	}
}

func TestCreateSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockRepo := NewMockISessionRepo(ctrl)
	mockUsers := NewMockIUserRepo(ctrl)
	cache := newFakeRedis()
	sm := NewSessionManager(mockRepo, mockUsers, cache.pool())

	expiresAt := time.Now().Add(time.Hour)

	t.Run("success and cached", func(t *testing.T) {
		mockUsers.EXPECT().GetById(ctx, "u1").Return(&user.User{Id: "u1"}, nil)

		var added *Session
		mockRepo.EXPECT().Add(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, s *Session) error {
				added = s
				return nil
			})

		s, err := sm.Create(ctx, &CreateSessionRequest{
			TokenHash: " abc123 ",
			UserId:    "u1",
			ExpiresAt: expiresAt,
		})
		require.NoError(t, err)
		require.NotNil(t, added)

		assert.NotEmpty(t, s.Id)
		assert.Equal(t, "abc123", s.TokenHash)
		assert.Equal(t, expiresAt, s.ExpiresAt)
		assert.True(t, cache.has(cacheKey("abc123")))
	})

	t.Run("expired session is not cached", func(t *testing.T) {
		mockUsers.EXPECT().GetById(ctx, "u1").Return(&user.User{Id: "u1"}, nil)
		mockRepo.EXPECT().Add(ctx, gomock.Any()).Return(nil)

		s, err := sm.Create(ctx, &CreateSessionRequest{
			TokenHash: "old-token",
			UserId:    "u1",
			ExpiresAt: time.Now().Add(-time.Hour),
		})
		require.NoError(t, err)
		assert.False(t, cache.has(cacheKey(s.TokenHash)))
	})

	t.Run("unknown user", func(t *testing.T) {
		mockUsers.EXPECT().GetById(ctx, "ghost").
			Return(nil, fmt.Errorf("user/repo: user ghost: %w", user.ErrNotFound))

		_, err := sm.Create(ctx, &CreateSessionRequest{
			TokenHash: "abc123",
			UserId:    "ghost",
			ExpiresAt: expiresAt,
		})
		assert.Equal(t, http.StatusNotFound, apiErrStatus(t, err))
		assert.EqualError(t, err, "User not found")
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name string
			req  *CreateSessionRequest
			msg  string
		}{
			{"blank token hash", &CreateSessionRequest{UserId: "u1", ExpiresAt: expiresAt}, "Token hash is required"},
			{"blank user id", &CreateSessionRequest{TokenHash: "abc", ExpiresAt: expiresAt}, "User identifier is required"},
			{"zero expiry", &CreateSessionRequest{TokenHash: "abc", UserId: "u1"}, "Expiration date is required"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := sm.Create(ctx, tc.req)
				assert.Equal(t, http.StatusBadRequest, apiErrStatus(t, err))
				assert.EqualError(t, err, tc.msg)
			})
		}
	})
}

func TestValidateSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("store hit populates the cache", func(t *testing.T) {
		mockRepo := NewMockISessionRepo(ctrl)
		mockUsers := NewMockIUserRepo(ctrl)
		cache := newFakeRedis()
		sm := NewSessionManager(mockRepo, mockUsers, cache.pool())

		s := storedSession(time.Now().Add(time.Hour))
		mockRepo.EXPECT().GetByTokenHash(ctx, "abc123").Return(s, nil)
		mockUsers.EXPECT().GetById(ctx, "u1").Return(&user.User{Id: "u1", Name: "Ada"}, nil)

		u, err := sm.Validate(ctx, " abc123 ")
		require.NoError(t, err)
		assert.Equal(t, "Ada", u.Name)
		assert.True(t, cache.has(cacheKey("abc123")))
	})

	t.Run("cache hit skips the store", func(t *testing.T) {
		mockRepo := NewMockISessionRepo(ctrl)
		mockUsers := NewMockIUserRepo(ctrl)
		cache := newFakeRedis()
		sm := NewSessionManager(mockRepo, mockUsers, cache.pool())

		s := storedSession(time.Now().Add(time.Hour))
		payload, err := json.Marshal(s)
		require.NoError(t, err)
		cache.put(cacheKey("abc123"), payload)

		mockUsers.EXPECT().GetById(ctx, "u1").Return(&user.User{Id: "u1"}, nil)

		_, err = sm.Validate(ctx, "abc123")
		require.NoError(t, err)
	})

	t.Run("expired session is deleted on sight", func(t *testing.T) {
		mockRepo := NewMockISessionRepo(ctrl)
		mockUsers := NewMockIUserRepo(ctrl)
		cache := newFakeRedis()
		sm := NewSessionManager(mockRepo, mockUsers, cache.pool())

		s := storedSession(time.Now().Add(-time.Minute))
		mockRepo.EXPECT().GetByTokenHash(ctx, "abc123").Return(s, nil)
		mockRepo.EXPECT().DeleteByTokenHash(ctx, "abc123").Return(nil)

		_, err := sm.Validate(ctx, "abc123")
		assert.Equal(t, http.StatusNotFound, apiErrStatus(t, err))
		assert.False(t, cache.has(cacheKey("abc123")))
	})

	t.Run("orphaned session is deleted on sight", func(t *testing.T) {
		mockRepo := NewMockISessionRepo(ctrl)
		mockUsers := NewMockIUserRepo(ctrl)
		cache := newFakeRedis()
		sm := NewSessionManager(mockRepo, mockUsers, cache.pool())

		s := storedSession(time.Now().Add(time.Hour))
		mockRepo.EXPECT().GetByTokenHash(ctx, "abc123").Return(s, nil)
		mockUsers.EXPECT().GetById(ctx, "u1").
			Return(nil, fmt.Errorf("user/repo: user u1: %w", user.ErrNotFound))
		mockRepo.EXPECT().DeleteByTokenHash(ctx, "abc123").Return(nil)

		_, err := sm.Validate(ctx, "abc123")
		assert.Equal(t, http.StatusNotFound, apiErrStatus(t, err))
		assert.False(t, cache.has(cacheKey("abc123")))
	})

	t.Run("unknown token", func(t *testing.T) {
		mockRepo := NewMockISessionRepo(ctrl)
		mockUsers := NewMockIUserRepo(ctrl)
		sm := NewSessionManager(mockRepo, mockUsers, newFakeRedis().pool())

		mockRepo.EXPECT().GetByTokenHash(ctx, "nope").
			Return(nil, fmt.Errorf("sessions/repo: session nope: %w", ErrNotFound))

		_, err := sm.Validate(ctx, "nope")
		assert.Equal(t, http.StatusNotFound, apiErrStatus(t, err))
		assert.EqualError(t, err, "Session not found")
	})

	t.Run("blank token", func(t *testing.T) {
		sm := NewSessionManager(NewMockISessionRepo(ctrl), NewMockIUserRepo(ctrl), newFakeRedis().pool())

		_, err := sm.Validate(ctx, "   ")
		assert.Equal(t, http.StatusNotFound, apiErrStatus(t, err))
	})
}

func TestDeleteSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockRepo := NewMockISessionRepo(ctrl)
	cache := newFakeRedis()
	sm := NewSessionManager(mockRepo, NewMockIUserRepo(ctrl), cache.pool())

	t.Run("drops both store and cache", func(t *testing.T) {
		cache.put(cacheKey("abc123"), []byte(`{}`))
		mockRepo.EXPECT().DeleteByTokenHash(ctx, "abc123").Return(nil)

		require.NoError(t, sm.Delete(ctx, "abc123"))
		assert.False(t, cache.has(cacheKey("abc123")))
	})

	t.Run("blank token is a no-op", func(t *testing.T) {
		assert.NoError(t, sm.Delete(ctx, "  "))
	})
}

func TestDeleteSessionsForUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockRepo := NewMockISessionRepo(ctrl)
	cache := newFakeRedis()
	sm := NewSessionManager(mockRepo, NewMockIUserRepo(ctrl), cache.pool())

	t.Run("purges each cached token", func(t *testing.T) {
		cache.put(cacheKey("t1"), []byte(`{}`))
		cache.put(cacheKey("t2"), []byte(`{}`))

		mockRepo.EXPECT().GetByUserId(ctx, "u1").Return([]*Session{
			{Id: "s1", TokenHash: "t1", UserId: "u1"},
			{Id: "s2", TokenHash: "t2", UserId: "u1"},
		}, nil)
		mockRepo.EXPECT().DeleteByUserId(ctx, "u1").Return(nil)

		require.NoError(t, sm.DeleteForUser(ctx, "u1"))
		assert.False(t, cache.has(cacheKey("t1")))
		assert.False(t, cache.has(cacheKey("t2")))
	})

	t.Run("blank user id is a no-op", func(t *testing.T) {
		assert.NoError(t, sm.DeleteForUser(ctx, "  "))
	})
}
