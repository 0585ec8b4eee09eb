package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lakshmiplex/canteen-api/internal/domain/entity"
)

type fakeIdempotencyRepo struct {
	keys map[string]*entity.IdempotencyKey
}

func newFakeIdempotencyRepo() *fakeIdempotencyRepo {
	return &fakeIdempotencyRepo{keys: make(map[string]*entity.IdempotencyKey)}
}

func (f *fakeIdempotencyRepo) GetByKey(ctx context.Context, key string, terminalID string) (*entity.IdempotencyKey, error) {
	return f.keys[key+"|"+terminalID], nil
}

func (f *fakeIdempotencyRepo) Create(ctx context.Context, ikey *entity.IdempotencyKey) error {
	f.keys[ikey.Key+"|"+ikey.TerminalID] = ikey
	return nil
}

func (f *fakeIdempotencyRepo) DeleteExpired(ctx context.Context) error { return nil }

func newIdempotencyRouter(repo *fakeIdempotencyRepo) (*gin.Engine, *int) {
	gin.SetMode(gin.TestMode)
	calls := 0
	router := gin.New()
	router.Use(Terminal())
	router.Use(Idempotency(IdempotencyConfig{Repo: repo}))
	router.POST("/bills", func(c *gin.Context) {
		calls++
		c.JSON(http.StatusCreated, gin.H{"bill": calls})
	})
	return router, &calls
}

func TestIdempotencyReplaysCachedResponse(t *testing.T) {
	repo := newFakeIdempotencyRepo()
	router, calls := newIdempotencyRouter(repo)

	do := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest("POST", "/bills", nil)
		req.Header.Set(IdempotencyKeyHeader, "key-1")
		req.Header.Set(TerminalIDHeader, "counter-1")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	first := do()
	assert.Equal(t, http.StatusCreated, first.Code)
	assert.Equal(t, 1, *calls)

	second := do()
	assert.Equal(t, http.StatusCreated, second.Code)
	assert.Equal(t, 1, *calls, "retry must not reach the handler")
	assert.Equal(t, "true", second.Header().Get("X-Idempotency-Replayed"))
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestIdempotencyKeysAreScopedPerTerminal(t *testing.T) {
	repo := newFakeIdempotencyRepo()
	router, calls := newIdempotencyRouter(repo)

	for _, terminal := range []string{"counter-1", "counter-2"} {
		req := httptest.NewRequest("POST", "/bills", nil)
		req.Header.Set(IdempotencyKeyHeader, "key-1")
		req.Header.Set(TerminalIDHeader, terminal)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusCreated, w.Code)
	}

	assert.Equal(t, 2, *calls, "same key from different terminals is not a replay")
}

func TestIdempotencyWithoutKeyPassesThrough(t *testing.T) {
	repo := newFakeIdempotencyRepo()
	router, calls := newIdempotencyRouter(repo)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest("POST", "/bills", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	assert.Equal(t, 2, *calls)
	assert.Empty(t, repo.keys)
}

func TestIdempotencyIgnoresExpiredKeys(t *testing.T) {
	repo := newFakeIdempotencyRepo()
	repo.keys["key-1|counter-1"] = &entity.IdempotencyKey{
		Key:          "key-1",
		TerminalID:   "counter-1",
		ResponseCode: http.StatusCreated,
		ResponseBody: `{"bill":99}`,
		ExpiresAt:    time.Now().Add(-time.Minute),
	}
	router, calls := newIdempotencyRouter(repo)

	req := httptest.NewRequest("POST", "/bills", nil)
	req.Header.Set(IdempotencyKeyHeader, "key-1")
	req.Header.Set(TerminalIDHeader, "counter-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 1, *calls, "expired keys are processed fresh")
	assert.Empty(t, w.Header().Get("X-Idempotency-Replayed"))
}
