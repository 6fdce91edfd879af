package web

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	flashCookieName = "tb_flash"
	flashKeyPrefix  = "flash:"
)

// Flash is a one-shot notification shown on the next rendered page.
// Destructive selects the error styling.
type Flash struct {
	Message     string `json:"message"`
	Destructive bool   `json:"destructive"`
}

// FlashStore persists flashes across the POST-redirect-GET hop.
type FlashStore interface {
	Put(ctx context.Context, flash Flash) (string, error)
	Take(ctx context.Context, id string) (*Flash, error)
}

// RedisFlashStore keeps flashes in Redis under a short TTL so abandoned
// redirects expire on their own.
type RedisFlashStore struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedisFlashStore builds a flash store on the given Redis client.
func NewRedisFlashStore(client redis.UniversalClient, ttl time.Duration) *RedisFlashStore {
	return &RedisFlashStore{client: client, ttl: ttl}
}

// Put stores the flash and returns its one-shot id.
func (s *RedisFlashStore) Put(ctx context.Context, flash Flash) (string, error) {
	encoded, err := json.Marshal(flash)
	if err != nil {
		return "", fmt.Errorf("encode flash: %w", err)
	}

	id := uuid.NewString()
	if err := s.client.Set(ctx, flashKeyPrefix+id, encoded, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("store flash: %w", err)
	}
	return id, nil
}

// Take consumes the flash for id. A missing or expired flash returns
// nil without error.
func (s *RedisFlashStore) Take(ctx context.Context, id string) (*Flash, error) {
	encoded, err := s.client.GetDel(ctx, flashKeyPrefix+id).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load flash: %w", err)
	}

	var flash Flash
	if err := json.Unmarshal([]byte(encoded), &flash); err != nil {
		return nil, fmt.Errorf("decode flash: %w", err)
	}
	return &flash, nil
}

// setFlash stores the flash and points the one-shot cookie at it. A
// store failure drops the toast rather than failing the request.
func setFlash(c *gin.Context, store FlashStore, flash Flash) {
	id, err := store.Put(c.Request.Context(), flash)
	if err != nil {
		return
	}
	c.SetCookie(flashCookieName, id, 300, "/", "", false, true)
}

// takeFlash consumes the pending flash for this browser, if any.
func takeFlash(c *gin.Context, store FlashStore) *Flash {
	id, err := c.Cookie(flashCookieName)
	if err != nil || id == "" {
		return nil
	}
	c.SetCookie(flashCookieName, "", -1, "/", "", false, true)

	flash, err := store.Take(c.Request.Context(), id)
	if err != nil {
		return nil
	}
	return flash
}

func redirectWithFlash(c *gin.Context, store FlashStore, target string, flash Flash) {
	setFlash(c, store, flash)
	c.Redirect(http.StatusSeeOther, target)
}
