package service

import (
	"testing"
	"time"

	"github.com/achabill/blog/models"
)

func TestTokenCache_GetMiss(t *testing.T) {
	cache := newTokenCache(time.Hour)

	_, ok := cache.get("unknown-token")
	if ok {
		t.Fatal("expected miss for unknown token")
	}
}

func TestTokenCache_PutAndGet(t *testing.T) {
	cache := newTokenCache(time.Hour)
	user := models.User{ID: "user-1", Username: "garri"}

	cache.putIfAbsent("token-1", user)

	got, ok := cache.get("token-1")
	if !ok {
		t.Fatal("expected hit after putIfAbsent")
	}
	if got.ID != user.ID || got.Username != user.Username {
		t.Errorf("expected user %+v, got %+v", user, got)
	}
}

func TestTokenCache_WriteOnce(t *testing.T) {
	cache := newTokenCache(time.Hour)

	cache.putIfAbsent("token-1", models.User{ID: "first"})
	cache.putIfAbsent("token-1", models.User{ID: "second"})

	got, ok := cache.get("token-1")
	if !ok {
		t.Fatal("expected hit")
	}
	if got.ID != "first" {
		t.Errorf("expected first write to win, got %q", got.ID)
	}
	if cache.len() != 1 {
		t.Errorf("expected 1 entry, got %d", cache.len())
	}
}

func TestTokenCache_Expiry(t *testing.T) {
	cache := newTokenCache(time.Millisecond)

	cache.putIfAbsent("token-1", models.User{ID: "user-1"})

	time.Sleep(5 * time.Millisecond)

	_, ok := cache.get("token-1")
	if ok {
		t.Fatal("expected miss after TTL expiry")
	}
	// expired entry is removed on read
	if cache.len() != 0 {
		t.Errorf("expected 0 entries after expiry read, got %d", cache.len())
	}
}
