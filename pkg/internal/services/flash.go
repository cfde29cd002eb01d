package services

import (
	"context"
	"fmt"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/marshaler"
	"github.com/eko/gocache/lib/v4/store"

	localCache "github.com/sahifa-news/sahifa/pkg/internal/cache"
)

const (
	FlashLevelSuccess = "success"
	FlashLevelInfo    = "info"
	FlashLevelError   = "error"
)

type Flash struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

func flashCacheKey(accountId uint) string {
	return fmt.Sprintf("flash#%d", accountId)
}

// PushFlash queues a notice for one account. Notices are read-once: they live
// until the next PopFlashes call (or half an hour, whichever comes first).
func PushFlash(accountId uint, level, message string) {
	marshal := marshaler.New(cache.New[any](localCache.S))
	ctx := context.Background()

	var pending []Flash
	if cached, err := marshal.Get(ctx, flashCacheKey(accountId), new([]Flash)); err == nil {
		pending = *cached.(*[]Flash)
	}
	pending = append(pending, Flash{Level: level, Message: message})

	_ = marshal.Set(ctx, flashCacheKey(accountId), pending, store.WithExpiration(30*time.Minute))
}

// PopFlashes hands out the pending notices and deletes them in the same call,
// so a notice is delivered to exactly one successful read.
func PopFlashes(accountId uint) []Flash {
	marshal := marshaler.New(cache.New[any](localCache.S))
	ctx := context.Background()

	cached, err := marshal.Get(ctx, flashCacheKey(accountId), new([]Flash))
	if err != nil {
		return []Flash{}
	}

	_ = marshal.Delete(ctx, flashCacheKey(accountId))

	return *cached.(*[]Flash)
}
