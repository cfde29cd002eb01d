package cache

import (
	"github.com/dgraph-io/ristretto"
	ristrettoCache "github.com/eko/gocache/store/ristretto/v4"
)

var (
	// R is the raw ristretto cache; kept reachable so callers can Wait for
	// buffered writes to land.
	R *ristretto.Cache
	S *ristrettoCache.RistrettoStore
)

func NewStore() error {
	inner, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e6,
		MaxCost:     1 << 27,
		BufferItems: 64,
	})
	if err != nil {
		return err
	}

	R = inner
	S = ristrettoCache.NewRistretto(inner)
	return nil
}
