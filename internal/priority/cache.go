package priority

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/Elite747/ValhallaLootList-sub000/internal/donation"
)

type cachedLedger struct {
	Version  string
	Ledger   *donation.Ledger
	CachedAt time.Time
}

// ledgerCache keeps one simulated donation ledger per character.
// Entries expire after ttl so month rollovers are picked up without an explicit purge.
type ledgerCache struct {
	lru *expirable.LRU[string, *cachedLedger]
}

func newLedgerCache(size int, ttl time.Duration) *ledgerCache {
	if size <= 0 {
		size = DefaultLedgerCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultLedgerCacheTTL
	}
	return &ledgerCache{
		lru: expirable.NewLRU[string, *cachedLedger](size, nil, ttl),
	}
}

func (c *ledgerCache) Get(characterID string) (*donation.Ledger, bool) {
	entry, found := c.lru.Get(characterID)
	if !found {
		return nil, false
	}
	if entry.Version != LedgerCacheVersion {
		c.lru.Remove(characterID)
		return nil, false
	}
	return entry.Ledger, true
}

func (c *ledgerCache) Set(characterID string, ledger *donation.Ledger) {
	c.lru.Add(characterID, &cachedLedger{
		Version:  LedgerCacheVersion,
		Ledger:   ledger,
		CachedAt: time.Now(),
	})
}

func (c *ledgerCache) Invalidate(characterID string) {
	c.lru.Remove(characterID)
}

func (c *ledgerCache) Len() int {
	return c.lru.Len()
}
