package index

import (
	"container/list"
	"sync"

	"learnrag/internal/vectorstore"
)

// storeCache is a bounded LRU of corpus-hash -> built store. Stores are
// immutable once populated, so a lost write race only costs duplicated
// build work, never data integrity; putIfAbsent keeps the winning entry.
type storeCache struct {
	mu    sync.Mutex
	cap   int
	order *list.List
	items map[string]*list.Element
}

type cacheEntry struct {
	key   string
	store *vectorstore.Store
}

func newStoreCache(capacity int) *storeCache {
	if capacity <= 0 {
		capacity = 32
	}
	return &storeCache{
		cap:   capacity,
		order: list.New(),
		items: make(map[string]*list.Element, capacity),
	}
}

func (c *storeCache) get(key string) (*vectorstore.Store, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	el, ok := c.items[key]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(el)
	return el.Value.(*cacheEntry).store, true
}

// putIfAbsent inserts store under key unless an entry already exists, and
// returns whichever store the cache now holds.
func (c *storeCache) putIfAbsent(key string, store *vectorstore.Store) *vectorstore.Store {
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.items[key]; ok {
		c.order.MoveToFront(el)
		return el.Value.(*cacheEntry).store
	}
	c.items[key] = c.order.PushFront(&cacheEntry{key: key, store: store})
	for c.order.Len() > c.cap {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.items, oldest.Value.(*cacheEntry).key)
	}
	return store
}

func (c *storeCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
