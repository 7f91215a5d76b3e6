package store

import (
	"sync"

	"github.com/rosered/backend/internal/kvstore"
)

const cartKey = "cart"

// CartStore is a persisted set of product-id strings. The cart belongs to
// the storefront, not to a user session.
type CartStore struct {
	KV *kvstore.Store

	mu sync.Mutex
}

func (s *CartStore) ids() []string {
	var ids []string
	s.KV.Get(cartKey, &ids)
	return ids
}

func (s *CartStore) IDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := s.ids()
	if ids == nil {
		ids = []string{}
	}
	return ids
}

func (s *CartStore) Contains(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range s.ids() {
		if v == id {
			return true
		}
	}
	return false
}

// Toggle flips membership of id and persists the full set.
func (s *CartStore) Toggle(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := s.ids()
	for i, v := range ids {
		if v == id {
			return s.KV.Put(cartKey, append(ids[:i], ids[i+1:]...))
		}
	}
	return s.KV.Put(cartKey, append(ids, id))
}
