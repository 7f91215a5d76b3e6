package store

import (
	"strconv"
	"strings"
	"sync"

	"github.com/rosered/backend/internal/kvstore"
	"github.com/rosered/backend/internal/models"
)

const productsKey = "products"

// CatalogStore keeps the product collection behind an in-memory cache so
// repeated reads skip storage decoding. Every mutation goes through Save,
// which refreshes the cache, so cache and persisted state cannot diverge.
type CatalogStore struct {
	KV *kvstore.Store

	mu     sync.Mutex
	cache  []models.Product
	loaded bool
	seeded bool
}

// Load returns the persisted catalog. The fixed default set is seeded when
// the first access of the process finds no usable persisted collection or an
// empty one. Once this process has loaded or saved the catalog, the stored
// collection is authoritative even when empty; the next start reseeds.
func (s *CatalogStore) Load() ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.load()
	if err != nil {
		return nil, err
	}
	out := make([]models.Product, len(products))
	copy(out, products)
	return out, nil
}

func (s *CatalogStore) load() ([]models.Product, error) {
	if s.loaded {
		return s.cache, nil
	}

	var stored []models.Product
	if s.KV.Get(productsKey, &stored) && (len(stored) > 0 || s.seeded) {
		if stored == nil {
			stored = []models.Product{}
		}
		s.cache = stored
		s.loaded = true
		s.seeded = true
		return s.cache, nil
	}

	// Key absent, undecodable, or empty at the first access: seed defaults.
	seeded := make([]models.Product, len(DefaultProducts))
	copy(seeded, DefaultProducts)
	if err := s.KV.Put(productsKey, seeded); err != nil {
		return nil, err
	}
	s.cache = seeded
	s.loaded = true
	s.seeded = true
	return s.cache, nil
}

// Save fully overwrites the persisted collection.
func (s *CatalogStore) Save(products []models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(products)
}

func (s *CatalogStore) save(products []models.Product) error {
	if products == nil {
		products = []models.Product{}
	}
	if err := s.KV.Put(productsKey, products); err != nil {
		return err
	}
	s.cache = products
	s.loaded = true
	s.seeded = true
	return nil
}

// Invalidate drops the cache; the next Load re-reads storage.
func (s *CatalogStore) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache = nil
	s.loaded = false
}

func (s *CatalogStore) Find(id string) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.load()
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, nil
}

func (s *CatalogStore) Create(p models.Product) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.Title = strings.TrimSpace(p.Title)
	if p.Title == "" {
		return nil, ErrValidation
	}
	p.ID = NewID()
	if p.Price < 0 {
		p.Price = 0
	}

	products, err := s.load()
	if err != nil {
		return nil, err
	}
	updated := make([]models.Product, len(products), len(products)+1)
	copy(updated, products)
	updated = append(updated, p)
	if err := s.save(updated); err != nil {
		return nil, err
	}
	return &p, nil
}

// ProductChanges — частичное обновление товара.
type ProductChanges struct {
	Title       *string  `json:"title"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price"`
	Image       *string  `json:"image"`
	Description *string  `json:"description"`
}

func (s *CatalogStore) Update(id string, changes ProductChanges) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.load()
	if err != nil {
		return nil, err
	}
	updated := make([]models.Product, len(products))
	copy(updated, products)

	for i := range updated {
		if updated[i].ID != id {
			continue
		}
		if changes.Title != nil {
			updated[i].Title = strings.TrimSpace(*changes.Title)
		}
		if changes.Category != nil {
			updated[i].Category = strings.TrimSpace(*changes.Category)
		}
		if changes.Price != nil {
			price := *changes.Price
			if price < 0 {
				price = 0
			}
			updated[i].Price = price
		}
		if changes.Image != nil {
			updated[i].Image = *changes.Image
		}
		if changes.Description != nil {
			updated[i].Description = *changes.Description
		}
		if err := s.save(updated); err != nil {
			return nil, err
		}
		product := updated[i]
		return &product, nil
	}
	return nil, nil
}

// Delete removes the product with the given id; missing ids are a no-op.
func (s *CatalogStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.load()
	if err != nil {
		return err
	}
	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.ID != id {
			filtered = append(filtered, p)
		}
	}
	if len(filtered) == len(products) {
		return nil
	}
	return s.save(filtered)
}

// ParsePrice accepts both dot and comma decimal separators, as the admin
// form does. Unparsable or negative input becomes 0.
func ParsePrice(raw string) float64 {
	v, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(raw), ",", "."), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}
