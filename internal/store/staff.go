package store

import (
	"strings"
	"sync"
	"time"

	"github.com/rosered/backend/internal/kvstore"
	"github.com/rosered/backend/internal/models"
)

const staffKey = "staff"

type StaffStore struct {
	KV *kvstore.Store

	mu sync.Mutex
}

// StaffChanges — частичное обновление: применяются только заданные поля.
type StaffChanges struct {
	Name *string `json:"name"`
	Role *string `json:"role"`
}

func (s *StaffStore) all() []models.StaffMember {
	var list []models.StaffMember
	s.KV.Get(staffKey, &list)
	return list
}

func (s *StaffStore) Create(name, role string) (*models.StaffMember, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name = strings.TrimSpace(name)
	role = strings.TrimSpace(role)
	if name == "" || role == "" {
		return nil, ErrValidation
	}

	member := models.StaffMember{
		ID:        NewID(),
		Name:      name,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}
	list := append(s.all(), member)
	if err := s.KV.Put(staffKey, list); err != nil {
		return nil, err
	}
	return &member, nil
}

// Update overlays only the provided fields onto the existing record and
// returns the result, or nil when no record matches.
func (s *StaffStore) Update(id string, changes StaffChanges) (*models.StaffMember, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.all()
	for i := range list {
		if list[i].ID != id {
			continue
		}
		if changes.Name != nil {
			list[i].Name = strings.TrimSpace(*changes.Name)
		}
		if changes.Role != nil {
			list[i].Role = strings.TrimSpace(*changes.Role)
		}
		if err := s.KV.Put(staffKey, list); err != nil {
			return nil, err
		}
		member := list[i]
		return &member, nil
	}
	return nil, nil
}

func (s *StaffStore) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.all()
	filtered := list[:0:0]
	for _, m := range list {
		if m.ID != id {
			filtered = append(filtered, m)
		}
	}
	if len(filtered) == len(list) {
		return nil
	}
	return s.KV.Put(staffKey, filtered)
}

func (s *StaffStore) ListAll() []models.StaffMember {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.all()
}
