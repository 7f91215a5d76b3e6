package store

import (
	"strings"
	"sync"

	"github.com/rosered/backend/internal/hash"
	"github.com/rosered/backend/internal/kvstore"
	"github.com/rosered/backend/internal/models"
)

const (
	usersKey   = "users"
	sessionKey = "current-session"
)

// Бутстрап-админ. Пароль открытым текстом — осознанное демо-ограничение,
// включается bcrypt через AUTH_HASH_PASSWORDS.
const (
	DefaultAdminID       = "admin-1"
	DefaultAdminEmail    = "admin@gmail.com"
	defaultAdminPassword = "admin123"
)

// AuthStore owns the "users" collection and the single "current-session"
// pointer. HashPasswords switches credential storage from plaintext (the
// source behavior) to bcrypt; the switch is explicit, never implied.
type AuthStore struct {
	KV            *kvstore.Store
	HashPasswords bool

	mu sync.Mutex
}

// NormalizeEmail trims surrounding whitespace and lower-cases the address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AuthStore) users() []models.User {
	var users []models.User
	s.KV.Get(usersKey, &users)
	return users
}

func (s *AuthStore) saveUsers(users []models.User) error {
	return s.KV.Put(usersKey, users)
}

func (s *AuthStore) Register(email, password string, subscribeNews bool) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	normalized := NormalizeEmail(email)
	if normalized == "" || password == "" {
		return nil, ErrValidation
	}

	users := s.users()
	for _, u := range users {
		if u.Email == normalized {
			return nil, ErrUserAlreadyExist
		}
	}

	stored := password
	if s.HashPasswords {
		h, err := hash.HashPassword(password)
		if err != nil {
			return nil, err
		}
		stored = h
	}

	user := models.User{
		ID:            NewID(),
		Email:         normalized,
		Password:      stored,
		SubscribeNews: subscribeNews,
		IsAdmin:       false,
	}
	users = append(users, user)
	if err := s.saveUsers(users); err != nil {
		return nil, err
	}
	if err := s.KV.Put(sessionKey, user.ID); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *AuthStore) Login(email, password string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	normalized := NormalizeEmail(email)
	for _, u := range s.users() {
		if u.Email != normalized {
			continue
		}
		if s.HashPasswords {
			if !hash.CheckPassword(u.Password, password) {
				continue
			}
		} else if u.Password != password {
			continue
		}
		user := u
		if err := s.KV.Put(sessionKey, user.ID); err != nil {
			return nil, err
		}
		return &user, nil
	}
	return nil, ErrInvalidCredentials
}

// Logout clears the session pointer; calling it without a session is fine.
func (s *AuthStore) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.KV.Delete(sessionKey)
}

// CurrentUser resolves the session pointer against the user collection.
// A pointer to a user that no longer exists counts as anonymous.
func (s *AuthStore) CurrentUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	var id string
	if !s.KV.Get(sessionKey, &id) || id == "" {
		return nil
	}
	for _, u := range s.users() {
		if u.ID == id {
			user := u
			return &user
		}
	}
	return nil
}

// EnsureDefaultAdmin inserts the bootstrap administrator once. Safe to call
// on every start: a no-op while any admin record exists.
func (s *AuthStore) EnsureDefaultAdmin() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := s.users()
	for _, u := range users {
		if u.IsAdmin {
			return nil
		}
	}

	password := defaultAdminPassword
	if s.HashPasswords {
		h, err := hash.HashPassword(password)
		if err != nil {
			return err
		}
		password = h
	}

	users = append(users, models.User{
		ID:            DefaultAdminID,
		Email:         DefaultAdminEmail,
		Password:      password,
		SubscribeNews: false,
		IsAdmin:       true,
	})
	return s.saveUsers(users)
}

func IsAdmin(u *models.User) bool {
	return u != nil && u.IsAdmin
}
