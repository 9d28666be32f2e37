// Package prefs persists small client-side preferences.
package prefs

import (
	"sync"

	"github.com/van-is-code/portfolio/internal/content"
)

// LanguageKey is the storage key of the language preference.
const LanguageKey = "lang"

// Store is a flat string key/value store.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// Language returns the stored language, or the default when nothing is stored.
func Language(s Store) content.Language {
	v, ok := s.Get(LanguageKey)
	if !ok || v == "" {
		return content.DefaultLanguage
	}
	return content.ParseLanguage(v)
}

// SetLanguage stores lang as the language preference.
func SetLanguage(s Store, lang content.Language) error {
	return s.Set(LanguageKey, lang.String())
}

// Memory is an in-process Store.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}
