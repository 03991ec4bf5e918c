package memory

import (
	"context"
	"sync"

	"github.com/Cyndie1416/RetailPOS/internal/event"
	"github.com/Cyndie1416/RetailPOS/internal/usecase/settings"
)

type SettingsStore struct {
	mu       sync.Mutex
	settings settings.Settings
	events   event.Dispatcher
}

func NewSettingsStore(events event.Dispatcher) *SettingsStore {
	return &SettingsStore{events: events}
}

func (s *SettingsStore) Get(ctx context.Context) (settings.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings, nil
}

func (s *SettingsStore) Update(ctx context.Context, in settings.Settings) (settings.Settings, error) {
	s.mu.Lock()
	s.settings = in
	s.mu.Unlock()

	dispatch(s.events, event.SettingsChanged{})
	return in, nil
}

func (s *SettingsStore) Replace(in settings.Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = in
}
