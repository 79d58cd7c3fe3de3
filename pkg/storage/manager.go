package storage

import (
	"sort"
)

// Manager resolves storage keys to backend instances. Keys come from
// platform config at boot, the default key is used for new writes.
type Manager struct {
	stores     map[string]Blobs
	defaultKey string
}

// NewManager builds a manager over the configured backends.
func NewManager(stores map[string]Blobs, defaultKey string) (*Manager, error) {
	if len(stores) == 0 {
		return nil, Error.New("no storage backends configured")
	}
	if _, ok := stores[defaultKey]; !ok {
		return nil, Error.New("default storage key %q is not configured", defaultKey)
	}
	return &Manager{stores: stores, defaultKey: defaultKey}, nil
}

// DefaultKey returns the storage key used for new writes.
func (m *Manager) DefaultKey() string { return m.defaultKey }

// ForKey returns the backend registered under key.
func (m *Manager) ForKey(key string) (Blobs, error) {
	store, ok := m.stores[key]
	if !ok {
		return nil, Error.New("unknown storage key %q", key)
	}
	return store, nil
}

// Keys lists the configured storage keys in stable order.
func (m *Manager) Keys() []string {
	keys := make([]string, 0, len(m.stores))
	for key := range m.stores {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
