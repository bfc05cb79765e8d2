package store

import "github.com/shuldan/appconfig/pkg/contracts"

// MemoryStore keeps settings in a plain map. It backs tests and the
// embedded-defaults case; Load snapshots the seed values the same way
// the other adapters snapshot their source.
type MemoryStore struct {
	seed        map[string]string
	connections map[string]contracts.ConnectionInfo
	snapshot    map[string]string
	state       contracts.StoreState
}

var _ contracts.SettingStore = (*MemoryStore)(nil)
var _ contracts.ConnectionProvider = (*MemoryStore)(nil)

func NewMemoryStore(seed map[string]string) *MemoryStore {
	return &MemoryStore{
		seed:        seed,
		connections: make(map[string]contracts.ConnectionInfo),
		state:       contracts.StoreStateUnloaded,
	}
}

// WithConnection registers a named connection record. Returns the store
// for chaining during setup.
func (m *MemoryStore) WithConnection(info contracts.ConnectionInfo) *MemoryStore {
	m.connections[info.Name] = info
	return m
}

func (m *MemoryStore) Load() error {
	snapshot := make(map[string]string, len(m.seed))
	for key, value := range m.seed {
		snapshot[key] = value
	}
	m.snapshot = snapshot
	m.state = contracts.StoreStateLoaded
	return nil
}

func (m *MemoryStore) Value(key string) (string, bool) {
	value, ok := m.snapshot[key]
	return value, ok
}

func (m *MemoryStore) Set(key, value string) error {
	if _, _, err := SplitKey(key); err != nil {
		return err
	}
	if m.seed == nil {
		m.seed = make(map[string]string)
	}
	m.seed[key] = value
	return nil
}

func (m *MemoryStore) State() contracts.StoreState {
	return m.state
}

func (m *MemoryStore) ConnectionInfo(name string) (contracts.ConnectionInfo, bool) {
	info, ok := m.connections[name]
	return info, ok
}
