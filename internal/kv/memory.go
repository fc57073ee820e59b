package kv

// MemoryStore keeps values in a map. Nothing survives Close.
type MemoryStore struct {
	values map[string]string
	sets   int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) Get(key string) (string, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryStore) Set(key, value string) error {
	m.values[key] = value
	m.sets++
	return nil
}

// Writes reports how many times Set has been called.
func (m *MemoryStore) Writes() int {
	return m.sets
}

func (m *MemoryStore) Close() error {
	return nil
}
