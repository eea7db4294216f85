package persist

// MemoryStore keeps values for the life of the process only.
type MemoryStore struct {
	values map[string]string
	Writes int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: map[string]string{}}
}

func (m *MemoryStore) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *MemoryStore) Set(key, value string) error {
	m.values[key] = value
	m.Writes++
	return nil
}
