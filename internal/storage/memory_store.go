package storage

// MemoryStore is an in-process provider used by tests and throwaway
// sessions; nothing survives the process.
type MemoryStore struct {
	data []byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Init() error { return nil }

func (s *MemoryStore) Read() ([]byte, error) {
	if s.data == nil {
		return nil, ErrNotFound
	}
	out := make([]byte, len(s.data))
	copy(out, s.data)
	return out, nil
}

func (s *MemoryStore) Write(data []byte) error {
	s.data = make([]byte, len(data))
	copy(s.data, data)
	return nil
}

func (s *MemoryStore) Close() error { return nil }

func (s *MemoryStore) Path() string { return "(memory)" }
