package orderControllers

import "sync"

// inflightSet rejects a second checkout for the same session while one is
// still pending. Per-instance only; a storefront session talks to a single
// instance.
type inflightSet struct {
	mu  sync.Mutex
	ids map[string]struct{}
}

func newInflightSet() *inflightSet {
	return &inflightSet{ids: map[string]struct{}{}}
}

func (s *inflightSet) tryBegin(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.ids[id]; busy {
		return false
	}
	s.ids[id] = struct{}{}
	return true
}

func (s *inflightSet) end(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.ids, id)
}
