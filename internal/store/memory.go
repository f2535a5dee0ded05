package store

import (
	"context"
	"sync"
)

type Memory struct {
	m      sync.RWMutex
	values map[string]string
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (s *Memory) Get(_ context.Context, key string) (string, error) {
	s.m.RLock()
	defer s.m.RUnlock()
	v, ok := s.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (s *Memory) Set(_ context.Context, key, value string) error {
	s.m.Lock()
	defer s.m.Unlock()
	s.values[key] = value
	return nil
}

func (s *Memory) Delete(_ context.Context, key string) error {
	s.m.Lock()
	defer s.m.Unlock()
	delete(s.values, key)
	return nil
}
