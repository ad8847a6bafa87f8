package service

import (
	"context"
	"sync"
	"time"

	"gorm.io/gorm"

	"reminder-engine/internal/model"
	"reminder-engine/internal/notify"
)

// memStore is an in-memory ItemStore with the same conditional MarkDone
// semantics as the gorm-backed repository.
type memStore struct {
	mu      sync.Mutex
	items   map[string]*model.Item
	flips   int // successful MarkDone flips
	scanErr error
}

func newMemStore(items ...model.Item) *memStore {
	s := &memStore{items: make(map[string]*model.Item)}
	for i := range items {
		it := items[i]
		s.items[it.ID] = &it
	}
	return s
}

func (s *memStore) Create(_ context.Context, item *model.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *item
	s.items[item.ID] = &cp
	return nil
}

func (s *memStore) GetByID(_ context.Context, id string) (*model.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *item
	return &cp, nil
}

func (s *memStore) FindByOwner(_ context.Context, userID uint, id string) (*model.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[id]
	if !ok || item.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *item
	return &cp, nil
}

func (s *memStore) FindDue(_ context.Context, now time.Time, window time.Duration) ([]model.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.scanErr != nil {
		return nil, s.scanErr
	}
	start := now.Add(-window)
	var due []model.Item
	for _, item := range s.items {
		if item.Done || item.DueAt.Before(start) || item.DueAt.After(now) {
			continue
		}
		due = append(due, *item)
	}
	return due, nil
}

func (s *memStore) Search(_ context.Context, userID uint, done *bool, from, to *time.Time) ([]model.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Item
	for _, item := range s.items {
		if item.UserID != userID {
			continue
		}
		if done != nil && item.Done != *done {
			continue
		}
		if from != nil && to != nil && (item.DueAt.Before(*from) || item.DueAt.After(*to)) {
			continue
		}
		out = append(out, *item)
	}
	return out, nil
}

func (s *memStore) Save(_ context.Context, item *model.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[item.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *item
	s.items[item.ID] = &cp
	return nil
}

func (s *memStore) MarkDone(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[id]
	if !ok {
		return false, nil
	}
	if item.Done {
		return false, nil
	}
	item.Done = true
	s.flips++
	return true, nil
}

func (s *memStore) Delete(_ context.Context, userID uint, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if item, ok := s.items[id]; ok && item.UserID == userID {
		delete(s.items, id)
	}
	return nil
}

func (s *memStore) get(id string) model.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.items[id]
}

func (s *memStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// memDirectory is an in-memory ContactDirectory.
type memDirectory struct {
	contacts map[uint]model.Contact
}

func (d *memDirectory) Contact(_ context.Context, userID uint) (model.Contact, error) {
	c, ok := d.contacts[userID]
	if !ok {
		return model.Contact{}, gorm.ErrRecordNotFound
	}
	return c, nil
}

// fakeGateway records sends and can be told to fail per subject.
type fakeGateway struct {
	mu       sync.Mutex
	sent     []string // subjects, in send order
	failWith map[string]error
}

var _ notify.Gateway = (*fakeGateway)(nil)

func newFakeGateway() *fakeGateway {
	return &fakeGateway{failWith: make(map[string]error)}
}

func (g *fakeGateway) Send(_ context.Context, to model.Contact, subject, _ string) error {
	if !to.HasAny() {
		return notify.ErrNoRecipient
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if err, ok := g.failWith[subject]; ok {
		return err
	}
	g.sent = append(g.sent, subject)
	return nil
}

func (g *fakeGateway) sentCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.sent)
}
