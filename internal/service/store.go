package service

import (
	"context"
	"time"

	"reminder-engine/internal/model"
)

// ItemStore is the persistence boundary for schedulable items. The
// repository package provides the gorm-backed implementation; tests use
// in-memory fakes.
type ItemStore interface {
	Create(ctx context.Context, item *model.Item) error
	GetByID(ctx context.Context, id string) (*model.Item, error)
	FindByOwner(ctx context.Context, userID uint, id string) (*model.Item, error)
	FindDue(ctx context.Context, now time.Time, window time.Duration) ([]model.Item, error)
	Search(ctx context.Context, userID uint, done *bool, from, to *time.Time) ([]model.Item, error)
	Save(ctx context.Context, item *model.Item) error
	// MarkDone flips the terminal flag only if it is still false and
	// reports whether this call performed the flip.
	MarkDone(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, userID uint, id string) error
}

// ContactDirectory resolves an item owner to delivery addresses.
type ContactDirectory interface {
	Contact(ctx context.Context, userID uint) (model.Contact, error)
}
