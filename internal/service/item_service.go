package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"reminder-engine/internal/model"
)

// ItemInput represents data required to schedule an item.
type ItemInput struct {
	Kind           model.Kind
	Title          string
	Description    string
	Location       string
	DueAt          time.Time
	IsRecurring    bool
	RecurEveryDays int
	RecurUntil     time.Time
}

// ItemService wraps the host-facing item operations: schedule, query,
// edit and delete.
type ItemService struct {
	store ItemStore
}

func NewItemService(store ItemStore) *ItemService {
	return &ItemService{store: store}
}

func (s *ItemService) Create(ctx context.Context, userID uint, input ItemInput) (*model.Item, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if input.DueAt.IsZero() {
		return nil, fmt.Errorf("due time is required")
	}

	kind := input.Kind
	if kind == "" {
		kind = model.KindTask
	}

	item := model.Item{
		ID:          uuid.NewString(),
		UserID:      userID,
		Kind:        kind,
		Title:       input.Title,
		Description: input.Description,
		Location:    input.Location,
		DueAt:       input.DueAt,
		IsRecurring: input.IsRecurring,
	}

	if input.IsRecurring {
		if input.RecurEveryDays <= 0 {
			return nil, fmt.Errorf("recurrence interval must be a positive number of days")
		}
		if input.RecurUntil.IsZero() {
			return nil, fmt.Errorf("recurrence end date is required for recurring items")
		}
		item.RecurEveryDays = input.RecurEveryDays
		item.RecurUntil = input.RecurUntil
	}

	if err := s.store.Create(ctx, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *ItemService) Get(ctx context.Context, userID uint, itemID string) (*model.Item, error) {
	item, err := s.store.FindByOwner(ctx, userID, itemID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return item, nil
}

// Search filters the owner's items by completion state and an optional
// due-time range. Nil filters are ignored.
func (s *ItemService) Search(ctx context.Context, userID uint, done *bool, from, to *time.Time) ([]model.Item, error) {
	return s.store.Search(ctx, userID, done, from, to)
}

// ItemUpdate carries optional edits; nil fields keep the stored value.
type ItemUpdate struct {
	Title          *string
	Description    *string
	Location       *string
	DueAt          *time.Time
	IsRecurring    *bool
	RecurEveryDays *int
	RecurUntil     *time.Time
}

// Update edits a pending item in place. Recurrence parameters are
// re-validated when the update leaves the item recurring.
func (s *ItemService) Update(ctx context.Context, userID uint, itemID string, upd ItemUpdate) (*model.Item, error) {
	item, err := s.store.FindByOwner(ctx, userID, itemID)
	if err != nil {
		return nil, mapNotFound(err)
	}

	if upd.Title != nil {
		item.Title = *upd.Title
	}
	if upd.Description != nil {
		item.Description = *upd.Description
	}
	if upd.Location != nil {
		item.Location = *upd.Location
	}
	if upd.DueAt != nil {
		item.DueAt = *upd.DueAt
	}
	if upd.IsRecurring != nil {
		item.IsRecurring = *upd.IsRecurring
	}
	if upd.RecurEveryDays != nil {
		item.RecurEveryDays = *upd.RecurEveryDays
	}
	if upd.RecurUntil != nil {
		item.RecurUntil = *upd.RecurUntil
	}

	if item.IsRecurring {
		if item.RecurEveryDays <= 0 {
			return nil, fmt.Errorf("recurrence interval must be a positive number of days")
		}
		if item.RecurUntil.IsZero() {
			return nil, fmt.Errorf("recurrence end date is required for recurring items")
		}
	}

	if err := s.store.Save(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete removes an item completely, recurring or not.
func (s *ItemService) Delete(ctx context.Context, userID uint, itemID string) error {
	if _, err := s.store.FindByOwner(ctx, userID, itemID); err != nil {
		return mapNotFound(err)
	}
	return s.store.Delete(ctx, userID, itemID)
}
